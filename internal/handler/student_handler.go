package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-records/internal/form"
	"github.com/noah-isme/school-records/internal/models"
	"github.com/noah-isme/school-records/internal/service"
	"github.com/noah-isme/school-records/pkg/response"
)

type studentService interface {
	List(ctx context.Context) ([]models.StudentDetail, error)
	Get(ctx context.Context, id int64) (*models.Student, error)
	Choices(ctx context.Context) (form.Choices, error)
	Create(ctx context.Context, input form.StudentForm) (service.StudentSubmission, error)
	Update(ctx context.Context, id int64, input form.StudentForm) (service.StudentSubmission, error)
	Delete(ctx context.Context, id int64) error
}

// StudentHandler serves the student pages.
type StudentHandler struct {
	students studentService
}

// NewStudentHandler constructs StudentHandler.
func NewStudentHandler(students studentService) *StudentHandler {
	return &StudentHandler{students: students}
}

// List godoc
// @Summary List students
// @Tags Students
// @Produce html
// @Success 200
// @Router /students [get]
func (h *StudentHandler) List(c *gin.Context) {
	students, err := h.students.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.HTML(c, http.StatusOK, "students.html", gin.H{"Title": "Students", "Students": students})
}

// Add godoc
// @Summary Show or submit the student creation form
// @Tags Students
// @Accept x-www-form-urlencoded
// @Produce html
// @Success 200
// @Success 303
// @Failure 422
// @Router /add-student [get]
// @Router /add-student [post]
func (h *StudentHandler) Add(c *gin.Context) {
	ctx := c.Request.Context()
	choices, err := h.students.Choices(ctx)
	if err != nil {
		response.Error(c, err)
		return
	}
	page := formPage{Template: "student_form.html", Title: "Add student", Action: "/add-student", Choices: choices}

	input := form.NewStudentForm(nil)
	if !isSubmit(c) {
		page.Form = input
		renderForm(c, page)
		return
	}
	if errs := bindSubmission(c, &input); errs != nil {
		page.Form, page.Errors = input, errs
		renderForm(c, page)
		return
	}
	sub, err := h.students.Create(ctx, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !sub.OK() {
		page.Form, page.Errors = sub.Input, sub.Errors
		renderForm(c, page)
		return
	}
	response.Redirect(c, "/students")
}

// Edit godoc
// @Summary Show or submit the student edit form
// @Tags Students
// @Accept x-www-form-urlencoded
// @Produce html
// @Param id path int true "Student ID"
// @Success 200
// @Success 303
// @Failure 404
// @Failure 422
// @Router /edit-student/{id} [get]
// @Router /edit-student/{id} [post]
func (h *StudentHandler) Edit(c *gin.Context) {
	ctx := c.Request.Context()
	id, err := pathID(c, "student")
	if err != nil {
		response.Error(c, err)
		return
	}
	student, err := h.students.Get(ctx, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	choices, err := h.students.Choices(ctx)
	if err != nil {
		response.Error(c, err)
		return
	}
	page := formPage{Template: "student_form.html", Title: "Edit student", Action: fmt.Sprintf("/edit-student/%d", id), Choices: choices}

	input := form.NewStudentForm(student)
	if !isSubmit(c) {
		page.Form = input
		renderForm(c, page)
		return
	}
	if errs := bindSubmission(c, &input); errs != nil {
		page.Form, page.Errors = input, errs
		renderForm(c, page)
		return
	}
	sub, err := h.students.Update(ctx, id, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !sub.OK() {
		page.Form, page.Errors = sub.Input, sub.Errors
		renderForm(c, page)
		return
	}
	response.Redirect(c, "/students")
}

// Delete godoc
// @Summary Delete a student
// @Tags Students
// @Param id query int true "Student ID"
// @Success 303
// @Failure 404
// @Router /delete-student [get]
// @Router /delete-student [post]
func (h *StudentHandler) Delete(c *gin.Context) {
	id, err := queryID(c, "student")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.students.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Redirect(c, "/students")
}
