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

type courseService interface {
	List(ctx context.Context) ([]models.CourseDetail, error)
	Get(ctx context.Context, id int64) (*models.Course, error)
	Choices(ctx context.Context) (form.Choices, error)
	Create(ctx context.Context, input form.CourseForm) (service.CourseSubmission, error)
	Update(ctx context.Context, id int64, input form.CourseForm) (service.CourseSubmission, error)
	Delete(ctx context.Context, id int64) error
}

// CourseHandler serves the course pages.
type CourseHandler struct {
	courses courseService
}

// NewCourseHandler constructs CourseHandler.
func NewCourseHandler(courses courseService) *CourseHandler {
	return &CourseHandler{courses: courses}
}

// List godoc
// @Summary List courses
// @Tags Courses
// @Produce html
// @Success 200
// @Router /courses [get]
func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.courses.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.HTML(c, http.StatusOK, "courses.html", gin.H{"Title": "Courses", "Courses": courses})
}

// Add godoc
// @Summary Show or submit the course creation form
// @Tags Courses
// @Accept x-www-form-urlencoded
// @Produce html
// @Success 200
// @Success 303
// @Failure 422
// @Router /add-course [get]
// @Router /add-course [post]
func (h *CourseHandler) Add(c *gin.Context) {
	ctx := c.Request.Context()
	choices, err := h.courses.Choices(ctx)
	if err != nil {
		response.Error(c, err)
		return
	}
	page := formPage{Template: "course_form.html", Title: "Add course", Action: "/add-course", Choices: choices}

	input := form.NewCourseForm(nil)
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
	sub, err := h.courses.Create(ctx, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !sub.OK() {
		page.Form, page.Errors = sub.Input, sub.Errors
		renderForm(c, page)
		return
	}
	response.Redirect(c, "/courses")
}

// Edit godoc
// @Summary Show or submit the course edit form
// @Tags Courses
// @Accept x-www-form-urlencoded
// @Produce html
// @Param id path int true "Course ID"
// @Success 200
// @Success 303
// @Failure 404
// @Failure 422
// @Router /edit-course/{id} [get]
// @Router /edit-course/{id} [post]
func (h *CourseHandler) Edit(c *gin.Context) {
	ctx := c.Request.Context()
	id, err := pathID(c, "course")
	if err != nil {
		response.Error(c, err)
		return
	}
	course, err := h.courses.Get(ctx, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	choices, err := h.courses.Choices(ctx)
	if err != nil {
		response.Error(c, err)
		return
	}
	page := formPage{Template: "course_form.html", Title: "Edit course", Action: fmt.Sprintf("/edit-course/%d", id), Choices: choices}

	input := form.NewCourseForm(course)
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
	sub, err := h.courses.Update(ctx, id, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !sub.OK() {
		page.Form, page.Errors = sub.Input, sub.Errors
		renderForm(c, page)
		return
	}
	response.Redirect(c, "/courses")
}

// Delete godoc
// @Summary Delete a course
// @Tags Courses
// @Param id query int true "Course ID"
// @Success 303
// @Failure 404
// @Router /delete-course [get]
// @Router /delete-course [post]
func (h *CourseHandler) Delete(c *gin.Context) {
	id, err := queryID(c, "course")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.courses.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Redirect(c, "/courses")
}
