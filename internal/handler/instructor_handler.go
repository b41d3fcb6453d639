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

type instructorService interface {
	List(ctx context.Context) ([]models.InstructorDetail, error)
	Get(ctx context.Context, id int64) (*models.Instructor, error)
	Choices(ctx context.Context) (form.Choices, error)
	Create(ctx context.Context, input form.InstructorForm) (service.InstructorSubmission, error)
	Update(ctx context.Context, id int64, input form.InstructorForm) (service.InstructorSubmission, error)
	Delete(ctx context.Context, id int64) error
}

// InstructorHandler serves the instructor pages.
type InstructorHandler struct {
	instructors instructorService
}

// NewInstructorHandler constructs InstructorHandler.
func NewInstructorHandler(instructors instructorService) *InstructorHandler {
	return &InstructorHandler{instructors: instructors}
}

// List godoc
// @Summary List instructors
// @Tags Instructors
// @Produce html
// @Success 200
// @Router /instructors [get]
func (h *InstructorHandler) List(c *gin.Context) {
	instructors, err := h.instructors.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.HTML(c, http.StatusOK, "instructors.html", gin.H{"Title": "Instructors", "Instructors": instructors})
}

// Add godoc
// @Summary Show or submit the instructor creation form
// @Tags Instructors
// @Accept x-www-form-urlencoded
// @Produce html
// @Success 200
// @Success 303
// @Failure 422
// @Router /add-instructor [get]
// @Router /add-instructor [post]
func (h *InstructorHandler) Add(c *gin.Context) {
	ctx := c.Request.Context()
	choices, err := h.instructors.Choices(ctx)
	if err != nil {
		response.Error(c, err)
		return
	}
	page := formPage{Template: "instructor_form.html", Title: "Add instructor", Action: "/add-instructor", Choices: choices}

	input := form.NewInstructorForm(nil)
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
	sub, err := h.instructors.Create(ctx, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !sub.OK() {
		page.Form, page.Errors = sub.Input, sub.Errors
		renderForm(c, page)
		return
	}
	response.Redirect(c, "/instructors")
}

// Edit godoc
// @Summary Show or submit the instructor edit form
// @Tags Instructors
// @Accept x-www-form-urlencoded
// @Produce html
// @Param id path int true "Instructor ID"
// @Success 200
// @Success 303
// @Failure 404
// @Failure 422
// @Router /edit-instructor/{id} [get]
// @Router /edit-instructor/{id} [post]
func (h *InstructorHandler) Edit(c *gin.Context) {
	ctx := c.Request.Context()
	id, err := pathID(c, "instructor")
	if err != nil {
		response.Error(c, err)
		return
	}
	instructor, err := h.instructors.Get(ctx, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	choices, err := h.instructors.Choices(ctx)
	if err != nil {
		response.Error(c, err)
		return
	}
	page := formPage{Template: "instructor_form.html", Title: "Edit instructor", Action: fmt.Sprintf("/edit-instructor/%d", id), Choices: choices}

	input := form.NewInstructorForm(instructor)
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
	sub, err := h.instructors.Update(ctx, id, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !sub.OK() {
		page.Form, page.Errors = sub.Input, sub.Errors
		renderForm(c, page)
		return
	}
	response.Redirect(c, "/instructors")
}

// Delete godoc
// @Summary Delete a instructor
// @Tags Instructors
// @Param id query int true "Instructor ID"
// @Success 303
// @Failure 404
// @Router /delete-instructor [get]
// @Router /delete-instructor [post]
func (h *InstructorHandler) Delete(c *gin.Context) {
	id, err := queryID(c, "instructor")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.instructors.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Redirect(c, "/instructors")
}
