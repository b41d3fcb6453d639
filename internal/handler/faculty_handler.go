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

type facultyService interface {
	List(ctx context.Context) ([]models.Faculty, error)
	Get(ctx context.Context, id int64) (*models.Faculty, error)
	Create(ctx context.Context, input form.FacultyForm) (service.FacultySubmission, error)
	Update(ctx context.Context, id int64, input form.FacultyForm) (service.FacultySubmission, error)
	Delete(ctx context.Context, id int64) error
}

// FacultyHandler serves the faculty pages.
type FacultyHandler struct {
	faculties facultyService
}

// NewFacultyHandler constructs FacultyHandler.
func NewFacultyHandler(faculties facultyService) *FacultyHandler {
	return &FacultyHandler{faculties: faculties}
}

// List godoc
// @Summary List faculties
// @Tags Faculties
// @Produce html
// @Success 200
// @Router /faculties [get]
func (h *FacultyHandler) List(c *gin.Context) {
	faculties, err := h.faculties.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.HTML(c, http.StatusOK, "faculties.html", gin.H{"Title": "Faculties", "Faculties": faculties})
}

// Add godoc
// @Summary Show or submit the faculty creation form
// @Tags Faculties
// @Accept x-www-form-urlencoded
// @Produce html
// @Success 200
// @Success 303
// @Failure 409
// @Failure 422
// @Router /add-faculty [get]
// @Router /add-faculty [post]
func (h *FacultyHandler) Add(c *gin.Context) {
	page := formPage{Template: "faculty_form.html", Title: "Add faculty", Action: "/add-faculty"}

	input := form.NewFacultyForm(nil)
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
	sub, err := h.faculties.Create(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !sub.OK() {
		page.Form, page.Errors = sub.Input, sub.Errors
		renderForm(c, page)
		return
	}
	response.Redirect(c, "/faculties")
}

// Edit godoc
// @Summary Show or submit the faculty edit form
// @Tags Faculties
// @Accept x-www-form-urlencoded
// @Produce html
// @Param id path int true "Faculty ID"
// @Success 200
// @Success 303
// @Failure 404
// @Failure 409
// @Failure 422
// @Router /edit-faculty/{id} [get]
// @Router /edit-faculty/{id} [post]
func (h *FacultyHandler) Edit(c *gin.Context) {
	ctx := c.Request.Context()
	id, err := pathID(c, "faculty")
	if err != nil {
		response.Error(c, err)
		return
	}
	faculty, err := h.faculties.Get(ctx, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	page := formPage{Template: "faculty_form.html", Title: "Edit faculty", Action: fmt.Sprintf("/edit-faculty/%d", id)}

	input := form.NewFacultyForm(faculty)
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
	sub, err := h.faculties.Update(ctx, id, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !sub.OK() {
		page.Form, page.Errors = sub.Input, sub.Errors
		renderForm(c, page)
		return
	}
	response.Redirect(c, "/faculties")
}

// Delete godoc
// @Summary Delete a faculty
// @Description A faculty still referenced by students, instructors or courses is kept and 409 is returned.
// @Tags Faculties
// @Param id query int true "Faculty ID"
// @Success 303
// @Failure 404
// @Failure 409
// @Router /delete-faculty [get]
// @Router /delete-faculty [post]
func (h *FacultyHandler) Delete(c *gin.Context) {
	id, err := queryID(c, "faculty")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.faculties.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Redirect(c, "/faculties")
}
