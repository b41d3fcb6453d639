package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/noah-isme/school-records/internal/form"
	"github.com/noah-isme/school-records/internal/models"
	appErrors "github.com/noah-isme/school-records/pkg/errors"
	"github.com/noah-isme/school-records/pkg/response"
)

// pathID reads the :id route parameter. Anything that is not a positive
// integer cannot name a row and is reported as not found.
func pathID(c *gin.Context, entity string) (int64, error) {
	return parseID(c.Param("id"), entity)
}

// queryID reads the id query parameter used by delete routes.
func queryID(c *gin.Context, entity string) (int64, error) {
	return parseID(c.Query("id"), entity)
}

func parseID(raw, entity string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, appErrors.Clone(appErrors.ErrNotFound, entity+" not found")
	}
	return id, nil
}

func isSubmit(c *gin.Context) bool {
	return c.Request.Method == http.MethodPost
}

// bindSubmission binds the posted body onto dst. Fields missing from the
// body keep whatever dst already holds.
func bindSubmission(c *gin.Context, dst interface{}) form.Errors {
	if err := c.ShouldBindWith(dst, binding.FormPost); err != nil {
		return form.Errors{"form": "could not read the submitted form"}
	}
	return nil
}

type formPage struct {
	Template string
	Title    string
	Action   string
	Form     interface{}
	Errors   form.Errors
	Choices  form.Choices
}

// renderForm shows a blank, pre-filled or rejected form. Rejections are
// answered with 422 so clients can tell them apart from store errors.
func renderForm(c *gin.Context, page formPage) {
	status := http.StatusOK
	if !page.Errors.Valid() {
		status = http.StatusUnprocessableEntity
	}
	if page.Errors == nil {
		page.Errors = form.Errors{}
	}
	if page.Choices == nil {
		page.Choices = form.Choices{}
	}
	response.HTML(c, status, page.Template, gin.H{
		"Title":   page.Title,
		"Action":  page.Action,
		"Form":    page.Form,
		"Errors":  page.Errors,
		"Choices": page.Choices,
		"Genders": models.Genders,
	})
}
