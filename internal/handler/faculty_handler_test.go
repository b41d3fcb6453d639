package handler

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/school-records/internal/form"
	"github.com/noah-isme/school-records/internal/models"
	"github.com/noah-isme/school-records/internal/service"
	appErrors "github.com/noah-isme/school-records/pkg/errors"
)

type fakeFacultySrv struct {
	createErr error
	deleteErr error
}

func (f *fakeFacultySrv) List(context.Context) ([]models.Faculty, error) {
	return []models.Faculty{{ID: 1, Name: "Arts"}}, nil
}

func (f *fakeFacultySrv) Get(_ context.Context, id int64) (*models.Faculty, error) {
	if id != 1 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "faculty not found")
	}
	return &models.Faculty{ID: 1, Name: "Arts"}, nil
}

func (f *fakeFacultySrv) Create(_ context.Context, input form.FacultyForm) (service.FacultySubmission, error) {
	if f.createErr != nil {
		return service.FacultySubmission{}, f.createErr
	}
	return service.FacultySubmission{Input: input, Entity: &models.Faculty{ID: 2, Name: input.Name}, Errors: form.Errors{}}, nil
}

func (f *fakeFacultySrv) Update(_ context.Context, id int64, input form.FacultyForm) (service.FacultySubmission, error) {
	return service.FacultySubmission{Input: input, Entity: &models.Faculty{ID: id, Name: input.Name}, Errors: form.Errors{}}, nil
}

func (f *fakeFacultySrv) Delete(context.Context, int64) error {
	return f.deleteErr
}

func facultyRoutes(t *testing.T, srv *fakeFacultySrv) http.Handler {
	r := newTestEngine(t)
	h := NewFacultyHandler(srv)
	r.GET("/faculties", h.List)
	r.POST("/add-faculty", h.Add)
	r.GET("/edit-faculty/:id", h.Edit)
	r.POST("/delete-faculty", h.Delete)
	return r
}

func TestFacultyHandlerDuplicateIsConflict(t *testing.T) {
	srv := &fakeFacultySrv{createErr: appErrors.Clone(appErrors.ErrConflict, "faculty already exists")}

	rec := perform(facultyRoutes(t, srv), http.MethodPost, "/add-faculty", url.Values{"name": {"Arts"}})

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "faculty already exists")
}

func TestFacultyHandlerReferencedDeleteIsConflict(t *testing.T) {
	srv := &fakeFacultySrv{deleteErr: appErrors.Clone(appErrors.ErrConflict, "faculty is still referenced by other records")}

	rec := perform(facultyRoutes(t, srv), http.MethodPost, "/delete-faculty?id=1", nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestFacultyHandlerStoreFailureHidesCause(t *testing.T) {
	srv := &fakeFacultySrv{createErr: errors.New("database is locked")}

	rec := perform(facultyRoutes(t, srv), http.MethodPost, "/add-faculty", url.Values{"name": {"Arts"}})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "database is locked")
}

func TestFacultyHandlerErrorAsJSON(t *testing.T) {
	r := facultyRoutes(t, &fakeFacultySrv{})
	req, _ := http.NewRequest(http.MethodGet, "/edit-faculty/9", nil)
	req.Header.Set("Accept", "application/json")
	rec := performRequest(r, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"NOT_FOUND"`)
}
