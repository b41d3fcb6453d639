package handler

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-records/internal/form"
	"github.com/noah-isme/school-records/internal/models"
	"github.com/noah-isme/school-records/internal/service"
	appErrors "github.com/noah-isme/school-records/pkg/errors"
)

type fakeStudentSrv struct {
	students   map[int64]models.Student
	created    []form.StudentForm
	updated    []form.StudentForm
	deleted    []int64
	rejectWith form.Errors
}

func newFakeStudentSrv(students ...models.Student) *fakeStudentSrv {
	f := &fakeStudentSrv{students: map[int64]models.Student{}}
	for _, s := range students {
		f.students[s.ID] = s
	}
	return f
}

func (f *fakeStudentSrv) List(context.Context) ([]models.StudentDetail, error) {
	out := make([]models.StudentDetail, 0, len(f.students))
	for _, s := range f.students {
		out = append(out, models.StudentDetail{Student: s})
	}
	return out, nil
}

func (f *fakeStudentSrv) Get(_ context.Context, id int64) (*models.Student, error) {
	s, ok := f.students[id]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	return &s, nil
}

func (f *fakeStudentSrv) Choices(context.Context) (form.Choices, error) {
	return form.Choices{"faculty_id": {{Value: "1", Label: "Arts"}}}, nil
}

func (f *fakeStudentSrv) Create(_ context.Context, input form.StudentForm) (service.StudentSubmission, error) {
	if len(f.rejectWith) > 0 {
		return service.StudentSubmission{Input: input, Errors: f.rejectWith}, nil
	}
	f.created = append(f.created, input)
	return service.StudentSubmission{Input: input, Entity: &models.Student{}, Errors: form.Errors{}}, nil
}

func (f *fakeStudentSrv) Update(_ context.Context, id int64, input form.StudentForm) (service.StudentSubmission, error) {
	if len(f.rejectWith) > 0 {
		return service.StudentSubmission{Input: input, Errors: f.rejectWith}, nil
	}
	f.updated = append(f.updated, input)
	return service.StudentSubmission{Input: input, Entity: &models.Student{}, Errors: form.Errors{}}, nil
}

func (f *fakeStudentSrv) Delete(_ context.Context, id int64) error {
	if _, ok := f.students[id]; !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	delete(f.students, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func studentRoutes(t *testing.T, srv *fakeStudentSrv) http.Handler {
	r := newTestEngine(t)
	h := NewStudentHandler(srv)
	r.GET("/students", h.List)
	r.GET("/add-student", h.Add)
	r.POST("/add-student", h.Add)
	r.GET("/edit-student/:id", h.Edit)
	r.POST("/edit-student/:id", h.Edit)
	r.GET("/delete-student", h.Delete)
	return r
}

func TestStudentHandlerAddShowsBlankForm(t *testing.T) {
	srv := newFakeStudentSrv()
	rec := perform(studentRoutes(t, srv), http.MethodGet, "/add-student", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `action="/add-student"`)
	assert.Contains(t, rec.Body.String(), `<option value="1">Arts</option>`)
	assert.Empty(t, srv.created)
}

func TestStudentHandlerAddRedirectsToList(t *testing.T) {
	srv := newFakeStudentSrv()
	body := url.Values{"name": {"Alex"}, "email": {"a@x"}, "date_of_birth": {"2000-01-01"}, "gender": {"M"}, "gpa": {"9.5"}}

	rec := perform(studentRoutes(t, srv), http.MethodPost, "/add-student", body)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/students", rec.Header().Get("Location"))
	require.Len(t, srv.created, 1)
	assert.Equal(t, "Alex", srv.created[0].Name)
	assert.Equal(t, "9.5", srv.created[0].GPA)
}

func TestStudentHandlerAddRejectedRerendersForm(t *testing.T) {
	srv := newFakeStudentSrv()
	srv.rejectWith = form.Errors{"gpa": "GPA is a required field"}

	rec := perform(studentRoutes(t, srv), http.MethodPost, "/add-student", url.Values{"name": {"Alex"}})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "GPA is a required field")
	assert.Contains(t, rec.Body.String(), `value="Alex"`)
}

func TestStudentHandlerEditPrefillsAndKeepsAbsentFields(t *testing.T) {
	srv := newFakeStudentSrv(models.Student{
		Person: models.Person{ID: 3, Name: "Alex", Email: "a@x", DateOfBirth: "2000-01-01", Gender: models.GenderMale},
		GPA:    9.5,
	})
	r := studentRoutes(t, srv)

	rec := perform(r, http.MethodGet, "/edit-student/3", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `value="Alex"`)
	assert.Contains(t, rec.Body.String(), `value="9.5"`)

	rec = perform(r, http.MethodPost, "/edit-student/3", url.Values{"gpa": {"8.25"}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	require.Len(t, srv.updated, 1)
	assert.Equal(t, "8.25", srv.updated[0].GPA)
	assert.Equal(t, "Alex", srv.updated[0].Name)
	assert.Equal(t, "a@x", srv.updated[0].Email)
	assert.Equal(t, models.GenderMale, srv.updated[0].Gender)
}

func TestStudentHandlerEditUnknownOrMalformedID(t *testing.T) {
	r := studentRoutes(t, newFakeStudentSrv())

	for _, target := range []string{"/edit-student/99", "/edit-student/abc", "/edit-student/-1"} {
		rec := perform(r, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code, target)
	}
}

func TestStudentHandlerDelete(t *testing.T) {
	srv := newFakeStudentSrv(models.Student{Person: models.Person{ID: 4, Name: "Alex"}})
	r := studentRoutes(t, srv)

	rec := perform(r, http.MethodGet, "/delete-student?id=4", nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/students", rec.Header().Get("Location"))
	assert.Equal(t, []int64{4}, srv.deleted)

	rec = perform(r, http.MethodGet, "/delete-student?id=4", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = perform(r, http.MethodGet, "/delete-student", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStudentHandlerListRendersRows(t *testing.T) {
	srv := newFakeStudentSrv(models.Student{Person: models.Person{ID: 1, Name: "Alex"}, GPA: 9.5})

	rec := perform(studentRoutes(t, srv), http.MethodGet, "/students", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Alex")
	assert.Contains(t, rec.Body.String(), `href="/edit-student/1"`)
}
