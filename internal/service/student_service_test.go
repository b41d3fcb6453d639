package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/school-records/internal/form"
	"github.com/noah-isme/school-records/internal/models"
	appErrors "github.com/noah-isme/school-records/pkg/errors"
)

func newStudentService(repo *mockStudentRepo, metrics *MetricsService) *StudentService {
	faculties := newMockFacultyRepo(models.Faculty{ID: 1, Name: "Arts"})
	return NewStudentService(repo, faculties, form.NewValidator(), metrics, zap.NewNop())
}

func studentInput() form.StudentForm {
	return form.StudentForm{
		PersonForm: form.PersonForm{Name: "Alex", Email: "alex@example.com", DateOfBirth: "10/12/2002", Gender: "F", FacultyID: "1"},
		GPA:        "3.67",
	}
}

func TestStudentServiceCreate(t *testing.T) {
	repo := newMockStudentRepo()
	metrics := NewMetricsService()
	svc := newStudentService(repo, metrics)

	sub, err := svc.Create(context.Background(), studentInput())
	require.NoError(t, err)
	require.True(t, sub.OK())
	assert.Equal(t, int64(1), sub.Entity.ID)
	assert.Equal(t, 3.67, sub.Entity.GPA)
	require.NotNil(t, sub.Entity.FacultyID)
	assert.Equal(t, int64(1), *sub.Entity.FacultyID)
	assert.Equal(t, 1, repo.created)
	assert.Equal(t, float64(1), metrics.MutationCount("student", "create", "ok"))
}

func TestStudentServiceCreateMissingFieldDoesNotInsert(t *testing.T) {
	repo := newMockStudentRepo()
	metrics := NewMetricsService()
	svc := newStudentService(repo, metrics)

	input := studentInput()
	input.Email = ""
	sub, err := svc.Create(context.Background(), input)
	require.NoError(t, err)
	assert.False(t, sub.OK())
	assert.Contains(t, sub.Errors, "email")
	assert.Nil(t, sub.Entity)
	assert.Equal(t, "Alex", sub.Input.Name)
	assert.Zero(t, repo.created)
	assert.Equal(t, float64(1), metrics.MutationCount("student", "create", "invalid"))
}

func TestStudentServiceCreateUnknownFaculty(t *testing.T) {
	repo := newMockStudentRepo()
	svc := newStudentService(repo, nil)

	input := studentInput()
	input.FacultyID = "7"
	sub, err := svc.Create(context.Background(), input)
	require.NoError(t, err)
	assert.Contains(t, sub.Errors, "faculty_id")
	assert.Zero(t, repo.created)
}

func TestStudentServiceUpdate(t *testing.T) {
	repo := newMockStudentRepo(models.Student{
		Person: models.Person{ID: 5, Name: "Old", Email: "old@example.com", DateOfBirth: "01/01/2000", Gender: "M"},
		GPA:    2.5,
	})
	svc := newStudentService(repo, nil)

	existing, err := svc.Get(context.Background(), 5)
	require.NoError(t, err)
	input := form.NewStudentForm(existing)
	input.Name = "New"

	sub, err := svc.Update(context.Background(), 5, input)
	require.NoError(t, err)
	require.True(t, sub.OK())
	assert.Equal(t, "New", repo.students[5].Name)
	assert.Equal(t, "old@example.com", repo.students[5].Email)
	assert.Equal(t, 2.5, repo.students[5].GPA)
	assert.Len(t, repo.students, 1)
}

func TestStudentServiceUpdateNotFound(t *testing.T) {
	repo := newMockStudentRepo()
	svc := newStudentService(repo, nil)

	_, err := svc.Update(context.Background(), 9, studentInput())
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrNotFound.Code))
	assert.Zero(t, repo.updated)
}

func TestStudentServiceUpdateInvalidKeepsRow(t *testing.T) {
	repo := newMockStudentRepo(models.Student{
		Person: models.Person{ID: 5, Name: "Old", Email: "old@example.com", DateOfBirth: "01/01/2000", Gender: "M"},
		GPA:    2.5,
	})
	svc := newStudentService(repo, nil)

	input := studentInput()
	input.Gender = "X"
	sub, err := svc.Update(context.Background(), 5, input)
	require.NoError(t, err)
	assert.Contains(t, sub.Errors, "gender")
	assert.Zero(t, repo.updated)
	assert.Equal(t, "Old", repo.students[5].Name)
}

func TestStudentServiceDeleteTwice(t *testing.T) {
	repo := newMockStudentRepo(models.Student{Person: models.Person{ID: 3, Name: "Alex"}})
	svc := newStudentService(repo, nil)

	require.NoError(t, svc.Delete(context.Background(), 3))
	err := svc.Delete(context.Background(), 3)
	require.Error(t, err)
	assert.Equal(t, 404, appErrors.FromError(err).Status)
	assert.Equal(t, []int64{3}, repo.deleted)
}
