package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/school-records/internal/form"
	"github.com/noah-isme/school-records/internal/models"
	appErrors "github.com/noah-isme/school-records/pkg/errors"
)

type studentRepository interface {
	List(ctx context.Context) ([]models.StudentDetail, error)
	FindByID(ctx context.Context, id int64) (*models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
}

type facultyLister interface {
	List(ctx context.Context) ([]models.Faculty, error)
}

// StudentSubmission is the result of posting a student form.
type StudentSubmission = Submission[form.StudentForm, models.Student]

// StudentService handles student use-cases.
type StudentService struct {
	repo      studentRepository
	faculties facultyLister
	validator *form.Validator
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(repo studentRepository, faculties facultyLister, validate *form.Validator, metrics *MetricsService, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = form.NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, faculties: faculties, validator: validate, metrics: metrics, logger: logger}
}

// List returns every student.
func (s *StudentService) List(ctx context.Context) ([]models.StudentDetail, error) {
	students, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}
	return students, nil
}

// Get returns one student or a not found error.
func (s *StudentService) Get(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "student")
	}
	return student, nil
}

// Choices returns the options for the student form's select fields.
func (s *StudentService) Choices(ctx context.Context) (form.Choices, error) {
	faculties, err := s.faculties.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load faculties")
	}
	return form.Choices{"faculty_id": facultyChoices(faculties)}, nil
}

// Create validates the form and inserts a new student.
func (s *StudentService) Create(ctx context.Context, input form.StudentForm) (sub StudentSubmission, err error) {
	defer func() { s.metrics.observe("student", "create", err, sub.Errors.Valid()) }()

	choices, err := s.Choices(ctx)
	if err != nil {
		return sub, err
	}
	if errs := s.validator.Validate(&input, choices); !errs.Valid() {
		return rejected[form.StudentForm, models.Student](input, errs), nil
	}
	student := &models.Student{}
	if err := input.Apply(student); err != nil {
		return rejected[form.StudentForm, models.Student](input, form.Errors{"form": err.Error()}), nil
	}
	if err := s.repo.Create(ctx, student); err != nil {
		return sub, writeError(err, "student", "create")
	}
	s.logger.Info("student created", zap.Int64("student_id", student.ID))
	return accepted(input, student), nil
}

// Update validates the form and overwrites the student identified by id.
// The id never comes from the form.
func (s *StudentService) Update(ctx context.Context, id int64, input form.StudentForm) (sub StudentSubmission, err error) {
	defer func() { s.metrics.observe("student", "update", err, sub.Errors.Valid()) }()

	student, err := s.Get(ctx, id)
	if err != nil {
		return sub, err
	}
	choices, err := s.Choices(ctx)
	if err != nil {
		return sub, err
	}
	if errs := s.validator.Validate(&input, choices); !errs.Valid() {
		return rejected[form.StudentForm, models.Student](input, errs), nil
	}
	if err := input.Apply(student); err != nil {
		return rejected[form.StudentForm, models.Student](input, form.Errors{"form": err.Error()}), nil
	}
	student.ID = id
	if err := s.repo.Update(ctx, student); err != nil {
		return sub, writeError(err, "student", "update")
	}
	s.logger.Info("student updated", zap.Int64("student_id", id))
	return accepted(input, student), nil
}

// Delete removes a student or reports that it does not exist.
func (s *StudentService) Delete(ctx context.Context, id int64) (err error) {
	defer func() { s.metrics.observe("student", "delete", err, true) }()

	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return writeError(err, "student", "delete")
	}
	s.logger.Info("student deleted", zap.Int64("student_id", id))
	return nil
}
