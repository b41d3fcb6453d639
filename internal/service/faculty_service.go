package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/school-records/internal/form"
	"github.com/noah-isme/school-records/internal/models"
	appErrors "github.com/noah-isme/school-records/pkg/errors"
)

type facultyRepository interface {
	List(ctx context.Context) ([]models.Faculty, error)
	FindByID(ctx context.Context, id int64) (*models.Faculty, error)
	Create(ctx context.Context, faculty *models.Faculty) error
	Update(ctx context.Context, faculty *models.Faculty) error
	Delete(ctx context.Context, id int64) error
}

// FacultySubmission is the result of posting a faculty form.
type FacultySubmission = Submission[form.FacultyForm, models.Faculty]

// FacultyService handles faculty use-cases. Name uniqueness is left to the
// store; a duplicate surfaces as a conflict error.
type FacultyService struct {
	repo      facultyRepository
	validator *form.Validator
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewFacultyService constructs the faculty service.
func NewFacultyService(repo facultyRepository, validate *form.Validator, metrics *MetricsService, logger *zap.Logger) *FacultyService {
	if validate == nil {
		validate = form.NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FacultyService{repo: repo, validator: validate, metrics: metrics, logger: logger}
}

// List returns every faculty.
func (s *FacultyService) List(ctx context.Context) ([]models.Faculty, error) {
	faculties, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list faculties")
	}
	return faculties, nil
}

// Get returns one faculty or a not found error.
func (s *FacultyService) Get(ctx context.Context, id int64) (*models.Faculty, error) {
	faculty, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "faculty")
	}
	return faculty, nil
}

// Create validates the form and inserts a new faculty.
func (s *FacultyService) Create(ctx context.Context, input form.FacultyForm) (sub FacultySubmission, err error) {
	defer func() { s.metrics.observe("faculty", "create", err, sub.Errors.Valid()) }()

	if errs := s.validator.Validate(&input, nil); !errs.Valid() {
		return rejected[form.FacultyForm, models.Faculty](input, errs), nil
	}
	faculty := &models.Faculty{}
	_ = input.Apply(faculty)
	if err := s.repo.Create(ctx, faculty); err != nil {
		return sub, writeError(err, "faculty", "create")
	}
	s.logger.Info("faculty created", zap.Int64("faculty_id", faculty.ID), zap.String("name", faculty.Name))
	return accepted(input, faculty), nil
}

// Update validates the form and renames the faculty identified by id.
func (s *FacultyService) Update(ctx context.Context, id int64, input form.FacultyForm) (sub FacultySubmission, err error) {
	defer func() { s.metrics.observe("faculty", "update", err, sub.Errors.Valid()) }()

	faculty, err := s.Get(ctx, id)
	if err != nil {
		return sub, err
	}
	if errs := s.validator.Validate(&input, nil); !errs.Valid() {
		return rejected[form.FacultyForm, models.Faculty](input, errs), nil
	}
	_ = input.Apply(faculty)
	faculty.ID = id
	if err := s.repo.Update(ctx, faculty); err != nil {
		return sub, writeError(err, "faculty", "update")
	}
	s.logger.Info("faculty updated", zap.Int64("faculty_id", id))
	return accepted(input, faculty), nil
}

// Delete removes a faculty. Students, instructors or courses that still
// reference it make the store reject the delete.
func (s *FacultyService) Delete(ctx context.Context, id int64) (err error) {
	defer func() { s.metrics.observe("faculty", "delete", err, true) }()

	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return writeError(err, "faculty", "delete")
	}
	s.logger.Info("faculty deleted", zap.Int64("faculty_id", id))
	return nil
}
