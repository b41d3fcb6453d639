package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/school-records/internal/form"
	"github.com/noah-isme/school-records/internal/models"
	appErrors "github.com/noah-isme/school-records/pkg/errors"
)

type instructorRepository interface {
	List(ctx context.Context) ([]models.InstructorDetail, error)
	FindByID(ctx context.Context, id int64) (*models.Instructor, error)
	Create(ctx context.Context, instructor *models.Instructor) error
	Update(ctx context.Context, instructor *models.Instructor) error
	Delete(ctx context.Context, id int64) error
}

// InstructorSubmission is the result of posting an instructor form.
type InstructorSubmission = Submission[form.InstructorForm, models.Instructor]

// InstructorService handles instructor use-cases.
type InstructorService struct {
	repo      instructorRepository
	faculties facultyLister
	validator *form.Validator
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewInstructorService constructs the instructor service.
func NewInstructorService(repo instructorRepository, faculties facultyLister, validate *form.Validator, metrics *MetricsService, logger *zap.Logger) *InstructorService {
	if validate == nil {
		validate = form.NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InstructorService{repo: repo, faculties: faculties, validator: validate, metrics: metrics, logger: logger}
}

// List returns every instructor.
func (s *InstructorService) List(ctx context.Context) ([]models.InstructorDetail, error) {
	instructors, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list instructors")
	}
	return instructors, nil
}

// Get returns one instructor or a not found error.
func (s *InstructorService) Get(ctx context.Context, id int64) (*models.Instructor, error) {
	instructor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "instructor")
	}
	return instructor, nil
}

// Choices returns the options for the instructor form's select fields.
func (s *InstructorService) Choices(ctx context.Context) (form.Choices, error) {
	faculties, err := s.faculties.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load faculties")
	}
	return form.Choices{"faculty_id": facultyChoices(faculties)}, nil
}

// Create validates the form and inserts a new instructor.
func (s *InstructorService) Create(ctx context.Context, input form.InstructorForm) (sub InstructorSubmission, err error) {
	defer func() { s.metrics.observe("instructor", "create", err, sub.Errors.Valid()) }()

	choices, err := s.Choices(ctx)
	if err != nil {
		return sub, err
	}
	if errs := s.validator.Validate(&input, choices); !errs.Valid() {
		return rejected[form.InstructorForm, models.Instructor](input, errs), nil
	}
	instructor := &models.Instructor{}
	if err := input.Apply(instructor); err != nil {
		return rejected[form.InstructorForm, models.Instructor](input, form.Errors{"form": err.Error()}), nil
	}
	if err := s.repo.Create(ctx, instructor); err != nil {
		return sub, writeError(err, "instructor", "create")
	}
	s.logger.Info("instructor created", zap.Int64("instructor_id", instructor.ID))
	return accepted(input, instructor), nil
}

// Update validates the form and overwrites the instructor identified by id.
func (s *InstructorService) Update(ctx context.Context, id int64, input form.InstructorForm) (sub InstructorSubmission, err error) {
	defer func() { s.metrics.observe("instructor", "update", err, sub.Errors.Valid()) }()

	instructor, err := s.Get(ctx, id)
	if err != nil {
		return sub, err
	}
	choices, err := s.Choices(ctx)
	if err != nil {
		return sub, err
	}
	if errs := s.validator.Validate(&input, choices); !errs.Valid() {
		return rejected[form.InstructorForm, models.Instructor](input, errs), nil
	}
	if err := input.Apply(instructor); err != nil {
		return rejected[form.InstructorForm, models.Instructor](input, form.Errors{"form": err.Error()}), nil
	}
	instructor.ID = id
	if err := s.repo.Update(ctx, instructor); err != nil {
		return sub, writeError(err, "instructor", "update")
	}
	s.logger.Info("instructor updated", zap.Int64("instructor_id", id))
	return accepted(input, instructor), nil
}

// Delete removes an instructor or reports that it does not exist.
func (s *InstructorService) Delete(ctx context.Context, id int64) (err error) {
	defer func() { s.metrics.observe("instructor", "delete", err, true) }()

	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return writeError(err, "instructor", "delete")
	}
	s.logger.Info("instructor deleted", zap.Int64("instructor_id", id))
	return nil
}
