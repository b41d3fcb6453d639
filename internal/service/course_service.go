package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/school-records/internal/form"
	"github.com/noah-isme/school-records/internal/models"
	appErrors "github.com/noah-isme/school-records/pkg/errors"
)

type courseRepository interface {
	List(ctx context.Context) ([]models.CourseDetail, error)
	FindByID(ctx context.Context, id int64) (*models.Course, error)
	Create(ctx context.Context, course *models.Course) error
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
}

type instructorLister interface {
	List(ctx context.Context) ([]models.InstructorDetail, error)
}

// CourseSubmission is the result of posting a course form.
type CourseSubmission = Submission[form.CourseForm, models.Course]

// CourseService handles course use-cases.
type CourseService struct {
	repo        courseRepository
	faculties   facultyLister
	instructors instructorLister
	validator   *form.Validator
	metrics     *MetricsService
	logger      *zap.Logger
}

// CourseServiceParams groups constructor dependencies.
type CourseServiceParams struct {
	Repo        courseRepository
	Faculties   facultyLister
	Instructors instructorLister
	Validator   *form.Validator
	Metrics     *MetricsService
	Logger      *zap.Logger
}

// NewCourseService constructs the course service.
func NewCourseService(params CourseServiceParams) *CourseService {
	if params.Validator == nil {
		params.Validator = form.NewValidator()
	}
	if params.Logger == nil {
		params.Logger = zap.NewNop()
	}
	return &CourseService{
		repo:        params.Repo,
		faculties:   params.Faculties,
		instructors: params.Instructors,
		validator:   params.Validator,
		metrics:     params.Metrics,
		logger:      params.Logger,
	}
}

// List returns every course.
func (s *CourseService) List(ctx context.Context) ([]models.CourseDetail, error) {
	courses, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list courses")
	}
	return courses, nil
}

// Get returns one course or a not found error.
func (s *CourseService) Get(ctx context.Context, id int64) (*models.Course, error) {
	course, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "course")
	}
	return course, nil
}

// Choices returns faculty and instructor options for the course form.
func (s *CourseService) Choices(ctx context.Context) (form.Choices, error) {
	faculties, err := s.faculties.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load faculties")
	}
	instructors, err := s.instructors.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load instructors")
	}
	return form.Choices{
		"faculty_id":    facultyChoices(faculties),
		"instructor_id": instructorChoices(instructors),
	}, nil
}

// Create validates the form and inserts a new course.
func (s *CourseService) Create(ctx context.Context, input form.CourseForm) (sub CourseSubmission, err error) {
	defer func() { s.metrics.observe("course", "create", err, sub.Errors.Valid()) }()

	choices, err := s.Choices(ctx)
	if err != nil {
		return sub, err
	}
	if errs := s.validator.Validate(&input, choices); !errs.Valid() {
		return rejected[form.CourseForm, models.Course](input, errs), nil
	}
	course := &models.Course{}
	if err := input.Apply(course); err != nil {
		return rejected[form.CourseForm, models.Course](input, form.Errors{"form": err.Error()}), nil
	}
	if err := s.repo.Create(ctx, course); err != nil {
		return sub, writeError(err, "course", "create")
	}
	s.logger.Info("course created", zap.Int64("course_id", course.ID))
	return accepted(input, course), nil
}

// Update validates the form and overwrites the course identified by id.
func (s *CourseService) Update(ctx context.Context, id int64, input form.CourseForm) (sub CourseSubmission, err error) {
	defer func() { s.metrics.observe("course", "update", err, sub.Errors.Valid()) }()

	course, err := s.Get(ctx, id)
	if err != nil {
		return sub, err
	}
	choices, err := s.Choices(ctx)
	if err != nil {
		return sub, err
	}
	if errs := s.validator.Validate(&input, choices); !errs.Valid() {
		return rejected[form.CourseForm, models.Course](input, errs), nil
	}
	if err := input.Apply(course); err != nil {
		return rejected[form.CourseForm, models.Course](input, form.Errors{"form": err.Error()}), nil
	}
	course.ID = id
	if err := s.repo.Update(ctx, course); err != nil {
		return sub, writeError(err, "course", "update")
	}
	s.logger.Info("course updated", zap.Int64("course_id", id))
	return accepted(input, course), nil
}

// Delete removes a course or reports that it does not exist.
func (s *CourseService) Delete(ctx context.Context, id int64) (err error) {
	defer func() { s.metrics.observe("course", "delete", err, true) }()

	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return writeError(err, "course", "delete")
	}
	s.logger.Info("course deleted", zap.Int64("course_id", id))
	return nil
}
