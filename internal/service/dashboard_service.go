package service

import (
	"context"
	"net/http"

	"github.com/noah-isme/school-records/internal/models"
	appErrors "github.com/noah-isme/school-records/pkg/errors"
)

type studentLister interface {
	List(ctx context.Context) ([]models.StudentDetail, error)
}

type courseLister interface {
	List(ctx context.Context) ([]models.CourseDetail, error)
}

type storePinger interface {
	Ping(ctx context.Context) error
}

// DashboardServiceParams groups constructor dependencies.
type DashboardServiceParams struct {
	Faculties   facultyLister
	Students    studentLister
	Instructors instructorLister
	Courses     courseLister
	Store       storePinger
}

// DashboardService composes the aggregate landing view.
type DashboardService struct {
	faculties   facultyLister
	students    studentLister
	instructors instructorLister
	courses     courseLister
	store       storePinger
}

// NewDashboardService constructs the dashboard service.
func NewDashboardService(params DashboardServiceParams) *DashboardService {
	return &DashboardService{
		faculties:   params.Faculties,
		students:    params.Students,
		instructors: params.Instructors,
		courses:     params.Courses,
		store:       params.Store,
	}
}

// Overview returns every row of every entity together with the counts.
func (s *DashboardService) Overview(ctx context.Context) (*models.Overview, error) {
	faculties, err := s.faculties.List(ctx)
	if err != nil {
		return nil, internal(err, "failed to list faculties")
	}
	students, err := s.students.List(ctx)
	if err != nil {
		return nil, internal(err, "failed to list students")
	}
	instructors, err := s.instructors.List(ctx)
	if err != nil {
		return nil, internal(err, "failed to list instructors")
	}
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, internal(err, "failed to list courses")
	}
	return &models.Overview{
		Counts: models.EntityCounts{
			Faculties:   len(faculties),
			Students:    len(students),
			Instructors: len(instructors),
			Courses:     len(courses),
		},
		Faculties:   faculties,
		Students:    students,
		Instructors: instructors,
		Courses:     courses,
	}, nil
}

// Ready reports whether the store answers.
func (s *DashboardService) Ready(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	if err := s.store.Ping(ctx); err != nil {
		return appErrors.Wrap(err, "NOT_READY", http.StatusServiceUnavailable, "store unavailable")
	}
	return nil
}

func internal(err error, message string) error {
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, message)
}
