package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/noah-isme/school-records/internal/models"
)

type facultySeeder interface {
	CreateMany(ctx context.Context, faculties []*models.Faculty) error
}

type entityCounter interface {
	Counts(ctx context.Context) (*models.EntityCounts, error)
}

type studentCreator interface {
	Create(ctx context.Context, student *models.Student) error
}

type instructorCreator interface {
	Create(ctx context.Context, instructor *models.Instructor) error
}

// SeedServiceParams groups constructor dependencies.
type SeedServiceParams struct {
	Counter     entityCounter
	Faculties   facultySeeder
	Students    studentCreator
	Instructors instructorCreator
	Logger      *zap.Logger
}

// SeedService loads default records into an empty store.
type SeedService struct {
	counter     entityCounter
	faculties   facultySeeder
	students    studentCreator
	instructors instructorCreator
	logger      *zap.Logger
}

// NewSeedService constructs the seed service.
func NewSeedService(params SeedServiceParams) *SeedService {
	if params.Logger == nil {
		params.Logger = zap.NewNop()
	}
	return &SeedService{
		counter:     params.Counter,
		faculties:   params.Faculties,
		students:    params.Students,
		instructors: params.Instructors,
		logger:      params.Logger,
	}
}

// DefaultFacultyNames are inserted together by Seed.
var DefaultFacultyNames = []string{"Computer Science", "Engineering"}

// Seed inserts the default faculties in one transaction and then a sample
// student and instructor. It does nothing when any faculty already exists
// and reports whether it seeded.
func (s *SeedService) Seed(ctx context.Context) (bool, error) {
	counts, err := s.counter.Counts(ctx)
	if err != nil {
		return false, fmt.Errorf("seed: %w", err)
	}
	if counts.Faculties > 0 {
		s.logger.Debug("seed skipped, faculties present", zap.Int("faculties", counts.Faculties))
		return false, nil
	}

	faculties := make([]*models.Faculty, 0, len(DefaultFacultyNames))
	for _, name := range DefaultFacultyNames {
		faculties = append(faculties, &models.Faculty{Name: name})
	}
	if err := s.faculties.CreateMany(ctx, faculties); err != nil {
		return false, fmt.Errorf("seed faculties: %w", err)
	}
	home := faculties[0].ID

	student := &models.Student{
		Person: models.Person{Name: "Alex", DateOfBirth: "10/12/2002", Email: "alex@gmail.com", Gender: models.GenderFemale, FacultyID: &home},
		GPA:    9.5,
	}
	if err := s.students.Create(ctx, student); err != nil {
		return false, fmt.Errorf("seed student: %w", err)
	}

	instructor := &models.Instructor{
		Person:    models.Person{Name: "Cairo", DateOfBirth: "10/10/2001", Email: "cairo@gmail.com", Gender: models.GenderMale, FacultyID: &home},
		Salary:    5000000,
		StartDate: "10/10/2024",
	}
	if err := s.instructors.Create(ctx, instructor); err != nil {
		return false, fmt.Errorf("seed instructor: %w", err)
	}

	s.logger.Info("seeded default records", zap.Int("faculties", len(faculties)))
	return true, nil
}
