package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/school-records/internal/models"
)

// CourseRepository manages persistence for courses.
type CourseRepository struct {
	db *sqlx.DB
}

// NewCourseRepository constructs a CourseRepository.
func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// List returns all courses with faculty and instructor names.
func (r *CourseRepository) List(ctx context.Context) ([]models.CourseDetail, error) {
	const query = `SELECT c.id, c.name, c.start_time, c.end_time, c.credit, c.duration, c.description, c.faculty_id, c.instructor_id,
        f.name AS faculty_name, i.name AS instructor_name
        FROM courses c
        LEFT JOIN faculties f ON f.id = c.faculty_id
        LEFT JOIN instructors i ON i.id = c.instructor_id`
	var courses []models.CourseDetail
	if err := r.db.SelectContext(ctx, &courses, query); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

// FindByID fetches a course by ID. It returns sql.ErrNoRows when absent.
func (r *CourseRepository) FindByID(ctx context.Context, id int64) (*models.Course, error) {
	const query = `SELECT id, name, start_time, end_time, credit, duration, description, faculty_id, instructor_id FROM courses WHERE id = ?`
	var course models.Course
	if err := r.db.GetContext(ctx, &course, query, id); err != nil {
		return nil, err
	}
	return &course, nil
}

// Create inserts a course and sets its assigned ID.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	const query = `INSERT INTO courses (name, start_time, end_time, credit, duration, description, faculty_id, instructor_id)
        VALUES (:name, :start_time, :end_time, :credit, :duration, :description, :faculty_id, :instructor_id)`
	res, err := r.db.NamedExecContext(ctx, query, course)
	if err != nil {
		return fmt.Errorf("create course: %w", translateError(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("create course id: %w", err)
	}
	course.ID = id
	return nil
}

// Update modifies an existing course.
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	const query = `UPDATE courses SET name = :name, start_time = :start_time, end_time = :end_time, credit = :credit, duration = :duration, description = :description, faculty_id = :faculty_id, instructor_id = :instructor_id WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, course); err != nil {
		return fmt.Errorf("update course: %w", translateError(err))
	}
	return nil
}

// Delete removes a course.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "courses", id)
}
