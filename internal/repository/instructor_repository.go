package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/school-records/internal/models"
)

// InstructorRepository manages persistence for instructors.
type InstructorRepository struct {
	db *sqlx.DB
}

// NewInstructorRepository constructs an InstructorRepository.
func NewInstructorRepository(db *sqlx.DB) *InstructorRepository {
	return &InstructorRepository{db: db}
}

// List returns all instructors with their faculty name.
func (r *InstructorRepository) List(ctx context.Context) ([]models.InstructorDetail, error) {
	const query = `SELECT i.id, i.name, i.date_of_birth, i.email, i.gender, i.faculty_id, i.salary, i.start_date, f.name AS faculty_name
        FROM instructors i LEFT JOIN faculties f ON f.id = i.faculty_id`
	var instructors []models.InstructorDetail
	if err := r.db.SelectContext(ctx, &instructors, query); err != nil {
		return nil, fmt.Errorf("list instructors: %w", err)
	}
	return instructors, nil
}

// FindByID fetches an instructor by ID. It returns sql.ErrNoRows when absent.
func (r *InstructorRepository) FindByID(ctx context.Context, id int64) (*models.Instructor, error) {
	const query = `SELECT id, name, date_of_birth, email, gender, faculty_id, salary, start_date FROM instructors WHERE id = ?`
	var instructor models.Instructor
	if err := r.db.GetContext(ctx, &instructor, query, id); err != nil {
		return nil, err
	}
	return &instructor, nil
}

// Create inserts an instructor and sets its assigned ID.
func (r *InstructorRepository) Create(ctx context.Context, instructor *models.Instructor) error {
	const query = `INSERT INTO instructors (name, date_of_birth, email, gender, faculty_id, salary, start_date)
        VALUES (:name, :date_of_birth, :email, :gender, :faculty_id, :salary, :start_date)`
	res, err := r.db.NamedExecContext(ctx, query, instructor)
	if err != nil {
		return fmt.Errorf("create instructor: %w", translateError(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("create instructor id: %w", err)
	}
	instructor.ID = id
	return nil
}

// Update modifies an existing instructor.
func (r *InstructorRepository) Update(ctx context.Context, instructor *models.Instructor) error {
	const query = `UPDATE instructors SET name = :name, date_of_birth = :date_of_birth, email = :email, gender = :gender, faculty_id = :faculty_id, salary = :salary, start_date = :start_date WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, instructor); err != nil {
		return fmt.Errorf("update instructor: %w", translateError(err))
	}
	return nil
}

// Delete removes an instructor. Courses still taught by the instructor
// make the store reject the delete.
func (r *InstructorRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "instructors", id)
}
