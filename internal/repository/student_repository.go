package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/school-records/internal/models"
)

// StudentRepository manages persistence for student records.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// List returns all students with their faculty name.
func (r *StudentRepository) List(ctx context.Context) ([]models.StudentDetail, error) {
	const query = `SELECT s.id, s.name, s.date_of_birth, s.email, s.gender, s.faculty_id, s.gpa, f.name AS faculty_name
        FROM students s LEFT JOIN faculties f ON f.id = s.faculty_id`
	var students []models.StudentDetail
	if err := r.db.SelectContext(ctx, &students, query); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

// FindByID fetches a student by ID. It returns sql.ErrNoRows when absent.
func (r *StudentRepository) FindByID(ctx context.Context, id int64) (*models.Student, error) {
	const query = `SELECT id, name, date_of_birth, email, gender, faculty_id, gpa FROM students WHERE id = ?`
	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, id); err != nil {
		return nil, err
	}
	return &student, nil
}

// Create inserts a new student record and sets its assigned ID.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	const query = `INSERT INTO students (name, date_of_birth, email, gender, faculty_id, gpa)
        VALUES (:name, :date_of_birth, :email, :gender, :faculty_id, :gpa)`
	res, err := r.db.NamedExecContext(ctx, query, student)
	if err != nil {
		return fmt.Errorf("create student: %w", translateError(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("create student id: %w", err)
	}
	student.ID = id
	return nil
}

// Update modifies an existing student.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	const query = `UPDATE students SET name = :name, date_of_birth = :date_of_birth, email = :email, gender = :gender, faculty_id = :faculty_id, gpa = :gpa WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, student); err != nil {
		return fmt.Errorf("update student: %w", translateError(err))
	}
	return nil
}

// Delete removes a student.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "students", id)
}
