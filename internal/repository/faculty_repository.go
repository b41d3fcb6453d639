package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/school-records/internal/models"
)

// FacultyRepository manages persistence for faculties.
type FacultyRepository struct {
	db *sqlx.DB
}

// NewFacultyRepository constructs a FacultyRepository.
func NewFacultyRepository(db *sqlx.DB) *FacultyRepository {
	return &FacultyRepository{db: db}
}

// List returns every faculty in store order.
func (r *FacultyRepository) List(ctx context.Context) ([]models.Faculty, error) {
	const query = `SELECT id, name FROM faculties`
	var faculties []models.Faculty
	if err := r.db.SelectContext(ctx, &faculties, query); err != nil {
		return nil, fmt.Errorf("list faculties: %w", err)
	}
	return faculties, nil
}

// FindByID fetches a faculty. It returns sql.ErrNoRows when absent.
func (r *FacultyRepository) FindByID(ctx context.Context, id int64) (*models.Faculty, error) {
	const query = `SELECT id, name FROM faculties WHERE id = ?`
	var faculty models.Faculty
	if err := r.db.GetContext(ctx, &faculty, query, id); err != nil {
		return nil, err
	}
	return &faculty, nil
}

// Create inserts a faculty and sets its assigned ID.
func (r *FacultyRepository) Create(ctx context.Context, faculty *models.Faculty) error {
	return r.create(ctx, r.db, faculty)
}

// CreateMany inserts all faculties in a single transaction; either every
// row becomes visible or none does.
func (r *FacultyRepository) CreateMany(ctx context.Context, faculties []*models.Faculty) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin faculty transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, faculty := range faculties {
		if err = r.create(ctx, tx, faculty); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit faculties: %w", err)
	}
	return nil
}

func (r *FacultyRepository) create(ctx context.Context, exec sqlx.ExtContext, faculty *models.Faculty) error {
	const query = `INSERT INTO faculties (name) VALUES (:name)`
	res, err := sqlx.NamedExecContext(ctx, exec, query, faculty)
	if err != nil {
		return fmt.Errorf("create faculty: %w", translateError(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("create faculty id: %w", err)
	}
	faculty.ID = id
	return nil
}

// Update overwrites the stored faculty name.
func (r *FacultyRepository) Update(ctx context.Context, faculty *models.Faculty) error {
	const query = `UPDATE faculties SET name = :name WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, faculty); err != nil {
		return fmt.Errorf("update faculty: %w", translateError(err))
	}
	return nil
}

// Delete removes a faculty. Dependent rows are not cascaded; the store's
// foreign key check rejects the delete while references remain.
func (r *FacultyRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "faculties", id)
}

// deleteByID removes one row from table and reports sql.ErrNoRows when
// nothing matched.
func deleteByID(ctx context.Context, db *sqlx.DB, table string, id int64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = ?", table)
	res, err := db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", table, translateError(err))
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %s rows: %w", table, err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
