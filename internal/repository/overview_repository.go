package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/school-records/internal/models"
)

// OverviewRepository answers aggregate questions across all tables.
type OverviewRepository struct {
	db *sqlx.DB
}

// NewOverviewRepository constructs an OverviewRepository.
func NewOverviewRepository(db *sqlx.DB) *OverviewRepository {
	return &OverviewRepository{db: db}
}

// Counts returns the number of rows in each table.
func (r *OverviewRepository) Counts(ctx context.Context) (*models.EntityCounts, error) {
	const query = `SELECT
        (SELECT COUNT(*) FROM faculties) AS faculties,
        (SELECT COUNT(*) FROM students) AS students,
        (SELECT COUNT(*) FROM instructors) AS instructors,
        (SELECT COUNT(*) FROM courses) AS courses`
	var counts models.EntityCounts
	if err := r.db.GetContext(ctx, &counts, query); err != nil {
		return nil, fmt.Errorf("count entities: %w", err)
	}
	return &counts, nil
}

// Ping checks that the store answers queries.
func (r *OverviewRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
