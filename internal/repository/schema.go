package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// schemaStatements creates the four record tables. Statements are
// idempotent so EnsureSchema can run on every start.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS faculties (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        name VARCHAR(250) NOT NULL UNIQUE
    )`,
	`CREATE TABLE IF NOT EXISTS students (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        name VARCHAR(250) NOT NULL,
        date_of_birth VARCHAR(100) NOT NULL,
        email VARCHAR(250) NOT NULL,
        gender VARCHAR(1) NOT NULL,
        faculty_id INTEGER REFERENCES faculties(id),
        gpa REAL NOT NULL
    )`,
	`CREATE TABLE IF NOT EXISTS instructors (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        name VARCHAR(250) NOT NULL,
        date_of_birth VARCHAR(100) NOT NULL,
        email VARCHAR(250) NOT NULL,
        gender VARCHAR(1) NOT NULL,
        faculty_id INTEGER REFERENCES faculties(id),
        salary REAL NOT NULL,
        start_date VARCHAR(100) NOT NULL
    )`,
	`CREATE TABLE IF NOT EXISTS courses (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        name VARCHAR(250) NOT NULL,
        start_time VARCHAR(100) NOT NULL,
        end_time VARCHAR(100) NOT NULL,
        credit INTEGER NOT NULL,
        duration VARCHAR(100) NOT NULL DEFAULT '',
        description TEXT NOT NULL DEFAULT '',
        faculty_id INTEGER REFERENCES faculties(id),
        instructor_id INTEGER REFERENCES instructors(id)
    )`,
}

// EnsureSchema creates any missing tables inside one transaction.
func EnsureSchema(ctx context.Context, db *sqlx.DB) (err error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, stmt := range schemaStatements {
		if _, err = tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit schema: %w", err)
	}
	return nil
}
