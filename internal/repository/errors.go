package repository

import (
	"errors"
	"fmt"
	"strings"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	// ErrUniqueViolation is returned when a write collides with a UNIQUE constraint.
	ErrUniqueViolation = errors.New("unique constraint violated")
	// ErrForeignKeyViolation is returned when a write references a missing
	// row or removes a row that is still referenced.
	ErrForeignKeyViolation = errors.New("foreign key constraint violated")
)

// translateError maps SQLite constraint failures onto the package
// sentinels, keeping the driver error in the chain.
func translateError(err error) error {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return err
	}
	code := sqliteErr.Code()
	if code&0xff != sqlite3.SQLITE_CONSTRAINT {
		return err
	}
	switch code {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return fmt.Errorf("%w: %w", ErrUniqueViolation, err)
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		return fmt.Errorf("%w: %w", ErrForeignKeyViolation, err)
	}
	// primary result code only
	msg := sqliteErr.Error()
	switch {
	case strings.Contains(msg, "UNIQUE"):
		return fmt.Errorf("%w: %w", ErrUniqueViolation, err)
	case strings.Contains(msg, "FOREIGN KEY"):
		return fmt.Errorf("%w: %w", ErrForeignKeyViolation, err)
	}
	return err
}
