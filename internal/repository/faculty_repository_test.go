package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-records/internal/models"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestFacultyRepositoryList(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewFacultyRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name FROM faculties")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "Arts").AddRow(2, "Engineering"))

	faculties, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, faculties, 2)
	assert.Equal(t, "Engineering", faculties[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFacultyRepositoryFindByIDMissing(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewFacultyRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name FROM faculties WHERE id = ?")).
		WithArgs(int64(9)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), 9)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFacultyRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewFacultyRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO faculties (name) VALUES (?)")).
		WithArgs("Arts").
		WillReturnResult(sqlmock.NewResult(7, 1))

	faculty := &models.Faculty{Name: "Arts"}
	require.NoError(t, repo.Create(context.Background(), faculty))
	assert.Equal(t, int64(7), faculty.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFacultyRepositoryCreateManyRollsBack(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewFacultyRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO faculties").WithArgs("Computer Science").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO faculties").WithArgs("Arts").WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	err := repo.CreateMany(context.Background(), []*models.Faculty{{Name: "Computer Science"}, {Name: "Arts"}})
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFacultyRepositoryCreateManyCommits(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewFacultyRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO faculties").WithArgs("Computer Science").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO faculties").WithArgs("Arts").WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	faculties := []*models.Faculty{{Name: "Computer Science"}, {Name: "Arts"}}
	require.NoError(t, repo.CreateMany(context.Background(), faculties))
	assert.Equal(t, int64(1), faculties[0].ID)
	assert.Equal(t, int64(2), faculties[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFacultyRepositoryDeleteMissing(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewFacultyRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM faculties WHERE id = ?")).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 3)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
