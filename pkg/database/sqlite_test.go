package database

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-records/pkg/config"
)

func TestDSNCarriesPragmas(t *testing.T) {
	dsn := DSN("records.db", 3*time.Second)

	assert.True(t, strings.HasPrefix(dsn, "file:records.db?"))
	assert.Contains(t, dsn, "busy_timeout%283000%29")
	assert.Contains(t, dsn, "foreign_keys%281%29")
	assert.Contains(t, dsn, "_txlock=immediate")
}

func TestNewSQLiteEnablesForeignKeys(t *testing.T) {
	db, err := NewSQLite(config.DatabaseConfig{
		Path:         filepath.Join(t.TempDir(), "records.db"),
		BusyTimeout:  time.Second,
		MaxOpenConns: 2,
	})
	require.NoError(t, err)
	defer db.Close()

	var enabled int
	require.NoError(t, db.Get(&enabled, "PRAGMA foreign_keys"))
	assert.Equal(t, 1, enabled)

	var mode string
	require.NoError(t, db.Get(&mode, "PRAGMA journal_mode"))
	assert.Equal(t, "wal", mode)
}

func TestNewMemoryIsShared(t *testing.T) {
	db, err := NewMemory()
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec("CREATE TABLE t (id INTEGER)")
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO t VALUES (1)")
	require.NoError(t, err)

	var n int
	require.NoError(t, db.Get(&n, "SELECT COUNT(*) FROM t"))
	assert.Equal(t, 1, n)
}
