package database

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, err := InitializeDatabase(logger, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	for _, table := range []string{"users", "logs", "migrations"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		assert.NoError(t, err, "table %s should exist", table)
	}

	var seeded int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&seeded))
	assert.Equal(t, 11, seeded)

	// Second run is a no-op
	applied, err := RunMigrations(db)
	require.NoError(t, err)
	assert.Equal(t, 0, applied)
}

func TestRunMigrations_OrderAndFailure(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "order.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	fsys := fstest.MapFS{
		"m/002_insert.sql": {Data: []byte(`INSERT INTO things (name) VALUES ('a');`)},
		"m/001_create.sql": {Data: []byte(`CREATE TABLE things (name TEXT NOT NULL);`)},
		"m/003_broken.sql": {Data: []byte(`INSERT INTO missing_table VALUES (1);`)},
	}

	applied, err := runMigrationsFrom(db, fsys, "m")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "003_broken.sql")
	assert.Equal(t, 2, applied)

	versions, err := getAppliedMigrations(db)
	require.NoError(t, err)
	assert.Equal(t, []string{"001_create", "002_insert"}, versions)
}

func TestLoadMigrations_Empty(t *testing.T) {
	_, err := loadMigrations(fstest.MapFS{}, "migrations")
	assert.Error(t, err)
}
