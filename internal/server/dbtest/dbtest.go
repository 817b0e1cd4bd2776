// Package dbtest opens migrated throwaway databases for tests.
package dbtest

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/liftlog/internal/dbx"
	"github.com/dmitrijs2005/liftlog/internal/server/migrations"
	"github.com/stretchr/testify/require"
)

// NewSQLite returns a migrated SQLite database in t's temp dir. It is closed
// when the test ends.
func NewSQLite(t testing.TB) *sql.DB {
	t.Helper()

	ctx := context.Background()
	db, dialect, err := dbx.Open(ctx, "sqlite://"+filepath.Join(t.TempDir(), "liftlog.db"), 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = migrations.Up(ctx, db, dialect)
	require.NoError(t, err)

	return db
}

// SeedUser inserts a bare user row and returns its id.
func SeedUser(t testing.TB, db *sql.DB, username string) int64 {
	t.Helper()

	res, err := db.Exec(
		`INSERT INTO users (username, email, hashed_password, hash_scheme) VALUES (?, ?, 'x', 'bcrypt')`,
		username, username+"@example.com")
	require.NoError(t, err)

	id, err := res.LastInsertId()
	require.NoError(t, err)
	return id
}
