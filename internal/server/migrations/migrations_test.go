package migrations

import (
	"context"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/liftlog/internal/dbx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_SameFilesForEveryDialect(t *testing.T) {
	names := func(d dbx.Dialect) []string {
		fsys, _, err := FS(d)
		require.NoError(t, err)
		m, err := fs.Glob(fsys, "*.sql")
		require.NoError(t, err)
		return m
	}

	pg := names(dbx.Postgres)
	assert.NotEmpty(t, pg)
	assert.Equal(t, pg, names(dbx.SQLite))
}

func TestFS_UnknownDialect(t *testing.T) {
	_, _, err := FS("oracle")
	require.Error(t, err)
}

func TestUp_SQLite(t *testing.T) {
	ctx := context.Background()
	db, dialect, err := dbx.Open(ctx, "sqlite://"+filepath.Join(t.TempDir(), "m.db"), 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	n, err := Up(ctx, db, dialect)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	for _, table := range []string{"users", "workouts", "refresh_tokens", "videos", "daily_videos"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, table)
	}

	n, err = Up(ctx, db, dialect)
	require.NoError(t, err)
	assert.Zero(t, n, "second run is a no-op")
}
