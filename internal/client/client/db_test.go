package client

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/liftlog/internal/client/repositories/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDatabase_CreatesSessionTable(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "session.db")

	db, err := InitDatabase(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='session'`).Scan(&n))
	assert.Equal(t, 1, n)

	s, err := session.NewSQLiteRepository(db).Load(ctx)
	require.NoError(t, err)
	assert.False(t, s.Active())
}

func TestInitDatabase_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.db")

	db, err := InitDatabase(ctx, path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = InitDatabase(ctx, path)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}
