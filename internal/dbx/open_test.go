package dbx

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDSN(t *testing.T) {
	tests := []struct {
		name    string
		dsn     string
		dialect Dialect
		driver  string
		wantDSN string
		wantErr bool
	}{
		{name: "postgres", dsn: "postgres://u:p@h:5432/db?sslmode=disable", dialect: Postgres, driver: "pgx",
			wantDSN: "postgres://u:p@h:5432/db?sslmode=disable"},
		{name: "postgresql alias", dsn: "postgresql://h/db", dialect: Postgres, driver: "pgx", wantDSN: "postgresql://h/db"},
		{name: "sqlite file", dsn: "sqlite://data/liftlog.db", dialect: SQLite, driver: "sqlite",
			wantDSN: "file:data/liftlog.db?" + sqlitePragmas},
		{name: "sqlite memory", dsn: "sqlite://:memory:", dialect: SQLite, driver: "sqlite",
			wantDSN: "file::memory:?" + sqlitePragmas},
		{name: "sqlite without path", dsn: "sqlite://", wantErr: true},
		{name: "unknown scheme", dsn: "mysql://x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dialect, driver, dsn, err := ParseDSN(tt.dsn)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.dialect, dialect)
			assert.Equal(t, tt.driver, driver)
			assert.Equal(t, tt.wantDSN, dsn)
		})
	}
}

func TestOpen_SQLiteCreatesDirectoryAndEnforcesForeignKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	db, dialect, err := Open(context.Background(), "sqlite://"+path, 5)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	assert.Equal(t, SQLite, dialect)
	assert.Equal(t, 1, db.Stats().MaxOpenConnections)

	var fk int
	require.NoError(t, db.QueryRow(`PRAGMA foreign_keys`).Scan(&fk))
	assert.Equal(t, 1, fk)

	_, err = db.Exec(`CREATE TABLE x (id INTEGER PRIMARY KEY)`)
	require.NoError(t, err)
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestOpen_UnsupportedDSN(t *testing.T) {
	_, _, err := Open(context.Background(), "redis://nope", 0)
	require.Error(t, err)
}
