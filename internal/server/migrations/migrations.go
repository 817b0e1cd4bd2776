// Package migrations embeds the schema for every supported backend and
// applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/dmitrijs2005/liftlog/internal/dbx"
	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var Migrations embed.FS

// FS returns the migration directory for dialect.
func FS(dialect dbx.Dialect) (fs.FS, goose.Dialect, error) {
	switch dialect {
	case dbx.Postgres:
		sub, err := fs.Sub(Migrations, "postgres")
		return sub, goose.DialectPostgres, err
	case dbx.SQLite:
		sub, err := fs.Sub(Migrations, "sqlite")
		return sub, goose.DialectSQLite3, err
	default:
		return nil, "", fmt.Errorf("no migrations for dialect %q", dialect)
	}
}

// Up applies every pending migration and returns how many ran.
func Up(ctx context.Context, db *sql.DB, dialect dbx.Dialect) (int, error) {
	fsys, gd, err := FS(dialect)
	if err != nil {
		return 0, err
	}

	provider, err := goose.NewProvider(gd, db, fsys)
	if err != nil {
		return 0, fmt.Errorf("goose provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return len(results), fmt.Errorf("migrate: %w", err)
	}
	return len(results), nil
}
