// Package repomanager vends repository implementations for the configured
// SQL backend and runs that backend's schema migrations.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/liftlog/internal/dbx"
	"github.com/dmitrijs2005/liftlog/internal/server/migrations"
	"github.com/dmitrijs2005/liftlog/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/liftlog/internal/server/repositories/users"
	"github.com/dmitrijs2005/liftlog/internal/server/repositories/videos"
	"github.com/dmitrijs2005/liftlog/internal/server/repositories/workouts"
)

// RepositoryManager hands out repositories bound to either the pool or an
// open transaction, so services can decide the transaction boundary.
type RepositoryManager interface {
	Dialect() dbx.Dialect
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Workouts(db dbx.DBTX) workouts.Repository
	Videos(db dbx.DBTX) videos.Repository
}

// migrateUp is a seam for tests.
var migrateUp = migrations.Up

// New returns the manager for dialect.
func New(dialect dbx.Dialect) (RepositoryManager, error) {
	switch dialect {
	case dbx.Postgres:
		return &PostgresRepositoryManager{}, nil
	case dbx.SQLite:
		return &SQLiteRepositoryManager{}, nil
	default:
		return nil, fmt.Errorf("unsupported dialect %q", dialect)
	}
}

func runMigrations(ctx context.Context, db *sql.DB, dialect dbx.Dialect) error {
	if _, err := migrateUp(ctx, db, dialect); err != nil {
		return err
	}
	return nil
}
