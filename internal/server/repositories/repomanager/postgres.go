package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/liftlog/internal/dbx"
	"github.com/dmitrijs2005/liftlog/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/liftlog/internal/server/repositories/users"
	"github.com/dmitrijs2005/liftlog/internal/server/repositories/videos"
	"github.com/dmitrijs2005/liftlog/internal/server/repositories/workouts"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

func (m *PostgresRepositoryManager) Dialect() dbx.Dialect { return dbx.Postgres }

// Users returns a users.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

// RefreshTokens returns a refreshtokens.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) RefreshTokens(db dbx.DBTX) refreshtokens.Repository {
	return refreshtokens.NewPostgresRepository(db)
}

// Workouts returns a workouts.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Workouts(db dbx.DBTX) workouts.Repository {
	return workouts.NewPostgresRepository(db)
}

// Videos returns a videos.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Videos(db dbx.DBTX) videos.Repository {
	return videos.NewPostgresRepository(db)
}

// RunMigrations applies the embedded PostgreSQL migrations.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return runMigrations(ctx, db, dbx.Postgres)
}
