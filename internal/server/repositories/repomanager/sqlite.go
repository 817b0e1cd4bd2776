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

// SQLiteRepositoryManager vends SQLite-backed repositories.
type SQLiteRepositoryManager struct{}

func (m *SQLiteRepositoryManager) Dialect() dbx.Dialect { return dbx.SQLite }

func (m *SQLiteRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) RefreshTokens(db dbx.DBTX) refreshtokens.Repository {
	return refreshtokens.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Workouts(db dbx.DBTX) workouts.Repository {
	return workouts.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Videos(db dbx.DBTX) videos.Repository {
	return videos.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return runMigrations(ctx, db, dbx.SQLite)
}
