package client

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/liftlog/internal/client/migrations"
	"github.com/dmitrijs2005/liftlog/internal/dbx"
)

// InitDatabase opens (creating if needed) the local session database at
// path and brings its schema up to date.
func InitDatabase(ctx context.Context, path string) (*sql.DB, error) {
	db, _, err := dbx.Open(ctx, "sqlite://"+path, 0)
	if err != nil {
		return nil, err
	}

	if err := migrations.Up(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}
