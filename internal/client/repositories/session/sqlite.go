package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/liftlog/internal/client/models"
	"github.com/dmitrijs2005/liftlog/internal/dbx"
)

const (
	keyUsername     = "username"
	keyAccessToken  = "access_token"
	keyRefreshToken = "refresh_token"
)

// SQLiteRepository keeps the session as key/value rows of the session table.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Load(ctx context.Context) (*models.Session, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, value FROM session`)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	defer rows.Close()

	s := &models.Session{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan session row: %w", err)
		}
		switch key {
		case keyUsername:
			s.Username = value
		case keyAccessToken:
			s.AccessToken = value
		case keyRefreshToken:
			s.RefreshToken = value
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate session rows: %w", err)
	}

	return s, nil
}

func (r *SQLiteRepository) Save(ctx context.Context, s *models.Session) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM session`); err != nil {
			return fmt.Errorf("failed to reset session: %w", err)
		}
		for _, kv := range [][2]string{
			{keyUsername, s.Username},
			{keyAccessToken, s.AccessToken},
			{keyRefreshToken, s.RefreshToken},
		} {
			if kv[1] == "" {
				continue
			}
			if err := set(ctx, tx, kv[0], kv[1]); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM session`)
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func set(ctx context.Context, db dbx.DBTX, key, value string) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set session[%s]: %w", key, err)
	}
	return nil
}
