package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/liftlog/internal/common"
	"github.com/dmitrijs2005/liftlog/internal/dbx"
	"github.com/dmitrijs2005/liftlog/internal/server/models"
)

// SQLiteRepository stores timestamps as unix seconds.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query :=
		`INSERT INTO users (username, email, hashed_password, hash_scheme)
		 VALUES (?, ?, ?, ?)
		 RETURNING id, created_at`

	var created int64
	err := r.db.QueryRowContext(ctx, query,
		user.UserName, user.Email, user.PasswordHash, user.HashScheme).Scan(&user.ID, &created)
	if err != nil {
		return nil, mapCreateError(err)
	}
	user.CreatedAt = time.Unix(created, 0).UTC()

	return user, nil
}

func (r *SQLiteRepository) GetUserByLogin(ctx context.Context, userName string) (*models.User, error) {
	query :=
		`SELECT id, username, email, hashed_password, hash_scheme, created_at FROM users
		 WHERE username = ?`

	user := &models.User{}
	var created int64
	err := r.db.QueryRowContext(ctx, query, userName).
		Scan(&user.ID, &user.UserName, &user.Email, &user.PasswordHash, &user.HashScheme, &created)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	user.CreatedAt = time.Unix(created, 0).UTC()

	return user, nil
}

func (r *SQLiteRepository) UpdatePasswordHash(ctx context.Context, userID int64, hash string, scheme string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET hashed_password = ?, hash_scheme = ? WHERE id = ?`, hash, scheme, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}

	return nil
}
