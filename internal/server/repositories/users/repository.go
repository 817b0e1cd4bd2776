// Package users declares the credential repository and its PostgreSQL and
// SQLite implementations.
package users

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/liftlog/internal/common"
	"github.com/dmitrijs2005/liftlog/internal/dbx"
	"github.com/dmitrijs2005/liftlog/internal/server/models"
)

type Repository interface {
	// Create inserts user and fills in ID and CreatedAt. A taken username or
	// email yields common.ErrUsernameTaken or common.ErrEmailTaken.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	// GetUserByLogin returns common.ErrorNotFound for an unknown username.
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
	UpdatePasswordHash(ctx context.Context, userID int64, hash string, scheme string) error
}

func mapCreateError(err error) error {
	if constraint, ok := dbx.UniqueViolation(err); ok {
		switch {
		case dbx.ViolationMentions(constraint, "email"):
			return common.ErrEmailTaken
		case dbx.ViolationMentions(constraint, "username"):
			return common.ErrUsernameTaken
		}
	}
	return fmt.Errorf("db error: %w", err)
}
