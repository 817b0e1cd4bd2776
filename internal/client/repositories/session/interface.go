// Package session persists the logged-in user's name and tokens in the
// client's local SQLite database.
package session

import (
	"context"

	"github.com/dmitrijs2005/liftlog/internal/client/models"
)

type Repository interface {
	// Load returns the stored session, or an empty one when nobody is
	// logged in.
	Load(ctx context.Context) (*models.Session, error)
	// Save replaces the stored session.
	Save(ctx context.Context, s *models.Session) error
	// Clear forgets the stored session.
	Clear(ctx context.Context) error
}
