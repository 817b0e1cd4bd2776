// Package refreshtokens stores the refresh tokens handed out at login.
// Tokens are single use: the service deletes a token when it is exchanged.
package refreshtokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/liftlog/internal/server/models"
)

type Repository interface {
	// Create stores t. ID is ignored.
	Create(ctx context.Context, t *models.RefreshToken) error

	// Find returns common.ErrorNotFound for unknown tokens.
	Find(ctx context.Context, token string) (*models.RefreshToken, error)

	// Delete reports whether a row was removed. Unknown or already
	// removed tokens yield false and no error.
	Delete(ctx context.Context, token string) (bool, error)

	// DeleteExpired removes userID's tokens that expired at or before now
	// and returns how many were removed.
	DeleteExpired(ctx context.Context, userID int64, now time.Time) (int64, error)
}
