package models

import "time"

// RefreshToken is a stored single-use refresh token.
type RefreshToken struct {
	ID        int64
	UserID    int64
	Token     string
	ExpiresAt time.Time
}

// Expired reports whether the token can no longer be exchanged at now.
func (t *RefreshToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
