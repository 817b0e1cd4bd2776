// Package models defines server-side data models persisted in the database.
package models

import "time"

// User is a stored identity. PasswordHash is opaque and only meaningful
// together with HashScheme.
type User struct {
	ID           int64
	UserName     string
	Email        string
	PasswordHash string
	HashScheme   string
	CreatedAt    time.Time
}
