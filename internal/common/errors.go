// Package common defines shared constants and sentinel errors used across
// client and server layers of LiftLog. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Validation errors. ErrValidation wraps field-level details.
	ErrValidation       = errors.New("validation error")
	ErrPasswordTooShort = errors.New("password too short")

	// Uniqueness rejections.
	ErrUsernameTaken  = errors.New("username already registered")
	ErrEmailTaken     = errors.New("email already registered")
	ErrExerciseExists = errors.New("exercise already exists")
	ErrVideoExists    = errors.New("video already exists")

	// Credential storage errors.
	ErrUnknownHashScheme = errors.New("unknown password hash scheme")

	// Upstream dependency errors.
	ErrVideoUnavailable = errors.New("could not retrieve video info")
	ErrExportDisabled   = errors.New("export storage is not configured")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)
