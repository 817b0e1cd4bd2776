// Package services contains application services for the LiftLog client.
// This file defines the authentication service: register, login, logout and
// restoring a saved session on start-up.
package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/liftlog/internal/client/client"
	"github.com/dmitrijs2005/liftlog/internal/client/models"
	"github.com/dmitrijs2005/liftlog/internal/client/repositories/session"
)

// AuthService defines authentication operations for the CLI.
type AuthService interface {
	Register(ctx context.Context, username, email string, password []byte) error
	Login(ctx context.Context, username string, password []byte) error
	Logout(ctx context.Context) error
	// Restore loads a saved session and returns its username, or "" when
	// nobody is logged in.
	Restore(ctx context.Context) (string, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	client client.Client
	repo   session.Repository

	mu       sync.Mutex
	username string
}

// NewAuthService binds the API client to the local session store. Tokens
// rotated by the client are written back to the store.
func NewAuthService(c client.Client, repo session.Repository) AuthService {
	a := &authService{client: c, repo: repo}
	c.OnTokensRefreshed(a.persistTokens)
	return a
}

func (a *authService) persistTokens(accessToken, refreshToken string) {
	a.mu.Lock()
	username := a.username
	a.mu.Unlock()

	// best effort; the next login repairs a lost write
	_ = a.repo.Save(context.Background(), &models.Session{
		Username:     username,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

func (a *authService) Register(ctx context.Context, username, email string, password []byte) error {
	_, err := a.client.Register(ctx, strings.TrimSpace(username), strings.TrimSpace(email), string(password))
	return err
}

// Login authenticates against the server and saves the session locally.
func (a *authService) Login(ctx context.Context, username string, password []byte) error {
	username = strings.TrimSpace(username)

	if err := a.client.Login(ctx, username, string(password)); err != nil {
		return fmt.Errorf("login error: %w", err)
	}

	accessToken, refreshToken := a.client.Tokens()
	s := &models.Session{Username: username, AccessToken: accessToken, RefreshToken: refreshToken}
	if err := a.repo.Save(ctx, s); err != nil {
		return fmt.Errorf("session saving error: %w", err)
	}

	a.mu.Lock()
	a.username = username
	a.mu.Unlock()
	return nil
}

// Logout revokes the session on the server and always forgets it locally.
func (a *authService) Logout(ctx context.Context) error {
	remoteErr := a.client.Logout(ctx)

	a.mu.Lock()
	a.username = ""
	a.mu.Unlock()

	if err := a.repo.Clear(ctx); err != nil {
		return err
	}
	return remoteErr
}

func (a *authService) Restore(ctx context.Context) (string, error) {
	s, err := a.repo.Load(ctx)
	if err != nil {
		return "", err
	}
	if !s.Active() {
		return "", nil
	}

	a.client.SetTokens(s.AccessToken, s.RefreshToken)

	a.mu.Lock()
	a.username = s.Username
	a.mu.Unlock()
	return s.Username, nil
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
