// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login, and issuing/refreshing JWTs
// plus server-stored refresh tokens.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/liftlog/internal/common"
	"github.com/dmitrijs2005/liftlog/internal/cryptox"
	"github.com/dmitrijs2005/liftlog/internal/dbx"
	"github.com/dmitrijs2005/liftlog/internal/logging"
	"github.com/dmitrijs2005/liftlog/internal/server/auth"
	"github.com/dmitrijs2005/liftlog/internal/server/config"
	"github.com/dmitrijs2005/liftlog/internal/server/models"
	"github.com/dmitrijs2005/liftlog/internal/server/repositories/repomanager"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// UserService provides authentication-related operations:
// - Register: create users
// - Authenticate / Login: verify credentials (and mint tokens)
// - RefreshToken: rotate refresh tokens and mint new access tokens
// - Logout: revoke a refresh token
type UserService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	hasher                       *cryptox.PasswordHasher
	log                          logging.Logger
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
	minPasswordLength            int
	now                          func() time.Time

	dummyOnce   sync.Once
	dummyHash   string
	dummyScheme cryptox.Scheme
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, hasher *cryptox.PasswordHasher,
	cfg *config.Config, log logging.Logger) *UserService {
	if log == nil {
		log = logging.Nop{}
	}
	return &UserService{
		db:                           db,
		repomanager:                  m,
		hasher:                       hasher,
		log:                          log,
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
		minPasswordLength:            cfg.MinPasswordLength,
		now:                          time.Now,
	}
}

// Register creates a new identity. Bad input yields common.ErrValidation or
// common.ErrPasswordTooShort; a taken username or email yields
// common.ErrUsernameTaken or common.ErrEmailTaken and writes nothing.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if err := validate.Struct(registration{Username: username, Email: email, Password: password}); err != nil {
		return nil, validationError(err)
	}
	if utf8.RuneCountInString(password) < s.minPasswordLength {
		return nil, fmt.Errorf("%w: need at least %d characters", common.ErrPasswordTooShort, s.minPasswordLength)
	}

	hash, scheme, err := s.hasher.Hash([]byte(password))
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{UserName: username, Email: email, PasswordHash: hash, HashScheme: string(scheme)}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var createErr error
		user, createErr = s.repomanager.Users(tx).Create(ctx, user)
		return createErr
	})
	if err != nil {
		if errors.Is(err, common.ErrUsernameTaken) || errors.Is(err, common.ErrEmailTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.log.Info(ctx, "user registered", "user_id", user.ID)
	return user, nil
}

// Authenticate returns the identity for username when password matches.
// Unknown users and wrong passwords both yield common.ErrorUnauthorized.
// Credentials stored under a legacy scheme are re-hashed with the default
// scheme after a successful match.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)

	var user *models.User
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var getErr error
		user, getErr = s.repomanager.Users(tx).GetUserByLogin(ctx, username)
		return getErr
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.burnVerification(password)
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	ok, err := s.hasher.Verify([]byte(password), user.PasswordHash, cryptox.Scheme(user.HashScheme))
	if err != nil {
		s.log.Error(ctx, "stored credential unusable", "user_id", user.ID, "scheme", user.HashScheme, "error", err)
		return nil, common.ErrorUnauthorized
	}
	if !ok {
		return nil, common.ErrorUnauthorized
	}

	if s.hasher.NeedsRehash(cryptox.Scheme(user.HashScheme)) {
		s.rehash(ctx, user, password)
	}

	return user, nil
}

// Login authenticates and, on success, returns a new TokenPair. The user's
// expired refresh tokens are pruned in the same transaction.
func (s *UserService) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	user, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}

	var pair *TokenPair
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		pruned, err := s.repomanager.RefreshTokens(tx).DeleteExpired(ctx, user.ID, s.now())
		if err != nil {
			return fmt.Errorf("error pruning refresh tokens: %w", err)
		}
		if pruned > 0 {
			s.log.Debug(ctx, "expired refresh tokens pruned", "user_id", user.ID, "count", pruned)
		}

		var genErr error
		pair, genErr = s.generateTokenPair(ctx, user.ID, tx)
		return genErr
	})
	if err != nil {
		return nil, err
	}
	return pair, nil
}

// RefreshToken validates a refresh token, rotates it transactionally, and
// returns a fresh TokenPair. Unknown tokens yield common.ErrInvalidToken and
// expired ones common.ErrRefreshTokenExpired.
func (s *UserService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	var pair *TokenPair
	expired := false
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.RefreshTokens(tx)

		token, err := repo.Find(ctx, refreshToken)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrInvalidToken
			}
			return fmt.Errorf("error searching refresh token: %w", err)
		}

		// a concurrent exchange of the same token already consumed it
		deleted, err := repo.Delete(ctx, refreshToken)
		if err != nil {
			return fmt.Errorf("error deleting refresh token: %w", err)
		}
		if !deleted {
			return common.ErrInvalidToken
		}

		// the expired token is still removed
		if token.Expired(s.now()) {
			expired = true
			return nil
		}

		var genErr error
		pair, genErr = s.generateTokenPair(ctx, token.UserID, tx)
		return genErr
	})
	if err != nil {
		return nil, err
	}
	if expired {
		return nil, common.ErrRefreshTokenExpired
	}
	return pair, nil
}

// Logout revokes refreshToken. Unknown tokens are ignored.
func (s *UserService) Logout(ctx context.Context, refreshToken string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.RefreshTokens(tx).Delete(ctx, refreshToken); err != nil {
			return fmt.Errorf("error deleting refresh token: %w", err)
		}
		return nil
	})
}

// --- helpers below ---

// burnVerification spends the same effort as a real check so response time
// does not reveal whether a username exists.
func (s *UserService) burnVerification(password string) {
	s.dummyOnce.Do(func() {
		hash, scheme, err := s.hasher.Hash(common.GenerateRandByteArray(16))
		if err == nil {
			s.dummyHash, s.dummyScheme = hash, scheme
		}
	})
	if s.dummyHash != "" {
		_, _ = s.hasher.Verify([]byte(password), s.dummyHash, s.dummyScheme)
	}
}

func (s *UserService) rehash(ctx context.Context, user *models.User, password string) {
	hash, scheme, err := s.hasher.Hash([]byte(password))
	if err != nil {
		s.log.Warn(ctx, "rehash failed", "user_id", user.ID, "error", err)
		return
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repomanager.Users(tx).UpdatePasswordHash(ctx, user.ID, hash, string(scheme))
	})
	if err != nil {
		s.log.Warn(ctx, "rehash not stored", "user_id", user.ID, "error", err)
		return
	}

	s.log.Info(ctx, "credential migrated", "user_id", user.ID, "from", user.HashScheme, "to", string(scheme))
	user.PasswordHash, user.HashScheme = hash, string(scheme)
}

func (s *UserService) generateAccessToken(userID int64) (string, error) {
	return auth.GenerateToken(userID, s.jwtSecret, s.accessTokenValidityDuration)
}

func (s *UserService) generateRefreshToken() (string, error) {
	return common.MakeRandHexString(32)
}

func (s *UserService) generateTokenPair(ctx context.Context, userID int64, tx dbx.DBTX) (*TokenPair, error) {
	access, err := s.generateAccessToken(userID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := s.generateRefreshToken()
	if err != nil {
		return nil, common.ErrorInternal
	}
	stored := &models.RefreshToken{
		UserID:    userID,
		Token:     refresh,
		ExpiresAt: s.now().Add(s.refreshTokenValidityDuration),
	}
	if err := s.repomanager.RefreshTokens(tx).Create(ctx, stored); err != nil {
		return nil, common.ErrorInternal
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
