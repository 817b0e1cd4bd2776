package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/liftlog/internal/cryptox"
	"github.com/dmitrijs2005/liftlog/internal/dbx"
	"github.com/dmitrijs2005/liftlog/internal/server/config"
	"github.com/dmitrijs2005/liftlog/internal/server/dbtest"
	"github.com/dmitrijs2005/liftlog/internal/server/models"
	"github.com/dmitrijs2005/liftlog/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/liftlog/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/liftlog/internal/server/repositories/users"
	"github.com/dmitrijs2005/liftlog/internal/server/repositories/videos"
	"github.com/dmitrijs2005/liftlog/internal/server/repositories/workouts"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var errBoom = errors.New("boom")

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:                    "k",
		AccessTokenValidityDuration:  time.Hour,
		RefreshTokenValidityDuration: 2 * time.Hour,
		MinPasswordLength:            8,
	}
}

// cheap parameters keep the suite fast
func testHasher(t *testing.T, def cryptox.Scheme) *cryptox.PasswordHasher {
	t.Helper()
	h, err := cryptox.NewPasswordHasher(def)
	require.NoError(t, err)
	h.Register(cryptox.BcryptHasher{Cost: bcrypt.MinCost})
	h.Register(cryptox.Argon2idHasher{Time: 1, Memory: 8 * 1024, Threads: 1, KeyLen: 32, SaltLen: 16})
	return h
}

// newSQLiteStack returns a migrated database with its repository manager.
func newSQLiteStack(t *testing.T) (*sql.DB, repomanager.RepositoryManager) {
	t.Helper()
	db := dbtest.NewSQLite(t)
	rm, err := repomanager.New(dbx.SQLite)
	require.NoError(t, err)
	return db, rm
}

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

// --- fakes for paths a real database cannot reach ---

type fakeUsersRepo struct {
	createErr error
	getOut    *models.User
	getErr    error
	updateErr error
}

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	u.ID = 1
	return u, nil
}

func (f *fakeUsersRepo) GetUserByLogin(context.Context, string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeUsersRepo) UpdatePasswordHash(context.Context, int64, string, string) error {
	return f.updateErr
}

type fakeRefreshRepo struct {
	findOut   *models.RefreshToken
	findErr   error
	delErr    error
	delGone   bool
	createErr error
	pruneErr  error
}

func (f *fakeRefreshRepo) Create(context.Context, *models.RefreshToken) error {
	return f.createErr
}

func (f *fakeRefreshRepo) DeleteExpired(context.Context, int64, time.Time) (int64, error) {
	return 0, f.pruneErr
}

func (f *fakeRefreshRepo) Find(context.Context, string) (*models.RefreshToken, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}

func (f *fakeRefreshRepo) Delete(context.Context, string) (bool, error) {
	if f.delErr != nil {
		return false, f.delErr
	}
	return !f.delGone, nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	r *fakeRefreshRepo
	w workouts.Repository
}

func (m *fakeRepoManager) Dialect() dbx.Dialect                            { return dbx.SQLite }
func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error    { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository                 { return m.u }
func (m *fakeRepoManager) RefreshTokens(dbx.DBTX) refreshtokens.Repository { return m.r }
func (m *fakeRepoManager) Workouts(dbx.DBTX) workouts.Repository           { return m.w }
func (m *fakeRepoManager) Videos(dbx.DBTX) videos.Repository               { return nil }

func ptr[T any](v T) *T { return &v }
