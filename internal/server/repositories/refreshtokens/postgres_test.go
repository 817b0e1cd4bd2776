package refreshtokens

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/liftlog/internal/common"
	"github.com/dmitrijs2005/liftlog/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

const (
	insertQ        = `^INSERT INTO refresh_tokens \(user_id, token, expires_at\) VALUES \(\$1, \$2, \$3\)$`
	findQ          = `^SELECT id, user_id, expires_at FROM refresh_tokens WHERE token = \$1$`
	deleteQ        = `^DELETE FROM refresh_tokens WHERE token = \$1$`
	deleteExpiredQ = `^DELETE FROM refresh_tokens WHERE user_id = \$1 AND expires_at <= \$2$`
)

var expiry = time.Date(2024, 3, 9, 20, 0, 0, 0, time.UTC)

func TestPostgres_Create(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(insertQ).
		WithArgs(int64(1), "tok123", expiry).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), &models.RefreshToken{UserID: 1, Token: "tok123", ExpiresAt: expiry})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_Find(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(findQ).WithArgs("tok123").
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "expires_at"}).AddRow(int64(5), int64(1), expiry))

		got, err := repo.Find(context.Background(), "tok123")
		require.NoError(t, err)
		assert.Equal(t, &models.RefreshToken{ID: 5, UserID: 1, Token: "tok123", ExpiresAt: expiry}, got)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(findQ).WithArgs("missing").WillReturnError(sql.ErrNoRows)

		_, err := repo.Find(context.Background(), "missing")
		assert.ErrorIs(t, err, common.ErrorNotFound)
	})
}

func TestPostgres_Delete(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{"removed", 1, true},
		{"already consumed", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepoWithMock(t)
			mock.ExpectExec(deleteQ).WithArgs("tok123").
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			deleted, err := repo.Delete(context.Background(), "tok123")
			require.NoError(t, err)
			assert.Equal(t, tt.want, deleted)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgres_DeleteExpired(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectExec(deleteExpiredQ).WithArgs(int64(1), expiry).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.DeleteExpired(context.Background(), 1, expiry)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestPostgres_ErrorsWrapped(t *testing.T) {
	boom := errors.New("db down")
	ctx := context.Background()

	tests := []struct {
		name string
		run  func(*PostgresRepository, sqlmock.Sqlmock) error
	}{
		{"create", func(r *PostgresRepository, m sqlmock.Sqlmock) error {
			m.ExpectExec(insertQ).WillReturnError(boom)
			return r.Create(ctx, &models.RefreshToken{UserID: 1, Token: "t", ExpiresAt: expiry})
		}},
		{"find", func(r *PostgresRepository, m sqlmock.Sqlmock) error {
			m.ExpectQuery(findQ).WillReturnError(boom)
			_, err := r.Find(ctx, "t")
			return err
		}},
		{"delete", func(r *PostgresRepository, m sqlmock.Sqlmock) error {
			m.ExpectExec(deleteQ).WillReturnError(boom)
			_, err := r.Delete(ctx, "t")
			return err
		}},
		{"delete rows affected", func(r *PostgresRepository, m sqlmock.Sqlmock) error {
			m.ExpectExec(deleteQ).WillReturnResult(sqlmock.NewErrorResult(boom))
			_, err := r.Delete(ctx, "t")
			return err
		}},
		{"delete expired", func(r *PostgresRepository, m sqlmock.Sqlmock) error {
			m.ExpectExec(deleteExpiredQ).WillReturnError(boom)
			_, err := r.DeleteExpired(ctx, 1, expiry)
			return err
		}},
		{"rows affected", func(r *PostgresRepository, m sqlmock.Sqlmock) error {
			m.ExpectExec(deleteExpiredQ).WillReturnResult(sqlmock.NewErrorResult(boom))
			_, err := r.DeleteExpired(ctx, 1, expiry)
			return err
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepoWithMock(t)
			err := tt.run(repo, mock)
			require.ErrorIs(t, err, boom)
			assert.Contains(t, err.Error(), "db error")
		})
	}
}
