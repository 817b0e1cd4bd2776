// Package dbx holds the database plumbing shared by the LiftLog
// repositories: DSN parsing and pool setup, one-transaction-per-operation
// execution and driver-neutral detection of unique-constraint violations.
package dbx

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// DBTX is what a repository needs from a handle. *sql.DB and *sql.Tx both
// satisfy it, so a repository built on a transaction is the usual case.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// TxFunc is the body of a unit of work.
type TxFunc func(ctx context.Context, tx DBTX) error

// WithTx runs fn inside a single transaction borrowed from the pool.
//
// The transaction is committed when fn returns nil and rolled back when fn
// returns an error or panics; a panic is re-raised after the rollback. An
// error from fn is returned as is, so callers can keep matching sentinel
// errors with errors.Is. A failed rollback is joined to it.
//
//	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
//		return repos.Workouts(tx).Delete(ctx, userID, id)
//	})
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn TxFunc) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			err = errors.Join(err, fmt.Errorf("rollback tx: %w", rbErr))
		}
	}()

	if err = fn(ctx, tx); err != nil {
		return err
	}

	committed = true
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
