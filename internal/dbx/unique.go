package dbx

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const pgUniqueViolation = "23505"

const sqliteUniquePrefix = "UNIQUE constraint failed: "

// UniqueViolation reports whether err is a unique-constraint violation raised
// by PostgreSQL (pgx) or SQLite (modernc). The returned string identifies the
// violated constraint: the constraint name for PostgreSQL, the
// "table.column[, table.column]" list for SQLite.
func UniqueViolation(err error) (string, bool) {
	if err == nil {
		return "", false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgUniqueViolation {
			return pgErr.ConstraintName, true
		}
		return "", false
	}

	var sqErr *sqlite.Error
	if errors.As(err, &sqErr) {
		code := sqErr.Code()
		if code != sqlite3.SQLITE_CONSTRAINT_UNIQUE && code != sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY &&
			code != sqlite3.SQLITE_CONSTRAINT {
			return "", false
		}
		msg := sqErr.Error()
		idx := strings.Index(msg, sqliteUniquePrefix)
		if idx < 0 {
			return "", false
		}
		rest := msg[idx+len(sqliteUniquePrefix):]
		if end := strings.Index(rest, " ("); end >= 0 {
			rest = rest[:end]
		}
		return strings.TrimSpace(rest), true
	}

	return "", false
}

// ViolationMentions reports whether the constraint identifier returned by
// UniqueViolation refers to any of the given names. Matching is by substring
// so both "users_email_key" and "users.email" match "email".
func ViolationMentions(constraint string, names ...string) bool {
	for _, n := range names {
		if strings.Contains(constraint, n) {
			return true
		}
	}
	return false
}
