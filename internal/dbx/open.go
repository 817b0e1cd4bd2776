package dbx

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/liftlog/internal/filex"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Dialect names the SQL backend behind a *sql.DB.
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

const sqliteScheme = "sqlite://"

// sqlitePragmas are applied to every SQLite connection.
const sqlitePragmas = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

// ParseDSN picks the backend from the DSN scheme and returns the database/sql
// driver name together with the DSN that driver expects.
//
//	postgres://... or postgresql://...  -> pgx
//	sqlite://path/to/file.db            -> modernc sqlite
//	sqlite://:memory:                   -> modernc sqlite, in memory
func ParseDSN(dsn string) (Dialect, string, string, error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return Postgres, "pgx", dsn, nil
	case strings.HasPrefix(dsn, sqliteScheme):
		path := strings.TrimPrefix(dsn, sqliteScheme)
		if path == "" {
			return "", "", "", fmt.Errorf("sqlite dsn %q has no path", dsn)
		}
		if path == ":memory:" {
			return SQLite, "sqlite", "file::memory:?" + sqlitePragmas, nil
		}
		return SQLite, "sqlite", "file:" + (&url.URL{Path: path}).EscapedPath() + "?" + sqlitePragmas, nil
	default:
		return "", "", "", fmt.Errorf("unsupported database dsn scheme: %q", dsn)
	}
}

// Open connects to the database named by dsn and verifies the connection.
// SQLite is limited to a single open connection so writers never contend
// for the file lock; maxOpen applies to PostgreSQL only (0 keeps the
// database/sql default).
func Open(ctx context.Context, dsn string, maxOpen int) (*sql.DB, Dialect, error) {
	dialect, driver, driverDSN, err := ParseDSN(dsn)
	if err != nil {
		return nil, "", err
	}

	if dialect == SQLite && !strings.HasPrefix(driverDSN, "file::memory:") {
		if _, err := filex.EnsureParentDir(strings.TrimPrefix(dsn, sqliteScheme)); err != nil {
			return nil, "", err
		}
	}

	db, err := sql.Open(driver, driverDSN)
	if err != nil {
		return nil, "", fmt.Errorf("open %s: %w", dialect, err)
	}

	switch dialect {
	case SQLite:
		db.SetMaxOpenConns(1)
	default:
		if maxOpen > 0 {
			db.SetMaxOpenConns(maxOpen)
		}
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, "", fmt.Errorf("ping %s: %w", dialect, err)
	}

	return db, dialect, nil
}
