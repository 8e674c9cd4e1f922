// Package store owns the process-wide database handle: opening the driver,
// applying the embedded schema, and handing repos a dialect-aware SQL builder.
//
// It is constructed once in main and passed to the repos explicitly; there is
// no package-level handle.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // registers "sqlite" driver for database/sql

	"github.com/pkordes/travel-tracker/migrations"
)

// Dialects understood by Open.
const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"
)

// Querier is the minimal interface satisfied by *sql.DB, *sql.Conn, and *sql.Tx.
// Repos accept it instead of *sql.DB so integration tests can pass a
// transaction that is rolled back after each test.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store is an open, migrated database.
type Store struct {
	db      *sql.DB
	dialect string
	sql     sq.StatementBuilderType
}

// Open connects to the database named by dsn, verifies connectivity, and
// applies all pending migrations. It is safe to call on every start: goose
// tracks applied versions and the DDL itself is CREATE ... IF NOT EXISTS.
func Open(ctx context.Context, driver, dsn string) (*Store, error) {
	dialect, err := NormalizeDialect(driver)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("store.Open: dsn is empty")
	}

	db, err := sql.Open(driverName(dialect), dsn)
	if err != nil {
		return nil, fmt.Errorf("store.Open: open: %w", err)
	}

	if dialect == DialectSQLite {
		// One writer at a time; also keeps ":memory:" databases on a single connection.
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store.Open: ping: %w", err)
	}

	s := New(db, dialect)
	if err := s.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// New wraps an already-open *sql.DB. It does not migrate.
func New(db *sql.DB, dialect string) *Store {
	return &Store{db: db, dialect: dialect, sql: Builder(dialect)}
}

// Builder returns a squirrel statement builder using the placeholder style of dialect.
func Builder(dialect string) sq.StatementBuilderType {
	var placeholder sq.PlaceholderFormat = sq.Question
	if dialect == DialectPostgres {
		placeholder = sq.Dollar
	}
	return sq.StatementBuilder.PlaceholderFormat(placeholder)
}

// Migrate applies every embedded migration that has not been applied yet.
func (s *Store) Migrate(ctx context.Context) error {
	fsys, err := migrations.ForDialect(s.dialect)
	if err != nil {
		return fmt.Errorf("store.Migrate: %w", err)
	}

	provider, err := goose.NewProvider(gooseDialect(s.dialect), s.db, fsys)
	if err != nil {
		return fmt.Errorf("store.Migrate: create goose provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("store.Migrate: up: %w", err)
	}
	return nil
}

// DB returns the underlying connection pool.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Dialect returns "sqlite" or "postgres".
func (s *Store) Dialect() string {
	return s.dialect
}

// Builder returns the statement builder matching the store's dialect.
func (s *Store) Builder() sq.StatementBuilderType {
	return s.sql
}

// Ping verifies the database is still reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the connection pool. It is safe to call on a nil Store.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// NormalizeDialect maps driver aliases onto a supported dialect.
func NormalizeDialect(driver string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "", "sqlite", "sqlite3":
		return DialectSQLite, nil
	case "postgres", "postgresql", "pgx":
		return DialectPostgres, nil
	default:
		return "", fmt.Errorf("store: unsupported driver %q", driver)
	}
}

func driverName(dialect string) string {
	if dialect == DialectPostgres {
		return "pgx"
	}
	return "sqlite"
}

func gooseDialect(dialect string) goose.Dialect {
	if dialect == DialectPostgres {
		return goose.DialectPostgres
	}
	return goose.DialectSQLite3
}
