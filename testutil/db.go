// Package testutil provides shared helpers for integration tests.
//
// NewStore always works: it opens a throwaway SQLite file under t.TempDir().
// Postgres helpers skip automatically when TEST_DATABASE_URL is not set, so
// unit tests can run without a running database server.
package testutil

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkordes/travel-tracker/internal/store"
)

// NewStore opens a migrated SQLite store backed by a file in a per-test temp
// directory. The store is closed automatically when the test finishes.
func NewStore(t *testing.T) *store.Store {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "travel.db")
	s, err := store.Open(context.Background(), store.DialectSQLite, dsn)
	if err != nil {
		t.Fatalf("testutil.NewStore: %v", err)
	}

	t.Cleanup(func() { _ = s.Close() })
	return s
}

// NewPostgresStore opens a migrated store against TEST_DATABASE_URL.
// The test is skipped automatically if TEST_DATABASE_URL is not set.
func NewPostgresStore(t *testing.T) *store.Store {
	t.Helper()

	dsn := requireDSN(t)

	s, err := store.Open(context.Background(), store.DialectPostgres, dsn)
	if err != nil {
		t.Fatalf("testutil.NewPostgresStore: %v", err)
	}

	t.Cleanup(func() { _ = s.Close() })
	return s
}

// NewTx begins a transaction on s that is rolled back when the test finishes,
// giving free per-test isolation on a shared database.
func NewTx(t *testing.T, s *store.Store) *sql.Tx {
	t.Helper()

	tx, err := s.DB().BeginTx(context.Background(), nil)
	if err != nil {
		t.Fatalf("testutil.NewTx: begin: %v", err)
	}

	t.Cleanup(func() {
		// Rollback discards all changes made during the test: no cleanup SQL needed.
		_ = tx.Rollback()
	})
	return tx
}

// requireDSN returns the TEST_DATABASE_URL environment variable value,
// skipping the test if it is not set.
func requireDSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping integration test")
	}
	return dsn
}
