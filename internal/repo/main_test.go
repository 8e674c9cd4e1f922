package repo_test

import (
	"os"
	"testing"

	sq "github.com/Masterminds/squirrel"

	"github.com/pkordes/travel-tracker/internal/store"
	"github.com/pkordes/travel-tracker/testutil"
)

// newTestDB returns a connection and a matching statement builder for repo tests.
//
// By default each test gets its own throwaway SQLite file, so no cleanup SQL is
// needed. When TEST_DATABASE_URL is set the same tests run against Postgres
// inside a transaction that is rolled back when the test finishes.
func newTestDB(t *testing.T) (store.Querier, sq.StatementBuilderType) {
	t.Helper()

	if os.Getenv("TEST_DATABASE_URL") != "" {
		s := testutil.NewPostgresStore(t)
		return testutil.NewTx(t, s), s.Builder()
	}

	s := testutil.NewStore(t)
	return s.DB(), s.Builder()
}
