// Package migrations embeds the SQL migration files so they can be used
// by the goose programmatic API in tests and server bootstrap.
//
// SQLite and Postgres disagree on auto-increment syntax, so each dialect has
// its own directory. Version numbers and table shapes are kept in lockstep.
package migrations

import (
	"embed"
	"fmt"
	"io/fs"
)

// FS holds all *.sql migration files embedded at compile time.
//
//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS

// ForDialect returns the migration directory for dialect ("sqlite" or "postgres")
// rooted so that goose can read it directly.
func ForDialect(dialect string) (fs.FS, error) {
	switch dialect {
	case "sqlite", "postgres":
		return fs.Sub(FS, dialect)
	default:
		return nil, fmt.Errorf("migrations: unsupported dialect %q", dialect)
	}
}
