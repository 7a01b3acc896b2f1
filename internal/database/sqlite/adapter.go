package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"
)

type Adapter struct{}

func New() *Adapter {
	return &Adapter{}
}

func (s *Adapter) Name() string {
	return "sqlite"
}

func (s *Adapter) Placeholder() squirrel.PlaceholderFormat {
	return squirrel.Question
}

func (s *Adapter) SupportsReturning() bool {
	return false
}

// Open opens the database file named by url. Foreign keys are enforced and
// the pool is held to one connection, which also keeps ":memory:" databases
// shared across calls.
func (s *Adapter) Open(ctx context.Context, url string) (*sql.DB, error) {
	path := strings.TrimPrefix(url, "sqlite://")

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite connection: %w", err)
	}
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("exec %q: %w", p, err)
		}
	}

	return db, nil
}
