package database

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
)

// Adapter opens a provider's connection and describes the SQL dialect the
// store must speak to it.
type Adapter interface {
	Name() string
	Open(ctx context.Context, url string) (*sql.DB, error)
	Placeholder() squirrel.PlaceholderFormat
	// SupportsReturning reports whether inserted ids come back through a
	// RETURNING clause instead of LastInsertId.
	SupportsReturning() bool
}
