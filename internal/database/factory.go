package database

import (
	"errors"
	"fmt"

	"github.com/Lumos-Labs-HQ/salesops-seed/internal/database/mysql"
	"github.com/Lumos-Labs-HQ/salesops-seed/internal/database/postgres"
	"github.com/Lumos-Labs-HQ/salesops-seed/internal/database/sqlite"
)

var ErrUnsupportedProvider = errors.New("unsupported database provider")

const (
	ProviderMySQL    = "mysql"
	ProviderPostgres = "postgresql"
	ProviderSQLite   = "sqlite"
)

// NormalizeProvider maps provider aliases onto their canonical name.
func NormalizeProvider(provider string) (string, error) {
	switch provider {
	case "mysql", "":
		return ProviderMySQL, nil
	case "postgresql", "postgres":
		return ProviderPostgres, nil
	case "sqlite", "sqlite3":
		return ProviderSQLite, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedProvider, provider)
	}
}

func NewAdapter(provider string) (Adapter, error) {
	name, err := NormalizeProvider(provider)
	if err != nil {
		return nil, err
	}

	switch name {
	case ProviderPostgres:
		return postgres.New(), nil
	case ProviderSQLite:
		return sqlite.New(), nil
	default:
		return mysql.New(), nil
	}
}
