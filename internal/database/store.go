package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
)

var ErrUnknownTable = errors.New("unknown table")

// Tables lists the seeded tables in insertion order.
var Tables = []string{"customers", "products", "orders", "order_items", "shipments"}

// Store is the single handle the seeder writes through. It is opened once and
// must be closed by the caller.
type Store struct {
	db        *sql.DB
	provider  string
	qb        squirrel.StatementBuilderType
	returning bool
}

// Open connects to provider at url and verifies the connection.
func Open(ctx context.Context, provider, url string) (*Store, error) {
	adapter, err := NewAdapter(provider)
	if err != nil {
		return nil, err
	}

	db, err := adapter.Open(ctx, url)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return newStore(db, adapter), nil
}

// New wraps an already opened connection.
func New(db *sql.DB, provider string) (*Store, error) {
	adapter, err := NewAdapter(provider)
	if err != nil {
		return nil, err
	}
	return newStore(db, adapter), nil
}

func newStore(db *sql.DB, adapter Adapter) *Store {
	return &Store{
		db:        db,
		provider:  adapter.Name(),
		qb:        squirrel.StatementBuilder.PlaceholderFormat(adapter.Placeholder()),
		returning: adapter.SupportsReturning(),
	}
}

func (s *Store) Provider() string {
	return s.provider
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// InTx runs fn inside one transaction, committing if fn returns nil and
// rolling back otherwise.
func (s *Store) InTx(ctx context.Context, fn func(tx *Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(&Tx{tx: tx, qb: s.qb, returning: s.returning}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func isKnownTable(name string) bool {
	for _, t := range Tables {
		if t == name {
			return true
		}
	}
	return false
}
