package testhelpers

import (
	"context"
	"database/sql"
	"testing"

	"github.com/Lumos-Labs-HQ/salesops-seed/internal/database"
	"github.com/Lumos-Labs-HQ/salesops-seed/internal/database/common"
	"github.com/Lumos-Labs-HQ/salesops-seed/internal/database/sqlite"
)

// Schema mirrors db/schema/mysql.sql in SQLite syntax.
const Schema = `
CREATE TABLE customers (
	customer_id   INTEGER PRIMARY KEY AUTOINCREMENT,
	customer_name TEXT NOT NULL,
	city          TEXT NOT NULL,
	state         TEXT NOT NULL,
	segment       TEXT NOT NULL
);

CREATE TABLE products (
	product_id   INTEGER PRIMARY KEY AUTOINCREMENT,
	product_name TEXT NOT NULL,
	category     TEXT NOT NULL,
	price        INTEGER NOT NULL
);

CREATE TABLE orders (
	order_id     INTEGER PRIMARY KEY AUTOINCREMENT,
	order_date   DATE NOT NULL,
	customer_id  INTEGER NOT NULL REFERENCES customers(customer_id),
	order_status TEXT NOT NULL,
	sales_rep    TEXT NOT NULL
);

CREATE TABLE order_items (
	order_item_id INTEGER PRIMARY KEY AUTOINCREMENT,
	order_id      INTEGER NOT NULL REFERENCES orders(order_id),
	product_id    INTEGER NOT NULL REFERENCES products(product_id),
	quantity      INTEGER NOT NULL,
	unit_price    INTEGER NOT NULL
);

CREATE TABLE shipments (
	shipment_id   INTEGER PRIMARY KEY AUTOINCREMENT,
	order_id      INTEGER NOT NULL REFERENCES orders(order_id),
	ship_date     DATE NOT NULL,
	delivery_date DATE NOT NULL,
	status        TEXT NOT NULL
);
`

// NewStore returns a store over an in-memory SQLite database holding the
// seeded schema, plus the raw handle for assertions. Both are closed when the
// test completes.
func NewStore(t *testing.T) (*database.Store, *sql.DB) {
	t.Helper()

	db := NewDB(t)
	for _, stmt := range common.ParseSQLStatements(Schema) {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("apply schema: %v", err)
		}
	}

	store, err := database.New(db, database.ProviderSQLite)
	if err != nil {
		t.Fatalf("wrap test database: %v", err)
	}
	return store, db
}

// NewDB returns an empty in-memory SQLite database with foreign keys on.
func NewDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sqlite.New().Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}
