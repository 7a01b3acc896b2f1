package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Lumos-Labs-HQ/salesops-seed/internal/models"
	"github.com/Masterminds/squirrel"
)

// Tx writes rows within a transaction opened by Store.InTx.
type Tx struct {
	tx        *sql.Tx
	qb        squirrel.StatementBuilderType
	returning bool
}

func (t *Tx) InsertCustomer(ctx context.Context, c models.Customer) (int64, error) {
	q := t.qb.Insert("customers").
		Columns("customer_name", "city", "state", "segment").
		Values(c.Name, c.City, c.State, string(c.Segment))

	id, err := t.insert(ctx, q, "customer_id")
	if err != nil {
		return 0, fmt.Errorf("insert customer: %w", err)
	}
	return id, nil
}

func (t *Tx) InsertProduct(ctx context.Context, p models.Product) (int64, error) {
	q := t.qb.Insert("products").
		Columns("product_name", "category", "price").
		Values(p.Name, p.Category, p.Price)

	id, err := t.insert(ctx, q, "product_id")
	if err != nil {
		return 0, fmt.Errorf("insert product: %w", err)
	}
	return id, nil
}

func (t *Tx) InsertOrder(ctx context.Context, o models.Order) (int64, error) {
	q := t.qb.Insert("orders").
		Columns("order_date", "customer_id", "order_status", "sales_rep").
		Values(o.Date, o.CustomerID, string(o.Status), o.SalesRep)

	id, err := t.insert(ctx, q, "order_id")
	if err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}
	return id, nil
}

func (t *Tx) InsertOrderItem(ctx context.Context, it models.OrderItem) error {
	q := t.qb.Insert("order_items").
		Columns("order_id", "product_id", "quantity", "unit_price").
		Values(it.OrderID, it.ProductID, it.Quantity, it.UnitPrice)

	if _, err := t.insert(ctx, q, ""); err != nil {
		return fmt.Errorf("insert order item for order %d: %w", it.OrderID, err)
	}
	return nil
}

func (t *Tx) InsertShipment(ctx context.Context, s models.Shipment) error {
	q := t.qb.Insert("shipments").
		Columns("order_id", "ship_date", "delivery_date", "status").
		Values(s.OrderID, s.ShipDate, s.DeliveryDate, string(s.Status))

	if _, err := t.insert(ctx, q, ""); err != nil {
		return fmt.Errorf("insert shipment for order %d: %w", s.OrderID, err)
	}
	return nil
}

// insert executes q and returns the generated value of pkColumn. An empty
// pkColumn means the caller does not need the id.
func (t *Tx) insert(ctx context.Context, q squirrel.InsertBuilder, pkColumn string) (int64, error) {
	if t.returning && pkColumn != "" {
		query, args, err := q.Suffix("RETURNING " + pkColumn).ToSql()
		if err != nil {
			return 0, err
		}

		var id int64
		if err := t.tx.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
			return 0, err
		}
		return id, nil
	}

	query, args, err := q.ToSql()
	if err != nil {
		return 0, err
	}

	result, err := t.tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	if pkColumn == "" {
		return 0, nil
	}
	return result.LastInsertId()
}
