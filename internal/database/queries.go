package database

import (
	"context"
	"fmt"

	"github.com/Lumos-Labs-HQ/salesops-seed/internal/database/common"
	"github.com/Lumos-Labs-HQ/salesops-seed/internal/models"
)

func (s *Store) CustomerIDs(ctx context.Context) ([]int64, error) {
	query, args, err := s.qb.Select("customer_id").From("customers").OrderBy("customer_id").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan customer id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customer rows: %w", err)
	}
	return ids, nil
}

func (s *Store) Products(ctx context.Context) ([]models.Product, error) {
	query, args, err := s.qb.Select("product_id", "product_name", "category", "price").
		From("products").OrderBy("product_id").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Price); err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}
	return products, nil
}

// RecentOrders returns up to limit orders, newest order_id first.
func (s *Store) RecentOrders(ctx context.Context, limit uint64) ([]models.Order, error) {
	query, args, err := s.qb.Select("order_id", "order_date", "customer_id", "order_status", "sales_rep").
		From("orders").OrderBy("order_id DESC").Limit(limit).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var (
			o      models.Order
			date   interface{}
			status string
		)
		if err := rows.Scan(&o.ID, &date, &o.CustomerID, &status, &o.SalesRep); err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}

		o.Date, err = common.ParseDate(date)
		if err != nil {
			return nil, fmt.Errorf("order %d: %w", o.ID, err)
		}
		o.Status = models.OrderStatus(status)

		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order rows: %w", err)
	}
	return orders, nil
}

// CountRows returns the number of rows in one of the seeded tables.
func (s *Store) CountRows(ctx context.Context, table string) (int64, error) {
	if !isKnownTable(table) {
		return 0, fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}

	query, args, err := s.qb.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, err
	}

	var count int64
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return count, nil
}
