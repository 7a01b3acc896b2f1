package seeder

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Lumos-Labs-HQ/salesops-seed/internal/database"
	"github.com/Lumos-Labs-HQ/salesops-seed/internal/generator"
	"github.com/Lumos-Labs-HQ/salesops-seed/internal/models"
	"github.com/fatih/color"
	"github.com/google/uuid"
)

var (
	ErrNoCustomers   = errors.New("no customers to reference, seed customers first")
	ErrNoProducts    = errors.New("no products to reference, seed products first")
	ErrNegativeCount = errors.New("row count must not be negative")
)

// Store is the part of database.Store the seeder needs.
type Store interface {
	InTx(ctx context.Context, fn func(tx *database.Tx) error) error
	CustomerIDs(ctx context.Context) ([]int64, error)
	Products(ctx context.Context) ([]models.Product, error)
	RecentOrders(ctx context.Context, limit uint64) ([]models.Order, error)
}

type Seeder struct {
	store Store
	gen   *generator.Generator
}

func New(store Store, gen *generator.Generator) *Seeder {
	if gen == nil {
		gen = generator.New()
	}
	return &Seeder{store: store, gen: gen}
}

// InsertCustomers writes n customers in one transaction.
func (s *Seeder) InsertCustomers(ctx context.Context, n int) ([]models.Customer, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}
	color.Cyan("  📝 Seeding customers (%d records)...", n)

	customers := make([]models.Customer, 0, n)
	err := s.store.InTx(ctx, func(tx *database.Tx) error {
		for i := 0; i < n; i++ {
			c := s.gen.Customer()
			id, err := tx.InsertCustomer(ctx, c)
			if err != nil {
				return err
			}
			c.ID = id
			customers = append(customers, c)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to seed customers: %w", err)
	}

	color.Green("  ✅ customers seeded successfully")
	return customers, nil
}

// InsertProducts writes n catalog products in one transaction.
func (s *Seeder) InsertProducts(ctx context.Context, n int) ([]models.Product, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}
	color.Cyan("  📝 Seeding products (%d records)...", n)

	products := make([]models.Product, 0, n)
	err := s.store.InTx(ctx, func(tx *database.Tx) error {
		for i := 0; i < n; i++ {
			p := s.gen.Product()
			id, err := tx.InsertProduct(ctx, p)
			if err != nil {
				return err
			}
			p.ID = id
			products = append(products, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to seed products: %w", err)
	}

	color.Green("  ✅ products seeded successfully")
	return products, nil
}

// InsertOrders writes n orders, each referencing one of customerIDs. It fails
// with ErrNoCustomers before writing anything when customerIDs is empty.
func (s *Seeder) InsertOrders(ctx context.Context, n int, customerIDs []int64) ([]models.Order, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}
	if n == 0 {
		return nil, nil
	}
	if len(customerIDs) == 0 {
		return nil, ErrNoCustomers
	}
	color.Cyan("  📝 Seeding orders (%d records)...", n)

	orders := make([]models.Order, 0, n)
	err := s.store.InTx(ctx, func(tx *database.Tx) error {
		for i := 0; i < n; i++ {
			o := s.gen.Order(customerIDs)
			id, err := tx.InsertOrder(ctx, o)
			if err != nil {
				return err
			}
			o.ID = id
			orders = append(orders, o)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to seed orders: %w", err)
	}

	color.Green("  ✅ orders seeded successfully")
	return orders, nil
}

// InsertOrderItems writes one to four lines per order, priced from products.
func (s *Seeder) InsertOrderItems(ctx context.Context, orders []models.Order, products []models.Product) ([]models.OrderItem, error) {
	if len(orders) == 0 {
		color.Yellow("  ⚠️  No orders to add items to")
		return nil, nil
	}
	if len(products) == 0 {
		return nil, ErrNoProducts
	}
	color.Cyan("  📝 Seeding order_items (%d orders)...", len(orders))

	var items []models.OrderItem
	err := s.store.InTx(ctx, func(tx *database.Tx) error {
		for _, o := range orders {
			for _, it := range s.gen.OrderItems(o, products) {
				if err := tx.InsertOrderItem(ctx, it); err != nil {
					return err
				}
				items = append(items, it)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to seed order items: %w", err)
	}

	color.Green("  ✅ order_items seeded successfully (%d records)", len(items))
	return items, nil
}

// InsertShipments writes one shipment per order.
func (s *Seeder) InsertShipments(ctx context.Context, orders []models.Order) ([]models.Shipment, error) {
	if len(orders) == 0 {
		color.Yellow("  ⚠️  No orders to ship")
		return nil, nil
	}
	color.Cyan("  📝 Seeding shipments (%d records)...", len(orders))

	shipments := make([]models.Shipment, 0, len(orders))
	err := s.store.InTx(ctx, func(tx *database.Tx) error {
		for _, o := range orders {
			sh := s.gen.Shipment(o)
			if err := tx.InsertShipment(ctx, sh); err != nil {
				return err
			}
			shipments = append(shipments, sh)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to seed shipments: %w", err)
	}

	color.Green("  ✅ shipments seeded successfully")
	return shipments, nil
}

func (s *Seeder) LoadCustomerIDs(ctx context.Context) ([]int64, error) {
	ids, err := s.store.CustomerIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load customers: %w", err)
	}
	return ids, nil
}

func (s *Seeder) LoadProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.store.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	return products, nil
}

// LoadRecentOrders returns the limit newest orders; limit <= 0 means
// DefaultRecentOrders.
func (s *Seeder) LoadRecentOrders(ctx context.Context, limit int) ([]models.Order, error) {
	if limit <= 0 {
		limit = DefaultRecentOrders
	}
	orders, err := s.store.RecentOrders(ctx, uint64(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to load recent orders: %w", err)
	}
	return orders, nil
}

type step struct {
	table     string
	dependsOn []string
	run       func(ctx context.Context, st *runState) (int, error)
}

func (s *Seeder) steps() []step {
	return []step{
		{
			table: "customers",
			run: func(ctx context.Context, st *runState) (int, error) {
				customers, err := s.InsertCustomers(ctx, st.plan.Customers)
				for _, c := range customers {
					st.customerIDs = append(st.customerIDs, c.ID)
				}
				return len(customers), err
			},
		},
		{
			table: "products",
			run: func(ctx context.Context, st *runState) (int, error) {
				products, err := s.InsertProducts(ctx, st.plan.Products)
				st.products = products
				return len(products), err
			},
		},
		{
			table:     "orders",
			dependsOn: []string{"customers"},
			run: func(ctx context.Context, st *runState) (int, error) {
				ids := st.customerIDs
				if len(ids) == 0 && st.plan.Orders > 0 {
					var err error
					if ids, err = s.LoadCustomerIDs(ctx); err != nil {
						return 0, err
					}
				}
				orders, err := s.InsertOrders(ctx, st.plan.Orders, ids)
				st.orders = orders
				return len(orders), err
			},
		},
		{
			table:     "order_items",
			dependsOn: []string{"orders", "products"},
			run: func(ctx context.Context, st *runState) (int, error) {
				products := st.products
				if len(products) == 0 && len(st.orders) > 0 {
					var err error
					if products, err = s.LoadProducts(ctx); err != nil {
						return 0, err
					}
				}
				items, err := s.InsertOrderItems(ctx, st.orders, products)
				return len(items), err
			},
		},
		{
			table:     "shipments",
			dependsOn: []string{"orders"},
			run: func(ctx context.Context, st *runState) (int, error) {
				shipments, err := s.InsertShipments(ctx, st.orders)
				return len(shipments), err
			},
		},
	}
}

// Run executes every step in dependency order, handing the rows inserted by
// each step to the steps that reference them. Each step commits on its own;
// a failing step stops the run and earlier steps stay committed.
func (s *Seeder) Run(ctx context.Context, plan Plan) (*Summary, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	started := time.Now()
	summary := &Summary{
		RunID:    uuid.NewString(),
		Inserted: make(map[string]int),
	}

	steps := s.steps()
	byTable := make(map[string]step, len(steps))
	graph := NewDependencyGraph()
	for _, st := range steps {
		byTable[st.table] = st
		graph.AddTable(&TableInfo{Name: st.table, Dependencies: st.dependsOn})
	}

	order, err := graph.BuildInsertionOrder()
	if err != nil {
		return nil, fmt.Errorf("failed to build insertion order: %w", err)
	}
	summary.Order = order

	color.Cyan("🌱 Starting database seeding (run %s)...", summary.RunID)
	color.Cyan("📋 Insertion order: %s", strings.Join(order, " → "))
	fmt.Fprintln(color.Output)

	state := &runState{plan: plan}
	for _, table := range order {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		n, err := byTable[table].run(ctx, state)
		summary.Inserted[table] = n
		if err != nil {
			summary.Elapsed = time.Since(started)
			return summary, fmt.Errorf("failed to seed table %s: %w", table, err)
		}
	}

	summary.Elapsed = time.Since(started)
	color.Green("\n✅ Database seeding completed successfully! %d rows inserted in %s",
		summary.Total(), summary.Elapsed.Round(time.Millisecond))
	return summary, nil
}
