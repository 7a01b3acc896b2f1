package seeder

import (
	"fmt"
	"time"

	"github.com/Lumos-Labs-HQ/salesops-seed/internal/models"
)

const DefaultRecentOrders = 300

// Plan holds the row counts for one orchestrated run. Order items and
// shipments are derived from the orders the run inserts.
type Plan struct {
	Customers int
	Products  int
	Orders    int
}

// DefaultPlan returns the stock demo counts.
func DefaultPlan() Plan {
	return Plan{Customers: 80, Products: 40, Orders: 250}
}

func (p Plan) Validate() error {
	counts := map[string]int{"customers": p.Customers, "products": p.Products, "orders": p.Orders}
	for _, table := range []string{"customers", "products", "orders"} {
		if counts[table] < 0 {
			return fmt.Errorf("%w: %s=%d", ErrNegativeCount, table, counts[table])
		}
	}
	return nil
}

type Summary struct {
	RunID    string
	Order    []string
	Inserted map[string]int
	Elapsed  time.Duration
}

// Total returns the number of rows written across all tables.
func (s *Summary) Total() int {
	total := 0
	for _, n := range s.Inserted {
		total += n
	}
	return total
}

type TableInfo struct {
	Name         string
	Dependencies []string
}

// runState threads the rows inserted by earlier steps into later ones.
type runState struct {
	plan        Plan
	customerIDs []int64
	products    []models.Product
	orders      []models.Order
}
