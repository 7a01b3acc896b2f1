// Package generator produces the random field values for seeded rows. It does
// no I/O; callers decide where the values go.
package generator

import (
	"math/rand"
	"time"

	"github.com/Lumos-Labs-HQ/salesops-seed/internal/catalog"
	"github.com/Lumos-Labs-HQ/salesops-seed/internal/models"
	"github.com/go-faker/faker/v4"
)

const (
	DefaultOrderWindowMonths = 6

	MinItemsPerOrder = 1
	MaxItemsPerOrder = 4
	MinQuantity      = 1
	MaxQuantity      = 5

	MinShipDelayDays     = 1
	MaxShipDelayDays     = 4
	MinDeliveryDelayDays = 2
	MaxDeliveryDelayDays = 7
)

type Generator struct {
	rand    *rand.Rand
	catalog *catalog.Catalog
	now     func() time.Time

	orderWindowMonths int
}

type Option func(*Generator)

// WithSource pins the random source used for every choice and range.
func WithSource(src rand.Source) Option {
	return func(g *Generator) {
		g.rand = rand.New(src)
	}
}

func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

func WithCatalog(c *catalog.Catalog) Option {
	return func(g *Generator) {
		g.catalog = c
	}
}

// WithOrderWindow sets how many months back order dates may reach.
func WithOrderWindow(months int) Option {
	return func(g *Generator) {
		if months > 0 {
			g.orderWindowMonths = months
		}
	}
}

func New(opts ...Option) *Generator {
	g := &Generator{
		rand:              rand.New(rand.NewSource(time.Now().UnixNano())),
		catalog:           catalog.Default(),
		now:               time.Now,
		orderWindowMonths: DefaultOrderWindowMonths,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Generator) Customer() models.Customer {
	addr := faker.GetRealAddress()
	return models.Customer{
		Name:    faker.FirstName() + " " + faker.LastName(),
		City:    addr.City,
		State:   addr.State,
		Segment: models.Segments[g.rand.Intn(len(models.Segments))],
	}
}

func (g *Generator) Product() models.Product {
	cat := g.catalog.Categories[g.rand.Intn(len(g.catalog.Categories))]
	return models.Product{
		Name:     cat.Products[g.rand.Intn(len(cat.Products))],
		Category: cat.Name,
		Price:    g.between(cat.MinPrice, cat.MaxPrice),
	}
}

// Order picks a customer from customerIDs, which must not be empty.
func (g *Generator) Order(customerIDs []int64) models.Order {
	return models.Order{
		Date:       g.OrderDate(),
		CustomerID: customerIDs[g.rand.Intn(len(customerIDs))],
		Status:     models.OrderStatuses[g.rand.Intn(len(models.OrderStatuses))],
		SalesRep:   faker.FirstName(),
	}
}

// OrderDate returns a calendar date between today minus the order window and
// today, both inclusive.
func (g *Generator) OrderDate() time.Time {
	today := truncateDay(g.now())
	start := today.AddDate(0, -g.orderWindowMonths, 0)
	span := int(today.Sub(start).Hours() / 24)
	return start.AddDate(0, 0, g.rand.Intn(span+1))
}

// OrderItems returns between one and four lines for order, each priced from a
// product in products, which must not be empty.
func (g *Generator) OrderItems(order models.Order, products []models.Product) []models.OrderItem {
	n := g.between(MinItemsPerOrder, MaxItemsPerOrder)
	items := make([]models.OrderItem, 0, n)
	for i := 0; i < n; i++ {
		p := products[g.rand.Intn(len(products))]
		items = append(items, models.OrderItem{
			OrderID:   order.ID,
			ProductID: p.ID,
			Quantity:  g.between(MinQuantity, MaxQuantity),
			UnitPrice: p.Price,
		})
	}
	return items
}

func (g *Generator) Shipment(order models.Order) models.Shipment {
	ship := truncateDay(order.Date).AddDate(0, 0, g.between(MinShipDelayDays, MaxShipDelayDays))
	deliver := ship.AddDate(0, 0, g.between(MinDeliveryDelayDays, MaxDeliveryDelayDays))
	return models.Shipment{
		OrderID:      order.ID,
		ShipDate:     ship,
		DeliveryDate: deliver,
		Status:       models.ShipmentStatuses[g.rand.Intn(len(models.ShipmentStatuses))],
	}
}

// between returns a uniform integer in [lo, hi].
func (g *Generator) between(lo, hi int) int {
	return lo + g.rand.Intn(hi-lo+1)
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
