package generator

import (
	"math/rand"
	"testing"
	"time"

	"github.com/Lumos-Labs-HQ/salesops-seed/internal/catalog"
	"github.com/Lumos-Labs-HQ/salesops-seed/internal/models"
)

var fixedNow = time.Date(2026, time.March, 15, 13, 45, 0, 0, time.UTC)

func newTestGenerator(seed int64) *Generator {
	return New(
		WithSource(rand.NewSource(seed)),
		WithClock(func() time.Time { return fixedNow }),
	)
}

func TestProductPriceWithinCategoryRange(t *testing.T) {
	g := newTestGenerator(1)
	c := catalog.Default()

	seen := make(map[string]bool)
	for i := 0; i < 2000; i++ {
		p := g.Product()
		cat, ok := c.Lookup(p.Category)
		if !ok {
			t.Fatalf("Unknown category %q", p.Category)
		}
		seen[p.Category] = true

		if p.Price < cat.MinPrice || p.Price > cat.MaxPrice {
			t.Errorf("Price %d for %s outside %d-%d", p.Price, p.Category, cat.MinPrice, cat.MaxPrice)
		}

		found := false
		for _, name := range cat.Products {
			if name == p.Name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Product name %q not in category %s", p.Name, p.Category)
		}
	}

	if len(seen) != len(c.Categories) {
		t.Errorf("Expected all %d categories to be drawn, got %d", len(c.Categories), len(seen))
	}
}

func TestProductUsesCustomCatalog(t *testing.T) {
	c := &catalog.Catalog{Categories: []catalog.Category{
		{Name: "Garden", Products: []string{"Rake"}, MinPrice: 7, MaxPrice: 7},
	}}
	g := New(WithSource(rand.NewSource(3)), WithCatalog(c))

	p := g.Product()
	if p.Category != "Garden" || p.Name != "Rake" || p.Price != 7 {
		t.Errorf("Unexpected product: %+v", p)
	}
}

func TestCustomerSegment(t *testing.T) {
	g := newTestGenerator(2)

	for i := 0; i < 50; i++ {
		c := g.Customer()
		if c.Name == "" {
			t.Error("Expected customer name")
		}
		valid := false
		for _, s := range models.Segments {
			if c.Segment == s {
				valid = true
			}
		}
		if !valid {
			t.Errorf("Unexpected segment %q", c.Segment)
		}
	}
}

func TestOrderDateWithinWindow(t *testing.T) {
	g := newTestGenerator(3)
	today := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	earliest := time.Date(2025, time.September, 15, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 1000; i++ {
		d := g.OrderDate()
		if d.Before(earliest) || d.After(today) {
			t.Fatalf("Order date %s outside %s..%s", d, earliest, today)
		}
		if d.Hour() != 0 || d.Minute() != 0 {
			t.Fatalf("Expected calendar date, got %s", d)
		}
	}
}

func TestOrderWindowOption(t *testing.T) {
	g := New(
		WithSource(rand.NewSource(4)),
		WithClock(func() time.Time { return fixedNow }),
		WithOrderWindow(1),
	)
	earliest := time.Date(2026, time.February, 15, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 200; i++ {
		if d := g.OrderDate(); d.Before(earliest) {
			t.Fatalf("Order date %s before one-month window", d)
		}
	}
}

func TestOrderPicksKnownCustomer(t *testing.T) {
	g := newTestGenerator(5)
	ids := []int64{11, 22, 33}

	for i := 0; i < 100; i++ {
		o := g.Order(ids)
		if o.CustomerID != 11 && o.CustomerID != 22 && o.CustomerID != 33 {
			t.Fatalf("Unexpected customer id %d", o.CustomerID)
		}
		if o.SalesRep == "" {
			t.Error("Expected sales rep")
		}
		switch o.Status {
		case models.OrderCompleted, models.OrderPending, models.OrderCancelled:
		default:
			t.Errorf("Unexpected status %q", o.Status)
		}
	}
}

func TestOrderItems(t *testing.T) {
	g := newTestGenerator(6)
	products := []models.Product{
		{ID: 1, Price: 100},
		{ID: 2, Price: 250},
	}
	prices := map[int64]int{1: 100, 2: 250}
	order := models.Order{ID: 42}

	for i := 0; i < 200; i++ {
		items := g.OrderItems(order, products)
		if len(items) < MinItemsPerOrder || len(items) > MaxItemsPerOrder {
			t.Fatalf("Expected 1-4 items, got %d", len(items))
		}
		for _, it := range items {
			if it.OrderID != 42 {
				t.Errorf("Expected order id 42, got %d", it.OrderID)
			}
			if it.UnitPrice != prices[it.ProductID] {
				t.Errorf("Unit price %d does not match product %d price %d", it.UnitPrice, it.ProductID, prices[it.ProductID])
			}
			if it.Quantity < MinQuantity || it.Quantity > MaxQuantity {
				t.Errorf("Quantity %d outside 1-5", it.Quantity)
			}
		}
	}
}

func TestShipmentDatesIncrease(t *testing.T) {
	g := newTestGenerator(7)
	orderDate := time.Date(2026, time.January, 30, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 500; i++ {
		s := g.Shipment(models.Order{ID: 9, Date: orderDate})

		shipDelay := int(s.ShipDate.Sub(orderDate).Hours() / 24)
		deliveryDelay := int(s.DeliveryDate.Sub(s.ShipDate).Hours() / 24)

		if shipDelay < MinShipDelayDays || shipDelay > MaxShipDelayDays {
			t.Fatalf("Ship delay %d outside 1-4", shipDelay)
		}
		if deliveryDelay < MinDeliveryDelayDays || deliveryDelay > MaxDeliveryDelayDays {
			t.Fatalf("Delivery delay %d outside 2-7", deliveryDelay)
		}
		if !s.DeliveryDate.After(s.ShipDate) || !s.ShipDate.After(orderDate) {
			t.Fatalf("Dates not strictly increasing: %s %s %s", orderDate, s.ShipDate, s.DeliveryDate)
		}
		if s.Status != models.ShipmentDelivered && s.Status != models.ShipmentInTransit {
			t.Errorf("Unexpected status %q", s.Status)
		}
	}
}

func TestSameSeedSameChoices(t *testing.T) {
	a := newTestGenerator(99)
	b := newTestGenerator(99)

	for i := 0; i < 20; i++ {
		pa, pb := a.Product(), b.Product()
		if pa != pb {
			t.Fatalf("Expected identical products for same seed, got %+v and %+v", pa, pb)
		}
	}
}
