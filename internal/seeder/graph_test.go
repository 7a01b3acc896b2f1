package seeder

import (
	"strings"
	"testing"
)

func TestBuildInsertionOrder(t *testing.T) {
	g := NewDependencyGraph()
	g.AddTable(&TableInfo{Name: "shipments", Dependencies: []string{"orders"}})
	g.AddTable(&TableInfo{Name: "order_items", Dependencies: []string{"orders", "products"}})
	g.AddTable(&TableInfo{Name: "orders", Dependencies: []string{"customers"}})
	g.AddTable(&TableInfo{Name: "customers"})
	g.AddTable(&TableInfo{Name: "products"})

	order, err := g.BuildInsertionOrder()
	if err != nil {
		t.Fatalf("BuildInsertionOrder failed: %v", err)
	}

	pos := make(map[string]int)
	for i, name := range order {
		pos[name] = i
	}
	if len(pos) != 5 {
		t.Fatalf("Expected 5 tables, got %v", order)
	}

	for _, edge := range [][2]string{
		{"customers", "orders"},
		{"orders", "order_items"},
		{"products", "order_items"},
		{"orders", "shipments"},
	} {
		if pos[edge[0]] >= pos[edge[1]] {
			t.Errorf("Expected %s before %s in %v", edge[0], edge[1], order)
		}
	}

	if got := g.GetOrder(); strings.Join(got, ",") != strings.Join(order, ",") {
		t.Errorf("GetOrder returned %v, want %v", got, order)
	}
}

func TestBuildInsertionOrderIsStable(t *testing.T) {
	for i := 0; i < 20; i++ {
		g := NewDependencyGraph()
		g.AddTable(&TableInfo{Name: "customers"})
		g.AddTable(&TableInfo{Name: "products"})
		g.AddTable(&TableInfo{Name: "orders", Dependencies: []string{"customers"}})

		order, err := g.BuildInsertionOrder()
		if err != nil {
			t.Fatalf("BuildInsertionOrder failed: %v", err)
		}
		if strings.Join(order, ",") != "customers,products,orders" {
			t.Fatalf("Expected declaration order for independent tables, got %v", order)
		}
	}
}

func TestBuildInsertionOrderCycle(t *testing.T) {
	g := NewDependencyGraph()
	g.AddTable(&TableInfo{Name: "a", Dependencies: []string{"b"}})
	g.AddTable(&TableInfo{Name: "b", Dependencies: []string{"a"}})

	if _, err := g.BuildInsertionOrder(); err == nil || !strings.Contains(err.Error(), "circular dependency") {
		t.Errorf("Expected circular dependency error, got %v", err)
	}
}

func TestBuildInsertionOrderUnknownDependency(t *testing.T) {
	g := NewDependencyGraph()
	g.AddTable(&TableInfo{Name: "orders", Dependencies: []string{"customers"}})

	if _, err := g.BuildInsertionOrder(); err == nil {
		t.Error("Expected error for missing dependency")
	}
}
