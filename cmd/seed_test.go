package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/Lumos-Labs-HQ/salesops-seed/internal/database"
	"github.com/Lumos-Labs-HQ/salesops-seed/internal/database/common"
	"github.com/Lumos-Labs-HQ/salesops-seed/internal/database/sqlite"
	"github.com/Lumos-Labs-HQ/salesops-seed/internal/testhelpers"
	"github.com/fatih/color"
)

func TestMain(m *testing.M) {
	color.Output = io.Discard
	os.Exit(m.Run())
}

func createSchemaFile(t *testing.T, path string) {
	t.Helper()

	db, err := sqlite.New().Open(context.Background(), path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer db.Close()

	for _, stmt := range common.ParseSQLStatements(testhelpers.Schema) {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("apply schema: %v", err)
		}
	}
}

func TestSeedCommandEndToEnd(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	dir := t.TempDir()
	dbPath := filepath.Join(dir, "sales.db")
	createSchemaFile(t, dbPath)

	cfgPath := filepath.Join(dir, "salesops.config.json")
	cfgContent := fmt.Sprintf(`{
  "database": {"provider": "sqlite", "url": "sqlite://%s"},
  "seed": {"customers": 5, "products": 3, "orders": 7}
}`, filepath.ToSlash(dbPath))
	if err := os.WriteFile(cfgPath, []byte(cfgContent), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	run := func(args ...string) {
		t.Helper()
		rootCmd.SetArgs(append([]string{"--config", cfgPath}, args...))
		if err := rootCmd.ExecuteContext(context.Background()); err != nil {
			t.Fatalf("%v failed: %v", args, err)
		}
	}

	run("seed")
	run("seed", "shipments", "--recent", "3")

	ctx := context.Background()
	store, err := database.Open(ctx, "sqlite", "sqlite://"+dbPath)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer store.Close()

	want := map[string]int64{"customers": 5, "products": 3, "orders": 7, "shipments": 10}
	for table, n := range want {
		got, err := store.CountRows(ctx, table)
		if err != nil {
			t.Fatalf("count %s: %v", table, err)
		}
		if got != n {
			t.Errorf("Expected %d rows in %s, got %d", n, table, got)
		}
	}

	items, err := store.CountRows(ctx, "order_items")
	if err != nil {
		t.Fatalf("count order_items: %v", err)
	}
	if items < 7 || items > 28 {
		t.Errorf("Expected 7-28 order items, got %d", items)
	}
}
