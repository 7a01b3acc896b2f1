package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/Lumos-Labs-HQ/salesops-seed/internal/config"
	"github.com/Lumos-Labs-HQ/salesops-seed/internal/seeder"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed every table in dependency order",
	Long: `
Insert customers, products and orders, then order items and shipments for the
orders inserted by this run. Each table is committed as it completes.

Examples:
  salesops-seed seed
  salesops-seed seed --customers 200 --orders 1000
  salesops-seed seed orders --count 50`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSeeder(cmd, func(ctx context.Context, cfg *config.Config, s *seeder.Seeder) error {
			plan := seeder.Plan{
				Customers: cfg.Seed.Customers,
				Products:  cfg.Seed.Products,
				Orders:    cfg.Seed.Orders,
			}

			summary, err := s.Run(ctx, plan)
			if err != nil {
				return err
			}

			printSummary(summary)
			return nil
		})
	},
}

var seedCustomersCmd = &cobra.Command{
	Use:   "customers",
	Short: "Insert customers",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSeeder(cmd, func(ctx context.Context, cfg *config.Config, s *seeder.Seeder) error {
			n := countFlag(cmd, cfg.Seed.Customers)
			_, err := s.InsertCustomers(ctx, n)
			return err
		})
	},
}

var seedProductsCmd = &cobra.Command{
	Use:   "products",
	Short: "Insert catalog products",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSeeder(cmd, func(ctx context.Context, cfg *config.Config, s *seeder.Seeder) error {
			n := countFlag(cmd, cfg.Seed.Products)
			_, err := s.InsertProducts(ctx, n)
			return err
		})
	},
}

var seedOrdersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Insert orders for the customers already in the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSeeder(cmd, func(ctx context.Context, cfg *config.Config, s *seeder.Seeder) error {
			ids, err := s.LoadCustomerIDs(ctx)
			if err != nil {
				return err
			}

			n := countFlag(cmd, cfg.Seed.Orders)
			_, err = s.InsertOrders(ctx, n, ids)
			return err
		})
	},
}

var seedItemsCmd = &cobra.Command{
	Use:     "items",
	Aliases: []string{"order-items", "order_items"},
	Short:   "Insert order items for the most recent orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSeeder(cmd, func(ctx context.Context, cfg *config.Config, s *seeder.Seeder) error {
			orders, err := s.LoadRecentOrders(ctx, recentFlag(cmd, cfg.Seed.RecentOrders))
			if err != nil {
				return err
			}

			products, err := s.LoadProducts(ctx)
			if err != nil {
				return err
			}

			_, err = s.InsertOrderItems(ctx, orders, products)
			return err
		})
	},
}

var seedShipmentsCmd = &cobra.Command{
	Use:   "shipments",
	Short: "Insert shipments for the most recent orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSeeder(cmd, func(ctx context.Context, cfg *config.Config, s *seeder.Seeder) error {
			orders, err := s.LoadRecentOrders(ctx, recentFlag(cmd, cfg.Seed.RecentOrders))
			if err != nil {
				return err
			}

			_, err = s.InsertShipments(ctx, orders)
			return err
		})
	},
}

func countFlag(cmd *cobra.Command, fallback int) int {
	if cmd.Flags().Changed("count") {
		n, _ := cmd.Flags().GetInt("count")
		return n
	}
	return fallback
}

func recentFlag(cmd *cobra.Command, fallback int) int {
	if cmd.Flags().Changed("recent") {
		n, _ := cmd.Flags().GetInt("recent")
		return n
	}
	return fallback
}

func printSummary(summary *seeder.Summary) {
	fmt.Println()
	color.Cyan("📊 Run %s", summary.RunID)
	for _, table := range summary.Order {
		fmt.Printf("   %-12s %d\n", table, summary.Inserted[table])
	}
	color.Green("✅ %d realistic business rows inserted in %s", summary.Total(), summary.Elapsed.Round(time.Millisecond))
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.AddCommand(seedCustomersCmd, seedProductsCmd, seedOrdersCmd, seedItemsCmd, seedShipmentsCmd)

	seedCmd.Flags().Int("customers", 80, "Number of customers to insert")
	seedCmd.Flags().Int("products", 40, "Number of products to insert")
	seedCmd.Flags().Int("orders", 250, "Number of orders to insert")
	viper.BindPFlag("seed.customers", seedCmd.Flags().Lookup("customers"))
	viper.BindPFlag("seed.products", seedCmd.Flags().Lookup("products"))
	viper.BindPFlag("seed.orders", seedCmd.Flags().Lookup("orders"))

	for _, c := range []*cobra.Command{seedCustomersCmd, seedProductsCmd, seedOrdersCmd} {
		c.Flags().Int("count", 0, "Number of rows to insert (default from config)")
	}
	for _, c := range []*cobra.Command{seedItemsCmd, seedShipmentsCmd} {
		c.Flags().Int("recent", seeder.DefaultRecentOrders, "Number of most recent orders to cover")
	}
}
