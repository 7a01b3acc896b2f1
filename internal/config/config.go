package config

import (
	"fmt"
	"os"

	"github.com/Lumos-Labs-HQ/salesops-seed/internal/catalog"
	"github.com/spf13/viper"
)

const (
	ConfigName = "salesops.config"

	// DefaultDatabaseURL is used when neither the env var nor database.url
	// is set.
	DefaultDatabaseURL = "mysql://root@localhost:3306/sales_ops_analytics"
)

type Config struct {
	Database Database `json:"database" mapstructure:"database"`
	Seed     Seed     `json:"seed" mapstructure:"seed"`
}

type Database struct {
	Provider string `json:"provider" mapstructure:"provider"`
	URLEnv   string `json:"url_env" mapstructure:"url_env"`
	URL      string `json:"url,omitempty" mapstructure:"url"`
}

type Seed struct {
	Customers         int    `json:"customers" mapstructure:"customers"`
	Products          int    `json:"products" mapstructure:"products"`
	Orders            int    `json:"orders" mapstructure:"orders"`
	RecentOrders      int    `json:"recent_orders" mapstructure:"recent_orders"`
	OrderWindowMonths int    `json:"order_window_months" mapstructure:"order_window_months"`
	CatalogFile       string `json:"catalog_file,omitempty" mapstructure:"catalog_file"`
}

// SetDefaults registers the default values with v so that unset keys,
// environment variables and bound flags all resolve against them.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("database.provider", "mysql")
	v.SetDefault("database.url_env", "DATABASE_URL")
	v.SetDefault("seed.customers", 80)
	v.SetDefault("seed.products", 40)
	v.SetDefault("seed.orders", 250)
	v.SetDefault("seed.recent_orders", 300)
	v.SetDefault("seed.order_window_months", 6)
}

// Load decodes the configuration held by the global viper instance.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

func LoadFrom(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Database.Provider == "" {
		cfg.Database.Provider = "mysql"
	}
	if cfg.Database.URLEnv == "" {
		cfg.Database.URLEnv = "DATABASE_URL"
	}

	return &cfg, nil
}

// GetDatabaseURL resolves the connection URL from the configured env var,
// then database.url, then DefaultDatabaseURL.
func (c *Config) GetDatabaseURL() string {
	if dbURL := os.Getenv(c.Database.URLEnv); dbURL != "" {
		return dbURL
	}
	if c.Database.URL != "" {
		return c.Database.URL
	}
	return DefaultDatabaseURL
}

func (c *Config) Validate() error {
	supportedProviders := []string{"postgresql", "postgres", "mysql", "sqlite", "sqlite3"}
	supported := false
	for _, provider := range supportedProviders {
		if c.Database.Provider == provider {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported database provider: %s. Supported providers: %v", c.Database.Provider, supportedProviders)
	}

	counts := []struct {
		key   string
		value int
	}{
		{"seed.customers", c.Seed.Customers},
		{"seed.products", c.Seed.Products},
		{"seed.orders", c.Seed.Orders},
	}
	for _, n := range counts {
		if n.value < 0 {
			return fmt.Errorf("%s cannot be negative: %d", n.key, n.value)
		}
	}

	if c.Seed.RecentOrders <= 0 {
		return fmt.Errorf("seed.recent_orders must be positive: %d", c.Seed.RecentOrders)
	}
	if c.Seed.OrderWindowMonths <= 0 {
		return fmt.Errorf("seed.order_window_months must be positive: %d", c.Seed.OrderWindowMonths)
	}

	if c.Seed.CatalogFile != "" {
		if _, err := os.Stat(c.Seed.CatalogFile); err != nil {
			return fmt.Errorf("catalog file %s: %w", c.Seed.CatalogFile, err)
		}
	}

	return nil
}

// Catalog returns the configured product catalog, falling back to the
// built-in one.
func (c *Config) Catalog() (*catalog.Catalog, error) {
	if c.Seed.CatalogFile == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(c.Seed.CatalogFile)
}
