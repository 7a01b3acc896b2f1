package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Lumos-Labs-HQ/salesops-seed/internal/config"
	"github.com/Lumos-Labs-HQ/salesops-seed/internal/database"
	"github.com/Lumos-Labs-HQ/salesops-seed/internal/generator"
	"github.com/Lumos-Labs-HQ/salesops-seed/internal/seeder"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "1.0.0"
)

func showBanner() {
	greenColor := color.New(color.FgGreen, color.Bold)

	banner := []string{
		"╔══════════════════════════════════════════════╗",
		"║          🌱  salesops-seed  🌱               ║",
		"║   synthetic sales data for demo databases    ║",
		"╚══════════════════════════════════════════════╝",
	}

	for _, line := range banner {
		greenColor.Println(line)
	}

	fmt.Print("              ")
	color.New(color.FgCyan, color.Bold).Print("Version: ")
	color.New(color.FgYellow, color.Bold).Printf("%s\n", Version)
}

var rootCmd = &cobra.Command{
	Use:   "salesops-seed",
	Short: "Populate a sales schema with synthetic business data",
	Long: `
salesops-seed fills an existing sales schema with plausible demo data:

  customers → products → orders → order_items → shipments

Every run appends new rows. The schema must already exist; see db/schema/.

Database Support:
- MySQL (default)
- PostgreSQL
- SQLite`,
	SilenceUsage:  true,
	SilenceErrors: true,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("salesops-seed version %s\n", Version)
			return
		}

		showBanner()
		fmt.Println()
		cmd.Help()
	},
}

// Execute runs the command tree; SIGINT and SIGTERM cancel the context handed
// to every command.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./salesops.config.json)")
	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName(config.ConfigName)
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			color.Yellow("⚠️  Could not read config file %s: %v", cfgFile, err)
		}
	}
}

// loadConfig loads and validates the configuration for a command.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func openStore(ctx context.Context, cfg *config.Config) (*database.Store, error) {
	store, err := database.Open(ctx, cfg.Database.Provider, cfg.GetDatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return store, nil
}

func newSeeder(cfg *config.Config, store *database.Store) (*seeder.Seeder, error) {
	cat, err := cfg.Catalog()
	if err != nil {
		return nil, err
	}

	gen := generator.New(
		generator.WithCatalog(cat),
		generator.WithOrderWindow(cfg.Seed.OrderWindowMonths),
	)
	return seeder.New(store, gen), nil
}

// withSeeder opens the store, builds a seeder and hands both to fn. The store
// is closed when fn returns.
func withSeeder(cmd *cobra.Command, fn func(ctx context.Context, cfg *config.Config, s *seeder.Seeder) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	s, err := newSeeder(cfg, store)
	if err != nil {
		return err
	}

	return fn(ctx, cfg, s)
}
