package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/Lumos-Labs-HQ/salesops-seed/internal/database"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show row counts for the seeded tables",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		color.Cyan("📊 Row counts (%s)", store.Provider())
		fmt.Println()

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "TABLE\tROWS")
		for _, table := range database.Tables {
			n, err := store.CountRows(ctx, table)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s\t%d\n", table, n)
		}
		return w.Flush()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the CLI version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("salesops-seed version %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}
