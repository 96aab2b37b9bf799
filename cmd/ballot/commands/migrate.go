package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/ballotbox/internal/ballot/app"
)

var migrateStatusOnly bool

// migrateCmd applies pending schema migrations
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	Long: `Apply pending database migrations and print the resulting schema version.

Examples:
  ballot migrate             # Apply everything pending
  ballot migrate --status    # Print the current version only`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate(cmd)
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateStatusOnly, "status", false, "Print the schema version without migrating")
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := app.OpenStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if !migrateStatusOnly {
		if err := db.ApplyMigrations(); err != nil {
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
	}

	reporter, ok := db.(app.MigrationReporter)
	if !ok {
		return nil
	}
	version, dirty, err := reporter.MigrationVersion()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	out := cmd.OutOrStdout()
	if dirty {
		fmt.Fprintf(out, "%s schema at version %d (dirty)\n", cfg.DatabaseDriver, version)
		return nil
	}
	fmt.Fprintf(out, "%s schema at version %d\n", cfg.DatabaseDriver, version)
	return nil
}
