package commands

import (
	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/ballotbox/internal/ballot/app"
)

// serveCmd starts the HTTP API
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the HTTP API. Pending migrations are applied before listening.

Environment:
  PORT                       Listen port (default 8080)
  ENV                        dev, staging, prod or test (default dev)
  BALLOT_DATABASE_DRIVER     sqlite or postgres (default sqlite)
  BALLOT_DATABASE_FILE       SQLite file (default ./ballot.db)
  BALLOT_DATABASE_URL        Postgres connection URL
  BALLOT_TOKEN_ALGORITHM     HS256 or EdDSA (default HS256)
  BALLOT_TOKEN_SECRET        HS256 secret, required outside dev
  BALLOT_SESSION_TTL         Session lifetime (default 8h)
  BALLOT_ALLOW_ADMIN_SIGNUP  Let anyone register as admin (default false)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := app.NewLogger(cfg)

	application, err := app.New(cmd.Context(), cfg, logger)
	if err != nil {
		logger.Error("failed to initialize application", "error", err)
		return err
	}

	return application.Run()
}
