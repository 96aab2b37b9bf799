package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/ballotbox/internal/ballot/app"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "ballot",
	Short: "Ballotbox - online voting service",
	Long: `Ballotbox runs elections over HTTP. Voters register, sign in and cast
one vote per election; admins manage elections, candidates and users.

Configuration is read from the environment and from .env / .env.local in the
working directory. See "ballot serve --help" for the common variables.`,
	Version:       app.BuildVersion,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads and validates the environment for a subcommand.
func loadConfig() (app.Config, error) {
	cfg := app.LoadConfig()
	if err := cfg.Validate(); err != nil {
		return app.Config{}, err
	}
	return cfg, nil
}
