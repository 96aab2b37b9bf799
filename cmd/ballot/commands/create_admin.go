package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/ballotbox/internal/ballot/app"
	"github.com/aussiebroadwan/ballotbox/internal/ballot/service"
	"github.com/aussiebroadwan/ballotbox/pkg/ballotsdk"
	"github.com/aussiebroadwan/ballotbox/pkg/cryptox"
	"github.com/aussiebroadwan/ballotbox/pkg/httpx"
)

var (
	adminName     string
	adminEmail    string
	adminPassword string
)

// createAdminCmd seeds an administrator account
var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an administrator account",
	Long: `Create an administrator account directly in the database. This is the way
to add admins once self-registration has been used up.

Examples:
  ballot create-admin --name "Returning Officer" --email ro@example.com
  ballot create-admin --name Ops --email ops@example.com --password 's3cret!'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCreateAdmin(cmd)
	},
}

func init() {
	createAdminCmd.Flags().StringVar(&adminName, "name", "", "Display name (required)")
	createAdminCmd.Flags().StringVar(&adminEmail, "email", "", "Email address (required)")
	createAdminCmd.Flags().StringVar(&adminPassword, "password", "", "Password, generated and printed when empty")
	_ = createAdminCmd.MarkFlagRequired("name")
	_ = createAdminCmd.MarkFlagRequired("email")
	rootCmd.AddCommand(createAdminCmd)
}

func runCreateAdmin(cmd *cobra.Command) error {
	generated := adminPassword == ""
	password := adminPassword
	if generated {
		var err error
		if password, err = cryptox.GeneratePassword(); err != nil {
			return fmt.Errorf("failed to generate password: %w", err)
		}
	}

	if err := httpx.Validate(ballotsdk.RegisterRequest{
		Name:     adminName,
		Email:    adminEmail,
		Password: password,
	}); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cryptox.SetPepperPath(cfg.PepperFile)
	if err := cryptox.LoadPepper(); err != nil {
		return fmt.Errorf("failed to load pepper: %w", err)
	}

	db, err := app.OpenMigratedStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	accounts := &service.AccountService{Store: db}
	user, err := accounts.CreateAdmin(cmd.Context(), adminName, adminEmail, password)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "created admin %s <%s> id=%s\n", user.Name, user.Email, user.ID)
	if generated {
		fmt.Fprintf(out, "password: %s\n", password)
	}
	return nil
}
