package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/ballotbox/internal/ballot/http"
	"github.com/aussiebroadwan/ballotbox/internal/ballot/service"
	"github.com/aussiebroadwan/ballotbox/internal/ballot/store"
	"github.com/aussiebroadwan/ballotbox/pkg/cryptox"
	"github.com/aussiebroadwan/ballotbox/pkg/slogx"
)

// BuildVersion is overridden at build time with -ldflags "-X ...".
var BuildVersion = "v0.1.0"

// Application wires the voting service together.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db store.Store

	tokenService        *service.TokenService
	accountService      *service.AccountService
	registryService     *service.RegistryService
	ballotService       *service.BallotService
	resultsService      *service.ResultsService
	userService         *service.UserService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// NewLogger builds the process logger from cfg.
func NewLogger(cfg Config) *slog.Logger {
	return slogx.New(slogx.Config{
		Service: "ballot-service",
		Version: BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})
}

// New creates an Application with every dependency initialised. The
// database schema is migrated as part of start up.
func New(ctx context.Context, cfg Config, logger *slog.Logger) (*Application, error) {
	app := &Application{cfg: cfg, logger: logger}

	cryptox.SetPepperPath(cfg.PepperFile)
	if err := cryptox.LoadPepper(); err != nil {
		return nil, fmt.Errorf("failed to load pepper: %w", err)
	}

	db, err := OpenMigratedStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	app.db = db
	logger.Info("database ready", "driver", cfg.DatabaseDriver)

	if err := app.initServices(); err != nil {
		_ = db.Close()
		return nil, err
	}
	app.initHTTP()

	return app, nil
}

// Handler returns the HTTP handler, for tests that drive the app in process.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts serving and blocks until a shutdown signal or server error.
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("ballot service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		app.housekeepingService.Stop()
		_ = app.db.Close()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown drains in-flight requests, stops housekeeping and closes the
// database.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down ballot service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("ballot service stopped")
	return nil
}

// Close releases the database without starting the server. Use it after
// New when Run is never called.
func (app *Application) Close() error {
	return app.db.Close()
}

func (app *Application) initServices() error {
	signer, err := InitSigner(app.cfg, app.logger)
	if err != nil {
		return fmt.Errorf("failed to initialise token signer: %w", err)
	}

	app.tokenService = &service.TokenService{
		Signer:     signer,
		Verifier:   signer.Verifier(app.cfg.Issuer),
		Store:      app.db,
		Issuer:     app.cfg.Issuer,
		SessionTTL: app.cfg.SessionTTL,
		ResetTTL:   app.cfg.ResetTTL,
	}

	app.accountService = &service.AccountService{
		Store:            app.db,
		Tokens:           app.tokenService,
		Notifier:         service.LogResetNotifier{ExposeToken: app.cfg.Env == "dev"},
		AllowAdminSignup: app.cfg.AllowAdminSignup,
	}
	app.registryService = &service.RegistryService{Store: app.db}
	app.ballotService = &service.BallotService{Store: app.db}
	app.resultsService = &service.ResultsService{Store: app.db}
	app.userService = &service.UserService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)

	return nil
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		BuildVersion,
		app.db,
		app.logger,
	)

	router.TokenService = app.tokenService
	router.AccountService = app.accountService
	router.RegistryService = app.registryService
	router.BallotService = app.ballotService
	router.ResultsService = app.resultsService
	router.UserService = app.userService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
