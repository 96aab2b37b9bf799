package app

import (
	"context"
	"fmt"

	"github.com/aussiebroadwan/ballotbox/internal/ballot/store"
	"github.com/aussiebroadwan/ballotbox/internal/ballot/store/drivers/postgres"
	"github.com/aussiebroadwan/ballotbox/internal/ballot/store/drivers/sqlite"
)

// MigrationReporter is implemented by stores that can report their schema
// version.
type MigrationReporter interface {
	MigrationVersion() (version uint, dirty bool, err error)
}

// OpenStore connects to the configured database. Migrations are not applied.
func OpenStore(ctx context.Context, cfg Config) (store.Store, error) {
	switch cfg.DatabaseDriver {
	case "postgres":
		s, err := postgres.NewStore(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres: %w", err)
		}
		return s, nil
	default:
		s, err := sqlite.NewStore(sqlite.DSN(cfg.DatabaseFile))
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite: %w", err)
		}
		return s, nil
	}
}

// OpenMigratedStore opens the database and brings its schema up to date.
func OpenMigratedStore(ctx context.Context, cfg Config) (store.Store, error) {
	s, err := OpenStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := s.ApplyMigrations(); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("failed to apply database migrations: %w", err)
	}
	return s, nil
}
