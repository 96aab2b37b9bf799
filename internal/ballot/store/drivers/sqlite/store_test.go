package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/ballotbox/internal/ballot/store"
	"github.com/aussiebroadwan/ballotbox/internal/ballot/store/drivers/sqlite"
	"github.com/aussiebroadwan/ballotbox/internal/ballot/store/storetest"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) store.Store {
	t.Helper()
	return openStore(t, filepath.Join(t.TempDir(), "ballot.db"))
}

func openStore(t *testing.T, path string) *sqlite.Store {
	t.Helper()
	s, err := sqlite.NewStore(sqlite.DSN(path))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())
	return s
}

func TestStoreConformance(t *testing.T) {
	storetest.Run(t, newStore)
}

func TestApplyMigrationsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ballot.db")
	s := openStore(t, path)

	require.NoError(t, s.ApplyMigrations())

	version, dirty, err := s.MigrationVersion()
	require.NoError(t, err)
	require.False(t, dirty)
	require.EqualValues(t, 1, version)
}

func TestDataSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "ballot.db")

	s := openStore(t, path)
	u := storetest.NewUser("persist@example.com")
	require.NoError(t, s.Users().CreateUser(ctx, u))
	require.NoError(t, s.Close())

	reopened := openStore(t, path)
	got, err := reopened.Users().GetUserByEmail(ctx, u.Email)
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
	require.Equal(t, time.UTC, got.CreatedAt.Location())
}

func TestPing(t *testing.T) {
	s := newStore(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Ping(ctx))
}

func TestDSN(t *testing.T) {
	dsn := sqlite.DSN("/var/lib/ballot/ballot.db")
	require.Contains(t, dsn, "file:/var/lib/ballot/ballot.db?")
	require.Contains(t, dsn, "_txlock=immediate")
	require.Contains(t, dsn, "foreign_keys%281%29")
}
