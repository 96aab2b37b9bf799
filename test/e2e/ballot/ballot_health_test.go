package ballot_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestLivezEndpoint verifies the liveness check on an empty database.
func TestLivezEndpoint(t *testing.T) {
	srv := setupBallotServer(t)

	health, err := srv.client.GetLiveness(t.Context())
	assertHealthy(t, health, err)
	require.NotEmpty(t, health.Version)
}

// TestReadyzEndpoint verifies the database and signer checks pass.
func TestReadyzEndpoint(t *testing.T) {
	srv := setupBallotServer(t)

	health, err := srv.client.GetReadiness(t.Context())
	assertHealthy(t, health, err)
	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Database)
	require.Equal(t, "ok", health.Checks.Signer)
}
