package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/ballotbox/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const exampleIssuer = "ballotbox-test"

func TestValidateIssuer(t *testing.T) {
	c := &jwtx.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Issuer: "ballotbox"},
	}

	t.Run("matching issuer", func(t *testing.T) {
		require.NoError(t, c.ValidateIssuer("ballotbox"))
	})

	t.Run("empty expected issuer", func(t *testing.T) {
		require.NoError(t, c.ValidateIssuer(""))
	})

	t.Run("mismatched issuer", func(t *testing.T) {
		require.ErrorIs(t, c.ValidateIssuer("someone-else"), jwtx.ErrIssuer)
	})
}

func TestValidatePurpose(t *testing.T) {
	now := time.Now().UTC()
	session := jwtx.NewSessionClaims("u1", "a@x.com", "voter", "A", exampleIssuer, time.Hour, now)
	reset := jwtx.NewResetClaims("a@x.com", exampleIssuer, time.Hour, now)

	require.NoError(t, session.ValidatePurpose(jwtx.PurposeSession))
	require.ErrorIs(t, session.ValidatePurpose(jwtx.PurposeReset), jwtx.ErrPurpose)

	require.NoError(t, reset.ValidatePurpose(jwtx.PurposeReset))
	require.ErrorIs(t, reset.ValidatePurpose(jwtx.PurposeSession), jwtx.ErrPurpose)

	empty := &jwtx.Claims{}
	require.ErrorIs(t, empty.ValidatePurpose(jwtx.PurposeSession), jwtx.ErrPurpose)
}

func TestNewClaims(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	session := jwtx.NewSessionClaims("u1", "a@x.com", "admin", "Alice", exampleIssuer, jwtx.DefaultSessionTTL, now)
	require.Equal(t, "u1", session.Subject)
	require.Equal(t, "admin", session.Role)
	require.True(t, now.Add(8*time.Hour).Equal(session.ExpiresAt.Time))
	require.NotEmpty(t, session.ID)

	reset := jwtx.NewResetClaims("a@x.com", exampleIssuer, jwtx.DefaultResetTTL, now)
	require.Empty(t, reset.Subject)
	require.Empty(t, reset.Role)
	require.True(t, now.Add(time.Hour).Equal(reset.ExpiresAt.Time))

	other := jwtx.NewResetClaims("a@x.com", exampleIssuer, jwtx.DefaultResetTTL, now)
	require.NotEqual(t, reset.ID, other.ID, "jti keeps same-second tokens distinct")
}

func TestValidateExpiry(t *testing.T) {
	now := time.Now().UTC()

	t.Run("valid token", func(t *testing.T) {
		claims := &jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(1 * time.Minute)),
			},
		}
		require.NoError(t, claims.ValidateExpiry())
	})

	t.Run("expired token", func(t *testing.T) {
		claims := &jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(-1 * time.Minute)),
			},
		}
		require.ErrorIs(t, claims.ValidateExpiry(), jwtx.ErrExpired)
	})

	t.Run("not yet valid", func(t *testing.T) {
		claims := &jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				NotBefore: jwt.NewNumericDate(now.Add(1 * time.Minute)),
			},
		}
		require.ErrorIs(t, claims.ValidateExpiry(), jwtx.ErrNotYetValid)
	})

	t.Run("explicit clock at expiry", func(t *testing.T) {
		exp := now.Truncate(time.Second)
		claims := &jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)},
		}
		require.ErrorIs(t, claims.ValidateExpiryAt(exp), jwtx.ErrExpired)
		require.NoError(t, claims.ValidateExpiryAt(exp.Add(-time.Second)))
	})
}
