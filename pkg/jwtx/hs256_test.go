package jwtx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/ballotbox/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("a-test-secret-that-is-long-enough-for-hs256")

func newHS256(t *testing.T) *jwtx.HS256Signer {
	t.Helper()

	signer, err := jwtx.NewSignerHS256("", testSecret)
	require.NoError(t, err)
	return signer.(*jwtx.HS256Signer)
}

func TestHS256SignAndVerify(t *testing.T) {
	signer := newHS256(t)
	require.Equal(t, "HS256", signer.Alg())

	claims := jwtx.NewSessionClaims("user-1", "a@x.com", "admin", "A", exampleIssuer, time.Hour, time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	parsed, err := jwtx.NewVerifierHS256(testSecret, exampleIssuer).Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", parsed.Subject)
	require.Equal(t, "admin", parsed.Role)
	require.Equal(t, jwtx.PurposeSession, parsed.Purpose)
}

func TestHS256RejectsShortSecret(t *testing.T) {
	_, err := jwtx.NewSignerHS256("", []byte("short"))
	require.Error(t, err)

	_, err = jwtx.NewSignerHS256("", nil)
	require.Error(t, err)
}

func TestHS256VerifyFailures(t *testing.T) {
	signer := newHS256(t)
	verifier := signer.Verifier(exampleIssuer)
	now := time.Now().UTC()

	t.Run("expired", func(t *testing.T) {
		token, err := signer.Sign(jwtx.NewResetClaims("a@x.com", exampleIssuer, time.Hour, now.Add(-2*time.Hour)))
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := jwtx.NewSignerHS256("", []byte(strings.Repeat("z", 40)))
		require.NoError(t, err)
		token, err := other.Sign(jwtx.NewResetClaims("a@x.com", exampleIssuer, time.Hour, now))
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})

	t.Run("tampered payload", func(t *testing.T) {
		token, err := signer.Sign(jwtx.NewSessionClaims("u", "a@x.com", "voter", "A", exampleIssuer, time.Hour, now))
		require.NoError(t, err)

		forged, err := signer.Sign(jwtx.NewSessionClaims("u", "a@x.com", "admin", "A", exampleIssuer, time.Hour, now))
		require.NoError(t, err)

		// Graft the admin payload onto the voter signature.
		p1 := strings.Split(token, ".")
		p2 := strings.Split(forged, ".")
		_, err = verifier.Verify(p1[0] + "." + p2[1] + "." + p1[2])
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})

	t.Run("alg none", func(t *testing.T) {
		claims := jwtx.NewSessionClaims("u", "a@x.com", "admin", "A", exampleIssuer, time.Hour, now)
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		require.Error(t, err)
	})

	t.Run("missing expiry", func(t *testing.T) {
		claims := jwtx.Claims{Purpose: jwtx.PurposeSession}
		claims.Issuer = exampleIssuer
		token, err := signer.Sign(claims)
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := verifier.Verify("not.a.jwt")
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})
}
