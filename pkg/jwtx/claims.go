package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token purposes. A token minted for one purpose is never accepted for the
// other, even though both are signed with the same key.
const (
	PurposeSession = "session"
	PurposeReset   = "reset"
)

// Default token lifetimes.
const (
	// DefaultSessionTTL bounds a login session. There is no refresh flow, so
	// this is how long a user stays signed in.
	DefaultSessionTTL = 8 * time.Hour

	// DefaultResetTTL bounds how long a password reset link stays usable.
	DefaultResetTTL = time.Hour
)

// Claims is the payload carried by every token the service signs.
type Claims struct {
	jwt.RegisteredClaims

	// Purpose is either PurposeSession or PurposeReset.
	Purpose string `json:"purpose"`

	// Email of the user the token was issued to.
	Email string `json:"email,omitempty"`

	// Role at the time of issue ("voter" or "admin"). Session tokens only.
	Role string `json:"role,omitempty"`

	// Name is the display name. Session tokens only.
	Name string `json:"name,omitempty"`
}

// NewSessionClaims builds the claims for a bearer session token.
func NewSessionClaims(
	userID, email, role, name string,
	issuer string,
	ttl time.Duration,
	now time.Time,
) Claims {
	return Claims{
		RegisteredClaims: registered(userID, issuer, ttl, now),
		Purpose:          PurposeSession,
		Email:            email,
		Role:             role,
		Name:             name,
	}
}

// NewResetClaims builds the claims for a password reset token. The subject is
// left empty; reset tokens identify the account by email only.
func NewResetClaims(email, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: registered("", issuer, ttl, now),
		Purpose:          PurposeReset,
		Email:            email,
	}
}

func registered(subject, issuer string, ttl time.Duration, now time.Time) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		ID:        NewJTI(),
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim. It keeps two
// tokens minted in the same second for the same user distinct.
func NewJTI() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil
	}
	if c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidatePurpose rejects tokens minted for a different purpose.
func (c *Claims) ValidatePurpose(expected string) error {
	if c.Purpose != expected {
		return ErrPurpose
	}
	return nil
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't before nbf.
func (c *Claims) ValidateExpiry() error {
	return c.ValidateExpiryAt(time.Now().UTC())
}

// ValidateExpiryAt is ValidateExpiry against an explicit clock.
func (c *Claims) ValidateExpiryAt(now time.Time) error {
	if c.ExpiresAt != nil && !now.Before(c.ExpiresAt.Time) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}
	return nil
}
