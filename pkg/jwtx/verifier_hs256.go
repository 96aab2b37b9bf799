package jwtx

import "github.com/golang-jwt/jwt/v5"

// NewVerifierHS256 returns a Verifier for tokens signed with the shared HMAC
// secret. An empty issuer disables the issuer check.
func NewVerifierHS256(secret []byte, issuer string) Verifier {
	return &keyVerifier{
		method: jwt.SigningMethodHS256,
		key:    append([]byte(nil), secret...),
		issuer: issuer,
	}
}
