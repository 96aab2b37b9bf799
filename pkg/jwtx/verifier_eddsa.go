package jwtx

import (
	"crypto/ed25519"

	"github.com/golang-jwt/jwt/v5"
)

// NewVerifierEdDSA returns a Verifier for tokens signed with the Ed25519
// private key matching pub. An empty issuer disables the issuer check.
func NewVerifierEdDSA(pub ed25519.PublicKey, issuer string) Verifier {
	return &keyVerifier{
		method: jwt.SigningMethodEdDSA,
		key:    pub,
		issuer: issuer,
	}
}
