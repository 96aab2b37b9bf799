package service

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/ballotbox/internal/ballot/domain"
	"github.com/aussiebroadwan/ballotbox/internal/ballot/store"
	"github.com/aussiebroadwan/ballotbox/pkg/cryptox"
	"github.com/aussiebroadwan/ballotbox/pkg/jwtx"
	"github.com/aussiebroadwan/ballotbox/pkg/slogx"
)

// TokenService mints and checks the two token purposes. Session tokens are
// self-contained. Reset tokens are also checked against the fingerprint
// stored on the user, so a newer request or a completed reset retires them
// before their signed expiry.
type TokenService struct {
	Signer     jwtx.Signer
	Verifier   jwtx.Verifier
	Store      store.Store
	Issuer     string
	SessionTTL time.Duration
	ResetTTL   time.Duration

	// Now overrides the clock used when minting and when checking stored
	// reset expiries. Nil means time.Now.
	Now func() time.Time
}

func (s *TokenService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *TokenService) sessionTTL() time.Duration {
	if s.SessionTTL > 0 {
		return s.SessionTTL
	}
	return jwtx.DefaultSessionTTL
}

func (s *TokenService) resetTTL() time.Duration {
	if s.ResetTTL > 0 {
		return s.ResetTTL
	}
	return jwtx.DefaultResetTTL
}

// Ready reports whether tokens can be signed and verified.
func (s *TokenService) Ready() error {
	if s == nil || s.Signer == nil || s.Verifier == nil {
		return errors.New("no signing key loaded")
	}
	tok, err := s.Signer.Sign(jwtx.NewResetClaims("", s.Issuer, time.Minute, time.Now()))
	if err != nil {
		return err
	}
	_, err = s.Verifier.Verify(tok)
	return err
}

// IssueSession signs a bearer token for u.
func (s *TokenService) IssueSession(u domain.User) (string, time.Time, error) {
	claims := jwtx.NewSessionClaims(u.ID, u.Email, string(u.Role), u.Name, s.Issuer, s.sessionTTL(), s.now())
	tok, err := s.Signer.Sign(claims)
	if err != nil {
		return "", time.Time{}, err
	}
	return tok, claims.ExpiresAt.Time, nil
}

// IssueReset signs a password reset token for email. The caller is
// responsible for storing its fingerprint.
func (s *TokenService) IssueReset(email string) (string, time.Time, error) {
	claims := jwtx.NewResetClaims(email, s.Issuer, s.resetTTL(), s.now())
	tok, err := s.Signer.Sign(claims)
	if err != nil {
		return "", time.Time{}, err
	}
	return tok, claims.ExpiresAt.Time, nil
}

// VerifySession checks signature, expiry, issuer and purpose of a bearer
// token and that it names a user. Every failure is ErrInvalidOrExpiredToken;
// the underlying reason is logged only. It satisfies httpx.SessionVerifier.
func (s *TokenService) VerifySession(ctx context.Context, token string) (jwtx.Claims, error) {
	claims, err := s.verifySigned(ctx, token, jwtx.PurposeSession)
	if err != nil {
		return jwtx.Claims{}, err
	}
	if claims.Subject == "" {
		slogx.FromContext(ctx).Info("session token has no subject")
		return jwtx.Claims{}, ErrInvalidOrExpiredToken
	}
	return claims, nil
}

// VerifyReset checks a reset token the same way, then requires it to be the
// one on file for its holder. It returns the account the token belongs to.
func (s *TokenService) VerifyReset(ctx context.Context, token string) (domain.User, error) {
	claims, err := s.verifySigned(ctx, token, jwtx.PurposeReset)
	if err != nil {
		return domain.User{}, err
	}
	return s.resetHolder(ctx, token, claims)
}

func (s *TokenService) verifySigned(ctx context.Context, token, purpose string) (jwtx.Claims, error) {
	l := slogx.FromContext(ctx)

	claims, err := s.Verifier.Verify(token)
	if err != nil {
		l.Debug("token verification failed", "purpose", purpose, "err", err)
		return jwtx.Claims{}, ErrInvalidOrExpiredToken
	}
	if err := claims.ValidatePurpose(purpose); err != nil {
		l.Info("token presented for the wrong purpose", "want", purpose, "got", claims.Purpose)
		return jwtx.Claims{}, ErrInvalidOrExpiredToken
	}
	return claims, nil
}

// resetHolder returns the user a reset token belongs to, provided the token
// is the one currently on file and its stored expiry has not passed.
func (s *TokenService) resetHolder(ctx context.Context, token string, claims jwtx.Claims) (domain.User, error) {
	if claims.Email == "" {
		return domain.User{}, ErrInvalidOrExpiredToken
	}

	u, err := s.Store.Users().GetUserByEmail(ctx, claims.Email)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrInvalidOrExpiredToken
	}
	if err != nil {
		return domain.User{}, err
	}

	if !cryptox.FingerprintMatches(token, u.ResetToken) {
		slogx.FromContext(ctx).Info("reset token is not the current one", "user_id", u.ID)
		return domain.User{}, ErrInvalidOrExpiredToken
	}
	if u.ResetTokenExpires == nil || !s.now().Before(*u.ResetTokenExpires) {
		return domain.User{}, ErrInvalidOrExpiredToken
	}
	return u, nil
}
