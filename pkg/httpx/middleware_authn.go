package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/ballotbox/pkg/jwtx"
	"github.com/aussiebroadwan/ballotbox/pkg/slogx"
)

// Messages returned for missing or unusable bearer tokens.
const (
	MsgTokenRequired = "Authorization token required"
	MsgTokenInvalid  = "Invalid or expired token"
)

// SessionVerifier turns a bearer token into the claims of a signed in user.
// Any error means the token is unusable as a session.
type SessionVerifier interface {
	VerifySession(ctx context.Context, token string) (jwtx.Claims, error)
}

// SessionVerifierFunc adapts a plain function to SessionVerifier.
type SessionVerifierFunc func(ctx context.Context, token string) (jwtx.Claims, error)

func (f SessionVerifierFunc) VerifySession(ctx context.Context, token string) (jwtx.Claims, error) {
	return f(ctx, token)
}

// AuthnMiddleware requires a bearer token in the Authorization header that v
// accepts as a session.
func AuthnMiddleware(v SessionVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w, MsgTokenRequired)
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))

			claims, err := v.VerifySession(ctx, raw)
			if err != nil {
				slogx.FromContext(ctx).Warn("session token rejected", "err", err)
				writeBearerError(w, MsgTokenInvalid)
				return
			}

			ctx = contextWithClaims(ctx, claims)
			ctx = slogx.WithUser(ctx, claims.Subject, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RFC 6750 style challenge, with the usual {"error": ...} body.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteError(w, http.StatusUnauthorized, desc)
}
