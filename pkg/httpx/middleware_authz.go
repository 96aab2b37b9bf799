package httpx

import (
	"net/http"

	"github.com/aussiebroadwan/ballotbox/pkg/slogx"
)

// MsgForbidden is returned when a signed in user lacks the required role.
const MsgForbidden = "Admin access required"

// RoleCheck reports whether a caller holding role may access a resource that
// requires the role named by required.
type RoleCheck func(role, required string) bool

// RequireRole must run after AuthnMiddleware. A caller whose role fails check
// gets 403; a missing or bad token is 401 from AuthnMiddleware.
func RequireRole(required string, check RoleCheck) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if _, ok := ClaimsFromContext(ctx); !ok {
				writeBearerError(w, MsgTokenRequired)
				return
			}

			role := roleFromContext(ctx)
			if !check(role, required) {
				slogx.FromContext(ctx).Warn("role check failed", "required", required)
				w.Header().Set("WWW-Authenticate", `Bearer error="insufficient_scope", scope="`+required+`"`)
				WriteError(w, http.StatusForbidden, MsgForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
