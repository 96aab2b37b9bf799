package httpx_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/ballotbox/pkg/httpx"
	"github.com/aussiebroadwan/ballotbox/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const testIssuer = "https://ballot.test"

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func signToken(t *testing.T, c jwtx.Claims) string {
	t.Helper()
	s, err := jwtx.NewSignerHS256("", testSecret)
	require.NoError(t, err)
	tok, err := s.Sign(c)
	require.NoError(t, err)
	return tok
}

func sessionToken(t *testing.T, userID, role string) string {
	return signToken(t, jwtx.NewSessionClaims(userID, "u@example.com", role, "U", testIssuer, time.Hour, time.Now()))
}

// sessions accepts signed session tokens from testIssuer.
func sessions() httpx.SessionVerifier {
	v := jwtx.NewVerifierHS256(testSecret, testIssuer)
	return httpx.SessionVerifierFunc(func(_ context.Context, token string) (jwtx.Claims, error) {
		claims, err := v.Verify(token)
		if err != nil {
			return jwtx.Claims{}, err
		}
		return claims, claims.ValidatePurpose(jwtx.PurposeSession)
	})
}

// admin satisfies everything, anything else only itself.
func testCheck(role, required string) bool {
	return role == "admin" || role == required
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body httpx.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func TestAuthnMiddleware(t *testing.T) {

	var gotUser string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser = httpx.UserIDFromContext(r.Context())
		claims, ok := httpx.ClaimsFromContext(r.Context())
		require.True(t, ok)
		require.Equal(t, jwtx.PurposeSession, claims.Purpose)
		w.WriteHeader(http.StatusOK)
	})
	h := httpx.Chain(next, httpx.AuthnMiddleware(sessions()))

	serve := func(authz string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/elections", nil)
		if authz != "" {
			req.Header.Set("Authorization", authz)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	t.Run("valid session token", func(t *testing.T) {
		rec := serve("Bearer " + sessionToken(t, "user-1", "voter"))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "user-1", gotUser)
	})

	t.Run("missing header", func(t *testing.T) {
		rec := serve("")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, httpx.MsgTokenRequired, decodeError(t, rec))
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), "Bearer")
	})

	t.Run("wrong scheme", func(t *testing.T) {
		rec := serve("Basic dXNlcjpwYXNz")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, httpx.MsgTokenRequired, decodeError(t, rec))
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := serve("Bearer not.a.jwt")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, httpx.MsgTokenInvalid, decodeError(t, rec))
	})

	t.Run("expired token", func(t *testing.T) {
		c := jwtx.NewSessionClaims("user-1", "u@example.com", "voter", "U", testIssuer, time.Hour, time.Now().Add(-2*time.Hour))
		rec := serve("Bearer " + signToken(t, c))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, httpx.MsgTokenInvalid, decodeError(t, rec))
	})

	t.Run("reset token is not a session", func(t *testing.T) {
		c := jwtx.NewResetClaims("u@example.com", testIssuer, time.Hour, time.Now())
		rec := serve("Bearer " + signToken(t, c))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, httpx.MsgTokenInvalid, decodeError(t, rec))
	})

	t.Run("foreign issuer", func(t *testing.T) {
		c := jwtx.NewSessionClaims("user-1", "u@example.com", "voter", "U", "https://elsewhere", time.Hour, time.Now())
		rec := serve("Bearer " + signToken(t, c))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("verifier sees the bare token", func(t *testing.T) {
		var got string
		v := httpx.SessionVerifierFunc(func(_ context.Context, token string) (jwtx.Claims, error) {
			got = token
			return jwtx.Claims{}, errors.New("revoked")
		})
		req := httptest.NewRequest(http.MethodGet, "/elections", nil)
		req.Header.Set("Authorization", "Bearer  abc.def.ghi ")
		rec := httptest.NewRecorder()
		httpx.Chain(next, httpx.AuthnMiddleware(v)).ServeHTTP(rec, req)

		require.Equal(t, "abc.def.ghi", got)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, httpx.MsgTokenInvalid, decodeError(t, rec))
	})
}

func TestRequireRole(t *testing.T) {
	h := httpx.Chain(okHandler(),
		httpx.AuthnMiddleware(sessions()),
		httpx.RequireRole("admin", testCheck),
	)

	serve := func(token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	t.Run("admin passes", func(t *testing.T) {
		require.Equal(t, http.StatusOK, serve(sessionToken(t, "a", "admin")).Code)
	})

	t.Run("voter is forbidden", func(t *testing.T) {
		rec := serve(sessionToken(t, "v", "voter"))
		require.Equal(t, http.StatusForbidden, rec.Code)
		require.Equal(t, httpx.MsgForbidden, decodeError(t, rec))
	})

	t.Run("anonymous is unauthenticated not forbidden", func(t *testing.T) {
		rec := serve("")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("without authn in front", func(t *testing.T) {
		bare := httpx.RequireRole("admin", testCheck)(okHandler())
		rec := httptest.NewRecorder()
		bare.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users", nil))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestChainOrder(t *testing.T) {
	var order []string
	mark := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}), mark("first"), mark("second"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"first", "second", "handler"}, order)
}

type createElection struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
}

type register struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=voter admin"`
}

func TestDecodeJSON(t *testing.T) {
	decode := func(body string, dst any) error {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		return httpx.DecodeJSON(httptest.NewRecorder(), req, dst)
	}

	t.Run("valid body", func(t *testing.T) {
		var dst createElection
		require.NoError(t, decode(`{"title":"Board 2026"}`, &dst))
		require.Equal(t, "Board 2026", dst.Title)
	})

	cases := []struct {
		name string
		body string
		dst  any
		msg  string
	}{
		{"empty body", ``, &createElection{}, "request body is required"},
		{"malformed", `{"title":`, &createElection{}, "invalid JSON body"},
		{"missing required", `{"description":"x"}`, &createElection{}, "title is required"},
		{"bad email", `{"email":"nope","password":"longenough"}`, &register{}, "email must be a valid email address"},
		{"short password", `{"email":"a@b.io","password":"short"}`, &register{}, "password must be at least 8 characters"},
		{"bad role", `{"email":"a@b.io","password":"longenough","role":"root"}`, &register{}, "role must be one of: voter admin"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := decode(tc.body, tc.dst)
			var verr *httpx.ValidationError
			require.ErrorAs(t, err, &verr)
			require.Equal(t, tc.msg, verr.Msg)
		})
	}

	t.Run("body too large", func(t *testing.T) {
		big := `{"title":"` + strings.Repeat("a", httpx.MaxBodyBytes) + `"}`
		err := decode(big, &createElection{})
		var verr *httpx.ValidationError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, "request body too large", verr.Msg)
	})
}

func TestWriteJSONHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.WriteMessage(rec, http.StatusCreated, "Your vote was recorded")

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	require.JSONEq(t, `{"message":"Your vote was recorded"}`, rec.Body.String())
}
