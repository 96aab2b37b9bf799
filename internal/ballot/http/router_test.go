package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/ballotbox/internal/ballot/domain"
	ballothttp "github.com/aussiebroadwan/ballotbox/internal/ballot/http"
	"github.com/aussiebroadwan/ballotbox/internal/ballot/service"
	"github.com/aussiebroadwan/ballotbox/internal/ballot/store/drivers/sqlite"
	"github.com/aussiebroadwan/ballotbox/pkg/ballotsdk"
	"github.com/aussiebroadwan/ballotbox/pkg/cryptox"
	"github.com/aussiebroadwan/ballotbox/pkg/httpx"
	"github.com/aussiebroadwan/ballotbox/pkg/jwtx"
	"github.com/aussiebroadwan/ballotbox/pkg/slogx"
	"github.com/stretchr/testify/require"
)

const testIssuer = "https://ballot.test"

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "ballot-http")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	// Every request in these tests comes from the same address.
	httpx.StrictLimit = httpx.PublicLimit
	httpx.ModerateLimit = httpx.PublicLimit
	httpx.LenientLimit = httpx.PublicLimit

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

type captureNotifier struct{ token string }

func (n *captureNotifier) SendPasswordReset(_ context.Context, _ domain.User, token string, _ time.Time) error {
	n.token = token
	return nil
}

type harness struct {
	router   *ballothttp.Router
	notifier *captureNotifier
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	st, err := sqlite.NewStore(sqlite.DSN(filepath.Join(t.TempDir(), "ballot.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	signer, err := jwtx.NewSignerHS256("", testSecret)
	require.NoError(t, err)
	verifier := signer.Verifier(testIssuer)

	tokens := &service.TokenService{Signer: signer, Verifier: verifier, Store: st, Issuer: testIssuer}
	notifier := &captureNotifier{}

	r := ballothttp.NewRouter("test", st, slogx.Discard())
	r.TokenService = tokens
	r.AccountService = &service.AccountService{Store: st, Tokens: tokens, Notifier: notifier}
	r.RegistryService = &service.RegistryService{Store: st}
	r.BallotService = &service.BallotService{Store: st}
	r.ResultsService = &service.ResultsService{Store: st}
	r.UserService = &service.UserService{Store: st}
	r.ApplyRoutes()

	return &harness{router: r, notifier: notifier}
}

func (h *harness) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.RemoteAddr = "192.0.2.10:40000"
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	return rec
}

func (h *harness) register(t *testing.T, name, email, role string) ballotsdk.AuthResponse {
	t.Helper()
	rec := h.do(t, http.MethodPost, "/auth/register", "", ballotsdk.RegisterRequest{
		Name: name, Email: email, Password: "pw123456", Role: role,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[ballotsdk.AuthResponse](t, rec)
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func errorOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[ballotsdk.ErrorResponse](t, rec).Error
}

func TestVotingScenario(t *testing.T) {
	h := newHarness(t)

	admin := h.register(t, "Root", "root@example.com", "admin")
	require.Equal(t, "admin", admin.User.Role)
	voter := h.register(t, "A", "a@x.com", "")
	require.Equal(t, "registered", voter.Message)
	require.Equal(t, "voter", voter.User.Role)

	rec := h.do(t, http.MethodPost, "/elections/create", admin.Token, ballotsdk.CreateElectionRequest{Title: "Board Vote"})
	require.Equal(t, http.StatusCreated, rec.Code)
	electionID := decode[ballotsdk.CreatedResponse](t, rec).ID

	var alice, bob string
	for name, dst := range map[string]*string{"Alice": &alice, "Bob": &bob} {
		rec := h.do(t, http.MethodPost, "/candidates/add", admin.Token, ballotsdk.AddCandidateRequest{
			ElectionID: electionID, Name: name,
		})
		require.Equal(t, http.StatusCreated, rec.Code)
		*dst = decode[ballotsdk.CreatedResponse](t, rec).ID
	}

	rec = h.do(t, http.MethodGet, "/candidates/"+electionID, voter.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decode[[]ballotsdk.Candidate](t, rec), 2)

	rec = h.do(t, http.MethodPost, "/vote", voter.Token, ballotsdk.CastVoteRequest{ElectionID: electionID, CandidateID: alice})
	require.Equal(t, http.StatusCreated, rec.Code)
	cast := decode[ballotsdk.CastVoteResponse](t, rec)
	require.Equal(t, "Your vote was recorded", cast.Message)
	require.NotEmpty(t, cast.VoteID)

	rec = h.do(t, http.MethodPost, "/vote", voter.Token, ballotsdk.CastVoteRequest{ElectionID: electionID, CandidateID: bob})
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, "You have already voted in this election", errorOf(t, rec))

	rec = h.do(t, http.MethodGet, "/results/"+electionID, voter.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[ballotsdk.ResultsResponse](t, rec)
	require.Equal(t, electionID, res.ElectionID)
	require.Len(t, res.Results, 2)
	require.Equal(t, "Alice", res.Results[0].CandidateName)
	require.EqualValues(t, 1, res.Results[0].TotalVotes)
	require.Equal(t, "Bob", res.Results[1].CandidateName)
	require.EqualValues(t, 0, res.Results[1].TotalVotes)

	rec = h.do(t, http.MethodGet, "/all-votes", voter.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	votes := decode[[]ballotsdk.Vote](t, rec)
	require.Len(t, votes, 1)
	require.Equal(t, voter.User.ID, votes[0].VoterID)
}

func TestAuthEndpoints(t *testing.T) {
	h := newHarness(t)
	h.register(t, "Alice", "alice@example.com", "")

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		rec := h.do(t, http.MethodPost, "/auth/register", "", ballotsdk.RegisterRequest{
			Name: "Other", Email: "alice@example.com", Password: "pw123456",
		})
		require.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("admin self registration is forbidden", func(t *testing.T) {
		rec := h.do(t, http.MethodPost, "/auth/register", "", ballotsdk.RegisterRequest{
			Name: "M", Email: "m@example.com", Password: "pw123456", Role: "admin",
		})
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("register validation", func(t *testing.T) {
		rec := h.do(t, http.MethodPost, "/auth/register", "", map[string]string{"email": "x@example.com"})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "name, email and password required", errorOf(t, rec))

		rec = h.do(t, http.MethodPost, "/auth/register", "", ballotsdk.RegisterRequest{
			Name: "X", Email: "not-an-email", Password: "pw123456",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "email must be a valid email address", errorOf(t, rec))
	})

	t.Run("login", func(t *testing.T) {
		rec := h.do(t, http.MethodPost, "/auth/login", "", ballotsdk.LoginRequest{Email: "alice@example.com", Password: "pw123456"})
		require.Equal(t, http.StatusOK, rec.Code)
		out := decode[ballotsdk.AuthResponse](t, rec)
		require.Equal(t, "Login ok", out.Message)
		require.NotEmpty(t, out.Token)
	})

	t.Run("login wrong password", func(t *testing.T) {
		rec := h.do(t, http.MethodPost, "/auth/login", "", ballotsdk.LoginRequest{Email: "alice@example.com", Password: "nope-nope"})
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "Invalid credentials", errorOf(t, rec))
	})

	t.Run("login unknown email", func(t *testing.T) {
		rec := h.do(t, http.MethodPost, "/auth/login", "", ballotsdk.LoginRequest{Email: "ghost@example.com", Password: "pw123456"})
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Equal(t, "User not found", errorOf(t, rec))
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(`{"email":`))
		rec := httptest.NewRecorder()
		h.router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "invalid JSON body", errorOf(t, rec))
	})
}

func TestPasswordResetFlow(t *testing.T) {
	h := newHarness(t)
	sess := h.register(t, "Alice", "alice@example.com", "")

	rec := h.do(t, http.MethodPost, "/auth/forgot-password", "", ballotsdk.ForgotPasswordRequest{Email: "ghost@example.com"})
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Email not found", errorOf(t, rec))

	rec = h.do(t, http.MethodPost, "/auth/forgot-password", "", ballotsdk.ForgotPasswordRequest{})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Email required", errorOf(t, rec))

	rec = h.do(t, http.MethodPost, "/auth/forgot-password", "", ballotsdk.ForgotPasswordRequest{Email: "alice@example.com"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Password reset instructions sent", decode[ballotsdk.MessageResponse](t, rec).Message)
	resetToken := h.notifier.token

	// A reset token is not a session.
	rec = h.do(t, http.MethodGet, "/elections", resetToken, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// A session token is not a reset token.
	rec = h.do(t, http.MethodPost, "/auth/reset-password", "", ballotsdk.ResetPasswordRequest{
		ResetToken: sess.Token, NewPassword: "newpass1",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = h.do(t, http.MethodPost, "/auth/reset-password", "", ballotsdk.ResetPasswordRequest{
		ResetToken: resetToken, NewPassword: "newpass1",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Password reset successful", decode[ballotsdk.MessageResponse](t, rec).Message)

	rec = h.do(t, http.MethodPost, "/auth/reset-password", "", ballotsdk.ResetPasswordRequest{
		ResetToken: resetToken, NewPassword: "newpass2",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Invalid or expired reset token", errorOf(t, rec))

	rec = h.do(t, http.MethodPost, "/auth/login", "", ballotsdk.LoginRequest{Email: "alice@example.com", Password: "newpass1"})
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminOnlyRoutes(t *testing.T) {
	h := newHarness(t)
	h.register(t, "Root", "root@example.com", "admin")
	voter := h.register(t, "Vic", "vic@example.com", "")

	routes := []struct {
		method, path string
		body         any
	}{
		{http.MethodGet, "/users", nil},
		{http.MethodPost, "/elections/create", ballotsdk.CreateElectionRequest{Title: "X"}},
		{http.MethodPost, "/candidates/add", ballotsdk.AddCandidateRequest{ElectionID: "e", Name: "n"}},
		{http.MethodDelete, "/election/missing", nil},
		{http.MethodDelete, "/candidate/missing", nil},
		{http.MethodDelete, "/user/missing", nil},
		{http.MethodPost, "/make-admin", ballotsdk.UserIDRequest{ID: voter.User.ID}},
		{http.MethodPost, "/make-voter", ballotsdk.UserIDRequest{ID: voter.User.ID}},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			rec := h.do(t, rt.method, rt.path, voter.Token, rt.body)
			require.Equal(t, http.StatusForbidden, rec.Code)
			require.Equal(t, httpx.MsgForbidden, errorOf(t, rec))

			rec = h.do(t, rt.method, rt.path, "", rt.body)
			require.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestAdminOperations(t *testing.T) {
	h := newHarness(t)
	admin := h.register(t, "Root", "root@example.com", "admin")
	voter := h.register(t, "Vic", "vic@example.com", "")

	t.Run("create election requires title", func(t *testing.T) {
		rec := h.do(t, http.MethodPost, "/elections/create", admin.Token, ballotsdk.CreateElectionRequest{})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "Title is required", errorOf(t, rec))
	})

	t.Run("candidate for unknown election", func(t *testing.T) {
		rec := h.do(t, http.MethodPost, "/candidates/add", admin.Token, ballotsdk.AddCandidateRequest{ElectionID: "missing", Name: "Ada"})
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("deleting what is not there", func(t *testing.T) {
		require.Equal(t, http.StatusNotFound, h.do(t, http.MethodDelete, "/election/missing", admin.Token, nil).Code)
		require.Equal(t, http.StatusNotFound, h.do(t, http.MethodDelete, "/candidate/missing", admin.Token, nil).Code)
		require.Equal(t, http.StatusNotFound, h.do(t, http.MethodDelete, "/user/missing", admin.Token, nil).Code)
	})

	t.Run("promote and demote", func(t *testing.T) {
		rec := h.do(t, http.MethodPost, "/make-admin", admin.Token, ballotsdk.UserIDRequest{ID: voter.User.ID})
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "User promoted to admin", decode[ballotsdk.MessageResponse](t, rec).Message)

		rec = h.do(t, http.MethodPost, "/make-voter", admin.Token, ballotsdk.UserIDRequest{ID: voter.User.ID})
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "User demoted to voter", decode[ballotsdk.MessageResponse](t, rec).Message)

		rec = h.do(t, http.MethodPost, "/make-admin", admin.Token, ballotsdk.UserIDRequest{})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "User ID required", errorOf(t, rec))

		rec = h.do(t, http.MethodPost, "/make-admin", admin.Token, ballotsdk.UserIDRequest{ID: "missing"})
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("list users hides secrets", func(t *testing.T) {
		rec := h.do(t, http.MethodGet, "/users", admin.Token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.NotContains(t, rec.Body.String(), "password")
		require.Len(t, decode[[]ballotsdk.User](t, rec), 2)
	})

	t.Run("delete election cascades", func(t *testing.T) {
		rec := h.do(t, http.MethodPost, "/elections/create", admin.Token, ballotsdk.CreateElectionRequest{Title: "Gone"})
		eid := decode[ballotsdk.CreatedResponse](t, rec).ID
		rec = h.do(t, http.MethodPost, "/candidates/add", admin.Token, ballotsdk.AddCandidateRequest{ElectionID: eid, Name: "Ada"})
		cid := decode[ballotsdk.CreatedResponse](t, rec).ID
		require.Equal(t, http.StatusCreated, h.do(t, http.MethodPost, "/vote", voter.Token, ballotsdk.CastVoteRequest{ElectionID: eid, CandidateID: cid}).Code)

		rec = h.do(t, http.MethodDelete, "/election/"+eid, admin.Token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "Election deleted", decode[ballotsdk.MessageResponse](t, rec).Message)

		rec = h.do(t, http.MethodGet, "/candidates/"+eid, voter.Token, nil)
		require.JSONEq(t, `[]`, rec.Body.String())
		rec = h.do(t, http.MethodGet, "/all-votes", voter.Token, nil)
		require.JSONEq(t, `[]`, rec.Body.String())
	})
}

func TestVoteErrors(t *testing.T) {
	h := newHarness(t)
	voter := h.register(t, "Vic", "vic@example.com", "")

	rec := h.do(t, http.MethodPost, "/vote", voter.Token, ballotsdk.CastVoteRequest{ElectionID: "e"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Election ID and Candidate ID required", errorOf(t, rec))

	rec = h.do(t, http.MethodPost, "/vote", voter.Token, ballotsdk.CastVoteRequest{ElectionID: "e", CandidateID: "c"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Invalid election or candidate", errorOf(t, rec))

	rec = h.do(t, http.MethodGet, "/results/missing", voter.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"election_id":"missing","results":[]}`, rec.Body.String())
}

func TestVoteAfterAccountDeleted(t *testing.T) {
	h := newHarness(t)
	admin := h.register(t, "Root", "root@example.com", "admin")
	voter := h.register(t, "Vic", "vic@example.com", "")

	rec := h.do(t, http.MethodPost, "/elections/create", admin.Token, ballotsdk.CreateElectionRequest{Title: "Board Vote"})
	eid := decode[ballotsdk.CreatedResponse](t, rec).ID
	rec = h.do(t, http.MethodPost, "/candidates/add", admin.Token, ballotsdk.AddCandidateRequest{ElectionID: eid, Name: "Ada"})
	cid := decode[ballotsdk.CreatedResponse](t, rec).ID

	rec = h.do(t, http.MethodDelete, "/user/"+voter.User.ID, admin.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// The session token is still signed and unexpired.
	rec = h.do(t, http.MethodPost, "/vote", voter.Token, ballotsdk.CastVoteRequest{ElectionID: eid, CandidateID: cid})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Account no longer exists", errorOf(t, rec))

	rec = h.do(t, http.MethodGet, "/results/"+eid, admin.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[ballotsdk.ResultsResponse](t, rec)
	require.Len(t, res.Results, 1)
	require.EqualValues(t, 0, res.Results[0].TotalVotes)

	rec = h.do(t, http.MethodGet, "/all-votes", admin.Token, nil)
	require.JSONEq(t, `[]`, rec.Body.String())
}

func TestHealthEndpoints(t *testing.T) {
	h := newHarness(t)

	rec := h.do(t, http.MethodGet, "/livez", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", decode[ballotsdk.HealthResponse](t, rec).Status)

	rec = h.do(t, http.MethodGet, "/readyz", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	health := decode[ballotsdk.HealthResponse](t, rec)
	require.Equal(t, "ok", health.Status)
	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Database)
	require.Equal(t, "ok", health.Checks.Signer)

	require.NotEmpty(t, rec.Header().Get(slogx.RequestIDHeader))
}

func TestLoginRateLimit(t *testing.T) {
	saved := httpx.StrictLimit
	httpx.StrictLimit = httpx.RateLimitConfig{RequestsPerWindow: 2, Window: time.Minute, Burst: 2}
	t.Cleanup(func() { httpx.StrictLimit = saved })

	h := newHarness(t)
	login := ballotsdk.LoginRequest{Email: "ghost@example.com", Password: "pw123456"}

	require.Equal(t, http.StatusNotFound, h.do(t, http.MethodPost, "/auth/login", "", login).Code)
	require.Equal(t, http.StatusNotFound, h.do(t, http.MethodPost, "/auth/login", "", login).Code)

	rec := h.do(t, http.MethodPost, "/auth/login", "", login)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.Equal(t, httpx.MsgRateLimited, errorOf(t, rec))
}
