package ballot_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/ballotbox/internal/ballot/app"
	"github.com/aussiebroadwan/ballotbox/pkg/ballotsdk"
	"github.com/aussiebroadwan/ballotbox/pkg/httpx"
	"github.com/aussiebroadwan/ballotbox/pkg/slogx"
	"github.com/stretchr/testify/require"
)

/*
 * Common constants and helpers for the ballot service end-to-end tests.
 * Each test gets its own application and database, served over a real
 * HTTP listener and driven through ballotsdk.
 */

const (
	adminName     = "Returning Officer"
	adminEmail    = "ro@example.com"
	adminPassword = "Admin123!"
	voterPassword = "Voter123!"
)

// TestMain raises the rate limits. Tests make many rapid requests from one
// address, which would otherwise hit the production profiles.
func TestMain(m *testing.M) {
	for _, profile := range []string{"STRICT", "MODERATE", "LENIENT", "PUBLIC"} {
		_ = os.Setenv("RATELIMIT_"+profile+"_REQUESTS", "10000")
		_ = os.Setenv("RATELIMIT_"+profile+"_WINDOW_SEC", "60")
		_ = os.Setenv("RATELIMIT_"+profile+"_BURST", "10000")
	}
	httpx.ApplyRateLimitEnv()

	os.Exit(m.Run())
}

// logBuffer collects log output written from request goroutines.
type logBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *logBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

// resetTokens returns every reset token the dev notifier logged for userID,
// oldest first.
func (b *logBuffer) resetTokens(userID string) []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	var tokens []string
	sc := bufio.NewScanner(bytes.NewReader(b.buf.Bytes()))
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		var line map[string]any
		if err := json.Unmarshal(sc.Bytes(), &line); err != nil {
			continue
		}
		if line["msg"] != "password reset issued" || line["user_id"] != userID {
			continue
		}
		if tok, ok := line["reset_token"].(string); ok {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// ballotServer is one running instance of the service.
type ballotServer struct {
	client *ballotsdk.Client
	logs   *logBuffer
}

// testConfig is a dev configuration on a fresh sqlite database.
func testConfig(t *testing.T) app.Config {
	t.Helper()
	dir := t.TempDir()

	return app.Config{
		Issuer:               "ballotbox-e2e",
		TokenAlgorithm:       "HS256",
		TokenSecret:          "e2e-secret-0123456789abcdef0123456789",
		SigningKeyFile:       filepath.Join(dir, "signing.pem"),
		SessionTTL:           time.Hour,
		ResetTTL:             15 * time.Minute,
		DatabaseDriver:       "sqlite",
		DatabaseFile:         filepath.Join(dir, "ballot.db"),
		PepperFile:           filepath.Join(dir, "pepper"),
		Env:                  "dev",
		LogLevel:             "info",
		LogFormat:            "json",
		Port:                 8080,
		ShutdownGracePeriod:  5 * time.Second,
		HousekeepingInterval: time.Hour,
	}
}

// startServer boots the application from cfg behind an httptest listener.
func startServer(t *testing.T, cfg app.Config) *ballotServer {
	t.Helper()
	require.NoError(t, cfg.Validate())

	logs := &logBuffer{}
	logger := slogx.New(slogx.Config{
		Service: "ballot-e2e",
		Version: app.BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  "json",
		Output:  logs,
	})

	application, err := app.New(context.Background(), cfg, logger)
	require.NoError(t, err)

	srv := httptest.NewServer(application.Handler())
	t.Cleanup(func() {
		srv.Close()
		_ = application.Close()
	})

	return &ballotServer{
		client: ballotsdk.NewClient(srv.URL),
		logs:   logs,
	}
}

// setupBallotServer starts a server on sqlite with the default test config.
func setupBallotServer(t *testing.T) *ballotServer {
	t.Helper()
	return startServer(t, testConfig(t))
}

// registerAdmin signs up the first account, which is allowed to be admin.
func registerAdmin(t *testing.T, client *ballotsdk.Client) *ballotsdk.Session {
	t.Helper()
	s, err := client.Register(t.Context(), ballotsdk.RegisterRequest{
		Name:     adminName,
		Email:    adminEmail,
		Password: adminPassword,
		Role:     "admin",
	})
	require.NoError(t, err)
	require.Equal(t, "admin", s.User().Role)
	return s
}

// registerVoters signs up n voters named voter1..voterN.
func registerVoters(t *testing.T, client *ballotsdk.Client, n int) []*ballotsdk.Session {
	t.Helper()
	sessions := make([]*ballotsdk.Session, 0, n)
	for i := 1; i <= n; i++ {
		s, err := client.Register(t.Context(), ballotsdk.RegisterRequest{
			Name:     fmt.Sprintf("Voter %d", i),
			Email:    fmt.Sprintf("voter%d@example.com", i),
			Password: voterPassword,
		})
		require.NoError(t, err)
		require.Equal(t, "voter", s.User().Role)
		sessions = append(sessions, s)
	}
	return sessions
}

// setupElection creates an election with the named candidates and returns
// the election id and candidate ids in order.
func setupElection(t *testing.T, admin *ballotsdk.Session, title string, names ...string) (string, []string) {
	t.Helper()
	electionID, err := admin.CreateElection(t.Context(), ballotsdk.CreateElectionRequest{Title: title})
	require.NoError(t, err)

	ids := make([]string, 0, len(names))
	for _, name := range names {
		id, err := admin.AddCandidate(t.Context(), electionID, name)
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return electionID, ids
}

// assertStatus verifies err is an API error with the given status and message.
func assertStatus(t *testing.T, err error, status int, message string) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, status, ballotsdk.StatusCode(err), "unexpected error: %v", err)

	var apiErr *ballotsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, message, apiErr.Message)
}

// assertHealthy verifies a health check response is OK.
func assertHealthy(t *testing.T, health *ballotsdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}

// tally flattens results into name -> votes, keeping the order separately.
func tally(results *ballotsdk.ResultsResponse) ([]string, []int64) {
	names := make([]string, 0, len(results.Results))
	counts := make([]int64, 0, len(results.Results))
	for _, row := range results.Results {
		names = append(names, row.CandidateName)
		counts = append(counts, row.TotalVotes)
	}
	return names, counts
}
