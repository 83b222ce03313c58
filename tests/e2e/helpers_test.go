//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/saned/saned-backend/internal/adapter/postgres"
	matchrepo "github.com/saned/saned-backend/internal/adapter/postgres/match"
	"github.com/saned/saned-backend/internal/adapter/postgres/testhelper"
	userrepo "github.com/saned/saned-backend/internal/adapter/postgres/user"
	"github.com/saned/saned-backend/internal/app"
	"github.com/saned/saned-backend/internal/auth"
	"github.com/saned/saned-backend/internal/config"
	"github.com/saned/saned-backend/internal/domain"
	"github.com/saned/saned-backend/internal/metrics"
	"github.com/saned/saned-backend/internal/service/match"
	"github.com/saned/saned-backend/internal/transport/middleware"
	"github.com/saned/saned-backend/internal/transport/rest"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *auth.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(bytes.TrimRight(p, "\n")))
	return len(p), nil
}

// setupTestServer wires the production router against a migrated
// PostgreSQL container.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, &slog.HandlerOptions{Level: slog.LevelDebug}))

	users := userrepo.New(pool)
	txm := postgres.NewTxManager(pool)
	svc := match.NewService(logger, users, matchrepo.New(pool), txm, metrics.NewRecorder())

	jwtManager := auth.NewJWTManager("e2e-test-secret-at-least-32-characters!!", "saned-e2e", time.Hour)

	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	handler := app.NewRouter(app.RouterDeps{
		Logger: logger,
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,PUT,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
			MaxAge:         600,
		},
		Metrics:     config.MetricsConfig{Enabled: true, Path: "/metrics"},
		Health:      rest.NewHealthHandler("e2e", map[string]rest.Pinger{"database": pool}),
		Matches:     rest.NewMatchHandler(svc, logger),
		Auth:        middleware.Auth(jwtManager),
		RateLimiter: limiter,
	})

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client(), Pool: pool, jwt: jwtManager}
}

// tokenFor returns a valid bearer token for u.
func (ts *testServer) tokenFor(t *testing.T, u domain.User) string {
	t.Helper()
	issued, err := ts.jwt.GenerateAccessToken(u.ID, u.Role)
	require.NoError(t, err)
	return issued.Token
}

// do sends a request and returns the status code and raw body.
func (ts *testServer) do(t *testing.T, method, path, token string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, ts.URL+path, rdr)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

// matchBody mirrors the REST match representation.
type matchBody struct {
	ID          string   `json:"id"`
	CandidateID string   `json:"candidateId"`
	Score       float64  `json:"matchScore"`
	SharedTags  []string `json:"sharedTags"`
	Highlight   string   `json:"highlight"`
	Preference  string   `json:"preference"`
	Candidate   *struct {
		FirstName string `json:"firstName"`
	} `json:"candidate"`
}

func decodeMatches(t *testing.T, raw []byte) []matchBody {
	t.Helper()
	var out []matchBody
	require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	return out
}

func decodeMatch(t *testing.T, raw []byte) matchBody {
	t.Helper()
	var out matchBody
	require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	return out
}

func idOf(u domain.User) string { return u.ID.String() }
