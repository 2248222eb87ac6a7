//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/apper-apps/feedbackhub-driver-pixel/internal/app"
	"github.com/apper-apps/feedbackhub-driver-pixel/internal/config"
	"github.com/apper-apps/feedbackhub-driver-pixel/internal/service/board"
	"github.com/apper-apps/feedbackhub-driver-pixel/internal/transport/middleware"
)

// testServer wraps the full HTTP stack on a freshly seeded mock backend.
type testServer struct {
	URL    string
	Client *http.Client
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(bytes.TrimRight(p, "\n")))
	return len(p), nil
}

// setupTestServer starts a server whose write limiter allows writesPerMinute
// board mutations per session; 0 disables it.
func setupTestServer(t *testing.T, writesPerMinute int) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, &slog.HandlerOptions{Level: slog.LevelWarn}))
	cfg := &config.Config{
		Store: config.StoreConfig{Backend: config.BackendMock},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
			AllowedHeaders: "Content-Type,X-Session-Id",
		},
		Board: config.BoardConfig{SessionTTL: time.Minute, SweepInterval: time.Minute},
	}

	repos, err := app.OpenRepos(context.Background(), cfg, logger)
	require.NoError(t, err)
	t.Cleanup(repos.Close)

	boards := board.NewRegistry(logger, repos.Ideas, repos.Activities, cfg.Board.SessionTTL)
	var limiter *middleware.RateLimiter
	if writesPerMinute > 0 {
		limiter = middleware.NewRateLimiter(writesPerMinute)
	}

	srv := httptest.NewServer(app.NewHandler(cfg, repos, boards, limiter, logger))
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client()}
}

func newSession() string {
	return uuid.NewString()
}

// do sends a JSON request as session and decodes the JSON response into out
// when out is non-nil. It returns the status code.
func (ts *testServer) do(t *testing.T, session, method, path string, body, out any) int {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, ts.URL+path, rd)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if session != "" {
		req.Header.Set(middleware.SessionHeader, session)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

type ideaView struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Status   string `json:"status"`
	Votes    int    `json:"votes"`
	HasVoted bool   `json:"hasVoted"`
}

type boardView struct {
	Ideas      []ideaView `json:"ideas"`
	Total      int        `json:"total"`
	SearchTerm string     `json:"searchTerm"`
	Filters    struct {
		Status   string `json:"status"`
		Category string `json:"category"`
		Sort     string `json:"sort"`
	} `json:"filters"`
	State     string `json:"state"`
	LoadError string `json:"loadError"`
	Empty     string `json:"empty"`
}

type ideaResult struct {
	Idea  ideaView  `json:"idea"`
	Board boardView `json:"board"`
}

type errorView struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Fields  []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"fields"`
	} `json:"error"`
}

func ids(ideas []ideaView) []int64 {
	out := make([]int64, len(ideas))
	for i, v := range ideas {
		out[i] = v.ID
	}
	return out
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
