package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hpspeniel/payables-api/internal/observability"
	"github.com/hpspeniel/payables-api/internal/payables"
)

type stubStore struct{}

func (stubStore) Insert(ctx context.Context, rec payables.PayableRecord) (int64, error) {
	return 1, nil
}

func newTestRouter(t *testing.T, cfg *Config) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := payables.NewHandler(logger, payables.NewService(stubStore{}))
	return NewRouter(RouterParams{
		Logger:          logger,
		Config:          cfg,
		PayablesHandler: handler,
		Metrics:         observability.NewMetrics(),
	})
}

func testConfig() *Config {
	return &Config{
		CORSOrigins: []string{"https://hpspeniel.com.br"},
		DBPoolSize:  10,
	}
}

func TestRouterLiveness(t *testing.T) {
	router := newTestRouter(t, testConfig())

	for _, path := range []string{"/", "/health"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, path)
		require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	}
}

func TestRouterMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRouterPreflightAlwaysAnswered(t *testing.T) {
	router := newTestRouter(t, testConfig())

	for _, origin := range []string{"https://hpspeniel.com.br", "https://evil.example"} {
		req := httptest.NewRequest(http.MethodOptions, "/contas-a-pagar", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Less(t, rec.Code, 300, "preflight from %s must not error", origin)
	}
}

func TestRouterCORSOriginGating(t *testing.T) {
	router := newTestRouter(t, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://hpspeniel.com.br")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, "https://hpspeniel.com.br", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
