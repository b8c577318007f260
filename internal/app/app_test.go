package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/riskibarqy/sportsboard/internal/config"
	"github.com/riskibarqy/sportsboard/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Config {
	return config.Config{
		ServiceName:      "sportsboard-test",
		HTTPAddr:         ":0",
		ReadTimeout:      time.Second,
		WriteTimeout:     time.Second,
		CacheEnabled:     true,
		CacheTTL:         time.Minute,
		SupportedYears:   []int{2022, 2023, 2024},
		MetricsEnabled:   true,
		SportsAPIBaseURL: "http://127.0.0.1:1",
		SportsAPITimeout: time.Second,
		StateDriver:      config.StateDriverMemory,
	}
}

func TestNew_WiresServicesAndRouter(t *testing.T) {
	registry := prometheus.NewRegistry()
	container, err := New(context.Background(), testConfig(), logging.NewNop(), Options{
		Registerer: registry,
		Gatherer:   registry,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Close() })

	assert.NotNil(t, container.Standings)
	assert.NotNil(t, container.Feed)
	assert.NotNil(t, container.Metrics)
	assert.Nil(t, container.Socket)

	srv, err := container.NewHTTPServer()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNew_SQLiteLocalState(t *testing.T) {
	cfg := testConfig()
	cfg.MetricsEnabled = false
	cfg.StateDriver = config.StateDriverSQLite
	cfg.StateDSN = filepath.Join(t.TempDir(), "state.db")
	cfg.StateAutoMigrate = true

	container, err := New(context.Background(), cfg, logging.NewNop(), Options{})
	require.NoError(t, err)

	require.NoError(t, container.Preferences.SetLastPath(context.Background(), "/standings"))
	path, err := container.Preferences.LastPath(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/standings", path)

	assert.NoError(t, container.Close())
}

func TestNewHTTPServer_RequiresAddr(t *testing.T) {
	cfg := testConfig()
	cfg.MetricsEnabled = false
	cfg.HTTPAddr = ""

	container, err := New(context.Background(), cfg, logging.NewNop(), Options{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Close() })

	_, err = container.NewHTTPServer()
	assert.Error(t, err)
}

func TestDebugRoutes_DumpsFeedState(t *testing.T) {
	cfg := testConfig()
	cfg.MetricsEnabled = false

	container, err := New(context.Background(), cfg, logging.NewNop(), Options{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Close() })

	routes := container.DebugRoutes()
	require.Len(t, routes, 1)
	assert.Equal(t, "GET /debug/feed", routes[0].Pattern)

	rec := httptest.NewRecorder()
	routes[0].Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/feed", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"state":"idle","connection":"closed","events":0}`, rec.Body.String())
}
