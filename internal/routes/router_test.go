package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"cosmoport/shipyard/internal/api"
	"cosmoport/shipyard/internal/config"
	appdb "cosmoport/shipyard/internal/db"
	"cosmoport/shipyard/internal/metrics"
	"cosmoport/shipyard/internal/middleware"
	gormModels "cosmoport/shipyard/internal/models/gorm"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestServer(t *testing.T, rps float64, burst int) http.Handler {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: appdb.NewGormLogger(os.Stderr)})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	if err := db.AutoMigrate(&gormModels.Ship{}); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	cfg := &config.Config{
		AppEnv:    "test",
		HTTP:      config.HTTPConfig{AllowedOrigins: []string{"http://localhost:8081"}},
		Store:     config.StoreConfig{Driver: "gorm"},
		Cache:     config.CacheConfig{Backend: "memory", TTL: time.Minute},
		RateLimit: config.RateLimitConfig{RequestsPerSecond: rps, Burst: burst},
	}

	metricsReg := metrics.NewMetricsRegistry(prometheus.NewRegistry())
	deps, err := api.InitDependencies(t.Context(), cfg, api.Connections{ORM: db}, metricsReg)
	if err != nil {
		t.Fatalf("InitDependencies: %v", err)
	}

	return RegisterRoutes(cfg, deps, time.Now())
}

func TestRouter_HealthCheck(t *testing.T) {
	srv := newTestServer(t, 0, 0)

	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthCheck", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"status":"ok"`) {
		t.Errorf("unexpected body: %s", rr.Body.String())
	}
	if rr.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("expected request id header")
	}
}

func TestRouter_CreateThenListThroughCache(t *testing.T) {
	srv := newTestServer(t, 0, 0)

	body, _ := json.Marshal(map[string]any{
		"name":     "Daedalus",
		"planet":   "Jupiter",
		"shipType": "TRANSPORT",
		"prodDate": time.Date(3001, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli(),
		"speed":    0.94,
		"crewSize": 1014,
	})

	// Prime the cache with the empty set first.
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/rest/ships/count", nil))
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), `"data":0`) {
		t.Fatalf("expected empty count, got %d: %s", rr.Code, rr.Body.String())
	}

	rr = httptest.NewRecorder()
	srv.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/rest/ships", bytes.NewReader(body)))
	if rr.Code != http.StatusOK {
		t.Fatalf("create: expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	rr = httptest.NewRecorder()
	srv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/rest/ships?shipType=TRANSPORT", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"name":"Daedalus"`) {
		t.Errorf("expected created ship in listing, got %s", rr.Body.String())
	}
}

func TestRouter_RateLimitAppliesToShips(t *testing.T) {
	srv := newTestServer(t, 0.001, 1)

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		rr := httptest.NewRecorder()
		srv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/rest/ships/count", nil))
		codes = append(codes, rr.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests {
		t.Errorf("expected [200 429], got %v", codes)
	}

	// Health checks sit outside the limiter.
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthCheck", nil))
	if rr.Code != http.StatusOK {
		t.Errorf("health check: expected 200, got %d", rr.Code)
	}
}

func TestRouter_UnknownRoute(t *testing.T) {
	srv := newTestServer(t, 0, 0)

	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/rest/ships/1", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status 405, got %d", rr.Code)
	}
}
