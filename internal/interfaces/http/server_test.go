package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/product"
	"github.com/your-org/storefront/internal/domain/user"
	"github.com/your-org/storefront/internal/domain/wishlist"
	"github.com/your-org/storefront/internal/infrastructure/database/memory"
	"github.com/your-org/storefront/internal/interfaces/http/routes"
)

type healthFunc func(ctx context.Context) error

func (f healthFunc) Health(ctx context.Context) error { return f(ctx) }

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg := &config.Config{
		App:    config.AppConfig{Name: "storefront", Version: "test", Environment: "test"},
		Server: config.ServerConfig{Port: "0", RequestTimeout: time.Second, MaxBodyBytes: 1 << 20},
		JWT: config.JWTConfig{
			Secret:      "server-test-secret-with-enough-length",
			TokenExpiry: time.Hour,
			Issuer:      "storefront-test",
		},
		Security: config.SecurityConfig{BcryptCost: bcrypt.MinCost},
	}
	log, _ := test.NewNullLogger()

	deps := routes.Dependencies{
		Users:     user.NewService(memory.NewUserRepository(), cfg, log),
		Carts:     cart.NewService(memory.NewCartRepository(), log),
		Wishlists: wishlist.NewService(memory.NewWishlistRepository(), log),
		Catalog:   product.NewService(memory.NewCatalogRepository()),
	}
	return NewServer(cfg, deps, nil, log)
}

func get(s *Server, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	w := get(s, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)

	s.AddHealthCheck("database", healthFunc(func(context.Context) error {
		return errors.New("connection refused")
	}))
	w = get(s, "/health")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"status":"unhealthy","error":"database ping failed"}`, w.Body.String())
}

func TestReadyAndMetrics(t *testing.T) {
	s := newTestServer(t)

	w := get(s, "/ready")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ready"`)

	// one API request so the http counters have a sample
	get(s, "/api/categories")

	w = get(s, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "storefront_http_requests_total"))
}

func TestMiddlewareStackApplied(t *testing.T) {
	s := newTestServer(t)

	w := get(s, "/api/cart")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
}

func TestStopBeforeStart(t *testing.T) {
	s := newTestServer(t)
	assert.NoError(t, s.Stop(context.Background()))
}
