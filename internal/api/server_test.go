package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-report-api/pkg/metrics"
)

type staticAuthenticator struct {
	claims *domain.Claims
}

func (a staticAuthenticator) ValidateToken(token string) (*domain.Claims, error) {
	if token != "valido" {
		return nil, authenticating.ErrInvalidToken
	}
	return a.claims, nil
}

type statusJob struct{}

func (statusJob) TriggerManualSync() error  { return nil }
func (statusJob) GetStatus() map[string]any { return map[string]any{"sync_running": false} }

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	registry := prometheus.NewRegistry()
	cfg := &config.Config{Server: config.Server{CorsAllowedOrigins: []string{"http://localhost:3000"}}}

	return NewHandler(cfg, Dependencies{
		DailyJob:      statusJob{},
		Authenticator: staticAuthenticator{claims: &domain.Claims{UserID: 1, UserRoleID: domain.RoleAdmin}},
		Gatherer:      registry,
		Metrics:       metrics.New(registry),
	})
}

func TestNewHandler(t *testing.T) {
	h := newTestHandler(t)

	t.Run("healthcheck é público", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rota protegida exige token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token inválido", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil)
		req.Header.Set("Authorization", "Bearer outro")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("status e métricas com token válido", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil)
		req.Header.Set("Authorization", "Bearer valido")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "sync_running")

		rec = httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
		req.Header.Set("Authorization", "Bearer valido")
		rec = httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `http_requests_total{endpoint="/v1/cron/status",method="GET",status_code="200"} 1`)
	})
}
