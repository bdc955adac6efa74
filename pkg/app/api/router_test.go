package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/chainsafe/jackpot-middleware/pkg/auth"
	"github.com/chainsafe/jackpot-middleware/pkg/config"
	"github.com/chainsafe/jackpot-middleware/pkg/game"
	"github.com/chainsafe/jackpot-middleware/pkg/game/service"
)

// stubService answers Session and Snapshot; any other call panics.
type stubService struct {
	service.Service
	session *game.Session
}

func (s *stubService) Session() *game.Session   { return s.session }
func (s *stubService) Snapshot() *game.Snapshot { return nil }

func serve(h http.Handler, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestRouter_Health(t *testing.T) {
	cfg := &config.Config{}
	h := NewRouter(cfg, &stubService{}, nil, zap.NewNop())

	rec := serve(h, http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestRouter_Ready(t *testing.T) {
	svc := &stubService{}
	h := NewRouter(&config.Config{}, svc, nil, zap.NewNop())

	rec := serve(h, http.MethodGet, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	svc.session = &game.Session{IsConnected: true}
	rec = serve(h, http.MethodGet, "/ready")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "READY", rec.Body.String())
}

func TestRouter_Metrics(t *testing.T) {
	disabled := NewRouter(&config.Config{}, &stubService{}, nil, zap.NewNop())
	assert.Equal(t, http.StatusNotFound, serve(disabled, http.MethodGet, "/metrics").Code)

	cfg := &config.Config{Monitoring: config.MonitoringConfig{Enabled: true}}
	enabled := NewRouter(cfg, &stubService{}, nil, zap.NewNop())
	rec := serve(enabled, http.MethodGet, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestRouter_APIRoutes(t *testing.T) {
	h := NewRouter(&config.Config{}, &stubService{}, nil, zap.NewNop())

	rec := serve(h, http.MethodGet, "/api/v1/session")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"error":"Connect your wallet first.","code":409}`, rec.Body.String())

	rec = serve(h, http.MethodGet, "/api/v1/snapshot")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_RequiresToken(t *testing.T) {
	validator := auth.NewJWTValidator("http://127.0.0.1:1/jwks", "")
	h := NewRouter(&config.Config{}, &stubService{}, validator, zap.NewNop())

	rec := serve(h, http.MethodGet, "/api/v1/session")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// health stays open
	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/health").Code)
}
