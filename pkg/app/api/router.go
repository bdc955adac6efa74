package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/chainsafe/jackpot-middleware/pkg/auth"
	"github.com/chainsafe/jackpot-middleware/pkg/config"
	"github.com/chainsafe/jackpot-middleware/pkg/game/service"
)

// Flows wait for mined receipts, so the request timeout sits above the
// receipt timeout.
const requestTimeoutSlack = 30 * time.Second

// NewRouter builds the HTTP surface: health, readiness, metrics and the guess
// flow endpoints under /api/v1. A nil validator leaves /api/v1 unauthenticated.
func NewRouter(cfg *config.Config, svc service.Service, validator *auth.JWTValidator, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(accessLog(logger))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Get("/ready", func(w http.ResponseWriter, _ *http.Request) {
		if svc.Session() == nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("NOT_READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	})

	if cfg.Monitoring.Enabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Timeout(cfg.Ethereum.ReceiptTimeout + requestTimeoutSlack))
		if validator != nil {
			r.Use(auth.Middleware(validator, logger))
		}
		service.RegisterRoutes(r, svc, cfg.Tokens.GameDecimals, logger)
	})

	return r
}

// accessLog logs every request through zap.
func accessLog(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			logger.Debug("HTTP request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}
