package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Urigo/accounter-fullstack-sub008/internal/adapter/http/handler"
	"github.com/Urigo/accounter-fullstack-sub008/internal/adapter/http/middleware"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	LedgerHandler *handler.LedgerHandler
	HealthHandler *handler.HealthHandler
	Logging       *middleware.LoggingMiddleware
	RateLimiter   *middleware.RateLimiter
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	if cfg.Logging != nil {
		r.Use(cfg.Logging.Wrap)
	}
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)

	// Health endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)

	// Prometheus scrape endpoint
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		if cfg.RateLimiter != nil {
			r.Use(cfg.RateLimiter.Limit)
		}

		r.Route("/charges/{id}/ledger", func(r chi.Router) {
			r.Post("/", cfg.LedgerHandler.Generate)
			r.Get("/", cfg.LedgerHandler.Get)
			r.Get("/validation", cfg.LedgerHandler.Validate)
		})

		r.Post("/ledger/batch", cfg.LedgerHandler.GenerateBatch)
		r.Post("/owners/{id}/ledger", cfg.LedgerHandler.GenerateForOwner)
	})

	return r
}
