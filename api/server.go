// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation and request/response validation

package api

import (
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/atomicul/website-differ/api/middleware"
	"github.com/atomicul/website-differ/core/interfaces"
)

// Config holds configuration for the API
type Config struct {
	Logger     interfaces.Logger
	RateLimit  int           // requests per window, per client
	RateWindow time.Duration // rate limit window
}

// NewAPI creates and configures a new Huma API instance with middleware
func NewAPI(cfg Config) (huma.API, chi.Router) {
	router := chi.NewRouter()

	// CORS comes first so preflight requests short-circuit cleanly.
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.RateLimit > 0 && cfg.RateWindow > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(middleware.RateLimitMiddleware(limiter))
	}

	humaConfig := huma.DefaultConfig("Website Differ API", "1.0.0")
	humaConfig.Info.Description = "API for scoring structural changes between HTML page snapshots"

	// OpenAPI spec at /openapi.json, docs UI at /docs.
	api := humachi.New(router, humaConfig)

	return api, router
}
