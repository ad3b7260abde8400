// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/equalityatlas/internal/cache"
	"github.com/tomtom215/equalityatlas/internal/config"
	"github.com/tomtom215/equalityatlas/internal/middleware"
)

// Cache groups label the metrics of each TTL class.
const (
	CacheGroupReference = "reference"
	CacheGroupCurated   = "curated"
)

// Router wires the handler, the response cache and the middleware stack.
type Router struct {
	handler       *Handler
	cache         cache.Backend // nil disables response caching
	cacheCfg      config.CacheConfig
	chiMiddleware *ChiMiddleware
	trustProxy    bool
	logger        zerolog.Logger
}

// NewRouter builds a Router. backend may be nil.
func NewRouter(handler *Handler, backend cache.Backend, cfg *config.Config, logger zerolog.Logger) *Router {
	return &Router{
		handler:       handler,
		cache:         backend,
		cacheCfg:      cfg.Cache,
		chiMiddleware: NewChiMiddleware(ChiMiddlewareConfigFromSecurity(cfg.Security)),
		trustProxy:    len(cfg.Security.TrustedProxies) > 0,
		logger:        logger,
	}
}

// Setup returns the root handler.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Order matters: the request ID must exist before the logger copies it,
	// and the recoverer must sit inside the logger to log with the ID.
	r.Use(middleware.RequestID)
	if router.trustProxy {
		r.Use(chimiddleware.RealIP)
	}
	r.Use(middleware.RequestLogger(router.logger))
	r.Use(middleware.Recoverer(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, Internal(nil))
	}))
	r.Use(middleware.PrometheusMetrics)
	r.Use(router.chiMiddleware.CORS())

	r.NotFound(routeNotFound)
	r.MethodNotAllowed(routeNotFound)

	h := router.handler
	// One limiter for every data route so the budget is per client, not per group.
	limiter := router.chiMiddleware.RateLimit()

	r.Route("/api", func(r chi.Router) {
		// promhttp compresses /metrics itself, so gzip stays on /api only.
		r.Use(middleware.Compression)
		r.Use(APISecurityHeaders())

		r.Route("/health", func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimitHealth())
			r.Get("/", h.Health)
			r.Get("/live", h.HealthLive)
			r.Get("/ready", h.HealthReady)
		})

		r.Group(func(r chi.Router) {
			r.Use(limiter)
			r.Use(router.cached(CacheGroupReference, router.cacheCfg.ReferenceTTL))

			r.Get("/indicators", h.ListIndicators)
			r.Get("/indicators/{code}", h.GetIndicator)
			r.Get("/locations", h.ListLocations)
			r.Get("/locations/{iso3}", h.GetLocation)
			r.Get("/observations", h.GetObservations)
			r.Get("/observations/rankings", h.GetRankings)
			r.Get("/observations/rankings/export", h.ExportRankings)
			r.Get("/compare", h.Compare)
			r.Get("/compare/export", h.ExportComparison)
		})

		r.Group(func(r chi.Router) {
			r.Use(limiter)
			r.Use(router.cached(CacheGroupCurated, router.cacheCfg.CuratedTTL))

			r.Get("/policies", h.ListPolicies)
			r.Get("/research/templates", h.ListResearchTemplates)
			r.Get("/research/templates/{id}", h.GetResearchTemplate)
		})

		r.Get("/docs/*", httpSwagger.Handler(
			httpSwagger.URL("/api/docs/doc.json"),
			httpSwagger.DeepLinking(true),
			httpSwagger.DocExpansion("list"),
			httpSwagger.DomID("swagger-ui"),
		))
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}

// cached returns the cache middleware for a route group, or a pass-through
// when caching is off.
func (router *Router) cached(group string, ttl time.Duration) func(http.Handler) http.Handler {
	if router.cache == nil || !router.cacheCfg.Enabled || ttl <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return cache.Middleware(router.cache, group, ttl)
}

func routeNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, NotFound("Route "+r.URL.RequestURI()+" not found"))
}
