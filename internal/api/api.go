// Package api implements the HTTP surface of the block summary service:
// routing, handlers, request instrumentation, and the mapping from the
// error taxonomy onto status codes.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/dmagro/eth-block-summary/internal/metrics"
)

// NewRouter assembles the service's HTTP handler. The registry backs the
// /metrics endpoint and receives the request instrumentation; callers own
// it so tests can hand in throwaway registries.
func NewRouter(fetcher BlockFetcher, logger *zap.Logger, registry *prometheus.Registry) http.Handler {
	h := &handlers{fetcher: fetcher, logger: logger}
	m := metrics.NewRequestMetrics("api", registry)

	r := chi.NewRouter()
	r.Use(MetricsMiddleware(m, logger))
	r.Use(chimiddleware.Recoverer)

	r.Get("/", h.root)
	r.Get("/block", h.block)
	r.Get("/healthz", h.healthz)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	return r
}
