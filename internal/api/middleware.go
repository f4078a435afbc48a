package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dmagro/eth-block-summary/internal/metrics"
)

type contextKey string

// RequestIDContextKey carries the per-request UUID through the request
// context.
const RequestIDContextKey = contextKey("request_id")

// MetricsMiddleware assigns each request a UUID, logs it, and records
// count and latency metrics. It should be the outermost middleware so it
// observes the final status code.
func MetricsMiddleware(m metrics.RequestMetrics, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := uuid.New()
			start := time.Now()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(
				context.WithValue(r.Context(), RequestIDContextKey, requestID),
			))

			status := ww.Status()
			latency := time.Since(start)

			logger.Info("request served",
				zap.String("request_id", requestID.String()),
				zap.String("endpoint", r.URL.Path),
				zap.String("query", r.URL.RawQuery),
				zap.Int("status", status),
				zap.Duration("latency", latency),
			)

			m.RequestCounts.WithLabelValues(r.URL.Path, strconv.Itoa(status)).Inc()
			m.RequestLatencies.WithLabelValues(r.URL.Path).Observe(latency.Seconds())
		})
	}
}
