// Package metrics contains the prometheus instrumentation.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Labels to use for partitioning request counts.
	requestLabels = []string{"endpoint", "status"}

	// Labels to use for partitioning request latencies.
	requestLatencyLabels = []string{"endpoint"}
)

// RequestMetrics instruments incoming HTTP requests.
type RequestMetrics struct {
	// Counts of requests served, partitioned by endpoint and status.
	RequestCounts *prometheus.CounterVec

	// Latencies of serving incoming requests, partitioned by endpoint.
	RequestLatencies *prometheus.HistogramVec
}

// NewRequestMetrics creates and registers request instrumentation on the
// given registerer. Taking the registerer as a parameter keeps tests free
// to use throwaway registries instead of fighting over the global one.
func NewRequestMetrics(pkg string, reg prometheus.Registerer) RequestMetrics {
	m := RequestMetrics{
		RequestCounts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: fmt.Sprintf("%s_requests", pkg),
				Help: "How many requests were served, partitioned by endpoint and status.",
			},
			requestLabels,
		),
		RequestLatencies: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: fmt.Sprintf("%s_request_latencies", pkg),
				Help: "How long requests take to serve, partitioned by endpoint.",
			},
			requestLatencyLabels,
		),
	}
	reg.MustRegister(m.RequestCounts)
	reg.MustRegister(m.RequestLatencies)
	return m
}
