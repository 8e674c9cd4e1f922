// Package metrics holds the process-wide Prometheus collectors.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	AssistantRequests prometheus.Counter
	AssistantFailures prometheus.Counter
	AssistantDuration prometheus.Histogram
	StoreErrors       *prometheus.CounterVec
	HTTPRequests      *prometheus.CounterVec
}

var (
	once   sync.Once
	global *Metrics
)

// Global returns the collectors, registering them with the default registry
// on first use.
func Global() *Metrics {
	once.Do(func() {
		global = &Metrics{
			AssistantRequests: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: "travel",
				Name:      "assistant_requests_total",
				Help:      "Total prompts sent to the assistant",
			}),
			AssistantFailures: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: "travel",
				Name:      "assistant_failures_total",
				Help:      "Total assistant calls that failed",
			}),
			AssistantDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
				Namespace: "travel",
				Name:      "assistant_duration_seconds",
				Help:      "Assistant round-trip latency",
				Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
			}),
			StoreErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "travel",
				Name:      "store_errors_total",
				Help:      "Total store failures by operation",
			}, []string{"op"}),
			HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "travel",
				Name:      "http_requests_total",
				Help:      "Total HTTP requests by method and status",
			}, []string{"method", "status"}),
		}
		prometheus.MustRegister(
			global.AssistantRequests,
			global.AssistantFailures,
			global.AssistantDuration,
			global.StoreErrors,
			global.HTTPRequests,
		)
	})
	return global
}
