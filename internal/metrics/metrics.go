// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cortex",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cortex",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "route"},
	)

	faults = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cortex",
			Subsystem: "api",
			Name:      "faults_total",
			Help:      "Faults returned to clients, by error code.",
		},
		[]string{"err_code"},
	)

	scriptExecutions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cortex",
			Subsystem: "sandbox",
			Name:      "executions_total",
			Help:      "Total number of sandboxed script executions.",
		},
		[]string{"outcome"},
	)

	scriptDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "cortex",
			Subsystem: "sandbox",
			Name:      "execution_duration_seconds",
			Help:      "Duration of sandboxed script executions.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
	)

	sequenceRetries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cortex",
			Subsystem: "objects",
			Name:      "sequence_retries_total",
			Help:      "Write retries caused by sequencing conflicts.",
		},
		[]string{"object"},
	)

	cacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cortex",
			Subsystem: "cache",
			Name:      "operations_total",
			Help:      "Cache operations by kind and result.",
		},
		[]string{"op", "result"},
	)
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		faults,
		scriptExecutions,
		scriptDuration,
		sequenceRetries,
		cacheOps,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)
}

// Handler returns the /metrics HTTP handler
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// RecordHTTPRequest records one served request
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordFault counts a fault returned to a client
func RecordFault(errCode string) {
	faults.WithLabelValues(errCode).Inc()
}

// RecordScript records a sandbox execution outcome ("ok", "fault", "error", "timeout")
func RecordScript(outcome string, duration time.Duration) {
	scriptExecutions.WithLabelValues(outcome).Inc()
	scriptDuration.Observe(duration.Seconds())
}

// RecordSequenceRetry counts a retried write for object
func RecordSequenceRetry(object string) {
	sequenceRetries.WithLabelValues(object).Inc()
}

// RecordCacheOp counts a cache operation
func RecordCacheOp(op, result string) {
	cacheOps.WithLabelValues(op, result).Inc()
}
