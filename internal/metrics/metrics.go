// Package metrics exposes the service's Prometheus collectors. Every metric
// is registered on the default registry under the "inspection" namespace.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "inspection"

// Label used when a plan lookup fails before a code letter is known.
const noCodeLetter = "none"

var httpLabels = []string{"method", "path", "status_code"}

var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by route and status.",
		Buckets:   prometheus.DefBuckets,
	}, httpLabels)

	HTTPRequestTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by route and status.",
	}, httpLabels)
)

// Sampling collectors.
var (
	PlanResolutionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "sampling",
		Name:      "plan_resolutions_total",
		Help:      "Sampling plan lookups by code letter and outcome.",
	}, []string{"code_letter", "status"})

	// Lookups are table reads, so the buckets sit in the microsecond range.
	PlanResolutionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "sampling",
		Name:      "plan_resolution_duration_seconds",
		Help:      "Time spent building a plan and its instructions.",
		Buckets:   prometheus.ExponentialBuckets(0.00001, 5, 6),
	})

	VerdictsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "sampling",
		Name:      "verdicts_total",
		Help:      "Lot verdicts by outcome.",
	}, []string{"outcome"})
)

// Infrastructure collectors.
var (
	PhotosTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "photos_total",
		Help:      "Photo uploads and removals by result.",
	}, []string{"operation", "result"})

	// CircuitBreakerState holds the numeric breaker state: 0 closed, 1 half-open, 2 open.
	CircuitBreakerState = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "circuit_breaker_state",
		Help:      "Circuit breaker state (0 closed, 1 half-open, 2 open).",
	}, []string{"name"})

	LogEntriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "log_entries_total",
		Help:      "Persisted request and audit log entries by result.",
	}, []string{"result"})

	CacheOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "plan_cache",
		Name:      "operations_total",
		Help:      "Plan cache operations by result.",
	}, []string{"operation", "result"})

	CacheSize = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "plan_cache",
		Name:      "entries",
		Help:      "Entries currently held in the plan cache.",
	})

	CacheCapacity = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "plan_cache",
		Name:      "capacity",
		Help:      "Maximum number of plan cache entries.",
	})
)

// PrometheusMiddleware records latency and a request count for every request.
// Routes are labelled by their registered pattern so path parameters do not
// explode label cardinality; unmatched requests fall back to the raw path.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		observeRequest(c, time.Since(start))
	}
}

func observeRequest(c *gin.Context, elapsed time.Duration) {
	route := c.FullPath()
	if route == "" {
		route = c.Request.URL.Path
	}
	labels := prometheus.Labels{
		"method":      c.Request.Method,
		"path":        route,
		"status_code": strconv.Itoa(c.Writer.Status()),
	}
	HTTPRequestDuration.With(labels).Observe(elapsed.Seconds())
	HTTPRequestTotal.With(labels).Inc()
}

// RecordPlanResolution records a plan lookup. codeLetter is empty on failure.
func RecordPlanResolution(duration time.Duration, codeLetter, status string) {
	if codeLetter == "" {
		codeLetter = noCodeLetter
	}
	PlanResolutionDuration.Observe(duration.Seconds())
	PlanResolutionsTotal.WithLabelValues(codeLetter, status).Inc()
}

func RecordVerdict(outcome string) {
	VerdictsTotal.WithLabelValues(outcome).Inc()
}

func RecordPhoto(operation, result string) {
	PhotosTotal.WithLabelValues(operation, result).Inc()
}

func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}

func RecordLogEntry(result string) {
	LogEntriesTotal.WithLabelValues(result).Inc()
}

func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheMetrics publishes the plan cache fill level.
func UpdateCacheMetrics(size, capacity int) {
	CacheSize.Set(float64(size))
	CacheCapacity.Set(float64(capacity))
}
