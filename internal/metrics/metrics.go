// Package metrics provides Prometheus metrics collection for the chat cache service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// CacheOperationsTotal tracks cache operations per cache instance.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"cache", "operation", "result"},
	)

	// CacheSize tracks the current live entry count per cache instance.
	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current number of live cache entries",
		},
		[]string{"cache"},
	)

	// CacheCapacity tracks the configured capacity per cache instance.
	CacheCapacity = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Configured cache capacity",
		},
		[]string{"cache"},
	)

	// SearchesTotal tracks executed searches by outcome.
	SearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "searches_total",
			Help: "Total number of executed searches",
		},
		[]string{"status"},
	)

	// SearchDuration tracks search execution duration.
	SearchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "search_duration_seconds",
			Help:    "Search execution duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
	)

	// IndexedItems tracks the current size of the search index.
	IndexedItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "search_indexed_items",
			Help: "Current number of items in the search index",
		},
	)

	// ChangeEventsTotal tracks change-feed events by entity kind and operation.
	ChangeEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "change_events_total",
			Help: "Total number of change-feed events applied",
		},
		[]string{"entity_kind", "operation"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordCacheOperation records one cache operation outcome.
func RecordCacheOperation(cache, operation, result string) {
	CacheOperationsTotal.WithLabelValues(cache, operation, result).Inc()
}

// UpdateCacheMetrics updates size and capacity gauges for one cache instance.
func UpdateCacheMetrics(cache string, size, capacity int) {
	CacheSize.WithLabelValues(cache).Set(float64(size))
	CacheCapacity.WithLabelValues(cache).Set(float64(capacity))
}

// RecordSearch records metrics for one executed search.
func RecordSearch(duration time.Duration, status string) {
	SearchDuration.Observe(duration.Seconds())
	SearchesTotal.WithLabelValues(status).Inc()
}

// RecordChangeEvent records one applied change-feed event.
func RecordChangeEvent(kind, op string) {
	ChangeEventsTotal.WithLabelValues(kind, op).Inc()
}
