package router

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ledgerbook/backend/internal/models"
	"github.com/prometheus/client_golang/prometheus"
)

// URLMiddleware sets the base URL of the API in the context so that
// handlers can build links.
func URLMiddleware(url *url.URL) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(models.ContextURL), url.String())
		c.Next()
	}
}

var metrics = []prometheus.Collector{
	requestCount,
	requestDuration,
	requestsInFlight,
}

// registerPrometheusMetrics registers all Prometheus metrics
// with the default registry.
func registerPrometheusMetrics() error {
	for _, c := range metrics {
		if err := prometheus.Register(c); err != nil {
			return fmt.Errorf("could not register %s with Prometheus: %w", c, err)
		}
	}

	return nil
}

// unregisterPrometheusMetrics unregisters all Prometheus metrics.
//
// This is needed to cleanly exit.
func unregisterPrometheusMetrics() bool {
	ok := true
	for _, c := range metrics {
		ok = prometheus.Unregister(c) && ok
	}

	return ok
}

var labels = []string{"code", "method", "route"}

var requestCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "ledger",
		Name:      "http_requests_total",
		Help:      "Number of HTTP requests processed, partitioned by status code, method and route.",
	},
	labels,
)

var requestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "ledger",
		Name:      "http_request_duration_seconds",
		Help:      "Latency of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	},
	labels,
)

var requestsInFlight = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Namespace: "ledger",
		Name:      "http_requests_in_flight",
		Help:      "Number of HTTP requests currently being served.",
	},
)

// route returns the path of the request with all parameters replaced by
// their name to keep the label cardinality low.
func route(c *gin.Context) string {
	if p := c.FullPath(); p != "" {
		return p
	}

	// Unmatched routes are not labelled by path
	if len(c.Params) == 0 {
		return "unmatched"
	}

	path := c.Request.URL.Path
	for _, p := range c.Params {
		path = strings.Replace(path, p.Value, fmt.Sprintf(":%s", p.Key), 1)
	}
	return path
}

// MetricsMiddleware updates Prometheus metrics.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestsInFlight.Inc()
		defer requestsInFlight.Dec()

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		r := route(c)

		requestDuration.WithLabelValues(status, c.Request.Method, r).Observe(time.Since(start).Seconds())
		requestCount.WithLabelValues(status, c.Request.Method, r).Inc()
	}
}
