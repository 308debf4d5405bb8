// Package metrics exposes Prometheus metrics for the document store and
// the HTTP layer.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector implements docstore.Recorder and records HTTP traffic.
type Collector struct {
	storeOps      *prometheus.CounterVec
	storeLatency  *prometheus.HistogramVec
	subscriptions *prometheus.GaugeVec
	httpRequests  *prometheus.CounterVec
	httpLatency   *prometheus.HistogramVec
}

// NewCollector creates a Collector and registers it with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		storeOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hr_store_operations_total",
			Help: "Document store operations by collection, operation and outcome",
		}, []string{"collection", "op", "outcome"}),
		storeLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hr_store_operation_duration_seconds",
			Help:    "Document store operation latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"collection", "op"}),
		subscriptions: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "hr_store_active_subscriptions",
			Help: "Live collection listeners that have not been cancelled",
		}, []string{"collection"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hr_http_requests_total",
			Help: "HTTP requests by route, method and status code",
		}, []string{"route", "method", "status_code"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hr_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}

	reg.MustRegister(
		c.storeOps,
		c.storeLatency,
		c.subscriptions,
		c.httpRequests,
		c.httpLatency,
	)
	return c
}

func (c *Collector) RecordStoreOp(collection, op, outcome string, d time.Duration) {
	c.storeOps.WithLabelValues(collection, op, outcome).Inc()
	c.storeLatency.WithLabelValues(collection, op).Observe(d.Seconds())
}

func (c *Collector) SubscriptionOpened(collection string) {
	c.subscriptions.WithLabelValues(collection).Inc()
}

func (c *Collector) SubscriptionClosed(collection string) {
	c.subscriptions.WithLabelValues(collection).Dec()
}

// RecordHTTPRequest records one served request. route is the matched
// pattern, not the raw path, to keep label cardinality bounded.
func (c *Collector) RecordHTTPRequest(route, method string, status int, d time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	c.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	c.httpLatency.WithLabelValues(route, method).Observe(d.Seconds())
}

// Handler returns the HTTP handler for Prometheus scraping.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
