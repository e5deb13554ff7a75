package zomato

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics records per-endpoint request counts and latencies.
type Metrics struct {
	Requests       *prometheus.CounterVec
	RequestSeconds *prometheus.HistogramVec
}

// NewMetrics registers the client collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		Requests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "zomato_requests_total",
			Help: "Total number of requests sent to the Zomato API, by endpoint and HTTP status code.",
		}, []string{"endpoint", "code"}),
		RequestSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "zomato_request_duration_seconds",
			Help:    "Duration of requests to the Zomato API.",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
	}
}

// code is the HTTP status as text, or "error" when the transport failed.
func (m *Metrics) observe(endpoint Endpoint, code string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(string(endpoint), code).Inc()
	m.RequestSeconds.WithLabelValues(string(endpoint)).Observe(elapsed.Seconds())
}
