package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// HTTP holds the request counters used by the API middleware.
type HTTP struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewHTTP(reg prometheus.Registerer) (*HTTP, error) {
	h := &HTTP{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
	}

	if err := reg.Register(h.requests); err != nil {
		return nil, err
	}
	if err := reg.Register(h.duration); err != nil {
		return nil, err
	}
	return h, nil
}

// Observe records one finished request. path must be the route pattern, not the raw URL.
func (h *HTTP) Observe(method, path, status string, elapsed time.Duration) {
	h.requests.WithLabelValues(method, path, status).Inc()
	h.duration.WithLabelValues(method, path, status).Observe(elapsed.Seconds())
}
