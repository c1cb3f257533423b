package tvmaze

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	return &metrics{
		requests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: "tvmaze",
			Name:      "client_requests_total",
			Help:      "Total number of TVMaze API requests by endpoint and status code.",
		}, []string{"endpoint", "status_code"}),
		duration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "tvmaze",
			Name:      "client_request_duration_seconds",
			Help:      "Time spent waiting for TVMaze API responses.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
	}
}

// observe records one request. A status of 0 means no response was received.
func (m *metrics) observe(endpoint string, status int, took time.Duration) {
	if m == nil {
		return
	}
	code := "error"
	if status > 0 {
		code = strconv.Itoa(status)
	}
	m.requests.WithLabelValues(endpoint, code).Inc()
	m.duration.WithLabelValues(endpoint).Observe(took.Seconds())
}
