package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SubmissionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contact_submissions_total",
			Help: "Total contact form submissions by outcome",
		},
		[]string{"outcome"},
	)

	StatusUpdatesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contact_status_updates_total",
			Help: "Total moderation status updates by resulting status",
		},
		[]string{"status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by route and status code",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method", "code"},
	)
)

// Init registers metrics with Prometheus
func Init() {
	prometheus.MustRegister(SubmissionsTotal)
	prometheus.MustRegister(StatusUpdatesTotal)
	prometheus.MustRegister(RequestDuration)
}

// Handler returns the Prometheus metrics HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}
