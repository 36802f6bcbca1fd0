package metrics

import "github.com/prometheus/client_golang/prometheus"

// Text-encoding Prometheus metrics.
var (
	EncodeRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lumenvault",
			Name:      "encode_requests_total",
			Help:      "Total number of text encoding requests",
		},
		[]string{"provider", "model", "status"},
	)

	EncodeRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "lumenvault",
			Name:      "encode_request_duration_seconds",
			Help:      "Text encoding request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"provider", "model"},
	)

	EncodeErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lumenvault",
			Name:      "encode_errors_total",
			Help:      "Total text encoding errors",
		},
		[]string{"provider", "model", "error_type"},
	)
)

var encoderMetricsRegistered bool

// RegisterEncoderMetrics registers Prometheus encoding metrics. Must be called once from main.
func RegisterEncoderMetrics() {
	if encoderMetricsRegistered {
		return
	}
	prometheus.MustRegister(EncodeRequestsTotal)
	prometheus.MustRegister(EncodeRequestDuration)
	prometheus.MustRegister(EncodeErrorsTotal)
	encoderMetricsRegistered = true
}
