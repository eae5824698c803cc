package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	leadsCaptured = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leads_captured_total",
			Help: "Total number of leads captured",
		},
		[]string{"source"},
	)

	conversionsTracked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "conversion_events_total",
			Help: "Total number of conversion events tracked",
		},
		[]string{"event_type"},
	)

	dripEmailsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "drip_emails_sent_total",
			Help: "Total number of nurture emails delivered",
		},
		[]string{"template"},
	)

	dripEmailFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "drip_email_failures_total",
			Help: "Total number of nurture email delivery failures",
		},
		[]string{"template"},
	)

	exerciseCompletions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exercise_completions_total",
			Help: "Total number of first-time exercise completions",
		},
		[]string{"module"},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(duration)
	})
}

func RecordLeadCaptured(source string) {
	leadsCaptured.WithLabelValues(source).Inc()
}

func RecordConversion(eventType string) {
	conversionsTracked.WithLabelValues(eventType).Inc()
}

func RecordDripSent(template string) {
	dripEmailsSent.WithLabelValues(template).Inc()
}

func RecordDripFailure(template string) {
	dripEmailFailures.WithLabelValues(template).Inc()
}

func RecordExerciseCompletion(module string) {
	exerciseCompletions.WithLabelValues(module).Inc()
}
