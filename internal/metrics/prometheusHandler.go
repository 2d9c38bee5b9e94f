package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var HttpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "http_requests_total",
	Help: "Total number of requests labelled by path and status",
}, []string{"path", "status"})

var ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "active_sessions",
	Help: "Number of document sessions currently held in memory",
})

var SessionsCleanedTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "sessions_cleaned_total",
	Help: "Total number of sessions removed by expiry cleanup",
})

var DocumentsUploadedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "documents_uploaded_total",
	Help: "Total number of uploaded documents labelled by file type",
}, []string{"file_type"})

type HttpStatusRecorder struct {
	http.ResponseWriter
	Status int
}

func (r *HttpStatusRecorder) CaptureWriteHeaderMetrics(code int) {
	r.Status = code
	r.ResponseWriter.WriteHeader(code)
}

var requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "process_request_duration_seconds",
	Help:    "Total time spent handling a request.",
	Buckets: []float64{.1, .5, 1, 2, 5, 10, 30},
}, []string{"path"})

var dependencyLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "dependency_latency_seconds",
	Help:    "Latency of extraction, embedding, search and LLM calls.",
	Buckets: []float64{.05, .1, .25, .5, 1, 2, 5, 10},
}, []string{"service"})

func CaptureExecutionMetrics(label string, timeElapsed time.Duration) {
	dependencyLatency.WithLabelValues(label).Observe(timeElapsed.Seconds())
}

func CaptureRequestMetrics(path string, timeElapsed time.Duration) {
	requestDuration.WithLabelValues(path).Observe(timeElapsed.Seconds())
}
