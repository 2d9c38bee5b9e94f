package middleware

import (
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/clearclause/contract-rag/internal/handlers"
	"github.com/clearclause/contract-rag/internal/metrics"
	"github.com/clearclause/contract-rag/pkg/logger_i"
)

type requestResponseStruct struct {
	writer     http.ResponseWriter
	req        *http.Request
	badRequest failureStruct
	logger     *logger_i.Logger
}

type failureStruct struct {
	isBadRequest bool
	httpCode     int
	errorMessage string
}

var UploadHandler = Wrap(handlers.UploadHandler)
var QueryHandler = Wrap(handlers.QueryHandler)
var SummarizeHandler = Wrap(handlers.SummarizeHandler)
var CompareHandler = Wrap(handlers.CompareHandler)
var AnalyzeHandler = Wrap(handlers.AnalyzeHandler)
var ExtractClausesHandler = Wrap(handlers.ExtractClausesHandler)
var NewsHandler = Wrap(handlers.NewsHandler)
var HealthHandler = Wrap(handlers.HealthHandler)
var DetailedHealthHandler = Wrap(handlers.DetailedHealthHandler)

func Wrap(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &metrics.HttpStatusRecorder{ResponseWriter: w, Status: 200} //metrics
		start := time.Now()

		re := processRequest(requestResponseStruct{req: r, writer: rec})
		if re.badRequest.isBadRequest {
			handleBadRequest(re)
			return
		}

		defer recoverPanic(rec, re)
		next(rec, re.req)

		metrics.HttpRequestsTotal.WithLabelValues(r.URL.Path, strconv.Itoa(rec.Status)).Inc() //metrics
		metrics.CaptureRequestMetrics(r.URL.Path, time.Since(start))
	}
}

func processRequest(re requestResponseStruct) requestResponseStruct {
	re.logger = logger_i.NewLogger("middleware")
	re = injectTrace(re)
	re = rateLimiter(re)
	return re
}

func recoverPanic(w http.ResponseWriter, re requestResponseStruct) {
	if rec := recover(); rec != nil {
		re.logger.Error("panic while handling request",
			"panic", rec,
			"path", re.req.URL.Path,
			"stack", string(debug.Stack()))
		handlers.WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error", "An unexpected error occurred")
	}
}
