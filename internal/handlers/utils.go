package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/clearclause/contract-rag/internal/adapter"
	"github.com/clearclause/contract-rag/internal/apperr"
	"github.com/clearclause/contract-rag/internal/config"
	"github.com/clearclause/contract-rag/internal/news"
	"github.com/clearclause/contract-rag/internal/rag"
	"github.com/clearclause/contract-rag/internal/session"
	"github.com/clearclause/contract-rag/pkg/logger_i"
)

var (
	logH        *logger_i.Logger
	sessions    *session.Manager
	ragService  rag.Service
	newsFetcher *news.Fetcher
	settings    *config.Settings
	startTime   time.Time
)

// Init wires the handler package once at startup, before the server starts
// accepting requests.
func Init(s *session.Manager, r rag.Service, n *news.Fetcher, cfg *config.Settings) {
	logH = logger_i.NewLogger("handlers")
	sessions = s
	ragService = r
	newsFetcher = n
	settings = cfg
	startTime = time.Now().UTC()
}

func writeJsonResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but can't send a clean status code now
		logH.Error("Error encoding response", "error", err)
	}
}

func WriteErrorResponse(w http.ResponseWriter, httpCode int, errorMessage string, detail string) {
	writeJsonResponse(w, httpCode, adapter.ErrorBody(errorMessage, detail))
}

// writeAppError translates a component error into the wire shape. The detail
// string only carries the underlying cause in debug mode.
func writeAppError(w http.ResponseWriter, err error) {
	cat := apperr.CategoryOf(err)

	headline := "Internal server error"
	switch cat {
	case apperr.Validation, apperr.Encoding:
		headline = "Validation error"
	case apperr.NotFound:
		headline = "Session not found"
	case apperr.Expired:
		headline = "Session expired"
	case apperr.RateLimited:
		headline = "Rate limit exceeded"
	}

	WriteErrorResponse(w, apperr.HTTPStatus(cat), headline, apperr.ClientMessage(err, settings.Debug))
}

func validateContext(ctx context.Context) bool {
	if ctx.Err() != nil {
		logH.Warn("context error", "error", ctx.Err())
		return false
	}

	select {
	case <-ctx.Done():
		logH.Warn("context cancelled")
		return false
	default:
		return true
	}
}

// getSession resolves a session id and writes the 404 itself when the lookup
// fails, so handlers can simply return.
func getSession(w http.ResponseWriter, id string) (*session.Session, bool) {
	if id == "" {
		WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "session_id is required")
		return nil, false
	}
	s, err := sessions.Get(id)
	if err != nil {
		logH.Warn("session lookup failed", "sessionId", id, "error", err)
		writeAppError(w, err)
		return nil, false
	}
	return s, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, into interface{}) bool {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(into); err != nil {
		logH.Warn("bad request body", "error", err)
		WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "request body is not valid JSON")
		return false
	}
	return true
}
