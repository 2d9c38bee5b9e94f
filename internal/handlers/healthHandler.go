package handlers

import (
	"net/http"
	"time"

	"github.com/clearclause/contract-rag/internal/api"
	"github.com/clearclause/contract-rag/internal/config"
)

func healthStatus() string {
	// without a key the LLM endpoints cannot answer, the rest still works
	if settings.GeminiAPIKey == "" {
		return "degraded"
	}
	return "healthy"
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJsonResponse(w, http.StatusOK, api.HealthCheckResponse{
		Status:         healthStatus(),
		Timestamp:      time.Now().UTC(),
		Version:        config.Version,
		ActiveSessions: sessions.Count(),
		UptimeSeconds:  time.Since(startTime).Seconds(),
	})
}

func DetailedHealthHandler(w http.ResponseWriter, r *http.Request) {
	stats := sessions.SessionStats()

	writeJsonResponse(w, http.StatusOK, api.DetailedHealthResponse{
		Status:        healthStatus(),
		Timestamp:     time.Now().UTC(),
		Version:       config.Version,
		UptimeSeconds: time.Since(startTime).Seconds(),
		Sessions: api.SessionDetails{
			TotalActive:             stats.Count,
			OldestSessionAgeSeconds: stats.OldestAge.Seconds(),
		},
		APIPrefix:     settings.APIPrefix,
		MaxFileSizeMB: settings.MaxFileSizeMB,
	})
}
