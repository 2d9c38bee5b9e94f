package api

import "time"

type AnalysisType string

const (
	AnalysisRisk       AnalysisType = "risk"
	AnalysisCompliance AnalysisType = "compliance"
	AnalysisLegal      AnalysisType = "legal"
)

func (a AnalysisType) Valid() bool {
	switch a {
	case AnalysisRisk, AnalysisCompliance, AnalysisLegal:
		return true
	}
	return false
}

// requests---------------------

type QueryRequest struct {
	SessionID string `json:"session_id" validate:"required"`
	Query     string `json:"query" validate:"required" example:"What are the termination clauses?"`
}

type SummarizeRequest struct {
	SessionID string `json:"session_id" validate:"required"`
}

type CompareRequest struct {
	SessionID string `json:"session_id" validate:"required"`
	Clause    string `json:"clause" validate:"required" example:"The employee may be terminated at-will with 30 days notice."`
}

type AnalyzeRequest struct {
	SessionID    string       `json:"session_id" validate:"required"`
	AnalysisType AnalysisType `json:"analysis_type,omitempty" example:"risk"`
}

type ExtractClausesRequest struct {
	SessionID string `json:"session_id" validate:"required"`
}

// responses--------------------

type UploadResponse struct {
	SessionID      string `json:"session_id" example:"abc123def456"`
	Filename       string `json:"filename" example:"contract.pdf"`
	ChunkCount     int    `json:"chunk_count" example:"42"`
	FileType       string `json:"file_type,omitempty" example:"pdf"`
	PagesProcessed int    `json:"pages_processed,omitempty"`
	TextLength     int    `json:"text_length,omitempty"`
	Message        string `json:"message" example:"Document uploaded and indexed successfully"`
	Success        bool   `json:"success" example:"true"`
}

type RetrievedChunk struct {
	Text     string  `json:"text"`
	Distance float32 `json:"distance" example:"0.234"`
}

type QueryResponse struct {
	Answer          string           `json:"answer"`
	RetrievedChunks []RetrievedChunk `json:"retrieved_chunks,omitempty"`
	Success         bool             `json:"success"`
}

type SummarizeResponse struct {
	Summary string `json:"summary"`
	Success bool   `json:"success"`
}

type CompareResponse struct {
	Comparison string `json:"comparison"`
	Success    bool   `json:"success"`
}

type AnalyzeResponse struct {
	Analysis     string `json:"analysis"`
	AnalysisType string `json:"analysis_type" example:"risk"`
	Success      bool   `json:"success"`
}

type ExtractedClause struct {
	ClauseText   string `json:"clause_text"`
	ClauseType   string `json:"clause_type" example:"Liability Limitation"`
	RiskLevel    string `json:"risk_level" example:"moderate"`
	Implications string `json:"implications,omitempty"`
	Category     string `json:"category,omitempty" example:"Liability"`
}

type ExtractClausesResponse struct {
	Clauses      []ExtractedClause `json:"clauses"`
	TotalClauses int               `json:"total_clauses"`
	Success      bool              `json:"success"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"Session not found"`
	Detail  string `json:"detail,omitempty"`
	Success bool   `json:"success" example:"false"`
}

type HealthCheckResponse struct {
	Status         string    `json:"status" example:"healthy"`
	Timestamp      time.Time `json:"timestamp"`
	Version        string    `json:"version" example:"0.1.0"`
	ActiveSessions int       `json:"active_sessions"`
	UptimeSeconds  float64   `json:"uptime_seconds"`
}

type SessionDetails struct {
	TotalActive             int     `json:"total_active"`
	OldestSessionAgeSeconds float64 `json:"oldest_session_age_seconds"`
}

type DetailedHealthResponse struct {
	Status        string         `json:"status"`
	Timestamp     time.Time      `json:"timestamp"`
	Version       string         `json:"version"`
	UptimeSeconds float64        `json:"uptime_seconds"`
	Sessions      SessionDetails `json:"sessions"`
	APIPrefix     string         `json:"api_prefix"`
	MaxFileSizeMB int            `json:"max_file_size_mb"`
}
