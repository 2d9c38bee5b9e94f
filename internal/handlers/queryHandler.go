package handlers

import (
	"net/http"
	"unicode/utf8"

	"github.com/clearclause/contract-rag/internal/adapter"
	"github.com/clearclause/contract-rag/internal/api"
)

const (
	maxQueryChars  = 1000
	maxClauseChars = 5000
)

func QueryHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}

	var req api.QueryRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if n := utf8.RuneCountInString(req.Query); n == 0 || n > maxQueryChars {
		WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "query must be between 1 and 1000 characters")
		return
	}

	s, ok := getSession(w, req.SessionID)
	if !ok {
		return
	}

	answer, retrieved, err := ragService.Answer(r.Context(), req.Query, s.Index, s.ChunkMap, settings.TopKResults)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJsonResponse(w, http.StatusOK, adapter.ToQueryResponse(answer, retrieved))
}

func SummarizeHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}

	var req api.SummarizeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	s, ok := getSession(w, req.SessionID)
	if !ok {
		return
	}

	summary, err := ragService.Summarize(r.Context(), s.Text)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJsonResponse(w, http.StatusOK, api.SummarizeResponse{Summary: summary, Success: true})
}

func CompareHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}

	var req api.CompareRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if n := utf8.RuneCountInString(req.Clause); n == 0 || n > maxClauseChars {
		WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "clause must be between 1 and 5000 characters")
		return
	}

	if _, ok := getSession(w, req.SessionID); !ok {
		return
	}

	comparison, err := ragService.Compare(r.Context(), req.Clause)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJsonResponse(w, http.StatusOK, api.CompareResponse{Comparison: comparison, Success: true})
}

func AnalyzeHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}

	var req api.AnalyzeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.AnalysisType == "" {
		req.AnalysisType = api.AnalysisRisk
	}
	if !req.AnalysisType.Valid() {
		WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "analysis_type must be one of risk, compliance, legal")
		return
	}

	s, ok := getSession(w, req.SessionID)
	if !ok {
		return
	}

	analysis, err := ragService.Analyze(r.Context(), s.Text, string(req.AnalysisType))
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJsonResponse(w, http.StatusOK, api.AnalyzeResponse{
		Analysis:     analysis,
		AnalysisType: string(req.AnalysisType),
		Success:      true,
	})
}

func ExtractClausesHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}

	var req api.ExtractClausesRequest
	if !decodeBody(w, r, &req) {
		return
	}

	s, ok := getSession(w, req.SessionID)
	if !ok {
		return
	}

	parsed, err := ragService.ExtractClauses(r.Context(), s.Text)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJsonResponse(w, http.StatusOK, adapter.ToExtractClausesResponse(parsed))
}
