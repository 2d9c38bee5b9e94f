package adapter

import (
	"github.com/clearclause/contract-rag/internal/api"
	"github.com/clearclause/contract-rag/internal/extract"
	"github.com/clearclause/contract-rag/internal/rag"
	"github.com/clearclause/contract-rag/internal/rag/clauses"
)

func ToUploadResponse(sessionID, filename string, chunkCount int, meta extract.Result) api.UploadResponse {
	return api.UploadResponse{
		SessionID:      sessionID,
		Filename:       filename,
		ChunkCount:     chunkCount,
		FileType:       meta.FileType,
		PagesProcessed: meta.Pages,
		TextLength:     len(meta.Text),
		Message:        "Document uploaded and indexed successfully",
		Success:        true,
	}
}

func ToQueryResponse(answer string, retrieved []rag.RetrievedChunk) api.QueryResponse {
	chunks := make([]api.RetrievedChunk, len(retrieved))
	for i, r := range retrieved {
		chunks[i] = api.RetrievedChunk{Text: r.Text, Distance: r.Distance}
	}
	return api.QueryResponse{Answer: answer, RetrievedChunks: chunks, Success: true}
}

func ToExtractClausesResponse(parsed []clauses.Clause) api.ExtractClausesResponse {
	out := make([]api.ExtractedClause, len(parsed))
	for i, c := range parsed {
		out[i] = api.ExtractedClause{
			ClauseText:   c.Text,
			ClauseType:   c.Type,
			RiskLevel:    c.RiskLevel,
			Implications: c.Implications,
			Category:     c.Category,
		}
	}
	return api.ExtractClausesResponse{Clauses: out, TotalClauses: len(out), Success: true}
}

func ErrorBody(errorMessage, detail string) api.ErrorResponse {
	return api.ErrorResponse{
		Error:   errorMessage,
		Detail:  detail,
		Success: false,
	}
}
