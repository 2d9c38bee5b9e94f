package rag

import (
	"context"

	"github.com/clearclause/contract-rag/internal/apperr"
	"github.com/clearclause/contract-rag/internal/rag/clauses"
	"github.com/clearclause/contract-rag/internal/rag/embedding"
	"github.com/clearclause/contract-rag/internal/rag/llm"
	"github.com/clearclause/contract-rag/internal/rag/vectorindex"
	"github.com/clearclause/contract-rag/pkg/logger_i"
)

// RetrievedChunk is one piece of supporting context returned alongside an
// answer. Distance is squared L2, lower is closer.
type RetrievedChunk struct {
	Text     string
	Distance float32
}

// Service is the public contract; handlers never touch the embedder or the
// LLM directly. The private struct holds the clients so they can be swapped
// for mocks in tests.
type Service interface {
	IndexDocument(ctx context.Context, chunks []string) (*vectorindex.FlatIndex, map[int]string, error)
	Answer(ctx context.Context, query string, index *vectorindex.FlatIndex, chunkMap map[int]string, topK int) (string, []RetrievedChunk, error)
	Summarize(ctx context.Context, text string) (string, error)
	Compare(ctx context.Context, clause string) (string, error)
	Analyze(ctx context.Context, text, analysisType string) (string, error)
	ExtractClauses(ctx context.Context, text string) ([]clauses.Clause, error)
}

type service struct {
	llmProvider llm.Provider
	embedder    embedding.Embedder
	logger      *logger_i.Logger
}

func NewService(provider llm.Provider, em embedding.Embedder) Service {
	return &service{
		llmProvider: provider,
		embedder:    em,
		logger:      logger_i.NewLogger("ragService"),
	}
}

func (s *service) IndexDocument(ctx context.Context, chunks []string) (*vectorindex.FlatIndex, map[int]string, error) {
	index, chunkMap, err := s.executeIndexStep(ctx, chunks)
	if err != nil {
		s.logger.Error("document indexing failed", "error", err)
		return nil, nil, err
	}
	s.logger.Info("document indexed", "chunks", index.Len(), "dimension", index.Dimension())
	return index, chunkMap, nil
}

// Answer retrieves the closest chunks for the query and asks the LLM to
// answer from those excerpts only.
func (s *service) Answer(ctx context.Context, query string, index *vectorindex.FlatIndex, chunkMap map[int]string, topK int) (string, []RetrievedChunk, error) {
	retrieved, err := s.executeRetrievalStep(ctx, query, index, chunkMap, topK)
	if err != nil {
		s.logger.Error("retrieval failed", "error", err)
		return "", nil, err
	}

	texts := make([]string, len(retrieved))
	for i, r := range retrieved {
		texts[i] = r.Text
	}

	answer, err := s.executeLLMStep(ctx, answerPrompt(query, texts))
	if err != nil {
		return "", nil, s.llmError(err)
	}
	return answer, retrieved, nil
}

func (s *service) Summarize(ctx context.Context, text string) (string, error) {
	summary, err := s.executeLLMStep(ctx, summarizePrompt(text))
	if err != nil {
		return "", s.llmError(err)
	}
	return summary, nil
}

func (s *service) Compare(ctx context.Context, clause string) (string, error) {
	comparison, err := s.executeLLMStep(ctx, comparePrompt(clause))
	if err != nil {
		return "", s.llmError(err)
	}
	return comparison, nil
}

func (s *service) Analyze(ctx context.Context, text, analysisType string) (string, error) {
	analysis, err := s.executeLLMStep(ctx, analyzePrompt(text, analysisType))
	if err != nil {
		return "", s.llmError(err)
	}
	return analysis, nil
}

// ExtractClauses asks for structured JSON output. An unparseable response is
// not an error: the caller gets an empty list, matching the contract that
// malformed model output degrades instead of failing the request.
func (s *service) ExtractClauses(ctx context.Context, text string) ([]clauses.Clause, error) {
	raw, err := s.executeLLMStep(ctx, extractClausesPrompt(text))
	if err != nil {
		return nil, s.llmError(err)
	}

	parsed, err := clauses.Parse(raw)
	if err != nil {
		s.logger.Warn("failed to parse LLM response as JSON, returning empty clauses list", "error", err)
		return []clauses.Clause{}, nil
	}
	return parsed, nil
}

func (s *service) llmError(err error) error {
	s.logger.Error("LLM generation failed", "error", err)
	return apperr.Wrap(apperr.LLM, err, "LLM generation failed")
}
