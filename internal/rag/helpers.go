package rag

import (
	"context"
	"time"

	"github.com/clearclause/contract-rag/internal/metrics"
	"github.com/clearclause/contract-rag/internal/rag/vectorindex"
)

func (s *service) executeIndexStep(ctx context.Context, chunks []string) (*vectorindex.FlatIndex, map[int]string, error) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("embedding", time.Since(start)) }()

	return vectorindex.Build(ctx, s.embedder, chunks)
}

func (s *service) executeRetrievalStep(ctx context.Context, query string, index *vectorindex.FlatIndex, chunkMap map[int]string, topK int) ([]RetrievedChunk, error) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("vector_search", time.Since(start)) }()

	queryVector, err := s.embedder.GetEmbedding(ctx, query)
	if err != nil {
		return nil, err
	}

	hits, err := index.Search(queryVector, topK)
	if err != nil {
		return nil, err
	}

	retrieved := make([]RetrievedChunk, len(hits))
	for i, h := range hits {
		retrieved[i] = RetrievedChunk{Text: chunkMap[h.Position], Distance: h.Distance}
	}
	return retrieved, nil
}

func (s *service) executeLLMStep(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("llm_generation", time.Since(start)) }()

	return s.llmProvider.Complete(ctx, prompt)
}
