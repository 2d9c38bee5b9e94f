package rag_test

import (
	"context"
)

// MockEmbedder implements embedding.Embedder
type MockEmbedder struct {
	// Control fields to simulate different behaviors
	OnGetEmbedding   func(ctx context.Context, text string) ([]float32, error)
	OnBatchEmbedding func(ctx context.Context, chunks []string) ([][]float32, error)
	Dim              int
}

func (m *MockEmbedder) GetEmbedding(ctx context.Context, query string) ([]float32, error) {
	if m.OnGetEmbedding != nil {
		return m.OnGetEmbedding(ctx, query)
	}
	return make([]float32, m.Dimension()), nil
}

func (m *MockEmbedder) BatchEmbedding(ctx context.Context, chunks []string) ([][]float32, error) {
	if m.OnBatchEmbedding != nil {
		return m.OnBatchEmbedding(ctx, chunks)
	}
	// Return dummy vectors matching chunk count
	vectors := make([][]float32, len(chunks))
	for i := range vectors {
		vectors[i] = make([]float32, m.Dimension())
	}
	return vectors, nil
}

func (m *MockEmbedder) Dimension() int {
	if m.Dim > 0 {
		return m.Dim
	}
	return 4
}

// MockLLM implements llm.Provider
type MockLLM struct {
	OnComplete func(ctx context.Context, prompt string) (string, error)
}

func (m *MockLLM) Complete(ctx context.Context, prompt string) (string, error) {
	if m.OnComplete != nil {
		return m.OnComplete(ctx, prompt)
	}
	return "mocked llm response", nil
}
