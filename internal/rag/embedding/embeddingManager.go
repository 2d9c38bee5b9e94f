package embedding

import "context"

// Embedder turns text into fixed-dimension dense vectors. Implementations
// must be deterministic: the same text always yields the same vector.
type Embedder interface {
	GetEmbedding(ctx context.Context, query string) ([]float32, error)
	BatchEmbedding(ctx context.Context, chunks []string) ([][]float32, error)
	Dimension() int
}
