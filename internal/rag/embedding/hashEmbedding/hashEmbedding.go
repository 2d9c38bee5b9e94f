package hashEmbedding

import (
	"context"
	"hash/fnv"
	"math"
	"strings"

	"github.com/clearclause/contract-rag/internal/config"
)

// Embedder is a pure, stateless feature-hashing embedder: every token (and
// token bigram) is hashed into a fixed number of buckets and the resulting
// count vector is L2-normalized. It is no match for a learned model but it is
// deterministic, needs no API key, and keeps lexically similar texts close.
type Embedder struct {
	dimension int
}

func New() *Embedder {
	return &Embedder{dimension: config.HashEmbeddingDimension}
}

func (e *Embedder) Dimension() int { return e.dimension }

func (e *Embedder) GetEmbedding(ctx context.Context, query string) ([]float32, error) {
	return e.embed(query), nil
}

func (e *Embedder) BatchEmbedding(ctx context.Context, chunks []string) ([][]float32, error) {
	vectors := make([][]float32, len(chunks))
	for i, c := range chunks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		vectors[i] = e.embed(c)
	}
	return vectors, nil
}

func (e *Embedder) embed(text string) []float32 {
	vec := make([]float32, e.dimension)
	tokens := tokenize(text)

	for i, tok := range tokens {
		vec[e.bucket(tok)]++
		if i > 0 {
			vec[e.bucket(tokens[i-1]+" "+tok)]++
		}
	}

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if norm > 0 {
		scale := float32(1 / math.Sqrt(norm))
		for i := range vec {
			vec[i] *= scale
		}
	}
	return vec
}

func (e *Embedder) bucket(token string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(token))
	return int(h.Sum32() % uint32(e.dimension))
}

func tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, ".,;:!?()[]{}\"'")
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
