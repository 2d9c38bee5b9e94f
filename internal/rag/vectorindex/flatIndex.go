package vectorindex

import (
	"context"
	"sort"

	"github.com/clearclause/contract-rag/internal/apperr"
	"github.com/clearclause/contract-rag/internal/rag/embedding"
)

// Hit is one nearest-neighbour result. Distance is squared Euclidean (L2)
// distance in the embedding space, so lower means more relevant.
type Hit struct {
	Position int
	Distance float32
}

// FlatIndex is an exact brute-force k-NN index over a fixed vector set.
// It is immutable after Build; a session owns exactly one.
type FlatIndex struct {
	dimension int
	vectors   [][]float32
}

// Build embeds every chunk and stores the vectors in appearance order.
// The returned chunk map shares that order: position i -> chunks[i].
func Build(ctx context.Context, embedder embedding.Embedder, chunks []string) (*FlatIndex, map[int]string, error) {
	if len(chunks) == 0 {
		return nil, nil, apperr.New(apperr.Validation, "no chunks provided to build index")
	}

	vectors, err := embedder.BatchEmbedding(ctx, chunks)
	if err != nil {
		return nil, nil, err
	}
	if len(vectors) != len(chunks) {
		return nil, nil, apperr.New(apperr.Internal, "embedder returned %d vectors for %d chunks", len(vectors), len(chunks))
	}

	dim := embedder.Dimension()
	for i, v := range vectors {
		if len(v) != dim {
			return nil, nil, apperr.New(apperr.Internal, "vector %d has dimension %d, expected %d", i, len(v), dim)
		}
	}

	chunkMap := make(map[int]string, len(chunks))
	for i, c := range chunks {
		chunkMap[i] = c
	}

	return &FlatIndex{dimension: dim, vectors: vectors}, chunkMap, nil
}

func (ix *FlatIndex) Len() int       { return len(ix.vectors) }
func (ix *FlatIndex) Dimension() int { return ix.dimension }

// Search returns up to k nearest neighbours ordered by ascending distance.
// Equal distances keep insertion order for determinism.
func (ix *FlatIndex) Search(query []float32, k int) ([]Hit, error) {
	if len(query) != ix.dimension {
		return nil, apperr.New(apperr.Internal, "query dimension %d does not match index dimension %d", len(query), ix.dimension)
	}
	if k <= 0 {
		return nil, nil
	}

	hits := make([]Hit, len(ix.vectors))
	for i, v := range ix.vectors {
		hits[i] = Hit{Position: i, Distance: squaredL2(query, v)}
	}
	sort.SliceStable(hits, func(a, b int) bool {
		return hits[a].Distance < hits[b].Distance
	})

	if k > len(hits) {
		k = len(hits)
	}
	return hits[:k], nil
}

func squaredL2(a, b []float32) float32 {
	var sum float32
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
