package hashEmbedding

import (
	"context"
	"math"
	"testing"
)

func TestGetEmbedding_Deterministic(t *testing.T) {
	e := New()
	ctx := context.Background()

	a, err := e.GetEmbedding(ctx, "the termination clause requires thirty days notice")
	if err != nil {
		t.Fatalf("GetEmbedding failed: %v", err)
	}
	b, _ := e.GetEmbedding(ctx, "the termination clause requires thirty days notice")

	if len(a) != e.Dimension() {
		t.Fatalf("dimension mismatch: %d", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("embedding not deterministic at index %d", i)
		}
	}
}

func TestGetEmbedding_Normalized(t *testing.T) {
	e := New()
	vec, err := e.GetEmbedding(context.Background(), "liability is limited to fees paid")
	if err != nil {
		t.Fatalf("GetEmbedding failed: %v", err)
	}

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if math.Abs(norm-1.0) > 1e-5 {
		t.Errorf("expected unit norm, got %f", norm)
	}
}

func TestGetEmbedding_SimilarTextsAreCloser(t *testing.T) {
	e := New()
	ctx := context.Background()

	base, _ := e.GetEmbedding(ctx, "the contract may be terminated with notice")
	near, _ := e.GetEmbedding(ctx, "the contract may be terminated early")
	far, _ := e.GetEmbedding(ctx, "payment is due within sixty days of invoice")

	if l2(base, near) >= l2(base, far) {
		t.Errorf("lexically similar text should be closer: near=%f far=%f", l2(base, near), l2(base, far))
	}
}

func TestBatchEmbedding(t *testing.T) {
	e := New()
	chunks := []string{"first chunk", "second chunk", "third chunk"}

	vectors, err := e.BatchEmbedding(context.Background(), chunks)
	if err != nil {
		t.Fatalf("BatchEmbedding failed: %v", err)
	}
	if len(vectors) != len(chunks) {
		t.Fatalf("expected %d vectors, got %d", len(chunks), len(vectors))
	}

	single, _ := e.GetEmbedding(context.Background(), "second chunk")
	for i := range single {
		if vectors[1][i] != single[i] {
			t.Fatal("batch vector differs from single-text vector for the same input")
		}
	}
}

func l2(a, b []float32) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i] - b[i])
		sum += d * d
	}
	return sum
}
