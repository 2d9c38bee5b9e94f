package googleEmbedding

import (
	"context"
	"fmt"
	"time"

	"github.com/clearclause/contract-rag/internal/apperr"
	"github.com/clearclause/contract-rag/pkg/logger_i"
	"google.golang.org/genai"
)

// Gemini's embedding output is truncated to this size on every call so the
// index dimension stays stable across model revisions.
var dimension int32 = 1536

type Client struct {
	genAi  *genai.Client
	model  string
	logger *logger_i.Logger
}

func New(ctx context.Context, modelName string, apikey string) (*Client, error) {
	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apikey})
	if err != nil {
		return nil, fmt.Errorf("creating google embedding client: %w", err)
	}
	return &Client{
		genAi:  c,
		model:  modelName,
		logger: logger_i.NewLogger("google_embedding"),
	}, nil
}

func (c *Client) Dimension() int { return int(dimension) }

func (c *Client) GetEmbedding(ctx context.Context, query string) ([]float32, error) {
	result, err := c.doCall(ctx, genai.Text(query), "RETRIEVAL_QUERY")
	if err != nil {
		c.logger.Error("Error getting embedding from Google", "error", err)
		return nil, apperr.Wrap(apperr.Internal, err, "embedding request failed")
	}
	if len(result.Embeddings) == 0 {
		return nil, apperr.New(apperr.Internal, "embedding response contained no vectors")
	}
	return result.Embeddings[0].Values, nil
}

func (c *Client) BatchEmbedding(ctx context.Context, chunks []string) ([][]float32, error) {
	res, err := c.doCall(ctx, getContent(chunks), "RETRIEVAL_DOCUMENT")
	if err != nil {
		if doRetry(err) {
			c.logger.Debug("Rate limit hit, retrying batch in 5 seconds")
			time.Sleep(5 * time.Second)
			res, err = c.doCall(ctx, getContent(chunks), "RETRIEVAL_DOCUMENT")
		}
		if err != nil {
			c.logger.Error("Error getting batch embeddings from Google", "error", err, "chunks", len(chunks))
			return nil, apperr.Wrap(apperr.Internal, err, "batch embedding request failed")
		}
	}
	if len(res.Embeddings) != len(chunks) {
		return nil, apperr.New(apperr.Internal, "embedding count mismatch: sent %d chunks, got %d vectors", len(chunks), len(res.Embeddings))
	}

	vectors := make([][]float32, len(res.Embeddings))
	for i, r := range res.Embeddings {
		vectors[i] = r.Values
	}
	return vectors, nil
}

func (c *Client) doCall(ctx context.Context, content []*genai.Content, taskType string) (*genai.EmbedContentResponse, error) {
	return c.genAi.Models.EmbedContent(ctx, c.model, content, &genai.EmbedContentConfig{
		OutputDimensionality: &dimension,
		TaskType:             taskType,
	})
}
