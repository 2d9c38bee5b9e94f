package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/clearclause/contract-rag/internal/rag/llm"
	"github.com/clearclause/contract-rag/pkg/logger_i"
	"google.golang.org/genai"
)

type Client struct {
	client    *genai.Client
	modelName string
	logger    *logger_i.Logger
}

func New(ctx context.Context, apikey string, modelName string) (*Client, error) {
	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apikey})
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}
	return &Client{
		client:    c,
		modelName: modelName,
		logger:    logger_i.NewLogger("llm_gemini"),
	}, nil
}

func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	result, err := c.client.Models.GenerateContent(
		ctx,
		c.modelName,
		genai.Text(prompt),
		nil,
	)
	if err != nil {
		c.logger.Error("Gemini request failed", "model", c.modelName, "error", err)
		return "", classify(err, c.modelName)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		// SDK returned a shape with no extractable text
		return "", &llm.Error{Retryable: true, Message: "Gemini returned an empty response"}
	}
	return text, nil
}

// classify splits provider failures into a non-retryable model configuration
// problem vs everything else. Matching is on the message because the SDK does
// not expose a stable code for unknown models across versions.
func classify(err error, modelName string) *llm.Error {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "not found") || strings.Contains(msg, "not supported") {
		return &llm.Error{
			Retryable: false,
			Message: fmt.Sprintf(
				"model %q is not available for this API client; set LLM_MODEL to a supported model", modelName),
			Err: err,
		}
	}
	return &llm.Error{Retryable: true, Message: "LLM request failed", Err: err}
}
