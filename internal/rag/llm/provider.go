package llm

import (
	"context"
	"fmt"
)

// Provider sends one prompt and returns the model's text. No caching, no
// retries; retry policy belongs to the caller.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Error is the normalized failure type every Provider returns. Retryable is
// false for configuration problems such as an unknown model name.
type Error struct {
	Retryable bool
	Message   string
	Err       error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Unconfigured stands in when no API key is set. The service still serves
// uploads and retrieval, only generation fails.
type Unconfigured struct{}

func (Unconfigured) Complete(ctx context.Context, prompt string) (string, error) {
	return "", &Error{Retryable: false, Message: "GEMINI_API_KEY is not configured"}
}
