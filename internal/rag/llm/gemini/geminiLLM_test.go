package gemini

import (
	"errors"
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		wantRetryable bool
		wantModelHint bool
	}{
		{"model not found", errors.New("rpc error: model gemini-9000 is NOT FOUND"), false, true},
		{"model not supported", errors.New("generateContent is not supported by this model"), false, true},
		{"quota exceeded", errors.New("resource exhausted: quota"), true, false},
		{"network failure", errors.New("connection reset by peer"), true, false},
	}

	for _, tt := range tests {
		got := classify(tt.err, "gemini-9000")
		if got.Retryable != tt.wantRetryable {
			t.Errorf("%s: Retryable = %v; want %v", tt.name, got.Retryable, tt.wantRetryable)
		}
		hasHint := strings.Contains(got.Message, "LLM_MODEL")
		if hasHint != tt.wantModelHint {
			t.Errorf("%s: reconfiguration hint present = %v; want %v (message %q)", tt.name, hasHint, tt.wantModelHint, got.Message)
		}
		if !errors.Is(got, tt.err) {
			t.Errorf("%s: classified error lost its cause", tt.name)
		}
	}
}
