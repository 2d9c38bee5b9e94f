package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Category
	}{
		{"typed error", New(NotFound, "session not found"), NotFound},
		{"wrapped typed error", fmt.Errorf("handler: %w", New(Expired, "gone")), Expired},
		{"untyped error", errors.New("boom"), Internal},
	}

	for _, tt := range tests {
		if got := CategoryOf(tt.err); got != tt.expected {
			t.Errorf("%s: CategoryOf = %v; want %v", tt.name, got, tt.expected)
		}
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		cat      Category
		expected int
	}{
		{Validation, http.StatusBadRequest},
		{Encoding, http.StatusBadRequest},
		{NotFound, http.StatusNotFound},
		{Expired, http.StatusNotFound},
		{Extraction, http.StatusInternalServerError},
		{Capability, http.StatusInternalServerError},
		{LLM, http.StatusInternalServerError},
		{Internal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := HTTPStatus(tt.cat); got != tt.expected {
			t.Errorf("HTTPStatus(%s) = %d; want %d", tt.cat, got, tt.expected)
		}
	}
}

func TestClientMessage_HidesDetailOutsideDebug(t *testing.T) {
	err := Wrap(LLM, errors.New("quota exceeded for project 42"), "LLM request failed")

	if msg := ClientMessage(err, false); msg != "LLM request failed" {
		t.Errorf("non-debug message leaked detail: %q", msg)
	}
	if msg := ClientMessage(err, true); msg != "LLM request failed: quota exceeded for project 42" {
		t.Errorf("debug message missing detail: %q", msg)
	}
	if msg := ClientMessage(errors.New("raw"), false); msg != "Internal Server Error" {
		t.Errorf("untyped error leaked: %q", msg)
	}
}
