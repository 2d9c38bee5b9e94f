package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Category buckets an error for HTTP translation. Handlers never inspect
// concrete component errors, only the category.
type Category string

const (
	Validation  Category = "validation"
	Encoding    Category = "encoding"
	NotFound    Category = "not_found"
	Expired     Category = "expired"
	Extraction  Category = "extraction"
	Capability  Category = "capability_unavailable"
	LLM         Category = "llm"
	RateLimited Category = "rate_limited"
	Internal    Category = "internal"
)

type Error struct {
	Category Category
	Message  string //safe to echo to the client
	Err      error  //underlying cause, logged but not echoed outside debug mode
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Category, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func New(cat Category, format string, args ...any) *Error {
	return &Error{Category: cat, Message: fmt.Sprintf(format, args...)}
}

func Wrap(cat Category, err error, format string, args ...any) *Error {
	return &Error{Category: cat, Message: fmt.Sprintf(format, args...), Err: err}
}

// CategoryOf walks the chain; anything untyped counts as Internal.
func CategoryOf(err error) Category {
	var e *Error
	if errors.As(err, &e) {
		return e.Category
	}
	return Internal
}

func Is(err error, cat Category) bool {
	return CategoryOf(err) == cat
}

// HTTPStatus maps a category to the wire status. NotFound and Expired are
// both 404 on purpose: the client remedy is identical, re-upload.
func HTTPStatus(cat Category) int {
	switch cat {
	case Validation, Encoding:
		return http.StatusBadRequest
	case NotFound, Expired:
		return http.StatusNotFound
	case RateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// ClientMessage returns what may be written to the response body. Debug mode
// exposes the full chain, otherwise only the safe message survives.
func ClientMessage(err error, debug bool) string {
	var e *Error
	if !errors.As(err, &e) {
		if debug {
			return err.Error()
		}
		return "Internal Server Error"
	}
	if debug && e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}
