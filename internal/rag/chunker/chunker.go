package chunker

import (
	"strings"

	"github.com/clearclause/contract-rag/internal/apperr"
)

// Chunk slides a fixed-width window across the normalized text, advancing by
// maxLength-overlap each step so neighbouring chunks share overlap characters.
// Whitespace runs (including newlines) collapse to single spaces first.
func Chunk(text string, maxLength int, overlap int) ([]string, error) {
	if maxLength <= 0 {
		return nil, apperr.New(apperr.Validation, "chunk max length must be positive, got %d", maxLength)
	}
	if overlap < 0 || overlap >= maxLength {
		//the window would never advance
		return nil, apperr.New(apperr.Validation, "chunk overlap %d must be smaller than max length %d", overlap, maxLength)
	}

	normalized := Normalize(text)
	if normalized == "" {
		return nil, nil
	}

	runes := []rune(normalized)
	step := maxLength - overlap

	var chunks []string
	for start := 0; start < len(runes); start += step {
		end := start + maxLength
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks, nil
}

// Normalize collapses all whitespace runs to single spaces and trims.
func Normalize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
