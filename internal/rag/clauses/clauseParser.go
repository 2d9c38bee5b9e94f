package clauses

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Clause is one structured clause extracted from a document by the LLM.
type Clause struct {
	Text         string `json:"clause_text"`
	Type         string `json:"clause_type"`
	RiskLevel    string `json:"risk_level"`
	Implications string `json:"implications,omitempty"`
	Category     string `json:"category,omitempty"`
}

const (
	RiskSafe     = "safe"
	RiskModerate = "moderate"
	RiskHigh     = "high"
)

// Parse reads the LLM's reply as a JSON clause array. Markdown code fences
// are stripped first. A top-level object is treated as a single-element
// array. Individual items that cannot be coerced are skipped; only an
// unparseable top level is an error, and the caller decides whether that
// degrades to an empty list.
func Parse(raw string) ([]Clause, error) {
	cleaned := stripCodeFence(strings.TrimSpace(raw))

	var top any
	if err := json.Unmarshal([]byte(cleaned), &top); err != nil {
		return nil, fmt.Errorf("clause response is not valid JSON: %w", err)
	}

	var items []any
	switch v := top.(type) {
	case []any:
		items = v
	case map[string]any:
		items = []any{v}
	default:
		return nil, fmt.Errorf("clause response is neither a JSON array nor an object")
	}

	clauses := make([]Clause, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		clauses = append(clauses, coerce(obj))
	}
	return clauses, nil
}

// coerce reads one clause object. Models drift between field names, so each
// field accepts known aliases and missing values fall back to defaults.
func coerce(obj map[string]any) Clause {
	c := Clause{
		Text:         stringField(obj, "clause_text", "text"),
		Type:         stringField(obj, "clause_type", "type"),
		RiskLevel:    stringField(obj, "risk_level", "risk"),
		Implications: stringField(obj, "implications", "explanation"),
		Category:     stringField(obj, "category"),
	}
	if c.Type == "" {
		c.Type = "Unspecified"
	}
	if c.RiskLevel == "" {
		c.RiskLevel = RiskModerate
	}
	return c
}

func stringField(obj map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := obj[k]; ok {
			if s, ok := v.(string); ok {
				return s
			}
		}
	}
	return ""
}

// stripCodeFence removes a wrapping ```...``` block, with or without a
// language tag, leaving anything unfenced untouched.
func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.Index(s, "```"); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimPrefix(s, "json")
	return strings.TrimSpace(s)
}
