package rag

import (
	"fmt"
	"strings"
)

func answerPrompt(query string, retrieved []string) string {
	return fmt.Sprintf(`
You are a legal assistant AI.
Use the following extracted contract clauses to answer the user's question.

Contract excerpts:
%s

Question:
%s

Answer concisely based only on the above excerpts.
`, strings.Join(retrieved, "\n\n"), query)
}

func summarizePrompt(text string) string {
	return fmt.Sprintf("Summarize the following contract concisely:\n\n%s", text)
}

func comparePrompt(clause string) string {
	return fmt.Sprintf(`
Compare the following contract clause to a standard employment clause template and highlight any differences or missing points:

%s
`, clause)
}

func analyzePrompt(text, analysisType string) string {
	return fmt.Sprintf("Analyze the following contract for potential %s issues, liabilities, and areas of concern:\n\n%s", analysisType, text)
}

func extractClausesPrompt(text string) string {
	return fmt.Sprintf(`Analyze this legal document and extract ALL clauses. For each clause, provide:
1. The full clause text
2. Clause type/category (e.g., "Data Use - Payment & Delivery", "Liability Limitation", "Termination")
3. Risk level (must be one of: safe, moderate, high)
4. Brief implications (2-3 sentences explaining the impact)
5. General category if applicable (e.g., Data Use, Liability, Payment, Legal, Termination)

Format EVERY response as a valid JSON array with objects having these exact fields:
- clause_text (string): full clause text
- clause_type (string): specific type/description
- risk_level (string): one of safe/moderate/high
- implications (string): brief explanation
- category (string or null): general category

RESPOND ONLY WITH THE JSON ARRAY. No additional text.

Document text:
%s
`, text)
}
