package clauses

import (
	"reflect"
	"testing"
)

const clauseArray = `[
  {"clause_text": "Either party may terminate with 30 days notice.",
   "clause_type": "Termination",
   "risk_level": "safe",
   "implications": "Standard exit clause.",
   "category": "Legal"},
  {"text": "Liability is capped at fees paid.",
   "type": "Liability Limitation",
   "risk": "high",
   "explanation": "Severely limits recoverable damages."}
]`

func TestParse_AliasFieldsAndDefaults(t *testing.T) {
	clauses, err := Parse(clauseArray)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(clauses) != 2 {
		t.Fatalf("expected 2 clauses, got %d", len(clauses))
	}

	if clauses[0].Type != "Termination" || clauses[0].RiskLevel != RiskSafe {
		t.Errorf("primary field names not read: %+v", clauses[0])
	}
	if clauses[1].Text != "Liability is capped at fees paid." {
		t.Errorf("alias 'text' not read: %+v", clauses[1])
	}
	if clauses[1].RiskLevel != RiskHigh || clauses[1].Implications != "Severely limits recoverable damages." {
		t.Errorf("aliases 'risk'/'explanation' not read: %+v", clauses[1])
	}
}

func TestParse_CodeFenceEquivalence(t *testing.T) {
	plain, err := Parse(clauseArray)
	if err != nil {
		t.Fatalf("Parse(plain) failed: %v", err)
	}

	for _, fenced := range []string{
		"```json\n" + clauseArray + "\n```",
		"```\n" + clauseArray + "\n```",
	} {
		got, err := Parse(fenced)
		if err != nil {
			t.Fatalf("Parse(fenced) failed: %v", err)
		}
		if !reflect.DeepEqual(got, plain) {
			t.Errorf("fenced parse differs from plain parse")
		}
	}
}

func TestParse_TopLevelObject(t *testing.T) {
	clauses, err := Parse(`{"clause_text": "solo", "clause_type": "Misc"}`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(clauses) != 1 || clauses[0].Text != "solo" {
		t.Errorf("object should become a single-element list: %+v", clauses)
	}
}

func TestParse_Defaults(t *testing.T) {
	clauses, err := Parse(`[{"clause_text": "something"}]`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if clauses[0].RiskLevel != RiskModerate {
		t.Errorf("missing risk_level should default to moderate, got %q", clauses[0].RiskLevel)
	}
	if clauses[0].Type != "Unspecified" {
		t.Errorf("missing clause_type should default to Unspecified, got %q", clauses[0].Type)
	}
}

func TestParse_SkipsMalformedItems(t *testing.T) {
	clauses, err := Parse(`[{"clause_text": "ok"}, "just a string", 42, {"clause_text": "also ok"}]`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(clauses) != 2 {
		t.Errorf("malformed items should be skipped individually, got %d clauses", len(clauses))
	}
}

func TestParse_Failures(t *testing.T) {
	for _, raw := range []string{
		"The document contains three clauses.",
		`"just a string"`,
		`12`,
		"```json\nnot json\n```",
	} {
		if _, err := Parse(raw); err == nil {
			t.Errorf("Parse(%q) should fail", raw)
		}
	}
}
