package llm

import (
	"math"
	"testing"
)

func TestLookupCost(t *testing.T) {
	tests := []struct {
		model string
		want  *ModelCost
	}{
		{"gpt-4o-mini", &ModelCost{0.15, 0.6}},
		{"claude-haiku-4-5-20251001", &ModelCost{1, 5}},
		{"gemini-2.5-flash-lite", &ModelCost{0.1, 0.4}},
		{"google/gemini-2.0-flash-001", &ModelCost{0.1, 0.4}},
		{"mock", nil},
		{"unknown-model-7", nil},
	}
	for _, tt := range tests {
		got := LookupCost(tt.model)
		if (got == nil) != (tt.want == nil) || (got != nil && *got != *tt.want) {
			t.Errorf("LookupCost(%q) = %v, want %v", tt.model, got, tt.want)
		}
	}
}

func TestModelCost(t *testing.T) {
	c := ModelCost{InputPerMTok: 1, OutputPerMTok: 5}
	if got := c.Cost(1_000_000, 200_000); math.Abs(got-2) > 1e-9 {
		t.Fatalf("Cost = %v, want 2", got)
	}
}
