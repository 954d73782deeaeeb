package llm_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/adilsezer/lithuaningo-sub000/internal/explain"
	"github.com/adilsezer/lithuaningo-sub000/internal/llm"
)

func TestValidateResponse_Explanation(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		valid bool
	}{
		{name: "complete", raw: goodExplanation, valid: true},
		{name: "missing example", raw: `{"summary":"s","grammar_note":"g"}`},
		{name: "extra field", raw: `{"summary":"s","grammar_note":"g","example":"e","score":3}`},
		{name: "number for text", raw: `{"summary":1,"grammar_note":"g","example":"e"}`},
		{name: "array", raw: `[]`},
		{name: "not JSON", raw: `summary: s`},
		{name: "empty", raw: ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := llm.ValidateResponse(explain.ExplanationSchema, json.RawMessage(tt.raw))
			if tt.valid {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var inv *llm.ErrInvalidResponse
			if !errors.As(err, &inv) {
				t.Fatalf("expected ErrInvalidResponse, got %T %v", err, err)
			}
			if string(inv.Content) != tt.raw {
				t.Errorf("content = %q, want the rejected reply", inv.Content)
			}
		})
	}
}

func TestValidateResponse_NoSchema(t *testing.T) {
	if err := llm.ValidateResponse(nil, json.RawMessage(`Šunį`)); err != nil {
		t.Fatalf("free text rejected: %v", err)
	}
}

func TestFinishResponse(t *testing.T) {
	req := llm.Request{Schema: explain.ExplanationSchema}

	resp, err := llm.FinishResponse(req, &llm.Response{Content: json.RawMessage(" " + goodExplanation + "\n"), StopReason: llm.StopEnd})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != goodExplanation {
		t.Errorf("content not trimmed: %q", resp.Content)
	}

	_, err = llm.FinishResponse(req, &llm.Response{Content: json.RawMessage(`{"summary":"Šu`), StopReason: llm.StopMaxTokens})
	var cut *llm.ErrMaxTokensExceeded
	if !errors.As(err, &cut) || string(cut.Content) != `{"summary":"Šu` {
		t.Fatalf("expected ErrMaxTokensExceeded with partial content, got %v", err)
	}

	// Free text is passed through even when truncated.
	plain, err := llm.FinishResponse(llm.Request{}, &llm.Response{Content: json.RawMessage("Šunį is"), StopReason: llm.StopMaxTokens})
	if err != nil || string(plain.Content) != "Šunį is" {
		t.Fatalf("free text = %q, %v", plain.Content, err)
	}
}

func TestUnfence(t *testing.T) {
	tests := []struct{ in, want string }{
		{goodExplanation, goodExplanation},
		{"```json\n" + goodExplanation + "\n```", goodExplanation},
		{"```\n{\"a\":1}\n```\n", `{"a":1}`},
		{"\n  {\"a\":1}  ", `{"a":1}`},
		{"```{\"a\":1}```", `{"a":1}`},
	}
	for _, tt := range tests {
		if got := string(llm.Unfence(json.RawMessage(tt.in))); got != tt.want {
			t.Errorf("Unfence(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
