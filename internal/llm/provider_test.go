package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProvider_Script(t *testing.T) {
	rateLimited := &ErrRateLimit{Err: errors.New("429")}
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"summary":"first"}`), Usage: newUsage(10, 5)},
		MockResponse{Err: rateLimited},
	)
	mock.AddResponse(MockResponse{Content: json.RawMessage(`{"summary":"third"}`)})

	ctx := context.Background()
	resp, err := mock.Generate(ctx, Request{System: "tutor", Messages: []Message{{Role: RoleUser, Content: "šuo"}}})
	if err != nil {
		t.Fatalf("first reply: %v", err)
	}
	if string(resp.Content) != `{"summary":"first"}` || resp.Usage.TotalTokens != 15 || resp.StopReason != StopEnd {
		t.Errorf("first reply = %+v", resp)
	}

	if _, err := mock.Generate(ctx, Request{}); !errors.Is(err, rateLimited) {
		t.Errorf("second reply error = %v", err)
	}
	if resp, err := mock.Generate(ctx, Request{}); err != nil || string(resp.Content) != `{"summary":"third"}` {
		t.Errorf("queued reply = %v, %v", resp, err)
	}

	var down *ErrProviderUnavailable
	if _, err := mock.Generate(ctx, Request{}); !errors.As(err, &down) {
		t.Errorf("exhausted script error = %T", err)
	}

	if mock.CallCount() != 4 || mock.Calls[0].System != "tutor" || mock.Calls[0].Messages[0].Content != "šuo" {
		t.Errorf("calls = %+v", mock.Calls)
	}
	if mock.ModelID() != "mock" {
		t.Errorf("model = %q", mock.ModelID())
	}
}

func TestPurpose(t *testing.T) {
	ctx := context.Background()
	if got := PurposeFrom(ctx); got != purposeUnset {
		t.Errorf("bare context purpose = %q", got)
	}
	if got := PurposeFrom(WithPurpose(ctx, "")); got != purposeUnset {
		t.Errorf("empty purpose = %q", got)
	}
	if got := PurposeFrom(WithPurpose(ctx, PurposeExplanation)); got != "explanation" {
		t.Errorf("purpose = %q", got)
	}
}

func TestTokenBudget(t *testing.T) {
	if got := (Request{}).tokenBudget(); got != DefaultMaxTokens {
		t.Errorf("default budget = %d", got)
	}
	if got := (Request{MaxTokens: 200}).tokenBudget(); got != 200 {
		t.Errorf("explicit budget = %d", got)
	}
}
