package llm

import (
	"context"
	"encoding/json"
)

// DefaultMaxTokens caps a reply when the Request leaves MaxTokens unset.
// An answer explanation is a few short sentences.
const DefaultMaxTokens = 512

// Provider generates one reply per Request. Vendor adapters and the
// decorators in this package all implement it.
type Provider interface {
	// Generate returns the reply. With a Schema set the Content is a JSON
	// object that already passed validation.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID is the resolved vendor model name.
	ModelID() string
}

// Request is a single-turn prompt: a system instruction and the user message
// describing the missed question.
type Request struct {
	System   string
	Messages []Message

	// Schema asks the vendor for native structured output. Nil means free
	// text.
	Schema *Schema

	// MaxTokens falls back to DefaultMaxTokens when zero.
	MaxTokens int

	// Temperature in [0, 1]. Zero leaves the vendor default.
	Temperature float64
}

func (r Request) tokenBudget() int {
	if r.MaxTokens > 0 {
		return r.MaxTokens
	}
	return DefaultMaxTokens
}

type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a named JSON Schema. Name is used as the OpenAI schema name and
// as the compile cache key, so it must be unique per definition.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

type Response struct {
	Content    json.RawMessage
	Usage      Usage
	Model      string
	StopReason string // StopEnd or StopMaxTokens
}

const (
	StopEnd       = "end"
	StopMaxTokens = "max_tokens"
)

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

func newUsage(in, out int) Usage {
	return Usage{InputTokens: in, OutputTokens: out, TotalTokens: in + out}
}
