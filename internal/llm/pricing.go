package llm

import "strings"

// ModelCost is USD per million tokens.
type ModelCost struct {
	InputPerMTok  float64
	OutputPerMTok float64
}

// Cost returns the USD cost of a call with the given token counts.
func (c ModelCost) Cost(inputTokens, outputTokens int) float64 {
	return (float64(inputTokens)*c.InputPerMTok + float64(outputTokens)*c.OutputPerMTok) / 1_000_000
}

// LookupCost returns pricing for a resolved model ID, or nil if unknown.
// Dated snapshots fall back to their undated family, so
// "claude-haiku-4-5-20251001" prices as "claude-haiku-4-5".
func LookupCost(modelID string) *ModelCost {
	id := modelID
	for {
		if c, ok := modelCosts[id]; ok {
			return &c
		}
		i := strings.LastIndexByte(id, '-')
		if i <= 0 {
			return nil
		}
		id = id[:i]
	}
}

// Prices from models.dev for the models the aliases resolve to.
var modelCosts = map[string]ModelCost{
	"claude-haiku-4-5":  {1, 5},
	"claude-sonnet-4-5": {3, 15},
	"claude-3-5-haiku":  {0.8, 4},

	"gpt-4o":       {2.5, 10},
	"gpt-4o-mini":  {0.15, 0.6},
	"gpt-4.1-mini": {0.4, 1.6},

	"gemini-2.0-flash":      {0.1, 0.4},
	"gemini-2.5-flash":      {0.3, 2.5},
	"gemini-2.5-flash-lite": {0.1, 0.4},
	"gemini-2.5-pro":        {1.25, 10},

	// OpenRouter routes
	"google/gemini-2.0-flash-001":       {0.1, 0.4},
	"google/gemini-2.5-flash":           {0.3, 2.5},
	"openai/gpt-4o-mini":                {0.15, 0.6},
	"anthropic/claude-3.5-haiku":        {0.8, 4},
	"meta-llama/llama-3.3-70b-instruct": {0.13, 0.4},
}
