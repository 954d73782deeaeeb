package explain

import "github.com/adilsezer/lithuaningo-sub000/internal/llm"

// ExplanationSchema defines the JSON schema for missed-question explanations.
var ExplanationSchema = &llm.Schema{
	Name:        "answer-explanation",
	Description: "A short explanation of why a Lithuanian quiz answer was wrong",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "What the word means in this sentence and why the chosen answer does not fit (1-3 sentences)",
			},
			"grammar_note": map[string]any{
				"type":        "string",
				"description": "The case, tense or person of the word form used in the sentence",
			},
			"example": map[string]any{
				"type":        "string",
				"description": "One more simple Lithuanian sentence using the same word, followed by its English translation",
			},
		},
		"required":             []any{"summary", "grammar_note", "example"},
		"additionalProperties": false,
	},
}
