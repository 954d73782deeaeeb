// Package explain asks an LLM why a learner's answer to a quiz question was
// wrong and keeps the result until the caller picks it up.
package explain

import "github.com/adilsezer/lithuaningo-sub000/internal/quizgen"

// Explanation is a short LLM-written note about a missed question.
type Explanation struct {
	Word        string `json:"word"`
	Summary     string `json:"summary"`
	GrammarNote string `json:"grammarNote"`
	Example     string `json:"example"`
}

// Input holds the context needed to explain a miss.
type Input struct {
	Question quizgen.Question
	Answer   string
}
