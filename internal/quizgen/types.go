// Package quizgen turns corpus sentences into quiz questions and grades
// learner answers against them.
package quizgen

import (
	"errors"

	"github.com/adilsezer/lithuaningo-sub000/internal/lexicon"
	"github.com/adilsezer/lithuaningo-sub000/internal/vocab"
)

// ErrEmptySentence is returned when the input sentence has no tokens.
var ErrEmptySentence = errors.New("quizgen: empty sentence")

// QuestionType is the shape of a question.
type QuestionType string

const (
	MultipleChoice QuestionType = "multipleChoice"
	FillInTheBlank QuestionType = "fillInTheBlank"
	TrueFalse      QuestionType = "trueFalse"
)

// Answer labels used by true/false questions.
const (
	AnswerTrue  = "True"
	AnswerFalse = "False"
)

// Question is a generated quiz question. JSON names match the persisted
// batch format.
type Question struct {
	// QuestionText is the prompt shown above the sentence.
	QuestionText string `json:"questionText"`

	// SentenceText is the sentence as displayed. Multiple choice and
	// true/false questions wrap the target word in "**"; fill-in-the-blank
	// questions replace it with "[...]".
	SentenceText string `json:"sentenceText"`

	// CorrectAnswerText is the title-cased meaning for multiple choice, the
	// title-cased target word for fill-in-the-blank, and "True" or "False"
	// for true/false.
	CorrectAnswerText string `json:"correctAnswerText"`

	// Translation is the English translation of the whole sentence.
	Translation string `json:"translation"`

	// Image is the target word's image URL. May be empty.
	Image string `json:"image"`

	// Options are the choices for multiple choice and true/false questions.
	// Always non-nil; empty for fill-in-the-blank and the sentinel.
	Options []string `json:"options"`

	QuestionType QuestionType `json:"questionType"`

	// QuestionWord is the title-cased target token.
	QuestionWord string `json:"questionWord"`
}

// GenerateInput holds everything needed to build one question.
type GenerateInput struct {
	// Sentence is the corpus sentence to quiz.
	Sentence lexicon.Sentence

	// Index covers the full lexicon.
	Index *lexicon.Index

	// Known is the learner's known vocabulary. Nil means nothing is known.
	Known *vocab.Known
}
