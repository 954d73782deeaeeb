package quizgen

import (
	"strconv"
	"strings"

	"github.com/adilsezer/lithuaningo-sub000/internal/textutil"
)

// CheckAnswer compares the learner's input against the question's answer.
//
// Normalization rules:
//   - Whitespace is trimmed and empty input is never correct
//   - Fill in the blank: punctuation is stripped and Lithuanian diacritics
//     are optional, so "nama" matches "Namą"
//   - Multiple choice and true/false: the option text (case-insensitive) or
//     its 1-based index
//   - The sentinel question accepts nothing
func CheckAnswer(answer string, q *Question) bool {
	answer = strings.TrimSpace(answer)
	if answer == "" || q == nil || IsSentinel(q) {
		return false
	}

	switch q.QuestionType {
	case FillInTheBlank:
		got := textutil.NormalizeAnswer(textutil.CleanWord(answer))
		want := textutil.NormalizeAnswer(textutil.CleanWord(q.CorrectAnswerText))
		return got != "" && got == want
	case MultipleChoice, TrueFalse:
		return checkChoice(answer, q)
	default:
		return strings.EqualFold(answer, strings.TrimSpace(q.CorrectAnswerText))
	}
}

func checkChoice(answer string, q *Question) bool {
	if idx, err := strconv.Atoi(answer); err == nil && idx >= 1 && idx <= len(q.Options) {
		return strings.EqualFold(strings.TrimSpace(q.Options[idx-1]), strings.TrimSpace(q.CorrectAnswerText))
	}
	if q.QuestionType == TrueFalse {
		switch strings.ToLower(answer) {
		case "t", "true":
			answer = AnswerTrue
		case "f", "false":
			answer = AnswerFalse
		}
	}
	return strings.EqualFold(answer, strings.TrimSpace(q.CorrectAnswerText))
}
