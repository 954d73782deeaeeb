package quizgen

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/adilsezer/lithuaningo-sub000/internal/textutil"
)

// BlankMarker replaces the target word in fill-in-the-blank sentences.
const BlankMarker = "[...]"

// Question type weights. They sum to 1.
const (
	weightMultipleChoice = 0.45
	weightFillInTheBlank = 0.40
)

func pickType(rng *rand.Rand) QuestionType {
	r := rng.Float64()
	switch {
	case r < weightMultipleChoice:
		return MultipleChoice
	case r < weightMultipleChoice+weightFillInTheBlank:
		return FillInTheBlank
	default:
		return TrueFalse
	}
}

// replaceToken rebuilds the sentence with tokens[pos] replaced by
// prefix+repl+suffix, keeping the token's surrounding punctuation.
func replaceToken(tokens []string, pos int, repl func(core string) string) string {
	out := make([]string, len(tokens))
	copy(out, tokens)
	prefix, core, suffix := textutil.SplitToken(tokens[pos])
	out[pos] = prefix + repl(core) + suffix
	return strings.Join(out, " ")
}

// Blank returns the sentence with the token at pos replaced by BlankMarker.
func Blank(tokens []string, pos int) string {
	return replaceToken(tokens, pos, func(string) string { return BlankMarker })
}

// Bold returns the sentence with the token at pos wrapped in "**".
func Bold(tokens []string, pos int) string {
	return replaceToken(tokens, pos, func(core string) string { return "**" + core + "**" })
}

func formatMultipleChoice(q *Question, tokens []string, t target, correct string, wrong []string, rng *rand.Rand) {
	word := textutil.TitleCase(textutil.CleanWord(t.token))
	options := make([]string, 0, len(wrong)+1)
	for _, d := range wrong {
		options = append(options, textutil.TitleCase(d))
	}
	options = append(options, textutil.TitleCase(correct))
	shuffle(rng, options)

	q.QuestionType = MultipleChoice
	q.QuestionText = fmt.Sprintf("What does **%s** mean in this sentence?", word)
	q.SentenceText = Bold(tokens, t.pos)
	q.CorrectAnswerText = textutil.TitleCase(correct)
	q.Options = options
}

func formatFillInTheBlank(q *Question, tokens []string, t target) {
	q.QuestionType = FillInTheBlank
	q.QuestionText = "Fill in the blank with the missing word:"
	q.SentenceText = Blank(tokens, t.pos)
	q.CorrectAnswerText = textutil.TitleCase(textutil.CleanWord(t.token))
	q.Options = []string{}
}

func formatTrueFalse(q *Question, tokens []string, t target, correct string, wrong []string, rng *rand.Rand) {
	shown, truth := correct, true
	if len(wrong) > 0 && rng.Float64() >= 0.5 {
		shown, truth = wrong[rng.IntN(len(wrong))], false
	}
	word := textutil.TitleCase(textutil.CleanWord(t.token))

	q.QuestionType = TrueFalse
	q.QuestionText = fmt.Sprintf("True or false: **%s** means %q in this sentence.", word, textutil.TitleCase(shown))
	q.SentenceText = Bold(tokens, t.pos)
	q.Options = []string{AnswerTrue, AnswerFalse}
	if truth {
		q.CorrectAnswerText = AnswerTrue
	} else {
		q.CorrectAnswerText = AnswerFalse
	}
}
