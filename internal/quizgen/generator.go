package quizgen

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/adilsezer/lithuaningo-sub000/internal/textutil"
)

// Generator builds questions from sentences. The zero value is usable.
type Generator struct {
	Logger *slog.Logger
}

// NewGenerator returns a Generator logging to logger (nil means slog.Default).
func NewGenerator(logger *slog.Logger) *Generator {
	return &Generator{Logger: logger}
}

func (g *Generator) logger() *slog.Logger {
	if g == nil || g.Logger == nil {
		return slog.Default()
	}
	return g.Logger
}

// Generate builds one question for in.Sentence using rng for every random
// choice. A sentence with no resolvable word yields the sentinel question,
// not an error.
func (g *Generator) Generate(ctx context.Context, in GenerateInput, rng *rand.Rand) (*Question, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	tokens := textutil.Tokenize(in.Sentence.Sentence)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("sentence %q: %w", in.Sentence.ID, ErrEmptySentence)
	}

	t, ok := pickTarget(tokens, in, rng)
	if !ok {
		g.logger().Debug("no resolvable word in sentence", "sentence_id", in.Sentence.ID)
		return Sentinel(), nil
	}

	word := t.match.Word
	correct := textutil.StripAnnotations(t.match.Form.English)
	if correct == "" {
		correct = textutil.StripAnnotations(word.EnglishTranslation)
	}
	if correct == "" {
		g.logger().Warn("word has no translation", "word_id", word.ID, "sentence_id", in.Sentence.ID)
		return Sentinel(), nil
	}
	wrong := distractors(in.Index.Words(), word.ID, correct, rng)

	q := &Question{
		Translation:  in.Sentence.EnglishTranslation,
		Image:        word.ImageURL,
		QuestionWord: textutil.TitleCase(textutil.CleanWord(t.token)),
	}
	switch pickType(rng) {
	case MultipleChoice:
		formatMultipleChoice(q, tokens, t, correct, wrong, rng)
	case FillInTheBlank:
		formatFillInTheBlank(q, tokens, t)
	default:
		formatTrueFalse(q, tokens, t, correct, wrong, rng)
	}
	return q, nil
}
