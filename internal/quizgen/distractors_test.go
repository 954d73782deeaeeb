package quizgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adilsezer/lithuaningo-sub000/internal/lexicon"
)

func translations(ts ...string) []lexicon.Word {
	out := make([]lexicon.Word, len(ts))
	for i, tr := range ts {
		out[i] = lexicon.Word{ID: tr, EnglishTranslation: tr, WordForms: []lexicon.WordForm{{Lithuanian: tr}}}
	}
	return out
}

func TestDistractors_HardAndRandom(t *testing.T) {
	words := translations("dog", "dot", "log", "door", "cat (animal)", "two", "twenty-one", "Dog")
	for seed := uint64(0); seed < 50; seed++ {
		got := distractors(words, "dog", "dog", seeded(seed))
		require.Len(t, got, 3)
		assert.Contains(t, got, "dot")
		assert.Contains(t, got, "log")
		assert.NotContains(t, got, "two")
		assert.NotContains(t, got, "twenty-one")
		assert.NotContains(t, got, "Dog")
		for _, d := range got {
			assert.NotContains(t, d, "(")
		}
	}
}

func TestDistractors_SmallPool(t *testing.T) {
	assert.Empty(t, distractors(translations("dog"), "dog", "dog", seeded(1)))
	assert.Len(t, distractors(translations("dog", "cat"), "dog", "dog", seeded(1)), 1)
	assert.Len(t, distractors(translations("dog", "cat", "cow"), "dog", "dog", seeded(1)), 2)
}

func TestPickTypeWeights(t *testing.T) {
	rng := seeded(99)
	counts := map[QuestionType]int{}
	const n = 20000
	for i := 0; i < n; i++ {
		counts[pickType(rng)]++
	}
	assert.InDelta(t, 0.45, float64(counts[MultipleChoice])/n, 0.02)
	assert.InDelta(t, 0.40, float64(counts[FillInTheBlank])/n, 0.02)
	assert.InDelta(t, 0.15, float64(counts[TrueFalse])/n, 0.02)
}
