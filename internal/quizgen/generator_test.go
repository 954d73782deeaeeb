package quizgen

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adilsezer/lithuaningo-sub000/internal/lexicon"
	"github.com/adilsezer/lithuaningo-sub000/internal/vocab"
)

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed+1))
}

func smallLexicon() []lexicon.Word {
	return []lexicon.Word{
		{ID: "Namas", EnglishTranslation: "house", ImageURL: "house.png", WordForms: []lexicon.WordForm{
			{Lithuanian: "namas", English: "house"},
			{Lithuanian: "namą", English: "house (acc.)"},
		}},
		{ID: "Matyti", EnglishTranslation: "to see", WordForms: []lexicon.WordForm{
			{Lithuanian: "matau", English: "I see"},
		}},
		{ID: "Vanduo", EnglishTranslation: "water", WordForms: []lexicon.WordForm{
			{Lithuanian: "vandenį", English: "water (acc.)"},
		}},
		{ID: "Pelė", EnglishTranslation: "mouse", WordForms: []lexicon.WordForm{{Lithuanian: "pelė", English: "mouse"}}},
		{ID: "Arklys", EnglishTranslation: "horse", WordForms: []lexicon.WordForm{{Lithuanian: "arklys", English: "horse"}}},
		{ID: "Du", EnglishTranslation: "two", WordForms: []lexicon.WordForm{{Lithuanian: "du", English: "two"}}},
	}
}

func inputFor(sentence string, words []lexicon.Word, known ...string) GenerateInput {
	var kw []lexicon.Word
	for _, w := range words {
		for _, id := range known {
			if w.ID == id {
				kw = append(kw, w)
			}
		}
	}
	return GenerateInput{
		Sentence: lexicon.Sentence{ID: "t", Sentence: sentence, EnglishTranslation: "translation"},
		Index:    lexicon.NewIndex(words),
		Known:    vocab.NewKnown(kw),
	}
}

func TestGenerate_SentinelOnEmptyLexicon(t *testing.T) {
	g := NewGenerator(nil)
	for seed := uint64(0); seed < 50; seed++ {
		in := GenerateInput{
			Sentence: lexicon.Sentence{Sentence: "Aš matau namą."},
			Index:    lexicon.NewIndex(nil),
		}
		q, err := g.Generate(context.Background(), in, seeded(seed))
		require.NoError(t, err)
		require.True(t, IsSentinel(q))
		assert.NotNil(t, q.Options)
		assert.Empty(t, q.Options)
		assert.Equal(t, "", q.CorrectAnswerText)
		assert.Equal(t, SentinelSentenceText, q.SentenceText)
	}
}

func TestGenerate_SentinelWhenNothingResolves(t *testing.T) {
	q, err := NewGenerator(nil).Generate(context.Background(), inputFor("Labas rytas!", smallLexicon()), seeded(1))
	require.NoError(t, err)
	assert.True(t, IsSentinel(q))
}

func TestGenerate_EmptySentence(t *testing.T) {
	_, err := NewGenerator(nil).Generate(context.Background(), inputFor("   ", smallLexicon()), seeded(1))
	assert.True(t, errors.Is(err, ErrEmptySentence))
}

func TestGenerate_FillInTheBlankKeepsPunctuation(t *testing.T) {
	g := NewGenerator(nil)
	in := inputFor("Aš matau namą.", smallLexicon(), "Namas")

	found := false
	for seed := uint64(0); seed < 200 && !found; seed++ {
		q, err := g.Generate(context.Background(), in, seeded(seed))
		require.NoError(t, err)
		if q.QuestionType != FillInTheBlank {
			continue
		}
		found = true
		assert.Equal(t, "Aš matau [...].", q.SentenceText)
		assert.Equal(t, "Namą", q.CorrectAnswerText)
		assert.Equal(t, "Namą", q.QuestionWord)
		assert.Empty(t, q.Options)
		assert.Equal(t, "house.png", q.Image)
		assert.Equal(t, "translation", q.Translation)
	}
	require.True(t, found, "no fill-in-the-blank question in 200 seeds")
}

func TestBlankAndBold(t *testing.T) {
	tokens := strings.Fields("Aš geriu vandenį, o tu valgai.")
	assert.Equal(t, "Aš geriu [...], o tu valgai.", Blank(tokens, 2))
	assert.Equal(t, "Aš geriu **vandenį**, o tu valgai.", Bold(tokens, 2))
	assert.Equal(t, "Aš matau [...].", Blank(strings.Fields("Aš matau namą."), 2))
	assert.Equal(t, "„[...]“ yra", Blank(strings.Fields("„Namas“ yra"), 0))
}

func TestGenerate_StripsAnnotations(t *testing.T) {
	g := NewGenerator(nil)
	in := inputFor("Aš matau namą.", smallLexicon(), "Namas")
	for seed := uint64(0); seed < 200; seed++ {
		q, err := g.Generate(context.Background(), in, seeded(seed))
		require.NoError(t, err)
		if q.QuestionType == MultipleChoice {
			assert.Equal(t, "House", q.CorrectAnswerText)
			assert.Contains(t, q.SentenceText, "**namą**")
			for _, o := range q.Options {
				assert.NotContains(t, o, "(")
				assert.NotEqual(t, "Two", o, "number words are not distractors")
			}
			return
		}
	}
	t.Fatal("no multiple choice question in 200 seeds")
}

func TestGenerate_PrefersKnownWords(t *testing.T) {
	g := NewGenerator(nil)
	in := inputFor("Aš matau namą.", smallLexicon(), "Namas")
	for seed := uint64(0); seed < 100; seed++ {
		q, err := g.Generate(context.Background(), in, seeded(seed))
		require.NoError(t, err)
		assert.Equal(t, "Namą", q.QuestionWord)
	}
}

func TestGenerate_FallsBackToAnyWord(t *testing.T) {
	g := NewGenerator(nil)
	in := inputFor("Aš matau namą.", smallLexicon())
	seen := map[string]bool{}
	for seed := uint64(0); seed < 100; seed++ {
		q, err := g.Generate(context.Background(), in, seeded(seed))
		require.NoError(t, err)
		require.False(t, IsSentinel(q))
		seen[q.QuestionWord] = true
	}
	assert.True(t, seen["Matau"] && seen["Namą"], "fallback picks among resolvable tokens: %v", seen)
	assert.False(t, seen["Aš"])
}

func sampleInputs(t *testing.T) []GenerateInput {
	t.Helper()
	repo := lexicon.NewEmbeddedRepository()
	words, err := repo.FetchWords(t.Context())
	require.NoError(t, err)
	sentences, err := repo.FetchSentences(t.Context(), "")
	require.NoError(t, err)

	idx := lexicon.NewIndex(words)
	known := vocab.NewKnown(vocab.ResolveIndex(sentences[:4], idx))
	inputs := make([]GenerateInput, len(sentences))
	for i, s := range sentences {
		inputs[i] = GenerateInput{Sentence: s, Index: idx, Known: known}
	}
	return inputs
}

func TestGenerate_TypeDistribution(t *testing.T) {
	g := NewGenerator(nil)
	inputs := sampleInputs(t)
	rng := seeded(2024)

	const n = 10000
	counts := map[QuestionType]int{}
	for i := 0; i < n; i++ {
		q, err := g.Generate(context.Background(), inputs[i%len(inputs)], rng)
		require.NoError(t, err)
		require.False(t, IsSentinel(q))
		counts[q.QuestionType]++
	}

	want := map[QuestionType]float64{MultipleChoice: 0.45, FillInTheBlank: 0.40, TrueFalse: 0.15}
	for typ, p := range want {
		got := float64(counts[typ]) / n
		if math.Abs(got-p) > 0.03 {
			t.Errorf("%s frequency = %.3f, want %.2f ± 0.03", typ, got, p)
		}
	}
}

func TestGenerate_DistractorExclusivity(t *testing.T) {
	g := NewGenerator(nil)
	inputs := sampleInputs(t)
	rng := seeded(77)

	for i := 0; i < 3000; i++ {
		q, err := g.Generate(context.Background(), inputs[i%len(inputs)], rng)
		require.NoError(t, err)
		if q.QuestionType == FillInTheBlank {
			continue
		}
		matches := 0
		lower := map[string]bool{}
		for _, o := range q.Options {
			if o == q.CorrectAnswerText {
				matches++
			} else if strings.EqualFold(o, q.CorrectAnswerText) {
				t.Fatalf("distractor %q equals answer %q", o, q.CorrectAnswerText)
			}
			require.False(t, lower[strings.ToLower(o)], "duplicate option %q in %v", o, q.Options)
			lower[strings.ToLower(o)] = true
		}
		require.Equal(t, 1, matches, "answer %q in options %v", q.CorrectAnswerText, q.Options)
		if q.QuestionType == MultipleChoice {
			assert.LessOrEqual(t, len(q.Options), 4)
			assert.GreaterOrEqual(t, len(q.Options), 3)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	g := NewGenerator(nil)
	in := sampleInputs(t)[0]
	a, err := g.Generate(context.Background(), in, seeded(5))
	require.NoError(t, err)
	b, err := g.Generate(context.Background(), in, seeded(5))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerateBatch(t *testing.T) {
	g := NewGenerator(nil)
	inputs := sampleInputs(t)[:10]

	a, err := g.GenerateBatch(context.Background(), inputs, seeded(11))
	require.NoError(t, err)
	require.Len(t, a, len(inputs))
	for i, q := range a {
		assert.Equal(t, inputs[i].Sentence.EnglishTranslation, q.Translation, "results zipped by position")
	}

	b, err := g.GenerateBatch(context.Background(), inputs, seeded(11))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerateBatch_FailsOnError(t *testing.T) {
	g := NewGenerator(nil)
	inputs := sampleInputs(t)[:3]
	inputs[1].Sentence.Sentence = ""

	_, err := g.GenerateBatch(context.Background(), inputs, seeded(1))
	assert.ErrorIs(t, err, ErrEmptySentence)
}
