package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adilsezer/lithuaningo-sub000/internal/lexicon"
)

func words() []lexicon.Word {
	return []lexicon.Word{
		{ID: "Šuo", EnglishTranslation: "dog", WordForms: []lexicon.WordForm{
			{Lithuanian: "šuo", English: "dog"},
			{Lithuanian: "šunį", English: "dog (acc.)"},
		}},
		{ID: "Mylėti", EnglishTranslation: "to love", WordForms: []lexicon.WordForm{
			{Lithuanian: "myliu", English: "I love"},
		}},
		{ID: "Matyti", EnglishTranslation: "to see", WordForms: []lexicon.WordForm{
			{Lithuanian: "matau", English: "I see"},
		}},
	}
}

func TestCandidates(t *testing.T) {
	learned := []lexicon.Sentence{
		{Sentence: "Aš myliu šunį."},
		{Sentence: "Tai mano šunį, ir aš myliu!"},
	}
	assert.Equal(t, []string{"myliu", "šunį"}, Candidates(learned))
}

func TestResolveScenario(t *testing.T) {
	known := Resolve([]lexicon.Sentence{{Sentence: "Aš myliu šunį."}}, words())

	ids := make([]string, 0, len(known))
	for _, w := range known {
		ids = append(ids, w.ID)
	}
	assert.Equal(t, []string{"Mylėti", "Šuo"}, ids)
}

func TestResolveNegationAndDrop(t *testing.T) {
	learned := []lexicon.Sentence{
		{Sentence: "Aš nematau šuns."},
		{Sentence: "Aš matau."},
	}
	known := Resolve(learned, words())
	require.Len(t, known, 1, "unknown šuns dropped, matau deduplicated")
	assert.Equal(t, "Matyti", known[0].ID)
}

func TestResolveEmpty(t *testing.T) {
	assert.Empty(t, Resolve(nil, words()))
	assert.Empty(t, Resolve([]lexicon.Sentence{{Sentence: "Aš myliu šunį."}}, nil))
}

func TestKnown(t *testing.T) {
	all := words()
	k := NewKnown(all[:1])

	assert.Equal(t, 1, k.Len())
	assert.True(t, k.HasWord("Šuo"))
	assert.True(t, k.HasForm("ŠUNĮ"))
	assert.True(t, k.HasForm("nešuo"))
	assert.False(t, k.HasForm("myliu"))
	assert.True(t, k.Covers(&all[0]))
	assert.False(t, k.Covers(&all[1]))

	neg := NewKnown([]lexicon.Word{{ID: "Nematyti", WordForms: []lexicon.WordForm{{Lithuanian: "nematau"}}}})
	assert.True(t, neg.Covers(&all[2]), "negated form known covers the positive word")
}
