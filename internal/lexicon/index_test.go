package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWords() []Word {
	return []Word{
		{ID: "Šuo", EnglishTranslation: "dog", WordForms: []WordForm{
			{Lithuanian: "šuo", English: "dog"},
			{Lithuanian: "šunį", English: "dog (acc.)"},
		}},
		{ID: "Matyti", EnglishTranslation: "to see", WordForms: []WordForm{
			{Lithuanian: "matyti", English: "to see"},
			{Lithuanian: "matau", English: "I see"},
		}},
		{ID: "Nešti", EnglishTranslation: "to carry", WordForms: []WordForm{
			{Lithuanian: "nešu", English: "I carry"},
		}},
		{ID: "Šunelis", EnglishTranslation: "puppy", WordForms: []WordForm{
			{Lithuanian: "šunį", English: "puppy (acc.)"},
		}},
	}
}

func TestIndexLookup(t *testing.T) {
	idx := NewIndex(testWords())

	m, ok := idx.Lookup("šunį")
	require.True(t, ok)
	assert.Equal(t, "Šuo", m.Word.ID, "first owning word wins")
	assert.Equal(t, "dog (acc.)", m.Form.English)

	m, ok = idx.Lookup("ŠUO")
	require.True(t, ok)
	assert.Equal(t, "Šuo", m.Word.ID)

	_, ok = idx.Lookup("katė")
	assert.False(t, ok)
	assert.Equal(t, 4, idx.Len())
}

func TestIndexResolveNegation(t *testing.T) {
	idx := NewIndex(testWords())

	m, ok := idx.Resolve("nematau")
	require.True(t, ok)
	assert.Equal(t, "Matyti", m.Word.ID)
	assert.Equal(t, "matau", m.Form.Lithuanian)

	// Direct match takes precedence over stripping.
	m, ok = idx.Resolve("nešu")
	require.True(t, ok)
	assert.Equal(t, "Nešti", m.Word.ID)

	_, ok = idx.Resolve("ne")
	assert.False(t, ok)
	_, ok = idx.Resolve("nekatė")
	assert.False(t, ok)
}

func TestStripNegation(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"nematau", "matau", true},
		{"Nemyliu", "myliu", true},
		{"ne", "", false},
		{"n", "", false},
		{"matau", "", false},
	}
	for _, tt := range tests {
		got, ok := StripNegation(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("StripNegation(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSkipList(t *testing.T) {
	assert.Len(t, SkipWords(), 13)
	for _, w := range []string{"yra", "aš", "AŠ", "mano", "tai", "jos"} {
		assert.True(t, IsSkipped(w), w)
	}
	for _, w := range []string{"šuo", "namą", "ne"} {
		assert.False(t, IsSkipped(w), w)
	}
}

func TestFilterByID(t *testing.T) {
	corpus := []Sentence{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	got := FilterByID(corpus, []string{"c", "a", "zzz"})
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
}
