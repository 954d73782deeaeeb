package lexicon

import "strings"

// NegationPrefix is the Lithuanian verb negation prefix ("matau" / "nematau").
const NegationPrefix = "ne"

// Match is a resolved token: the owning word and the form that matched.
type Match struct {
	Word *Word
	Form WordForm
}

// Index maps lower-cased surface forms to the word that owns them. When two
// words share a form the first one in lexicon order wins.
type Index struct {
	words  []Word
	byForm map[string]Match
}

// NewIndex builds an Index over words. The slice is not copied and must not
// be modified afterwards.
func NewIndex(words []Word) *Index {
	idx := &Index{
		words:  words,
		byForm: make(map[string]Match),
	}
	for i := range words {
		w := &words[i]
		for _, f := range w.WordForms {
			key := strings.ToLower(strings.TrimSpace(f.Lithuanian))
			if key == "" {
				continue
			}
			if _, exists := idx.byForm[key]; !exists {
				idx.byForm[key] = Match{Word: w, Form: f}
			}
		}
	}
	return idx
}

// Words returns the indexed lexicon.
func (idx *Index) Words() []Word {
	return idx.words
}

// Len returns the number of indexed words.
func (idx *Index) Len() int {
	return len(idx.words)
}

// Lookup finds the word owning the exact normalized form.
func (idx *Index) Lookup(form string) (Match, bool) {
	m, ok := idx.byForm[strings.ToLower(form)]
	return m, ok
}

// Resolve looks a normalized token up directly and, failing that, with the
// negation prefix stripped.
func (idx *Index) Resolve(token string) (Match, bool) {
	if m, ok := idx.Lookup(token); ok {
		return m, true
	}
	if stripped, ok := StripNegation(token); ok {
		return idx.Lookup(stripped)
	}
	return Match{}, false
}

// StripNegation removes a leading "ne" from token. ok is false when the token
// does not carry the prefix or nothing would remain.
func StripNegation(token string) (string, bool) {
	lower := strings.ToLower(token)
	if len(lower) <= len(NegationPrefix) || !strings.HasPrefix(lower, NegationPrefix) {
		return "", false
	}
	return lower[len(NegationPrefix):], true
}
