// Package selection picks the sentences a quiz session is built from.
package selection

import (
	"math/rand/v2"
	"strings"

	"github.com/adilsezer/lithuaningo-sub000/internal/lexicon"
	"github.com/adilsezer/lithuaningo-sub000/internal/textutil"
)

// DefaultSessionSize is the number of questions in a daily quiz.
const DefaultSessionSize = 10

// Select returns up to size sentences related to the known vocabulary.
//
// Each known word contributes at most ceil(size/len(known))+2 sentences
// containing one of its forms. The union is de-duplicated by sentence text,
// shuffled and truncated. When nothing relates to the vocabulary, a random
// sample of the corpus is returned instead.
func Select(known []lexicon.Word, corpus []lexicon.Sentence, size int, rng *rand.Rand) []lexicon.Sentence {
	if size <= 0 {
		size = DefaultSessionSize
	}
	if len(corpus) == 0 {
		return nil
	}

	tokens := make([][]string, len(corpus))
	for i, s := range corpus {
		tokens[i] = contentTokens(s.Sentence)
	}

	var union []lexicon.Sentence
	if len(known) > 0 {
		limit := PerWordLimit(size, len(known))
		for _, w := range known {
			related := Related(w, corpus, tokens)
			Shuffle(rng, related)
			if len(related) > limit {
				related = related[:limit]
			}
			union = append(union, related...)
		}
	}

	union = DedupeByText(union)
	if len(union) == 0 {
		return randomSample(corpus, size, rng)
	}
	Shuffle(rng, union)
	if len(union) > size {
		union = union[:size]
	}
	return union
}

// PerWordLimit caps how many sentences one word may contribute.
func PerWordLimit(size, knownCount int) int {
	if knownCount <= 0 {
		return size + 2
	}
	return (size+knownCount-1)/knownCount + 2
}

// Related returns the corpus sentences containing a non-skipped token equal to
// one of w's forms, directly or after removing the "ne" prefix. tokens holds
// the precomputed content tokens of each corpus sentence; nil recomputes them.
func Related(w lexicon.Word, corpus []lexicon.Sentence, tokens [][]string) []lexicon.Sentence {
	forms := make(map[string]bool, len(w.WordForms))
	for _, f := range w.WordForms {
		forms[strings.ToLower(f.Lithuanian)] = true
	}

	var out []lexicon.Sentence
	for i, s := range corpus {
		var toks []string
		if tokens != nil {
			toks = tokens[i]
		} else {
			toks = contentTokens(s.Sentence)
		}
		if containsForm(toks, forms) {
			out = append(out, s)
		}
	}
	return out
}

func containsForm(tokens []string, forms map[string]bool) bool {
	for _, tok := range tokens {
		if forms[tok] {
			return true
		}
		if stripped, ok := lexicon.StripNegation(tok); ok && forms[stripped] {
			return true
		}
	}
	return false
}

func contentTokens(sentence string) []string {
	var out []string
	for _, tok := range textutil.Tokenize(sentence) {
		norm := textutil.NormalizeToken(tok)
		if norm == "" || lexicon.IsSkipped(norm) {
			continue
		}
		out = append(out, norm)
	}
	return out
}

// DedupeByText keeps the first sentence for each distinct text.
func DedupeByText(sentences []lexicon.Sentence) []lexicon.Sentence {
	seen := make(map[string]bool, len(sentences))
	out := sentences[:0:0]
	for _, s := range sentences {
		if seen[s.Sentence] {
			continue
		}
		seen[s.Sentence] = true
		out = append(out, s)
	}
	return out
}

func randomSample(corpus []lexicon.Sentence, size int, rng *rand.Rand) []lexicon.Sentence {
	pool := make([]lexicon.Sentence, len(corpus))
	copy(pool, corpus)
	Shuffle(rng, pool)
	if len(pool) > size {
		pool = pool[:size]
	}
	return pool
}

// Shuffle permutes s in place using rng.
func Shuffle[T any](rng *rand.Rand, s []T) {
	rng.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
}
