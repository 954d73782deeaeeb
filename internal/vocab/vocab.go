// Package vocab derives a learner's known vocabulary from the sentences they
// have already studied.
package vocab

import (
	"github.com/adilsezer/lithuaningo-sub000/internal/lexicon"
	"github.com/adilsezer/lithuaningo-sub000/internal/textutil"
)

// Candidates returns the de-duplicated, normalized, non-skipped tokens of the
// learned sentences in first-seen order.
func Candidates(learned []lexicon.Sentence) []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range learned {
		for _, tok := range textutil.Tokenize(s.Sentence) {
			norm := textutil.NormalizeToken(tok)
			if norm == "" || lexicon.IsSkipped(norm) || seen[norm] {
				continue
			}
			seen[norm] = true
			out = append(out, norm)
		}
	}
	return out
}

// Resolve maps every candidate surface form in learned to its dictionary word,
// retrying without the "ne" prefix when the direct form is unknown.
// Unresolvable candidates are dropped. The result holds each word once.
func Resolve(learned []lexicon.Sentence, words []lexicon.Word) []lexicon.Word {
	return ResolveIndex(learned, lexicon.NewIndex(words))
}

// ResolveIndex is Resolve over a prebuilt index.
func ResolveIndex(learned []lexicon.Sentence, idx *lexicon.Index) []lexicon.Word {
	seen := make(map[string]bool)
	var known []lexicon.Word
	for _, cand := range Candidates(learned) {
		m, ok := idx.Resolve(cand)
		if !ok || seen[m.Word.ID] {
			continue
		}
		seen[m.Word.ID] = true
		known = append(known, *m.Word)
	}
	return known
}
