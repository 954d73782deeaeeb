package vocab

import (
	"strings"

	"github.com/adilsezer/lithuaningo-sub000/internal/lexicon"
)

// Known is a lookup set over a known vocabulary.
type Known struct {
	ids   map[string]bool
	forms map[string]bool
}

// NewKnown indexes the IDs and lower-cased surface forms of words.
func NewKnown(words []lexicon.Word) *Known {
	k := &Known{ids: make(map[string]bool), forms: make(map[string]bool)}
	for _, w := range words {
		k.ids[w.ID] = true
		for _, f := range w.WordForms {
			k.forms[strings.ToLower(f.Lithuanian)] = true
		}
	}
	return k
}

// Len returns the number of known words.
func (k *Known) Len() int {
	return len(k.ids)
}

// HasWord reports whether the word with id is known.
func (k *Known) HasWord(id string) bool {
	return k.ids[id]
}

// HasForm reports whether form, or form without the "ne" prefix, belongs to a
// known word.
func (k *Known) HasForm(form string) bool {
	form = strings.ToLower(form)
	if k.forms[form] {
		return true
	}
	if stripped, ok := lexicon.StripNegation(form); ok {
		return k.forms[stripped]
	}
	return false
}

// Covers reports whether any form of w is known, directly or through the
// negation relation.
func (k *Known) Covers(w *lexicon.Word) bool {
	if k.ids[w.ID] {
		return true
	}
	for _, f := range w.WordForms {
		if k.HasForm(f.Lithuanian) || k.forms[lexicon.NegationPrefix+strings.ToLower(f.Lithuanian)] {
			return true
		}
	}
	return false
}
