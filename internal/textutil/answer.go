package textutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// diacritics maps upper-case Lithuanian letters to their unaccented Latin base.
var diacritics = strings.NewReplacer(
	"Ą", "A",
	"Č", "C",
	"Ę", "E",
	"Ė", "E",
	"Į", "I",
	"Š", "S",
	"Ų", "U",
	"Ū", "U",
	"Ž", "Z",
)

// NormalizeAnswer prepares free-text answers for comparison. Both the learner's
// input and the expected answer go through it, so accents are optional.
func NormalizeAnswer(s string) string {
	s = strings.TrimSpace(s)
	s = cases.Upper(language.Lithuanian).String(s)
	return diacritics.Replace(s)
}
