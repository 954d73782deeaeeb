package textutil

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Levenshtein returns the rune-level edit distance between a and b.
func Levenshtein(a, b string) int {
	return levenshtein.ComputeDistance(a, b)
}

// Similarity scores a and b in (0, 1]; identical strings score 1.
// It is a ranking proxy for distractor selection, not an equality test.
func Similarity(a, b string) float64 {
	d := Levenshtein(strings.ToLower(a), strings.ToLower(b))
	return 1 / (1 + float64(d))
}
