package textutil

import (
	"regexp"
	"strings"
)

var annotationRe = regexp.MustCompile(`\s*\(.*?\)\s*`)

// StripAnnotations removes parenthetical grammar notes such as "(acc.)" from a
// translation.
func StripAnnotations(s string) string {
	return strings.TrimSpace(annotationRe.ReplaceAllString(s, " "))
}

const (
	numberUnits = `zero|one|two|three|four|five|six|seven|eight|nine|ten|eleven|twelve|` +
		`thirteen|fourteen|fifteen|sixteen|seventeen|eighteen|nineteen`
	numberTens  = `twenty|thirty|forty|fifty|sixty|seventy|eighty|ninety`
	numberScale = `hundred|thousand|million|billion`
	numberPart  = `(?:(?:` + numberTens + `)(?:-(?:` + numberUnits + `))?|` + numberUnits + `|` + numberScale + `)`
)

var numberWordRe = regexp.MustCompile(
	`(?i)^(?:\d+|` + numberPart + `(?:(?:\s+|-)(?:and\s+)?` + numberPart + `)*)$`,
)

// IsNumberWord reports whether s spells a cardinal number ("seven",
// "twenty-one", "one hundred and five") or is a plain digit string.
func IsNumberWord(s string) bool {
	return numberWordRe.MatchString(strings.TrimSpace(s))
}
