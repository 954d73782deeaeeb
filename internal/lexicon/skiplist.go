package lexicon

import "strings"

// skipWords are high-frequency function words never treated as vocabulary or
// quiz targets.
var skipWords = []string{
	"yra", "Aš", "aš", "buvo", "Mano", "ir", "tu", "jis", "ji", "mes", "jie", "jos", "tai",
}

var skipSet = func() map[string]bool {
	m := make(map[string]bool, len(skipWords))
	for _, w := range skipWords {
		m[strings.ToLower(w)] = true
	}
	return m
}()

// IsSkipped reports whether a normalized token is on the skip-list.
func IsSkipped(token string) bool {
	return skipSet[strings.ToLower(token)]
}

// SkipWords returns a copy of the skip-list.
func SkipWords() []string {
	out := make([]string, len(skipWords))
	copy(out, skipWords)
	return out
}
