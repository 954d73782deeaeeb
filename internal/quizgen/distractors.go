package quizgen

import (
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/adilsezer/lithuaningo-sub000/internal/lexicon"
	"github.com/adilsezer/lithuaningo-sub000/internal/textutil"
)

const (
	hardDistractors   = 2
	randomDistractors = 1
)

type scored struct {
	text  string
	score float64
}

// distractors picks up to three wrong meanings for correct: the two closest
// by edit-distance similarity plus one random pick from the rest. Number
// words and anything equal to correct are never offered.
func distractors(words []lexicon.Word, targetID, correct string, rng *rand.Rand) []string {
	seen := map[string]bool{strings.ToLower(correct): true}
	var pool []scored
	for _, w := range words {
		if w.ID == targetID {
			continue
		}
		text := textutil.StripAnnotations(w.EnglishTranslation)
		key := strings.ToLower(text)
		if text == "" || seen[key] || textutil.IsNumberWord(text) {
			continue
		}
		seen[key] = true
		pool = append(pool, scored{text: text, score: textutil.Similarity(text, correct)})
	}

	// Shuffle before the stable sort so equal scores come out in varied order.
	shuffle(rng, pool)
	sort.SliceStable(pool, func(i, j int) bool { return pool[i].score > pool[j].score })

	n := min(hardDistractors, len(pool))
	out := make([]string, 0, hardDistractors+randomDistractors)
	for _, s := range pool[:n] {
		out = append(out, s.text)
	}
	if rest := pool[n:]; len(rest) > 0 {
		out = append(out, rest[rng.IntN(len(rest))].text)
	}
	shuffle(rng, out)
	return out
}
