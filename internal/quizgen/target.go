package quizgen

import (
	"math/rand/v2"

	"github.com/adilsezer/lithuaningo-sub000/internal/lexicon"
	"github.com/adilsezer/lithuaningo-sub000/internal/textutil"
)

// target is the token a question is built around.
type target struct {
	pos   int    // index into the sentence tokens
	token string // raw token, punctuation included
	match lexicon.Match
}

// pickTarget chooses the quizzed token. Preferred targets are recognized,
// known and not skip-listed; failing that any token resolvable in the full
// lexicon is used. ok is false when no token resolves to a word.
func pickTarget(tokens []string, in GenerateInput, rng *rand.Rand) (target, bool) {
	if in.Index == nil || in.Index.Len() == 0 {
		return target{}, false
	}

	var valid []target
	for i, tok := range tokens {
		norm := textutil.NormalizeToken(tok)
		if norm == "" || lexicon.IsSkipped(norm) {
			continue
		}
		m, ok := in.Index.Resolve(norm)
		if !ok {
			continue
		}
		if in.Known == nil || !in.Known.Covers(m.Word) {
			continue
		}
		valid = append(valid, target{pos: i, token: tok, match: m})
	}
	if len(valid) > 0 {
		shuffle(rng, valid)
		return valid[0], true
	}

	order := rng.Perm(len(tokens))
	for _, i := range order {
		norm := textutil.NormalizeToken(tokens[i])
		if norm == "" {
			continue
		}
		if m, ok := in.Index.Resolve(norm); ok {
			return target{pos: i, token: tokens[i], match: m}, true
		}
	}
	return target{}, false
}

func shuffle[T any](rng *rand.Rand, s []T) {
	rng.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
}
