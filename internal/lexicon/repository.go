package lexicon

import (
	"context"
	"errors"
)

// Repository supplies the lexicon and the sentence corpus. Both calls return a
// complete in-memory snapshot; callers do not page or retry.
type Repository interface {
	// FetchWords returns every word in the lexicon.
	FetchWords(ctx context.Context) ([]Word, error)

	// FetchSentences returns the sentence corpus visible to userID.
	// An empty userID returns the shared corpus.
	FetchSentences(ctx context.Context, userID string) ([]Sentence, error)
}

// ErrNotFound is returned when a requested lexicon source or record does not exist.
var ErrNotFound = errors.New("lexicon: not found")
