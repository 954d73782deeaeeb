package llm

import "context"

const (
	// PurposeExplanation tags requests for missed-answer explanations.
	PurposeExplanation = "explanation"
	purposeUnset       = "unset"
)

type purposeKey struct{}

// WithPurpose labels requests made with ctx so their events can be told
// apart.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

func PurposeFrom(ctx context.Context) string {
	if p, _ := ctx.Value(purposeKey{}).(string); p != "" {
		return p
	}
	return purposeUnset
}
