package quizgen

import (
	"context"
	"fmt"
	"math/rand/v2"

	"golang.org/x/sync/errgroup"
)

// GenerateBatch builds one question per input concurrently. Each input gets
// a child source drawn from rng before fan-out, so the batch is
// deterministic for a given seed. Results keep input order. Any error fails
// the whole batch.
func (g *Generator) GenerateBatch(ctx context.Context, inputs []GenerateInput, rng *rand.Rand) ([]Question, error) {
	seeds := make([][2]uint64, len(inputs))
	for i := range seeds {
		seeds[i] = [2]uint64{rng.Uint64(), rng.Uint64()}
	}

	out := make([]Question, len(inputs))
	eg, egCtx := errgroup.WithContext(ctx)
	for i, in := range inputs {
		eg.Go(func() error {
			child := rand.New(rand.NewPCG(seeds[i][0], seeds[i][1]))
			q, err := g.Generate(egCtx, in, child)
			if err != nil {
				g.logger().Error("question generation failed", "sentence_id", in.Sentence.ID, "err", err)
				return fmt.Errorf("generate question %d: %w", i, err)
			}
			out[i] = *q
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
