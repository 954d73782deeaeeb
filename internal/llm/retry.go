package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

type retryProvider struct {
	inner Provider
	cfg   RetryConfig
}

// WithRetry retries transient failures of p with exponential backoff and
// ±20% jitter. Rate limits honour RetryAfter. An invalid response is retried
// once; exceeded max tokens and context errors are returned immediately.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &retryProvider{inner: p, cfg: cfg}
}

func (r *retryProvider) ModelID() string { return r.inner.ModelID() }

func (r *retryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var (
		err           error
		retriedSchema bool
	)
	for attempt := 0; attempt < r.cfg.MaxAttempts; attempt++ {
		var resp *Response
		if resp, err = r.inner.Generate(ctx, req); err == nil {
			return resp, nil
		}
		if !retryable(err, &retriedSchema) || attempt == r.cfg.MaxAttempts-1 {
			break
		}

		timer := time.NewTimer(r.cfg.wait(attempt, err))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
	return nil, err
}

func retryable(err error, retriedSchema *bool) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var maxTok *ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		return false
	}
	var invalid *ErrInvalidResponse
	if errors.As(err, &invalid) {
		if *retriedSchema {
			return false
		}
		*retriedSchema = true
	}
	// Rate limits, outages and network errors are all transient.
	return true
}

func (c RetryConfig) wait(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	d := math.Min(float64(c.InitialWait)*math.Pow(c.Multiplier, float64(attempt)), float64(c.MaxWait))
	d += d * 0.2 * (2*rand.Float64() - 1)
	return time.Duration(math.Max(d, 0))
}
