package llm

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// ErrRateLimit is a 429 from the vendor. RetryAfter is zero when the vendor
// sent no hint.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("llm rate limited, retry in %s: %v", e.RetryAfter, e.Err)
	}
	return fmt.Sprintf("llm rate limited: %v", e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse carries a reply that is not usable as an explanation:
// empty, not JSON, or off-schema.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("llm reply rejected: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable covers every other vendor or network failure.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err == nil {
		return "llm provider unavailable"
	}
	return "llm provider unavailable: " + e.Err.Error()
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded means a structured reply was cut off by the token
// budget. Content holds the partial text.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "llm reply cut off by the token budget"
}

// statusError turns a vendor HTTP failure into one of the errors above.
// header may be nil.
func statusError(status int, header http.Header, err error) error {
	if status != http.StatusTooManyRequests {
		return &ErrProviderUnavailable{Err: err}
	}
	rl := &ErrRateLimit{Err: err}
	if secs, convErr := strconv.Atoi(header.Get("Retry-After")); convErr == nil && secs > 0 {
		rl.RetryAfter = time.Duration(secs) * time.Second
	}
	return rl
}
