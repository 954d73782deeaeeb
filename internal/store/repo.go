package store

import (
	"context"
	"time"
)

// KV is a flat key-value namespace. Values are opaque bytes; callers choose
// the encoding.
type KV interface {
	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Get returns the value under key, or nil and no error when the key is
	// missing.
	Get(ctx context.Context, key string) ([]byte, error)

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates LLM calls by purpose or model.
type LLMUsage struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// AnswerEventData captures one graded answer.
type AnswerEventData struct {
	UserID        string
	SessionID     string
	DateKey       string
	QuestionType  string
	QuestionWord  string
	SentenceText  string
	CorrectAnswer string
	LearnerAnswer string
	Correct       bool
	Review        bool // answered during the remediation loop
	TimeMs        int64
}

// AnswerEvent is a stored answer event.
type AnswerEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	AnswerEventData
}

// TypeAccuracy is the answer tally for one question type.
type TypeAccuracy struct {
	QuestionType string
	Attempts     int
	Correct      int
}

// Accuracy returns Correct/Attempts, or 0 with no attempts.
func (a TypeAccuracy) Accuracy() float64 {
	if a.Attempts == 0 {
		return 0
	}
	return float64(a.Correct) / float64(a.Attempts)
}

// WordMisses counts wrong answers for one quizzed word.
type WordMisses struct {
	Word     string
	Attempts int
	Misses   int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one LLM event, or nil when id does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates LLM calls per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// LLMUsageByModel aggregates LLM calls per model.
	LLMUsageByModel(ctx context.Context) ([]LLMUsage, error)

	// AppendAnswerEvent records a graded answer.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// QueryAnswerEvents returns a user's answers, newest first.
	QueryAnswerEvents(ctx context.Context, userID string, opts QueryOpts) ([]AnswerEvent, error)

	// AccuracyByType tallies a user's answers per question type.
	AccuracyByType(ctx context.Context, userID string) ([]TypeAccuracy, error)

	// MostMissedWords returns the words a user missed most, at most limit.
	MostMissedWords(ctx context.Context, userID string, limit int) ([]WordMisses, error)
}
