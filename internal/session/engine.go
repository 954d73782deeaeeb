package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"sync"

	"github.com/jonboulle/clockwork"

	"github.com/adilsezer/lithuaningo-sub000/internal/datekey"
	"github.com/adilsezer/lithuaningo-sub000/internal/explain"
	"github.com/adilsezer/lithuaningo-sub000/internal/lexicon"
	"github.com/adilsezer/lithuaningo-sub000/internal/quizgen"
	"github.com/adilsezer/lithuaningo-sub000/internal/selection"
	"github.com/adilsezer/lithuaningo-sub000/internal/store"
	"github.com/adilsezer/lithuaningo-sub000/internal/vocab"
)

var (
	// ErrNoLearnedSentences means the user has not studied any sentence yet,
	// so there is nothing to build a quiz from.
	ErrNoLearnedSentences = errors.New("no learned sentences found")

	// ErrNoQuestions means every selected sentence produced the sentinel.
	ErrNoQuestions = errors.New("no question could be generated")

	// ErrNotAnswerable is returned by Answer outside an answering phase.
	ErrNotAnswerable = errors.New("session is not waiting for an answer")

	// ErrNotContinuable is returned by Continue outside a prompt phase.
	ErrNotContinuable = errors.New("session is not waiting to continue")
)

// AnswerRecorder receives every graded answer. store.EventRepo satisfies it.
type AnswerRecorder interface {
	AppendAnswerEvent(ctx context.Context, data store.AnswerEventData) error
}

// Explainer produces explanations for missed questions in the background.
type Explainer interface {
	RequestExplanation(ctx context.Context, in explain.Input)
	ConsumeExplanation() (*explain.Explanation, bool)
}

// Config wires an Engine.
type Config struct {
	Repo  lexicon.Repository
	KV    store.KV
	Dates datekey.Provider

	// Generator builds questions. Nil uses a Generator logging to Logger.
	Generator *quizgen.Generator

	// SessionSize is the number of questions per day. Zero means
	// selection.DefaultSessionSize.
	SessionSize int

	// Seed seeds question generation. Zero picks a random seed.
	Seed uint64

	// Recorder, when set, receives every graded answer.
	Recorder AnswerRecorder

	// NewExplainer, when set, gives each session its own Explainer.
	NewExplainer func() Explainer

	Clock  clockwork.Clock
	Logger *slog.Logger
}

// Engine loads and persists quiz sessions. It holds no per-user state and is
// safe for concurrent use.
type Engine struct {
	cfg    Config
	kv     *SafeKV
	logger *slog.Logger
	clock  clockwork.Clock
	gen    *quizgen.Generator

	mu  sync.Mutex
	rng *rand.Rand
}

// NewEngine returns an Engine for cfg.
func NewEngine(cfg Config) *Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if cfg.Dates == nil {
		cfg.Dates = &datekey.Daily{Clock: clock, ResetHour: datekey.DefaultResetHour}
	}
	if cfg.SessionSize <= 0 {
		cfg.SessionSize = selection.DefaultSessionSize
	}
	gen := cfg.Generator
	if gen == nil {
		gen = quizgen.NewGenerator(logger)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Engine{
		cfg:    cfg,
		kv:     NewSafeKV(cfg.KV, logger),
		logger: logger,
		clock:  clock,
		gen:    gen,
		rng:    rand.New(rand.NewPCG(seed, seed^0x5851f42d4c957f2d)),
	}
}

// UserData identifies the learner. LearnedSentenceIDs overrides the stored
// learned list when non-empty.
type UserData struct {
	ID                 string
	LearnedSentenceIDs []string
}

func (e *Engine) childRNG() *rand.Rand {
	e.mu.Lock()
	defer e.mu.Unlock()
	return rand.New(rand.NewPCG(e.rng.Uint64(), e.rng.Uint64()))
}

// Load resumes today's session for the user, or builds and persists a new
// one when nothing usable is stored.
func (e *Engine) Load(ctx context.Context, user UserData) (*Session, error) {
	dateKey := e.cfg.Dates.CurrentDateKey()
	keys := keysFor(user.ID, dateKey)

	var questions []quizgen.Question
	var state QuizState
	if e.kv.Load(ctx, keys.questions, &questions) && len(questions) > 0 &&
		e.kv.Load(ctx, keys.progress, &state) && state.QuestionIndex <= len(questions) {
		var incorrect []quizgen.Question
		if !e.kv.Load(ctx, keys.incorrect, &incorrect) && state.MissedCount > 0 {
			e.logger.Warn("missed questions lost, review skipped", "user_id", user.ID, "date_key", dateKey)
		}
		s := e.newSession(user.ID, dateKey, questions, incorrect, state)
		s.settle(ctx)
		e.logger.Debug("quiz resumed", "user_id", user.ID, "date_key", dateKey,
			"question_index", s.state.QuestionIndex, "phase", s.state.Phase.String())
		return s, nil
	}

	questions, err := e.Build(ctx, user)
	if err != nil {
		return nil, err
	}

	state = NewQuizState()
	state.StartedAt = e.clock.Now().UTC()
	state.Phase = PhaseActive

	e.kv.Store(ctx, keys.questions, questions)
	e.kv.Store(ctx, keys.progress, state)
	e.kv.Store(ctx, keys.incorrect, []quizgen.Question{})

	e.logger.Info("quiz generated", "user_id", user.ID, "date_key", dateKey, "questions", len(questions))
	return e.newSession(user.ID, dateKey, questions, nil, state), nil
}

// Build generates a fresh question batch for the user without touching any
// persisted state. Sentinel questions are dropped.
func (e *Engine) Build(ctx context.Context, user UserData) ([]quizgen.Question, error) {
	ids := user.LearnedSentenceIDs
	if len(ids) == 0 {
		ids = e.Learned(ctx, user.ID)
	}
	if len(ids) == 0 {
		return nil, ErrNoLearnedSentences
	}

	corpus, err := e.cfg.Repo.FetchSentences(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("fetch sentences: %w", err)
	}
	learned := lexicon.FilterByID(corpus, ids)
	if len(learned) == 0 {
		return nil, ErrNoLearnedSentences
	}

	words, err := e.cfg.Repo.FetchWords(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch words: %w", err)
	}

	idx := lexicon.NewIndex(words)
	knownWords := vocab.ResolveIndex(learned, idx)
	known := vocab.NewKnown(knownWords)

	rng := e.childRNG()
	picked := selection.Select(knownWords, corpus, e.cfg.SessionSize, rng)
	inputs := make([]quizgen.GenerateInput, len(picked))
	for i, s := range picked {
		inputs[i] = quizgen.GenerateInput{Sentence: s, Index: idx, Known: known}
	}

	batch, err := e.gen.GenerateBatch(ctx, inputs, rng)
	if err != nil {
		return nil, err
	}
	questions := slices.DeleteFunc(batch, func(q quizgen.Question) bool { return quizgen.IsSentinel(&q) })
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	e.logger.Debug("quiz built", "user_id", user.ID, "known_words", len(knownWords),
		"sentences", len(picked), "questions", len(questions))
	return questions, nil
}

// DateKey returns the current date key.
func (e *Engine) DateKey() string {
	return e.cfg.Dates.CurrentDateKey()
}

// Reset clears today's session keys for the user.
func (e *Engine) Reset(ctx context.Context, userID string) {
	keys := keysFor(userID, e.cfg.Dates.CurrentDateKey())
	e.kv.Clear(ctx, keys.questions)
	e.kv.Clear(ctx, keys.progress)
	e.kv.Clear(ctx, keys.incorrect)
}

// Learned returns the stored learned sentence IDs for the user.
func (e *Engine) Learned(ctx context.Context, userID string) []string {
	var ids []string
	e.kv.Load(ctx, LearnedKey(userID), &ids)
	return ids
}

// SetLearned replaces the user's learned sentence IDs. Unlike quiz state,
// failures are returned.
func (e *Engine) SetLearned(ctx context.Context, userID string, ids []string) error {
	data, err := encodeIDs(ids)
	if err != nil {
		return err
	}
	if err := e.cfg.KV.Put(ctx, LearnedKey(userID), data); err != nil {
		return fmt.Errorf("store learned sentences: %w", err)
	}
	return nil
}

// MarkLearned appends ids to the user's learned list, skipping duplicates,
// and returns the updated list.
func (e *Engine) MarkLearned(ctx context.Context, userID string, ids ...string) ([]string, error) {
	current := e.Learned(ctx, userID)
	for _, id := range ids {
		if !slices.Contains(current, id) {
			current = append(current, id)
		}
	}
	if err := e.SetLearned(ctx, userID, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (e *Engine) newSession(userID, dateKey string, questions, incorrect []quizgen.Question, state QuizState) *Session {
	s := &Session{
		engine:    e,
		userID:    userID,
		dateKey:   dateKey,
		keys:      keysFor(userID, dateKey),
		questions: questions,
		incorrect: incorrect,
		state:     state,
		shownAt:   e.clock.Now(),
	}
	if e.cfg.NewExplainer != nil {
		s.explainer = e.cfg.NewExplainer()
	}
	return s
}
