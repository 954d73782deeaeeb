package explain

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/adilsezer/lithuaningo-sub000/internal/llm"
)

// Service generates explanations asynchronously.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu      sync.Mutex
	latest  uint64 // generation of the newest request
	pending *Explanation
	err     error
	ready   bool

	inflight sync.WaitGroup
}

// NewService creates an explanation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// RequestExplanation starts async generation. Only the newest request can
// fill the slot: results of older requests are dropped when they finish.
func (s *Service) RequestExplanation(ctx context.Context, in Input) {
	s.mu.Lock()
	s.latest++
	gen := s.latest
	s.pending, s.err, s.ready = nil, nil, false
	s.mu.Unlock()

	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		exp, err := s.generate(ctx, in)

		s.mu.Lock()
		defer s.mu.Unlock()
		if gen != s.latest {
			return
		}
		s.pending = exp
		s.err = err
		s.ready = true
	}()
}

// wait blocks until every started request has finished.
func (s *Service) wait() { s.inflight.Wait() }

// ConsumeExplanation returns the pending explanation if one is ready and
// clears the slot.
func (s *Service) ConsumeExplanation() (*Explanation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, false
	}
	exp := s.pending
	s.pending = nil
	s.ready = false
	s.err = nil
	return exp, exp != nil
}

// Err returns the error of the last finished request that has not been
// consumed yet.
func (s *Service) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

type explanationOutput struct {
	Summary     string `json:"summary"`
	GrammarNote string `json:"grammar_note"`
	Example     string `json:"example"`
}

func (s *Service) generate(ctx context.Context, in Input) (*Explanation, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeExplanation)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(in)},
		},
		Schema:      ExplanationSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("explanation generation: %w", err)
	}

	var out explanationOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse explanation response: %w", err)
	}

	return &Explanation{
		Word:        in.Question.QuestionWord,
		Summary:     out.Summary,
		GrammarNote: out.GrammarNote,
		Example:     out.Example,
	}, nil
}
