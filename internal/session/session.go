package session

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/adilsezer/lithuaningo-sub000/internal/explain"
	"github.com/adilsezer/lithuaningo-sub000/internal/quizgen"
	"github.com/adilsezer/lithuaningo-sub000/internal/store"
)

// Session is one user's quiz for one date key. It is not safe for
// concurrent use.
type Session struct {
	engine  *Engine
	userID  string
	dateKey string
	keys    dayKeys

	questions []quizgen.Question
	incorrect []quizgen.Question
	state     QuizState

	shownAt   time.Time
	explainer Explainer
}

// AnswerResult describes a graded answer.
type AnswerResult struct {
	Correct       bool             `json:"correct"`
	CorrectAnswer string           `json:"correctAnswer"`
	Question      quizgen.Question `json:"question"`
	Review        bool             `json:"review"`
}

// UserID returns the session owner.
func (s *Session) UserID() string { return s.userID }

// DateKey returns the day the session belongs to.
func (s *Session) DateKey() string { return s.dateKey }

// State returns a copy of the session cursor.
func (s *Session) State() QuizState {
	st := s.state
	st.ReviewCorrect = slices.Clone(s.state.ReviewCorrect)
	return st
}

// Questions returns the main question batch.
func (s *Session) Questions() []quizgen.Question { return s.questions }

// Incorrect returns the missed questions still awaiting remediation.
func (s *Session) Incorrect() []quizgen.Question { return s.incorrect }

// Current returns the question under the cursor: the one awaiting an answer
// in the answering phases, or the one just answered while the continue
// prompt is shown. It returns nil otherwise.
func (s *Session) Current() *quizgen.Question {
	st := &s.state
	switch st.Phase {
	case PhaseActive:
		return at(s.questions, st.QuestionIndex)
	case PhaseReviewActive:
		return at(s.incorrect, st.ReviewIndex)
	case PhaseContinuePrompt:
		if st.Reviewing {
			return at(s.incorrect, st.ReviewIndex-1)
		}
		return at(s.questions, st.QuestionIndex-1)
	default:
		return nil
	}
}

func sameQuestion(a, b *quizgen.Question) bool {
	return a.QuestionType == b.QuestionType && a.SentenceText == b.SentenceText &&
		a.QuestionText == b.QuestionText && a.CorrectAnswerText == b.CorrectAnswerText
}

func at(qs []quizgen.Question, i int) *quizgen.Question {
	if i < 0 || i >= len(qs) {
		return nil
	}
	return &qs[i]
}

// Answer grades answer against the current question, advances the cursor and
// moves to the continue prompt. Missed main-batch questions join the
// incorrect list.
func (s *Session) Answer(ctx context.Context, answer string) (*AnswerResult, error) {
	st := &s.state
	review := st.Phase == PhaseReviewActive
	if st.Phase != PhaseActive && !review {
		return nil, fmt.Errorf("%w (phase %s)", ErrNotAnswerable, st.Phase)
	}
	q := s.Current()
	if q == nil {
		return nil, fmt.Errorf("%w (no question at cursor)", ErrNotAnswerable)
	}
	asked := *q

	correct := quizgen.CheckAnswer(answer, &asked)
	st.LastAnswer = answer
	st.LastAnswerCorrect = correct
	st.AnsweredCount++
	if correct {
		st.CorrectCount++
	}

	if review {
		if correct {
			st.ReviewCorrect = append(st.ReviewCorrect, st.ReviewIndex)
		}
		st.ReviewIndex++
	} else {
		if !correct {
			st.MissedCount++
		}
		st.QuestionIndex++
	}
	st.ShowContinueButton = true
	st.Phase = PhaseContinuePrompt
	s.save(ctx)

	// A question re-asked after a lost progress write is already listed.
	if !review && !correct {
		if !slices.ContainsFunc(s.incorrect, func(q quizgen.Question) bool { return sameQuestion(&q, &asked) }) {
			s.incorrect = append(s.incorrect, asked)
			s.engine.kv.Store(ctx, s.keys.incorrect, s.incorrect)
		}
	}

	s.record(ctx, &asked, answer, correct, review)
	if !correct && s.explainer != nil {
		s.explainer.RequestExplanation(context.WithoutCancel(ctx), explain.Input{Question: asked, Answer: answer})
	}

	return &AnswerResult{
		Correct:       correct,
		CorrectAnswer: asked.CorrectAnswerText,
		Question:      asked,
		Review:        review,
	}, nil
}

// Continue leaves a prompt phase: to the next question, into or through the
// remediation loop, or to completion.
func (s *Session) Continue(ctx context.Context) error {
	st := &s.state
	switch st.Phase {
	case PhaseContinuePrompt:
		st.ShowContinueButton = false
		if st.Reviewing {
			s.advanceReview(ctx)
		} else {
			s.advanceMain()
		}
	case PhaseReviewPrompt:
		st.ShowContinueButton = false
		st.Reviewing = true
		st.ReviewPass++
		st.ReviewIndex = 0
		st.ReviewCorrect = nil
		st.Phase = PhaseReviewActive
	default:
		return fmt.Errorf("%w (phase %s)", ErrNotContinuable, st.Phase)
	}
	s.shownAt = s.engine.clock.Now()
	s.save(ctx)
	return nil
}

func (s *Session) advanceMain() {
	st := &s.state
	switch {
	case st.QuestionIndex < len(s.questions):
		st.Phase = PhaseActive
	case len(s.incorrect) > 0:
		st.Phase = PhaseReviewPrompt
		st.ShowContinueButton = true
	default:
		s.complete()
	}
}

func (s *Session) advanceReview(ctx context.Context) {
	st := &s.state
	if st.ReviewIndex < len(s.incorrect) {
		st.Phase = PhaseReviewActive
		return
	}

	// End of pass: drop what was answered correctly.
	remaining := make([]quizgen.Question, 0, len(s.incorrect))
	for i, q := range s.incorrect {
		if !slices.Contains(st.ReviewCorrect, i) {
			remaining = append(remaining, q)
		}
	}
	s.incorrect = remaining
	s.engine.kv.Store(ctx, s.keys.incorrect, s.incorrect)
	st.ReviewCorrect = nil
	st.ReviewIndex = 0

	if len(s.incorrect) == 0 {
		s.complete()
		return
	}
	st.Phase = PhaseReviewPrompt
	st.ShowContinueButton = true
}

// settle moves a restored cursor that points past its question list to the
// phase that list allows, so a partially lost day never blocks the learner.
func (s *Session) settle(ctx context.Context) {
	st := &s.state
	before := *st
	if st.Phase == PhaseLoading {
		st.Phase = PhaseActive
	}
	switch st.Phase {
	case PhaseActive:
		if st.QuestionIndex >= len(s.questions) {
			s.advanceMain()
		}
	case PhaseReviewPrompt:
		if len(s.incorrect) == 0 {
			s.complete()
		}
	case PhaseReviewActive:
		if st.ReviewIndex >= len(s.incorrect) {
			st.ReviewIndex = len(s.incorrect)
			s.advanceReview(ctx)
		}
	case PhaseContinuePrompt:
		if st.Reviewing && st.ReviewIndex > len(s.incorrect) {
			st.ReviewIndex = len(s.incorrect)
		}
	}
	if st.Phase != before.Phase || st.ReviewIndex != before.ReviewIndex {
		s.save(ctx)
	}
}

func (s *Session) complete() {
	st := &s.state
	st.Phase = PhaseCompleted
	st.QuizCompleted = true
	st.ShowContinueButton = false
}

// Explanation returns a finished explanation for the last missed question,
// if one is ready.
func (s *Session) Explanation() (*explain.Explanation, bool) {
	if s.explainer == nil {
		return nil, false
	}
	return s.explainer.ConsumeExplanation()
}

func (s *Session) save(ctx context.Context) {
	s.engine.kv.Store(ctx, s.keys.progress, s.state)
}

func (s *Session) record(ctx context.Context, q *quizgen.Question, answer string, correct, review bool) {
	rec := s.engine.cfg.Recorder
	if rec == nil {
		return
	}
	err := rec.AppendAnswerEvent(ctx, store.AnswerEventData{
		UserID:        s.userID,
		SessionID:     s.state.SessionID,
		DateKey:       s.dateKey,
		QuestionType:  string(q.QuestionType),
		QuestionWord:  q.QuestionWord,
		SentenceText:  q.SentenceText,
		CorrectAnswer: q.CorrectAnswerText,
		LearnerAnswer: answer,
		Correct:       correct,
		Review:        review,
		TimeMs:        s.engine.clock.Since(s.shownAt).Milliseconds(),
	})
	if err != nil {
		s.engine.logger.Warn("record answer failed", "user_id", s.userID, "err", err)
	}
}
