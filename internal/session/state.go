// Package session runs a learner's daily quiz: it builds the question batch,
// walks the learner through it, loops over missed questions until they are
// all answered correctly, and persists everything under date-scoped keys so a
// session resumes where it stopped.
package session

import (
	"time"

	"github.com/google/uuid"
)

// Phase is the current step of a quiz session.
type Phase int

const (
	PhaseLoading        Phase = iota // Building or restoring the batch
	PhaseActive                      // Waiting for an answer to a main question
	PhaseContinuePrompt              // Feedback shown, waiting for continue
	PhaseReviewPrompt                // Main batch done, missed questions pending
	PhaseReviewActive                // Waiting for an answer to a missed question
	PhaseCompleted                   // Nothing left to answer today
)

var phaseNames = [...]string{"loading", "active", "continuePrompt", "reviewPrompt", "reviewActive", "completed"}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// QuizState is the persisted session cursor.
type QuizState struct {
	// SessionID identifies the day's session in the answer log.
	SessionID string `json:"sessionId"`

	Phase Phase `json:"phase"`

	// QuestionIndex counts main-batch questions answered so far and is the
	// index of the next one to ask.
	QuestionIndex int `json:"questionIndex"`

	ShowContinueButton bool `json:"showContinueButton"`
	QuizCompleted      bool `json:"quizCompleted"`

	AnsweredCount int `json:"answeredCount"`
	CorrectCount  int `json:"correctCount"`

	// MissedCount is the number of main-batch questions answered wrong.
	MissedCount int `json:"missedCount"`

	LastAnswer        string `json:"lastAnswer,omitempty"`
	LastAnswerCorrect bool   `json:"lastAnswerCorrect"`

	// Reviewing is set once the remediation loop has started.
	Reviewing bool `json:"reviewing"`

	// ReviewIndex is the next position in the incorrect list for this pass.
	ReviewIndex int `json:"reviewIndex"`

	// ReviewPass counts remediation passes, starting at 1.
	ReviewPass int `json:"reviewPass"`

	// ReviewCorrect holds incorrect-list positions answered correctly in the
	// current pass. They are removed when the pass ends.
	ReviewCorrect []int `json:"reviewCorrect,omitempty"`

	StartedAt time.Time `json:"startedAt"`
}

// NewQuizState returns the state of a session that has not answered anything.
func NewQuizState() QuizState {
	return QuizState{
		SessionID: uuid.NewString(),
		Phase:     PhaseLoading,
		StartedAt: time.Now().UTC(),
	}
}
