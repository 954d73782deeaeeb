package session

import "time"

// Summary holds the end-of-quiz numbers.
type Summary struct {
	Duration        time.Duration `json:"durationNs"`
	TotalQuestions  int           `json:"totalQuestions"`
	Answered        int           `json:"answered"`
	Correct         int           `json:"correct"`
	FirstTryCorrect int           `json:"firstTryCorrect"`
	Missed          int           `json:"missed"`
	ReviewPasses    int           `json:"reviewPasses"`
	Remaining       int           `json:"remaining"`
	Accuracy        float64       `json:"accuracy"`
	Completed       bool          `json:"completed"`
}

// Summary builds a Summary from the current session state.
func (s *Session) Summary() *Summary {
	st := s.state

	firstTry := st.QuestionIndex - st.MissedCount
	var accuracy float64
	if st.QuestionIndex > 0 {
		accuracy = float64(firstTry) / float64(st.QuestionIndex)
	}

	return &Summary{
		Duration:        s.engine.clock.Since(st.StartedAt),
		TotalQuestions:  len(s.questions),
		Answered:        st.AnsweredCount,
		Correct:         st.CorrectCount,
		FirstTryCorrect: firstTry,
		Missed:          st.MissedCount,
		ReviewPasses:    st.ReviewPass,
		Remaining:       len(s.incorrect),
		Accuracy:        accuracy,
		Completed:       st.QuizCompleted,
	}
}
