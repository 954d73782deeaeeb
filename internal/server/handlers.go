package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/adilsezer/lithuaningo-sub000/internal/explain"
	"github.com/adilsezer/lithuaningo-sub000/internal/quizgen"
	"github.com/adilsezer/lithuaningo-sub000/internal/session"
)

// QuizView is the response for quiz endpoints.
type QuizView struct {
	DateKey   string            `json:"dateKey"`
	State     session.QuizState `json:"state"`
	Phase     string            `json:"phase"`
	Question  *quizgen.Question `json:"question"`
	Total     int               `json:"total"`
	Remaining int               `json:"remaining"`
}

// AnswerView is the response for POST /quiz/answer.
type AnswerView struct {
	Result *session.AnswerResult `json:"result"`
	Quiz   QuizView              `json:"quiz"`
}

type learnedRequest struct {
	SentenceIDs []string `json:"sentenceIds"`
}

type answerRequest struct {
	Answer string `json:"answer"`
}

func viewOf(s *session.Session) QuizView {
	st := s.State()
	return QuizView{
		DateKey:   s.DateKey(),
		State:     st,
		Phase:     st.Phase.String(),
		Question:  s.Current(),
		Total:     len(s.Questions()),
		Remaining: len(s.Incorrect()),
	}
}

func (s *Server) getLearned(w http.ResponseWriter, r *http.Request) {
	ids := s.engine.Learned(r.Context(), chi.URLParam(r, "userID"))
	if ids == nil {
		ids = []string{}
	}
	writeJSON(w, http.StatusOK, learnedRequest{SentenceIDs: ids})
}

func (s *Server) putLearned(w http.ResponseWriter, r *http.Request) {
	var req learnedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SentenceIDs == nil {
		writeError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "body must be {\"sentenceIds\": [...]}")
		return
	}
	userID := chi.URLParam(r, "userID")
	if err := s.engine.SetLearned(r.Context(), userID, req.SentenceIDs); err != nil {
		s.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (s *Server) loadQuiz(w http.ResponseWriter, r *http.Request) {
	s.respondView(w, r, func(*session.Session) error { return nil })
}

func (s *Server) getQuiz(w http.ResponseWriter, r *http.Request) {
	s.respondView(w, r, func(*session.Session) error { return nil })
}

func (s *Server) continueQuiz(w http.ResponseWriter, r *http.Request) {
	s.respondView(w, r, func(sess *session.Session) error { return sess.Continue(r.Context()) })
}

func (s *Server) respondView(w http.ResponseWriter, r *http.Request, fn func(*session.Session) error) {
	var view QuizView
	err := s.withSession(r.Context(), chi.URLParam(r, "userID"), func(sess *session.Session) error {
		if err := fn(sess); err != nil {
			return err
		}
		view = viewOf(sess)
		return nil
	})
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) answer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "body must be {\"answer\": \"...\"}")
		return
	}

	var out AnswerView
	err := s.withSession(r.Context(), chi.URLParam(r, "userID"), func(sess *session.Session) error {
		res, err := sess.Answer(r.Context(), req.Answer)
		if err != nil {
			return err
		}
		out = AnswerView{Result: res, Quiz: viewOf(sess)}
		return nil
	})
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) summary(w http.ResponseWriter, r *http.Request) {
	var sum *session.Summary
	err := s.withSession(r.Context(), chi.URLParam(r, "userID"), func(sess *session.Session) error {
		sum = sess.Summary()
		return nil
	})
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

func (s *Server) explanation(w http.ResponseWriter, r *http.Request) {
	var exp *explain.Explanation
	var ok bool
	err := s.withSession(r.Context(), chi.URLParam(r, "userID"), func(sess *session.Session) error {
		exp, ok = sess.Explanation()
		return nil
	})
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, exp)
}

func (s *Server) resetQuiz(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	// The slot stays in place so concurrent requests keep sharing its lock.
	us := s.slot(userID)
	us.mu.Lock()
	s.engine.Reset(r.Context(), userID)
	us.s = nil
	us.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

type apiError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
}

type errorResponse struct {
	Error apiError `json:"error"`
}

func (s *Server) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, session.ErrNoLearnedSentences):
		writeError(w, r, http.StatusNotFound, "NO_LEARNED_SENTENCES", err.Error())
	case errors.Is(err, session.ErrNoQuestions):
		writeError(w, r, http.StatusNotFound, "NO_QUESTIONS", err.Error())
	case errors.Is(err, session.ErrNotAnswerable), errors.Is(err, session.ErrNotContinuable):
		writeError(w, r, http.StatusConflict, "WRONG_PHASE", err.Error())
	default:
		s.logger.Error("request failed", "path", r.URL.Path, "err", err)
		writeError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: apiError{
		Code:      code,
		Message:   message,
		RequestID: middleware.GetReqID(r.Context()),
	}})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
