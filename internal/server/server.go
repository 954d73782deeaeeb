// Package server exposes the quiz engine over a JSON HTTP API.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/adilsezer/lithuaningo-sub000/internal/session"
)

// Server routes quiz requests to per-user sessions. One session is kept in
// memory per user and replaced when the date key rolls over.
type Server struct {
	engine *session.Engine
	logger *slog.Logger

	mu       sync.Mutex
	sessions map[string]*userSession
}

type userSession struct {
	mu sync.Mutex
	s  *session.Session
}

// New creates a Server. A nil logger uses slog.Default.
func New(engine *session.Engine, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		engine:   engine,
		logger:   logger,
		sessions: make(map[string]*userSession),
	}
}

// Handler returns the chi router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "dateKey": s.engine.DateKey()})
	})

	r.Route("/api/v1/users/{userID}", func(r chi.Router) {
		r.Get("/learned", s.getLearned)
		r.Put("/learned", s.putLearned)

		r.Route("/quiz", func(r chi.Router) {
			r.Post("/", s.loadQuiz)
			r.Get("/", s.getQuiz)
			r.Delete("/", s.resetQuiz)
			r.Post("/answer", s.answer)
			r.Post("/continue", s.continueQuiz)
			r.Get("/summary", s.summary)
			r.Get("/explanation", s.explanation)
		})
	})

	return r
}

// ListenAndServe serves until ctx is canceled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string, readTimeout, writeTimeout, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	s.logger.Info("http server shutting down")
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) slot(userID string) *userSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	us, ok := s.sessions[userID]
	if !ok {
		us = &userSession{}
		s.sessions[userID] = us
	}
	return us
}

// withSession runs fn with the user's current session, loading or resuming
// it first when needed. fn runs under the user's lock.
func (s *Server) withSession(ctx context.Context, userID string, fn func(*session.Session) error) error {
	us := s.slot(userID)
	us.mu.Lock()
	defer us.mu.Unlock()

	if us.s == nil || us.s.DateKey() != s.engine.DateKey() {
		loaded, err := s.engine.Load(ctx, session.UserData{ID: userID})
		if err != nil {
			return err
		}
		us.s = loaded
	}
	return fn(us.s)
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			level := slog.LevelInfo
			if status >= 500 {
				level = slog.LevelError
			}
			logger.LogAttrs(r.Context(), level, "http.request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", status),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}
