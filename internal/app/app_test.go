package app

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adilsezer/lithuaningo-sub000/internal/config"
	"github.com/adilsezer/lithuaningo-sub000/internal/session"
	"github.com/adilsezer/lithuaningo-sub000/internal/store"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Log = config.LogConfig{Level: "info", Format: "text"}
	cfg.Store.Backend = config.BackendSQLite
	cfg.Lexicon.Source = config.SourceEmbedded
	cfg.Quiz = config.QuizConfig{SessionSize: 10, ResetHour: 2, Seed: 1, Explanations: true}
	cfg.LLM.Provider = "mock"
	cfg.LLM.Retry.MaxAttempts = 1
	return cfg
}

func TestNewWiresEmbeddedSQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "lithuaningo.db")

	a, err := New(t.Context(), testConfig(), nil, Options{DBPath: dbPath})
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })

	require.NotNil(t, a.Engine)
	require.NotNil(t, a.Provider)
	assert.Equal(t, "mock", a.Provider.ModelID())

	_, err = a.Engine.MarkLearned(t.Context(), "u1", "s001", "s003")
	require.NoError(t, err)

	s, err := a.Engine.Load(t.Context(), session.UserData{ID: "u1"})
	require.NoError(t, err)
	assert.NotEmpty(t, s.Questions())

	_, err = s.Answer(t.Context(), s.Current().CorrectAnswerText)
	require.NoError(t, err)
	events, err := a.Store.EventRepo().QueryAnswerEvents(t.Context(), "u1", store.QueryOpts{Limit: 10})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.True(t, events[0].Correct)
}

func TestNewFileLexiconMissing(t *testing.T) {
	cfg := testConfig()
	cfg.Lexicon.Source = config.SourceFile
	cfg.Lexicon.Path = filepath.Join(t.TempDir(), "missing.json")

	a, err := New(t.Context(), cfg, nil, Options{DBPath: filepath.Join(t.TempDir(), "x.db")})
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })

	_, err = a.Engine.Load(t.Context(), session.UserData{ID: "u1", LearnedSentenceIDs: []string{"s001"}})
	assert.Error(t, err)
}

func TestDailyTTL(t *testing.T) {
	ttl := DailyTTL(48 * time.Hour)
	assert.Equal(t, 48*time.Hour, ttl(session.DateScopedKey(session.PurposeProgress, "u1", "2026-10-17")))
	assert.Zero(t, ttl(session.LearnedKey("u1")))
}

func TestNewLoggerFormats(t *testing.T) {
	var buf bytes.Buffer
	newLogger(config.LogConfig{Level: "info", Format: "json"}, &buf).Info("hello", "user_id", "u1")

	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	assert.Equal(t, "hello", m["msg"])
	assert.Equal(t, "u1", m["user_id"])

	buf.Reset()
	l := newLogger(config.LogConfig{Level: "warn", Format: "text"}, &buf)
	l.Info("hidden")
	l.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
}
