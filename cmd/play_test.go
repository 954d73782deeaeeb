package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adilsezer/lithuaningo-sub000/internal/datekey"
	"github.com/adilsezer/lithuaningo-sub000/internal/lexicon"
	"github.com/adilsezer/lithuaningo-sub000/internal/quizgen"
	"github.com/adilsezer/lithuaningo-sub000/internal/session"
	"github.com/adilsezer/lithuaningo-sub000/internal/store"
)

func newTestSession(t *testing.T) *session.Session {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "play.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	engine := session.NewEngine(session.Config{
		Repo:     lexicon.NewEmbeddedRepository(),
		KV:       s.KV(),
		Dates:    datekey.Fixed("2026-10-17"),
		Seed:     7,
		Recorder: s.EventRepo(),
	})
	ids := make([]string, 10)
	for i := range ids {
		ids[i] = fmt.Sprintf("s%03d", i+1)
	}
	sess, err := engine.Load(context.Background(), session.UserData{ID: "cli", LearnedSentenceIDs: ids})
	require.NoError(t, err)
	return sess
}

func TestPlaySession_AllCorrect(t *testing.T) {
	sess := newTestSession(t)

	var in strings.Builder
	for _, q := range sess.Questions() {
		in.WriteString(q.CorrectAnswerText + "\n\n")
	}
	var out bytes.Buffer

	require.NoError(t, playSession(context.Background(), sess, strings.NewReader(in.String()), &out))
	assert.Equal(t, session.PhaseCompleted, sess.State().Phase)
	assert.Contains(t, out.String(), "Quiz complete")
	assert.Contains(t, out.String(), "Correct!")
}

func TestPlaySession_QuitStopsEarly(t *testing.T) {
	sess := newTestSession(t)
	var out bytes.Buffer

	require.NoError(t, playSession(context.Background(), sess, strings.NewReader("q\n"), &out))
	assert.Equal(t, session.PhaseActive, sess.State().Phase)
	assert.Equal(t, 0, sess.State().QuestionIndex)
}

func TestPlaySession_EndOfInput(t *testing.T) {
	sess := newTestSession(t)
	var out bytes.Buffer

	require.NoError(t, playSession(context.Background(), sess, strings.NewReader(""), &out))
	assert.NotContains(t, out.String(), "Quiz complete")
}

func TestCLI_LearnAndGenerate(t *testing.T) {
	t.Chdir(t.TempDir())
	db := filepath.Join(t.TempDir(), "cli.db")

	run := func(args ...string) string {
		t.Helper()
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetErr(&out)
		rootCmd.SetArgs(append([]string{"--db", db, "--user", "cli"}, args...))
		require.NoError(t, rootCmd.Execute(), out.String())
		return out.String()
	}

	out := run("learn", "s001", "s002", "s003", "s004", "s005")
	assert.Contains(t, out, "5 learned sentences for cli")

	out = run("learn", "s002")
	assert.Contains(t, out, "5 learned sentences for cli")

	var questions []quizgen.Question
	require.NoError(t, json.Unmarshal([]byte(run("generate")), &questions))
	assert.NotEmpty(t, questions)
}
