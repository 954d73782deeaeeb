package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "explanation", InputTokens: 100, OutputTokens: 20, LatencyMs: 300, Success: true, RequestBody: "[user]\nhi"},
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "explanation", InputTokens: 50, OutputTokens: 10, LatencyMs: 100, Success: false, ErrorMessage: "rate limited"},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "translation-check", InputTokens: 10, OutputTokens: 5, LatencyMs: 50, Success: true},
	}
	for _, e := range events {
		require.NoError(t, repo.AppendLLMRequest(ctx, e))
	}

	list, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "gpt-4o-mini", list[0].Model, "newest first")
	assert.Greater(t, list[0].Sequence, list[1].Sequence)

	got, err := repo.GetLLMEvent(ctx, list[1].ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.Success)
	assert.Equal(t, "rate limited", got.ErrorMessage)

	missing, err := repo.GetLLMEvent(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, byPurpose, 2)
	assert.Equal(t, "explanation", byPurpose[0].Purpose)
	assert.Equal(t, 2, byPurpose[0].Calls)
	assert.Equal(t, 150, byPurpose[0].InputTokens)
	assert.Equal(t, int64(200), byPurpose[0].AvgLatencyMs)

	byModel, err := repo.LLMUsageByModel(ctx)
	require.NoError(t, err)
	require.Len(t, byModel, 2)
	assert.Equal(t, "claude-haiku", byModel[0].Model)
	assert.Equal(t, 30, byModel[0].OutputTokens)
}

func TestAnswerEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []AnswerEventData{
		{UserID: "u1", QuestionType: "multipleChoice", QuestionWord: "Namą", Correct: true},
		{UserID: "u1", QuestionType: "multipleChoice", QuestionWord: "Šunį", Correct: false},
		{UserID: "u1", QuestionType: "fillInTheBlank", QuestionWord: "Šunį", Correct: false},
		{UserID: "u1", QuestionType: "fillInTheBlank", QuestionWord: "Šunį", Correct: true, Review: true},
		{UserID: "u1", QuestionType: "trueFalse", QuestionWord: "Matau", Correct: false},
		{UserID: "u2", QuestionType: "trueFalse", QuestionWord: "Matau", Correct: false},
	}
	for _, a := range answers {
		a.SessionID = "s"
		a.DateKey = "2024-03-10"
		require.NoError(t, repo.AppendAnswerEvent(ctx, a))
	}

	acc, err := repo.AccuracyByType(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, acc, 3)
	assert.Equal(t, TypeAccuracy{QuestionType: "fillInTheBlank", Attempts: 2, Correct: 1}, acc[0])
	assert.Equal(t, TypeAccuracy{QuestionType: "multipleChoice", Attempts: 2, Correct: 1}, acc[1])
	assert.InDelta(t, 0.5, acc[1].Accuracy(), 1e-9)
	assert.Equal(t, 0.0, TypeAccuracy{}.Accuracy())

	missed, err := repo.MostMissedWords(ctx, "u1", 5)
	require.NoError(t, err)
	require.Len(t, missed, 2)
	assert.Equal(t, WordMisses{Word: "Šunį", Attempts: 3, Misses: 2}, missed[0])
	assert.Equal(t, WordMisses{Word: "Matau", Attempts: 1, Misses: 1}, missed[1])

	list, err := repo.QueryAnswerEvents(ctx, "u1", QueryOpts{})
	require.NoError(t, err)
	require.Len(t, list, 5)
	assert.Equal(t, "Matau", list[0].QuestionWord)
	assert.True(t, list[1].Review)

	after, err := repo.QueryAnswerEvents(ctx, "u1", QueryOpts{After: list[1].Sequence})
	require.NoError(t, err)
	assert.Len(t, after, 1)
}
