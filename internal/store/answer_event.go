package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

const answerEventsTable = "answer_events"

var answerEventColumns = []string{
	"id", "sequence", "created_at", "user_id", "session_id", "date_key",
	"question_type", "question_word", "sentence_text", "correct_answer",
	"learner_answer", "correct", "review", "time_ms",
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := builder().
		Insert(answerEventsTable).
		Columns(answerEventColumns[1:]...).
		Values(
			seqNum, time.Now().UnixMilli(), data.UserID, data.SessionID, data.DateKey,
			data.QuestionType, data.QuestionWord, data.SentenceText, data.CorrectAnswer,
			data.LearnerAnswer, boolInt(data.Correct), boolInt(data.Review), data.TimeMs,
		).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryAnswerEvents(ctx context.Context, userID string, opts QueryOpts) ([]AnswerEvent, error) {
	sel := builder().
		Select(answerEventColumns...).
		From(entsql.Table(answerEventsTable)).
		Where(entsql.EQ("user_id", userID)).
		OrderBy(entsql.Desc("sequence"))
	applyOpts(sel, opts)

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}
	defer rows.Close()

	var out []AnswerEvent
	for rows.Next() {
		var e AnswerEvent
		var created int64
		var correct, review int
		if err := rows.Scan(
			&e.ID, &e.Sequence, &created, &e.UserID, &e.SessionID, &e.DateKey,
			&e.QuestionType, &e.QuestionWord, &e.SentenceText, &e.CorrectAnswer,
			&e.LearnerAnswer, &correct, &review, &e.TimeMs,
		); err != nil {
			return nil, fmt.Errorf("scan answer event: %w", err)
		}
		e.Timestamp = time.UnixMilli(created)
		e.Correct = correct != 0
		e.Review = review != 0
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *eventRepo) AccuracyByType(ctx context.Context, userID string) ([]TypeAccuracy, error) {
	query, args := builder().
		Select(
			"question_type",
			entsql.As(entsql.Count("*"), "attempts"),
			entsql.As(entsql.Sum("correct"), "correct_count"),
		).
		From(entsql.Table(answerEventsTable)).
		Where(entsql.EQ("user_id", userID)).
		GroupBy("question_type").
		OrderBy("question_type").
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query accuracy: %w", err)
	}
	defer rows.Close()

	var out []TypeAccuracy
	for rows.Next() {
		var a TypeAccuracy
		if err := rows.Scan(&a.QuestionType, &a.Attempts, &a.Correct); err != nil {
			return nil, fmt.Errorf("scan accuracy: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *eventRepo) MostMissedWords(ctx context.Context, userID string, limit int) ([]WordMisses, error) {
	sel := builder().
		Select(
			"question_word",
			entsql.As(entsql.Count("*"), "attempts"),
			entsql.As("SUM(1 - correct)", "misses"),
		).
		From(entsql.Table(answerEventsTable)).
		Where(entsql.And(
			entsql.EQ("user_id", userID),
			entsql.NEQ("question_word", ""),
		)).
		GroupBy("question_word").
		Having(entsql.GT("SUM(1 - correct)", 0)).
		OrderBy(entsql.Desc("misses"), "question_word")
	if limit > 0 {
		sel.Limit(limit)
	}

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query missed words: %w", err)
	}
	defer rows.Close()

	var out []WordMisses
	for rows.Next() {
		var w WordMisses
		if err := rows.Scan(&w.Word, &w.Attempts, &w.Misses); err != nil {
			return nil, fmt.Errorf("scan missed word: %w", err)
		}
		out = append(out, w)
	}
	return out, rows.Err()
}
