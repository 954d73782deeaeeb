package store

import (
	"context"
	"database/sql"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS kv (
		key        TEXT PRIMARY KEY,
		value      BLOB NOT NULL,
		updated_at INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS answer_events (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence       INTEGER NOT NULL UNIQUE,
		created_at     INTEGER NOT NULL,
		user_id        TEXT NOT NULL,
		session_id     TEXT NOT NULL,
		date_key       TEXT NOT NULL,
		question_type  TEXT NOT NULL,
		question_word  TEXT NOT NULL,
		sentence_text  TEXT NOT NULL,
		correct_answer TEXT NOT NULL,
		learner_answer TEXT NOT NULL,
		correct        INTEGER NOT NULL,
		review         INTEGER NOT NULL,
		time_ms        INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS answer_events_user ON answer_events (user_id, sequence)`,
	`CREATE TABLE IF NOT EXISTS llm_request_events (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence      INTEGER NOT NULL UNIQUE,
		created_at    INTEGER NOT NULL,
		provider      TEXT NOT NULL,
		model         TEXT NOT NULL,
		purpose       TEXT NOT NULL,
		input_tokens  INTEGER NOT NULL,
		output_tokens INTEGER NOT NULL,
		latency_ms    INTEGER NOT NULL,
		success       INTEGER NOT NULL,
		error_message TEXT NOT NULL DEFAULT '',
		request_body  TEXT NOT NULL DEFAULT '',
		response_body TEXT NOT NULL DEFAULT ''
	)`,
}

func migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}
