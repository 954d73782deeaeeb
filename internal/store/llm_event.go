package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

const llmEventsTable = "llm_request_events"

var llmEventColumns = []string{
	"id", "sequence", "created_at", "provider", "model", "purpose",
	"input_tokens", "output_tokens", "latency_ms", "success",
	"error_message", "request_body", "response_body",
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := builder().
		Insert(llmEventsTable).
		Columns(llmEventColumns[1:]...).
		Values(
			seqNum, time.Now().UnixMilli(), data.Provider, data.Model, data.Purpose,
			data.InputTokens, data.OutputTokens, data.LatencyMs, boolInt(data.Success),
			data.ErrorMessage, data.RequestBody, data.ResponseBody,
		).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error) {
	sel := builder().
		Select(llmEventColumns...).
		From(entsql.Table(llmEventsTable)).
		OrderBy(entsql.Desc("sequence"))
	applyOpts(sel, opts)

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}
	defer rows.Close()

	var out []LLMEvent
	for rows.Next() {
		e, err := scanLLMEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error) {
	query, args := builder().
		Select(llmEventColumns...).
		From(entsql.Table(llmEventsTable)).
		Where(entsql.EQ("id", id)).
		Query()

	e, err := scanLLMEvent(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return e, err
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error) {
	return r.llmUsage(ctx, "purpose")
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]LLMUsage, error) {
	return r.llmUsage(ctx, "model")
}

func (r *eventRepo) llmUsage(ctx context.Context, group string) ([]LLMUsage, error) {
	query, args := builder().
		Select(
			group,
			entsql.As(entsql.Count("*"), "calls"),
			entsql.As(entsql.Sum("input_tokens"), "input_tokens"),
			entsql.As(entsql.Sum("output_tokens"), "output_tokens"),
			entsql.As("CAST(AVG(latency_ms) AS INTEGER)", "avg_latency_ms"),
		).
		From(entsql.Table(llmEventsTable)).
		GroupBy(group).
		OrderBy(group).
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query LLM usage by %s: %w", group, err)
	}
	defer rows.Close()

	var out []LLMUsage
	for rows.Next() {
		var u LLMUsage
		var key string
		if err := rows.Scan(&key, &u.Calls, &u.InputTokens, &u.OutputTokens, &u.AvgLatencyMs); err != nil {
			return nil, fmt.Errorf("scan LLM usage: %w", err)
		}
		if group == "model" {
			u.Model = key
		} else {
			u.Purpose = key
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanLLMEvent(row scanner) (*LLMEvent, error) {
	var e LLMEvent
	var created int64
	var success int
	err := row.Scan(
		&e.ID, &e.Sequence, &created, &e.Provider, &e.Model, &e.Purpose,
		&e.InputTokens, &e.OutputTokens, &e.LatencyMs, &success,
		&e.ErrorMessage, &e.RequestBody, &e.ResponseBody,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan LLM event: %w", err)
	}
	e.Timestamp = time.UnixMilli(created)
	e.Success = success != 0
	return &e, nil
}

// applyOpts adds QueryOpts filters to a selector over an event table.
func applyOpts(sel *entsql.Selector, opts QueryOpts) {
	if opts.After > 0 {
		sel.Where(entsql.GT("sequence", opts.After))
	}
	if opts.Before > 0 {
		sel.Where(entsql.LT("sequence", opts.Before))
	}
	if !opts.From.IsZero() {
		sel.Where(entsql.GTE("created_at", opts.From.UnixMilli()))
	}
	if !opts.To.IsZero() {
		sel.Where(entsql.LTE("created_at", opts.To.UnixMilli()))
	}
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}
}
