// Package postgres serves the lexicon from Postgres tables shaped like the
// hosted Supabase schema:
//
//	words(id, english_translation, image_url, additional_info)
//	word_forms(word_id, position, lithuanian, english)
//	sentences(id, sentence, english_translation, is_main_sentence, display_order, user_id)
package postgres

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adilsezer/lithuaningo-sub000/internal/lexicon"
)

// Querier is the subset of pgxpool.Pool the repository needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repository implements lexicon.Repository over Postgres.
type Repository struct {
	q Querier
}

var _ lexicon.Repository = (*Repository)(nil)

// NewRepository wraps an existing pool or connection.
func NewRepository(q Querier) *Repository {
	return &Repository{q: q}
}

// NewPool opens and pings a connection pool for dsn.
func NewPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	cfg.MaxConns = 5
	cfg.MaxConnIdleTime = 5 * time.Minute

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return pool, nil
}

// FetchWords loads all words and attaches their forms in position order.
func (r *Repository) FetchWords(ctx context.Context) ([]lexicon.Word, error) {
	query, args, err := psql.
		Select("id", "english_translation", "COALESCE(image_url, '')", "COALESCE(additional_info, '')").
		From("words").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build words query: %w", err)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query words: %w", err)
	}
	var words []lexicon.Word
	pos := make(map[string]int)
	for rows.Next() {
		var w lexicon.Word
		if err := rows.Scan(&w.ID, &w.EnglishTranslation, &w.ImageURL, &w.AdditionalInfo); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan word: %w", err)
		}
		pos[w.ID] = len(words)
		words = append(words, w)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate words: %w", err)
	}

	query, args, err = psql.
		Select("word_id", "lithuanian", "english").
		From("word_forms").
		OrderBy("word_id", "position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build word forms query: %w", err)
	}
	rows, err = r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query word forms: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var wordID string
		var f lexicon.WordForm
		if err := rows.Scan(&wordID, &f.Lithuanian, &f.English); err != nil {
			return nil, fmt.Errorf("scan word form: %w", err)
		}
		i, ok := pos[wordID]
		if !ok {
			continue
		}
		words[i].WordForms = append(words[i].WordForms, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate word forms: %w", err)
	}

	// A word without forms is still reachable through its base form.
	for i := range words {
		if len(words[i].WordForms) == 0 {
			words[i].WordForms = []lexicon.WordForm{{Lithuanian: words[i].ID, English: words[i].EnglishTranslation}}
		}
	}
	return words, nil
}

// FetchSentences returns shared sentences plus those owned by userID.
func (r *Repository) FetchSentences(ctx context.Context, userID string) ([]lexicon.Sentence, error) {
	var where sq.Sqlizer = sq.Eq{"user_id": nil}
	if userID != "" {
		where = sq.Or{sq.Eq{"user_id": nil}, sq.Eq{"user_id": userID}}
	}
	query, args, err := psql.
		Select("id", "sentence", "english_translation", "is_main_sentence", "display_order").
		From("sentences").
		Where(where).
		OrderBy("display_order", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sentences query: %w", err)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query sentences: %w", err)
	}
	defer rows.Close()

	var out []lexicon.Sentence
	for rows.Next() {
		var s lexicon.Sentence
		if err := rows.Scan(&s.ID, &s.Sentence, &s.EnglishTranslation, &s.IsMainSentence, &s.DisplayOrder); err != nil {
			return nil, fmt.Errorf("scan sentence: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sentences: %w", err)
	}
	return out, nil
}
