package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// sqliteKV implements KV over the kv table.
type sqliteKV struct {
	db *sql.DB
}

func (s *sqliteKV) Put(ctx context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	query, args := builder().
		Insert("kv").
		Columns("key", "value", "updated_at").
		Values(key, value, time.Now().UnixMilli()).
		OnConflict(entsql.ConflictColumns("key"), entsql.ResolveWithNewValues()).
		Query()
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("put %q: %w", key, err)
	}
	return nil
}

func (s *sqliteKV) Get(ctx context.Context, key string) ([]byte, error) {
	query, args := builder().
		Select("value").
		From(entsql.Table("kv")).
		Where(entsql.EQ("key", key)).
		Query()

	var value []byte
	err := s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %q: %w", key, err)
	}
	if value == nil {
		value = []byte{}
	}
	return value, nil
}

func (s *sqliteKV) Delete(ctx context.Context, key string) error {
	query, args := builder().
		Delete("kv").
		Where(entsql.EQ("key", key)).
		Query()
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

// Keys lists stored keys beginning with prefix, in key order.
func Keys(ctx context.Context, s *Store, prefix string) ([]string, error) {
	query, args := builder().
		Select("key").
		From(entsql.Table("kv")).
		Where(entsql.HasPrefix("key", prefix)).
		OrderBy("key").
		Query()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scan key: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}
