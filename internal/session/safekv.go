package session

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/adilsezer/lithuaningo-sub000/internal/store"
)

// SafeKV stores JSON values in a store.KV. Failures are logged and reported
// as "missing" or ignored; they never reach the caller.
type SafeKV struct {
	kv     store.KV
	logger *slog.Logger
}

// NewSafeKV wraps kv. A nil logger uses slog.Default.
func NewSafeKV(kv store.KV, logger *slog.Logger) *SafeKV {
	if logger == nil {
		logger = slog.Default()
	}
	return &SafeKV{kv: kv, logger: logger}
}

// Load decodes the value under key into v. It reports false when the key is
// missing or unreadable.
func (s *SafeKV) Load(ctx context.Context, key string, v any) bool {
	data, err := s.kv.Get(ctx, key)
	if err != nil {
		s.logger.Warn("retrieve failed", "key", key, "err", err)
		return false
	}
	if data == nil {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		s.logger.Warn("decode failed", "key", key, "err", err)
		return false
	}
	return true
}

// Store encodes v under key.
func (s *SafeKV) Store(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.logger.Warn("encode failed", "key", key, "err", err)
		return
	}
	if err := s.kv.Put(ctx, key, data); err != nil {
		s.logger.Warn("store failed", "key", key, "err", err)
	}
}

// Clear deletes key.
func (s *SafeKV) Clear(ctx context.Context, key string) {
	if err := s.kv.Delete(ctx, key); err != nil {
		s.logger.Warn("clear failed", "key", key, "err", err)
	}
}
