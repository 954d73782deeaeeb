// Package rediskv implements store.KV on Redis for deployments where several
// API instances share quiz progress.
package rediskv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/adilsezer/lithuaningo-sub000/internal/store"
)

// KV is a Redis-backed store.KV.
type KV struct {
	client *redis.Client
	prefix string

	// TTLFor returns the expiry for a key; zero keeps it forever. Nil means
	// no key expires.
	TTLFor func(key string) time.Duration
}

var _ store.KV = (*KV)(nil)

// Open parses url, connects and pings the server. Every key is stored under
// prefix.
func Open(ctx context.Context, url, prefix string) (*KV, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return New(client, prefix), nil
}

// New wraps an existing client.
func New(client *redis.Client, prefix string) *KV {
	return &KV{client: client, prefix: prefix}
}

// Close closes the client.
func (k *KV) Close() error {
	return k.client.Close()
}

func (k *KV) Put(ctx context.Context, key string, value []byte) error {
	var ttl time.Duration
	if k.TTLFor != nil {
		ttl = k.TTLFor(key)
	}
	if err := k.client.Set(ctx, k.prefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	return nil
}

func (k *KV) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := k.client.Get(ctx, k.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %q: %w", key, err)
	}
	if b == nil {
		b = []byte{}
	}
	return b, nil
}

func (k *KV) Delete(ctx context.Context, key string) error {
	if err := k.client.Del(ctx, k.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis del %q: %w", key, err)
	}
	return nil
}
