package rediskv

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openTestKV connects to REDIS_URL, skipping when it is unset.
func openTestKV(t *testing.T) *KV {
	t.Helper()
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}
	kv, err := Open(context.Background(), url, "lithuaningo-test:"+uuid.NewString()+":")
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })
	return kv
}

func TestRedisKV(t *testing.T) {
	kv := openTestKV(t)
	ctx := context.Background()

	got, err := kv.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, kv.Put(ctx, "k", []byte(`[1,2]`)))
	got, err = kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `[1,2]`, string(got))

	require.NoError(t, kv.Delete(ctx, "k"))
	got, err = kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisKVTTL(t *testing.T) {
	kv := openTestKV(t)
	kv.TTLFor = func(string) time.Duration { return time.Minute }
	ctx := context.Background()

	require.NoError(t, kv.Put(ctx, "ttl", []byte("x")))
	ttl, err := kv.client.TTL(ctx, kv.prefix+"ttl").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	require.NoError(t, kv.Delete(ctx, "ttl"))
}

func TestOpenBadURL(t *testing.T) {
	_, err := Open(context.Background(), "not-a-url://", "")
	assert.Error(t, err)
}
