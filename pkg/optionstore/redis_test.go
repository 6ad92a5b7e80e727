package optionstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/optguard/pkg/optionstore"
)

// fakeRedis implements the three commands the store issues. Any other call
// panics through the nil embedded interface.
type fakeRedis struct {
	redis.UniversalClient
	data map[string]string
	err  error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: make(map[string]string)}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value any, _ time.Duration) *redis.StatusCmd {
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	switch v := value.(type) {
	case []byte:
		f.data[key] = string(v)
	case string:
		f.data[key] = v
	}
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestRedisStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("uses prefixed keys", func(t *testing.T) {
		t.Parallel()
		client := newFakeRedis()
		s := optionstore.NewRedisStore(client, "site:")

		require.NoError(t, s.Set(ctx, "site_email", "admin@example.com"))
		assert.Equal(t, `"admin@example.com"`, client.data["site:site_email"])

		got, err := s.Get(ctx, "site_email")
		require.NoError(t, err)
		assert.Equal(t, "admin@example.com", got)
	})

	t.Run("default prefix", func(t *testing.T) {
		t.Parallel()
		client := newFakeRedis()
		s := optionstore.NewRedisStore(client, "")
		require.NoError(t, s.Set(ctx, "a", 1))
		assert.Contains(t, client.data, optionstore.DefaultRedisPrefix+"a")
	})

	t.Run("missing key", func(t *testing.T) {
		t.Parallel()
		s := optionstore.NewRedisStore(newFakeRedis(), "")
		_, err := s.Get(ctx, "missing")
		assert.ErrorIs(t, err, optionstore.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()
		client := newFakeRedis()
		s := optionstore.NewRedisStore(client, "")
		require.NoError(t, s.Set(ctx, "a", true))
		require.NoError(t, s.Delete(ctx, "a"))
		assert.Empty(t, client.data)
	})

	t.Run("backend errors", func(t *testing.T) {
		t.Parallel()
		client := newFakeRedis()
		client.err = errors.New("connection refused")
		s := optionstore.NewRedisStore(client, "")

		_, err := s.Get(ctx, "a")
		assert.ErrorIs(t, err, optionstore.ErrBackend)
		assert.ErrorIs(t, s.Set(ctx, "a", 1), optionstore.ErrBackend)
		assert.ErrorIs(t, s.Delete(ctx, "a"), optionstore.ErrBackend)
	})

	t.Run("corrupt value", func(t *testing.T) {
		t.Parallel()
		client := newFakeRedis()
		client.data[optionstore.DefaultRedisPrefix+"a"] = "{not json"
		s := optionstore.NewRedisStore(client, "")
		_, err := s.Get(ctx, "a")
		assert.ErrorIs(t, err, optionstore.ErrDecode)
	})
}
