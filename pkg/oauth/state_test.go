package oauth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStateStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStateStore()
	store.now = func() time.Time { return now }

	require.NoError(t, store.Put(ctx, "s1", StateTTL))
	require.NoError(t, store.Put(ctx, "s2", StateTTL))
	assert.Error(t, store.Put(ctx, "", StateTTL))

	ok, err := store.Consume(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, _ = store.Consume(ctx, "s1")
	assert.False(t, ok, "state is single use")

	now = now.Add(StateTTL + time.Second)
	ok, _ = store.Consume(ctx, "s2")
	assert.False(t, ok, "expired state is rejected")

	ok, _ = store.Consume(ctx, "unknown")
	assert.False(t, ok)
}

type fakeRedis struct {
	data    map[string]string
	ttl     map[string]time.Duration
	failSet error
	failGet error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttl: map[string]time.Duration{}}
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(ctx)
	if f.failSet != nil {
		cmd.SetErr(f.failSet)
		return cmd
	}
	f.data[key] = value.(string)
	f.ttl[key] = expiration
	cmd.SetVal("OK")
	return cmd
}

func (f *fakeRedis) GetDel(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx)
	if f.failGet != nil {
		cmd.SetErr(f.failGet)
		return cmd
	}
	v, ok := f.data[key]
	if !ok {
		cmd.SetErr(redis.Nil)
		return cmd
	}
	delete(f.data, key)
	cmd.SetVal(v)
	return cmd
}

func TestRedisStateStore(t *testing.T) {
	ctx := context.Background()
	fake := newFakeRedis()
	store := &RedisStateStore{client: fake, prefix: "oauth:state:"}

	require.NoError(t, store.Put(ctx, "abc", StateTTL))
	assert.Equal(t, StateTTL, fake.ttl["oauth:state:abc"])

	ok, err := store.Consume(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Consume(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = store.Consume(ctx, "")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStateStore_Errors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("redis down")
	fake := newFakeRedis()
	fake.failSet = boom
	fake.failGet = boom
	store := &RedisStateStore{client: fake, prefix: "oauth:state:"}

	assert.ErrorIs(t, store.Put(ctx, "abc", StateTTL), boom)
	ok, err := store.Consume(ctx, "abc")
	assert.ErrorIs(t, err, boom)
	assert.False(t, ok)
}

func TestNewState(t *testing.T) {
	assert.NotEqual(t, NewState(), NewState())
}
