package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/404-atomic/soulmate-flow/pkg/adapters/redis"
	"github.com/404-atomic/soulmate-flow/pkg/domain"
	"github.com/404-atomic/soulmate-flow/pkg/ports"
)

func newTestStore(t *testing.T, opts ...redis.Option) (*redis.Store, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})

	return redis.NewFromClient(client, opts...), mr
}

func TestRedisStore_Contract(t *testing.T) {
	store, _ := newTestStore(t)
	ports.RunStateStoreContract(t, store)
}

func TestRedisStore_TTLExpiry(t *testing.T) {
	store, mr := newTestStore(t, redis.WithTTL(time.Minute))
	ctx := context.Background()

	state := domain.NewState()
	state.Cursor = 1
	require.NoError(t, store.Save(ctx, "expiring", state))

	loaded, err := store.Load(ctx, "expiring")
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.Cursor)

	// After the TTL passes the session reads back as not found,
	// which front ends treat as a fresh start.
	mr.FastForward(2 * time.Minute)

	_, err = store.Load(ctx, "expiring")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestRedisStore_DeleteClearsIndex(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "indexed", domain.NewState()))

	sessions, err := store.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, sessions, "indexed")

	require.NoError(t, store.Delete(ctx, "indexed"))

	sessions, err = store.List(ctx)
	require.NoError(t, err)
	assert.NotContains(t, sessions, "indexed")
}

func TestRedisStore_KeyPrefix(t *testing.T) {
	store, mr := newTestStore(t, redis.WithPrefix("custom:"))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "abc", domain.NewState()))
	assert.True(t, mr.Exists("custom:abc"))
}
