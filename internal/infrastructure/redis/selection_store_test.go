package redis_test

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ginebra-api/internal/infrastructure/redis"
)

func newStore(t *testing.T, ttl time.Duration) (*redis.SelectionStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return redis.NewSelectionStore(client, ttl), mr
}

func TestSelectionStore_SetGetClear(t *testing.T) {
	store, mr := newStore(t, time.Hour)
	ctx := context.Background()

	got, err := store.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, store.Set(ctx, "u1", "c1"))
	got, err = store.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "c1", got)
	assert.Equal(t, time.Hour, mr.TTL("ginebra:selection:u1"))

	require.NoError(t, store.Clear(ctx, "u1"))
	got, err = store.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSelectionStore_Vence(t *testing.T) {
	store, mr := newStore(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "u1", "c1"))
	mr.FastForward(2 * time.Minute)

	got, err := store.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSelectionStore_SetVacioLimpia(t *testing.T) {
	store, _ := newStore(t, 0)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "u1", "c1"))
	require.NoError(t, store.Set(ctx, "u1", ""))
	got, err := store.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, store.Ping(ctx))
}

func TestSelectionStore_ServidorCaido(t *testing.T) {
	client := goredis.NewClient(&goredis.Options{Addr: "127.0.0.1:0", MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	store := redis.NewSelectionStore(client, time.Minute)

	_, err := store.Get(context.Background(), "u1")
	assert.Error(t, err)
}
