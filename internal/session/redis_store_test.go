package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisStore(client), mr
}

func TestRedisStoreRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	s := Session{
		SessionID: "sid-1",
		UserID:    42,
		Nonce:     "n-abc",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, store.Save(ctx, s))

	got, err := store.Get(ctx, "sid-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(42), got.UserID)
	assert.Equal(t, "n-abc", got.Nonce)
	assert.True(t, got.Authenticated())
}

func TestRedisStoreAnonymousSession(t *testing.T) {
	// A session created at login start has a nonce but no user yet.
	store, _ := newTestStore(t)
	ctx := context.Background()

	s := Session{
		SessionID: "sid-anon",
		Nonce:     "n-pending",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, store.Save(ctx, s))

	got, err := store.Get(ctx, "sid-anon")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.Authenticated())
	assert.Equal(t, "n-pending", got.Nonce)
}

func TestRedisStoreSaveOverwrites(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	s := Session{SessionID: "sid-1", Nonce: "n-1", ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, store.Save(ctx, s))

	s.Nonce = ""
	s.UserID = 7
	require.NoError(t, store.Save(ctx, s))

	got, err := store.Get(ctx, "sid-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got.Nonce)
	assert.Equal(t, int64(7), got.UserID)
}

func TestRedisStoreGetMissing(t *testing.T) {
	store, _ := newTestStore(t)

	got, err := store.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisStoreExpiry(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	s := Session{SessionID: "sid-ttl", UserID: 1, ExpiresAt: time.Now().Add(time.Minute)}
	require.NoError(t, store.Save(ctx, s))

	mr.FastForward(2 * time.Minute)

	got, err := store.Get(ctx, "sid-ttl")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisStoreSaveExpiredDeletes(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	s := Session{SessionID: "sid-old", UserID: 1, ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, store.Save(ctx, s))

	s.ExpiresAt = time.Now().Add(-time.Second)
	require.NoError(t, store.Save(ctx, s))

	got, err := store.Get(ctx, "sid-old")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisStoreDelete(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	s := Session{SessionID: "sid-del", UserID: 3, ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, store.Save(ctx, s))
	require.NoError(t, store.Delete(ctx, "sid-del"))

	got, err := store.Get(ctx, "sid-del")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGenerateID(t *testing.T) {
	a, err := GenerateID()
	require.NoError(t, err)
	b, err := GenerateID()
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.GreaterOrEqual(t, len(a), 43) // 32 bytes, base64url, no padding
}
