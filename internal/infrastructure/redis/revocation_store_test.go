package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*RevocationStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRevocationStore(rdb), mr
}

func TestRevocationStore(t *testing.T) {
	ctx := context.Background()
	store, mr := newStore(t)

	revoked, err := store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	require.False(t, revoked)

	require.NoError(t, store.Revoke(ctx, "jti-1", time.Now().Add(time.Minute)))
	revoked, err = store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	require.True(t, revoked)

	ttl := mr.TTL(revokedKey("jti-1"))
	require.Greater(t, ttl, time.Duration(0))
	require.LessOrEqual(t, ttl, time.Minute)

	mr.FastForward(2 * time.Minute)
	revoked, err = store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	require.False(t, revoked)
}

func TestRevocationStoreSkipsExpiredTokens(t *testing.T) {
	ctx := context.Background()
	store, mr := newStore(t)

	require.NoError(t, store.Revoke(ctx, "old", time.Now().Add(-time.Second)))
	require.False(t, mr.Exists(revokedKey("old")))
}

func TestRevocationStoreReportsOutage(t *testing.T) {
	ctx := context.Background()
	store, mr := newStore(t)
	mr.Close()

	_, err := store.IsRevoked(ctx, "jti")
	require.Error(t, err)
}
