package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// connectTestRedis points the package client at TEST_REDIS_ADDR and skips the
// test when it is unset, mirroring the database test gating.
func connectTestRedis(t *testing.T, userID uint) {
	t.Helper()

	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set, skipping cache test")
	}

	Client = redis.NewClient(&redis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, Client.Ping(ctx).Err())

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		Client.Del(ctx, userTokenKey(userID))
		Client.Close()
		Client = nil
	})
}

func TestFreshnessLifecycle(t *testing.T) {
	userID := uint(time.Now().UnixNano() & 0x7fffffff)
	connectTestRedis(t, userID)

	assert.False(t, UserTokensFresh(userID))

	MarkUserTokensFresh(userID)
	assert.True(t, UserTokensFresh(userID))

	InvalidateUserTokens(userID)
	assert.False(t, UserTokensFresh(userID))
}

func TestLateMarkerCannotOverrideRevocation(t *testing.T) {
	userID := uint(time.Now().UnixNano() & 0x7fffffff)
	connectTestRedis(t, userID)

	// A request validates its token against the database, then a revocation
	// lands before the request gets to mark the user fresh. The late marker
	// must lose to the tombstone.
	InvalidateUserTokens(userID)
	MarkUserTokensFresh(userID)

	assert.False(t, UserTokensFresh(userID))
}
