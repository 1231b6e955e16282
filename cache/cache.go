// Package cache wraps an optional Redis connection used as an advisory
// accelerator for token revocation checks. Everything here is safe to call with
// no Redis configured; correctness always falls back to the database.
package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"elm/config"

	"github.com/redis/go-redis/v9"
)

// Client is the global Redis client, nil when REDIS_ADDR is not configured
var Client *redis.Client

const userTokenTTL = 15 * time.Minute

// Connect initializes the Redis client when an address is configured
func Connect() {
	addr := config.AppConfig.RedisAddr
	if addr == "" {
		log.Println("Redis not configured, token cache disabled.")
		return
	}

	Client = redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := Client.Ping(ctx).Err(); err != nil {
		log.Printf("Warning: Redis ping failed, token cache disabled: %v", err)
		Client = nil
	}
}

func userTokenKey(userID uint) string {
	return fmt.Sprintf("user_token_%d", userID)
}

// UserTokensFresh reports whether a token of this user passed a revocation check
// since the last invalidation
func UserTokensFresh(userID uint) bool {
	if Client == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	val, err := Client.Get(ctx, userTokenKey(userID)).Result()
	return err == nil && val == "1"
}

// MarkUserTokensFresh records a successful revocation check. SetNX so a marker
// from a request that read the database before a revocation landed can never
// overwrite the revocation tombstone.
func MarkUserTokensFresh(userID uint) {
	if Client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := Client.SetNX(ctx, userTokenKey(userID), "1", userTokenTTL).Err(); err != nil {
		log.Printf("Warning: failed to cache token check for user %d: %v", userID, err)
	}
}

// InvalidateUserTokens writes a revocation tombstone, forcing requests back to
// the database. A tombstone rather than a delete: an in-flight request that
// passed the database check before the revocation would otherwise re-mark the
// user fresh and keep revoked tokens working for the marker's lifetime. The
// tombstone holds the key for at least as long as such a marker could have.
func InvalidateUserTokens(userID uint) {
	if Client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := Client.Set(ctx, userTokenKey(userID), "0", userTokenTTL).Err(); err != nil {
		log.Printf("Warning: failed to invalidate token cache for user %d: %v", userID, err)
	}
}
