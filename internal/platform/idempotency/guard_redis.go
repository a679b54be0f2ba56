// Package idempotency keeps a resubmitted order request from creating a second order.
package idempotency

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultTTL       = 24 * time.Hour
	defaultNamespace = "order-request"

	// pendingValue marks a key whose order is still being assembled.
	pendingValue = "pending"
)

// RedisGuard reserves request keys in Redis with SETNX.
// A nil client disables the guard: every reservation succeeds.
type RedisGuard struct {
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewRedisGuard creates a guard. Non-positive ttl and empty namespace fall back to defaults.
func NewRedisGuard(rdb *redis.Client, ttl time.Duration, namespace string) *RedisGuard {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if namespace == "" {
		namespace = defaultNamespace
	}
	return &RedisGuard{rdb: rdb, ttl: ttl, namespace: namespace}
}

func (g *RedisGuard) key(scope, key string) string {
	return fmt.Sprintf("%s:%s:%s", g.namespace, scope, key)
}

// Reserve claims key within scope. When the key is already taken it returns
// reserved=false and the stored order id, which is empty while the first request runs.
// A non-nil error means Redis could not be reached.
func (g *RedisGuard) Reserve(ctx context.Context, scope, key string) (reserved bool, existingID string, err error) {
	if g.rdb == nil {
		return true, "", nil
	}
	k := g.key(scope, key)
	ok, err := g.rdb.SetNX(ctx, k, pendingValue, g.ttl).Result()
	if err != nil {
		return false, "", fmt.Errorf("reserve %s: %w", k, err)
	}
	if ok {
		return true, "", nil
	}

	val, err := g.rdb.Get(ctx, k).Result()
	if errors.Is(err, redis.Nil) {
		// 期限切れ直後の競合。もう一度だけ確保を試みる
		ok, err = g.rdb.SetNX(ctx, k, pendingValue, g.ttl).Result()
		if err != nil {
			return false, "", fmt.Errorf("reserve %s: %w", k, err)
		}
		return ok, "", nil
	}
	if err != nil {
		return false, "", fmt.Errorf("lookup %s: %w", k, err)
	}
	if val == pendingValue {
		return false, "", nil
	}
	return false, val, nil
}

// Complete records the order id created for key.
func (g *RedisGuard) Complete(ctx context.Context, scope, key, orderID string) error {
	if g.rdb == nil {
		return nil
	}
	return g.rdb.Set(ctx, g.key(scope, key), orderID, g.ttl).Err()
}

// Release frees key so the request can be retried.
func (g *RedisGuard) Release(ctx context.Context, scope, key string) error {
	if g.rdb == nil {
		return nil
	}
	return g.rdb.Del(ctx, g.key(scope, key)).Err()
}
