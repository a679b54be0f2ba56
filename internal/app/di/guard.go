// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"

	"shop_backend/internal/feature/orders/usecase"
	"shop_backend/internal/platform/idempotency"
)

// NewRequestGuard creates the order request guard.
// If Redis is available, it returns a Redis-backed guard.
// Otherwise, it returns nil and orders are placed without duplicate detection.
func NewRequestGuard(rdb *redis.Client, ttl time.Duration) usecase.RequestGuard {
	if rdb == nil {
		return nil
	}
	return idempotency.NewRedisGuard(rdb, ttl, "order-request")
}
