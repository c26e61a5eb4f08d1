package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/todolist-service/internal/ports"
)

var (
	_ ports.CategoryCache = (*Redis)(nil)
	_ ports.HealthChecker = (*Redis)(nil)
)

// Redis stores the category list as a JSON array under one key with a TTL.
type Redis struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedis creates a cache on an existing client. The caller owns the
// client and closes it.
func NewRedis(rdb *redis.Client, ttl time.Duration) *Redis {
	return &Redis{rdb: rdb, ttl: ttl}
}

// Get implements ports.CategoryCache. A missing key is a miss, not an error.
func (r *Redis) Get(ctx context.Context) ([]string, bool, error) {
	b, err := r.rdb.Get(ctx, categoriesKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", categoriesKey, err)
	}

	var categories []string
	if err := json.Unmarshal(b, &categories); err != nil {
		return nil, false, fmt.Errorf("decoding cached categories: %w", err)
	}
	return categories, true, nil
}

// Set implements ports.CategoryCache.
func (r *Redis) Set(ctx context.Context, categories []string) error {
	b, err := json.Marshal(categories)
	if err != nil {
		return fmt.Errorf("encoding categories: %w", err)
	}
	if err := r.rdb.Set(ctx, categoriesKey, b, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", categoriesKey, err)
	}
	return nil
}

// Name implements ports.HealthChecker.
func (r *Redis) Name() string { return "cache" }

// HealthCheck implements ports.HealthChecker. The cache is optional, so an
// unreachable Redis degrades the service rather than failing it.
func (r *Redis) HealthCheck(ctx context.Context) error {
	if err := r.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: redis ping: %w", ports.ErrDegraded, err)
	}
	return nil
}
