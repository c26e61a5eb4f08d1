// Package cache implements the CategoryCache port.
//
// Two backends are available, selected by cache.backend:
//
//	cache.NewMemory(ttl)              // per-process, lost on restart
//	cache.NewRedis(client, ttl)       // shared between replicas
package cache

import (
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/todolist-service/internal/platform/config"
	"github.com/jsamuelsen11/todolist-service/internal/ports"
)

// categoriesKey is the single cache entry holding the category list.
const categoriesKey = "todolist:categories"

// New builds the backend named in cfg. It returns nil when caching is
// disabled, which the service treats as "no cache". The second return value
// is the Redis client to close on shutdown, or nil.
func New(cfg config.CacheConfig, logger *slog.Logger) (ports.CategoryCache, *redis.Client) {
	if !cfg.Enabled {
		logger.Info("category cache disabled")
		return nil, nil
	}

	if cfg.Backend == config.CacheRedis {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		logger.Info("category cache using redis", slog.String("addr", cfg.Redis.Addr))
		return NewRedis(client, cfg.TTL), client
	}

	logger.Info("category cache using memory", slog.Duration("ttl", cfg.TTL))
	return NewMemory(cfg.TTL), nil
}
