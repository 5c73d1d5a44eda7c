package cache

import (
	"context"
	"fmt"
	"time"

	"cortex-backend/internal/config"
	"cortex-backend/internal/repository"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// Open builds the store selected by cfg.CacheDriver. A redis driver that cannot
// be reached falls back to the database store.
func Open(cfg *config.Config, repo repository.CacheRepositoryInterface) (Store, error) {
	switch cfg.CacheDriver {
	case config.CacheDriverDatabase, "":
		return NewDatabaseStore(repo), nil
	case config.CacheDriverMemory:
		return NewMemoryStore(), nil
	case config.CacheDriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			logrus.WithError(err).WithField("addr", cfg.RedisAddr).Warn("Redis unavailable, falling back to database cache")
			return NewDatabaseStore(repo), nil
		}
		return NewRedisStore(client), nil
	}
	return nil, fmt.Errorf("unknown cache driver %q", cfg.CacheDriver)
}
