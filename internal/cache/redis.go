package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	redisKeyPrefix = "cache:"
	scanBatch      = 500
)

// RedisStore keeps entries in Redis under cache:<org>:<key>. Expiry is native.
type RedisStore struct {
	client redis.UniversalClient
}

// NewRedisStore creates a store over client
func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client}
}

func redisKey(orgID uuid.UUID, key string) string {
	return redisKeyPrefix + orgID.String() + ":" + key
}

// redisPattern builds a SCAN MATCH pattern that matches prefix literally
func redisPattern(orgID uuid.UUID, prefix string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`, `]`, `\]`).Replace(prefix)
	return redisKeyPrefix + orgID.String() + ":" + escaped + "*"
}

func (s *RedisStore) Get(ctx context.Context, orgID uuid.UUID, key string) (json.RawMessage, error) {
	value, err := s.client.Get(ctx, redisKey(orgID, key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrMiss
		}
		return nil, fmt.Errorf("failed to read cache entry: %w", err)
	}
	return value, nil
}

func (s *RedisStore) Set(ctx context.Context, orgID uuid.UUID, key string, value json.RawMessage, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	if err := s.client.Set(ctx, redisKey(orgID, key), []byte(value), ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, orgID uuid.UUID, key string) (bool, error) {
	n, err := s.client.Del(ctx, redisKey(orgID, key)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to delete cache entry: %w", err)
	}
	return n > 0, nil
}

func (s *RedisStore) scan(ctx context.Context, orgID uuid.UUID, prefix string) ([]string, error) {
	var keys []string
	iter := s.client.Scan(ctx, 0, redisPattern(orgID, prefix), scanBatch).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan cache keys: %w", err)
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *RedisStore) List(ctx context.Context, orgID uuid.UUID, prefix string, limit int) ([]Item, error) {
	keys, err := s.scan(ctx, orgID, prefix)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(keys) > limit {
		keys = keys[:limit]
	}
	if len(keys) == 0 {
		return []Item{}, nil
	}

	pipe := s.client.Pipeline()
	gets := make([]*redis.StringCmd, len(keys))
	ttls := make([]*redis.DurationCmd, len(keys))
	for i, k := range keys {
		gets[i] = pipe.Get(ctx, k)
		ttls[i] = pipe.PTTL(ctx, k)
	}
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to read cache entries: %w", err)
	}

	now := time.Now()
	strip := redisKeyPrefix + orgID.String() + ":"
	items := make([]Item, 0, len(keys))
	for i, k := range keys {
		value, err := gets[i].Bytes()
		if err != nil {
			// expired between SCAN and GET
			continue
		}
		item := Item{Key: strings.TrimPrefix(k, strip), Value: value}
		if ttl := ttls[i].Val(); ttl > 0 {
			item.ExpiresAt = expiry(now, ttl)
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *RedisStore) Count(ctx context.Context, orgID uuid.UUID, prefix string) (int64, error) {
	keys, err := s.scan(ctx, orgID, prefix)
	if err != nil {
		return 0, err
	}
	return int64(len(keys)), nil
}

func (s *RedisStore) Clear(ctx context.Context, orgID uuid.UUID, prefix string) (int64, error) {
	keys, err := s.scan(ctx, orgID, prefix)
	if err != nil || len(keys) == 0 {
		return 0, err
	}
	var removed int64
	for start := 0; start < len(keys); start += scanBatch {
		end := start + scanBatch
		if end > len(keys) {
			end = len(keys)
		}
		n, err := s.client.Del(ctx, keys[start:end]...).Result()
		if err != nil {
			return removed, fmt.Errorf("failed to clear cache entries: %w", err)
		}
		removed += n
	}
	return removed, nil
}

// Sweep is a no-op: Redis expires keys itself
func (s *RedisStore) Sweep(context.Context) (int64, error) {
	return 0, nil
}
