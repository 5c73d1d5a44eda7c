package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cortex-backend/internal/database/models"
	"cortex-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DatabaseStore keeps entries in the cache_entries table
type DatabaseStore struct {
	repo repository.CacheRepositoryInterface
	now  func() time.Time
}

// NewDatabaseStore creates a store over the cache repository
func NewDatabaseStore(repo repository.CacheRepositoryInterface) *DatabaseStore {
	return &DatabaseStore{repo: repo, now: time.Now}
}

func (s *DatabaseStore) Get(ctx context.Context, orgID uuid.UUID, key string) (json.RawMessage, error) {
	entry, err := s.repo.Get(ctx, orgID, key, s.now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMiss
		}
		return nil, fmt.Errorf("failed to read cache entry: %w", err)
	}
	return entry.Value, nil
}

func (s *DatabaseStore) Set(ctx context.Context, orgID uuid.UUID, key string, value json.RawMessage, ttl time.Duration) error {
	entry := &models.CacheEntry{
		OrgID:     orgID,
		Key:       key,
		Value:     value,
		ExpiresAt: expiry(s.now(), ttl),
	}
	if err := s.repo.Set(ctx, entry); err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	return nil
}

func (s *DatabaseStore) Delete(ctx context.Context, orgID uuid.UUID, key string) (bool, error) {
	return s.repo.Delete(ctx, orgID, key, s.now())
}

func (s *DatabaseStore) List(ctx context.Context, orgID uuid.UUID, prefix string, limit int) ([]Item, error) {
	entries, err := s.repo.List(ctx, orgID, prefix, limit, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to list cache entries: %w", err)
	}
	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, Item{Key: e.Key, Value: e.Value, ExpiresAt: e.ExpiresAt})
	}
	return items, nil
}

func (s *DatabaseStore) Count(ctx context.Context, orgID uuid.UUID, prefix string) (int64, error) {
	return s.repo.Count(ctx, orgID, prefix, s.now())
}

func (s *DatabaseStore) Clear(ctx context.Context, orgID uuid.UUID, prefix string) (int64, error) {
	return s.repo.Clear(ctx, orgID, prefix)
}

func (s *DatabaseStore) Sweep(ctx context.Context) (int64, error) {
	return s.repo.PurgeExpired(ctx, s.now())
}
