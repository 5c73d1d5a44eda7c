// Package cache holds the org-scoped key/value stores behind the cache API.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrMiss is returned by Get when the key is absent or expired
var ErrMiss = errors.New("cache: key not found")

// Item is one listed entry
type Item struct {
	Key       string          `json:"key"`
	Value     json.RawMessage `json:"value"`
	ExpiresAt *time.Time      `json:"expires,omitempty"`
}

// Store is implemented by every cache backend. A zero ttl never expires.
type Store interface {
	Get(ctx context.Context, orgID uuid.UUID, key string) (json.RawMessage, error)
	Set(ctx context.Context, orgID uuid.UUID, key string, value json.RawMessage, ttl time.Duration) error
	Delete(ctx context.Context, orgID uuid.UUID, key string) (bool, error)
	List(ctx context.Context, orgID uuid.UUID, prefix string, limit int) ([]Item, error)
	Count(ctx context.Context, orgID uuid.UUID, prefix string) (int64, error)
	Clear(ctx context.Context, orgID uuid.UUID, prefix string) (int64, error)
	// Sweep drops expired entries of every org and reports how many went
	Sweep(ctx context.Context) (int64, error)
}

func expiry(now time.Time, ttl time.Duration) *time.Time {
	if ttl <= 0 {
		return nil
	}
	t := now.Add(ttl).UTC()
	return &t
}
