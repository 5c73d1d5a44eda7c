package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cortex-backend/internal/acl"
	"cortex-backend/internal/cache"
	apperrors "cortex-backend/internal/errors"
	"cortex-backend/internal/metrics"
)

// Cache limits
const (
	MaxCacheKeyLength  = 512
	MaxCacheValueBytes = 64 * 1024
	DefaultCacheList   = 100
	MaxCacheList       = 1000
	// MaxCacheTTL is ten years in seconds
	MaxCacheTTL = 315360000
)

// SetCacheRequest stores a value under a key
type SetCacheRequest struct {
	Value json.RawMessage `json:"value"`
	// TTL is in seconds. Zero never expires.
	TTL int64 `json:"ttl" validate:"min=0,max=315360000"`
}

// CacheValueResponse represents one cached value
type CacheValueResponse struct {
	Object string          `json:"object"`
	Key    string          `json:"key"`
	Value  json.RawMessage `json:"value"`
}

// CacheListResponse represents a listing of cached keys
type CacheListResponse struct {
	Object string       `json:"object"`
	Data   []cache.Item `json:"data"`
	Total  int64        `json:"total"`
}

// CacheService administers the org cache
type CacheService struct {
	store cache.Store
}

// NewCacheService creates a new cache service
func NewCacheService(store cache.Store) *CacheService {
	return &CacheService{store: store}
}

// Get reads a value
func (s *CacheService) Get(ctx context.Context, principal acl.Principal, key string) (*CacheValueResponse, error) {
	if err := s.check(principal, key); err != nil {
		return nil, err
	}
	value, err := s.store.Get(ctx, principal.OrgID, key)
	if errors.Is(err, cache.ErrMiss) {
		metrics.RecordCacheOp("get", "miss")
		return nil, apperrors.ErrCacheKeyNotFound.WithResource(key)
	}
	if err != nil {
		metrics.RecordCacheOp("get", "error")
		return nil, fmt.Errorf("failed to read cache: %w", err)
	}
	metrics.RecordCacheOp("get", "hit")
	return &CacheValueResponse{Object: "cache", Key: key, Value: value}, nil
}

// Has reports whether a live value is stored under key
func (s *CacheService) Has(ctx context.Context, principal acl.Principal, key string) (bool, error) {
	if _, err := s.Get(ctx, principal, key); err != nil {
		if apperrors.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Set stores a JSON value
func (s *CacheService) Set(ctx context.Context, principal acl.Principal, key string, req *SetCacheRequest) (*CacheValueResponse, error) {
	if err := s.check(principal, key); err != nil {
		return nil, err
	}
	if len(req.Value) == 0 {
		return nil, validationOf(apperrors.InvalidArgument("required", "a value is required").WithPath("value"))
	}
	if len(req.Value) > MaxCacheValueBytes {
		return nil, validationOf(apperrors.InvalidArgument("max",
			fmt.Sprintf("values are limited to %d bytes", MaxCacheValueBytes)).WithPath("value"))
	}
	if !json.Valid(req.Value) {
		return nil, validationOf(apperrors.InvalidArgument("json", "value must be valid JSON").WithPath("value"))
	}
	if req.TTL < 0 {
		return nil, validationOf(apperrors.InvalidArgument("min", "ttl must not be negative").WithPath("ttl"))
	}
	if req.TTL > MaxCacheTTL {
		return nil, validationOf(apperrors.InvalidArgument("max",
			fmt.Sprintf("ttl is limited to %d seconds", MaxCacheTTL)).WithPath("ttl"))
	}

	ttl := time.Duration(req.TTL) * time.Second
	if err := s.store.Set(ctx, principal.OrgID, key, req.Value, ttl); err != nil {
		metrics.RecordCacheOp("set", "error")
		return nil, fmt.Errorf("failed to write cache: %w", err)
	}
	metrics.RecordCacheOp("set", "ok")
	return &CacheValueResponse{Object: "cache", Key: key, Value: req.Value}, nil
}

// Delete removes a key
func (s *CacheService) Delete(ctx context.Context, principal acl.Principal, key string) error {
	if err := s.check(principal, key); err != nil {
		return err
	}
	removed, err := s.store.Delete(ctx, principal.OrgID, key)
	if err != nil {
		metrics.RecordCacheOp("delete", "error")
		return fmt.Errorf("failed to delete cache key: %w", err)
	}
	if !removed {
		metrics.RecordCacheOp("delete", "miss")
		return apperrors.ErrCacheKeyNotFound.WithResource(key)
	}
	metrics.RecordCacheOp("delete", "ok")
	return nil
}

// List returns up to limit live entries whose keys start with prefix, with the total count
func (s *CacheService) List(ctx context.Context, principal acl.Principal, prefix string, limit int) (*CacheListResponse, error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}
	if limit == 0 {
		limit = DefaultCacheList
	}
	if limit < 1 || limit > MaxCacheList {
		return nil, apperrors.ErrInvalidPaging.WithReason(fmt.Sprintf("limit must be between 1 and %d", MaxCacheList))
	}
	items, err := s.store.List(ctx, principal.OrgID, prefix, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list cache: %w", err)
	}
	total, err := s.store.Count(ctx, principal.OrgID, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to count cache: %w", err)
	}
	if items == nil {
		items = []cache.Item{}
	}
	return &CacheListResponse{Object: "list", Data: items, Total: total}, nil
}

// Count returns the number of live entries whose keys start with prefix
func (s *CacheService) Count(ctx context.Context, principal acl.Principal, prefix string) (int64, error) {
	if err := requireAdmin(principal); err != nil {
		return 0, err
	}
	total, err := s.store.Count(ctx, principal.OrgID, prefix)
	if err != nil {
		return 0, fmt.Errorf("failed to count cache: %w", err)
	}
	return total, nil
}

// Clear removes every entry whose key starts with prefix
func (s *CacheService) Clear(ctx context.Context, principal acl.Principal, prefix string) (int64, error) {
	if err := requireAdmin(principal); err != nil {
		return 0, err
	}
	cleared, err := s.store.Clear(ctx, principal.OrgID, prefix)
	if err != nil {
		metrics.RecordCacheOp("clear", "error")
		return 0, fmt.Errorf("failed to clear cache: %w", err)
	}
	metrics.RecordCacheOp("clear", "ok")
	return cleared, nil
}

func (s *CacheService) check(principal acl.Principal, key string) error {
	if err := requireAdmin(principal); err != nil {
		return err
	}
	if key == "" || len(key) > MaxCacheKeyLength {
		return validationOf(apperrors.InvalidArgument("key",
			fmt.Sprintf("keys must be between 1 and %d characters", MaxCacheKeyLength)).WithPath("key"))
	}
	return nil
}
