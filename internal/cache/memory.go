package cache

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryEntry struct {
	value     json.RawMessage
	expiresAt *time.Time
}

func (e memoryEntry) live(now time.Time) bool {
	return e.expiresAt == nil || e.expiresAt.After(now)
}

// MemoryStore keeps entries in process. Used for development and tests.
type MemoryStore struct {
	mu   sync.RWMutex
	orgs map[uuid.UUID]map[string]memoryEntry
	now  func() time.Time
}

// NewMemoryStore creates an empty in-process store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		orgs: make(map[uuid.UUID]map[string]memoryEntry),
		now:  time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, orgID uuid.UUID, key string) (json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.orgs[orgID][key]
	if !ok || !e.live(s.now()) {
		return nil, ErrMiss
	}
	return append(json.RawMessage(nil), e.value...), nil
}

func (s *MemoryStore) Set(_ context.Context, orgID uuid.UUID, key string, value json.RawMessage, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, ok := s.orgs[orgID]
	if !ok {
		entries = make(map[string]memoryEntry)
		s.orgs[orgID] = entries
	}
	entries[key] = memoryEntry{
		value:     append(json.RawMessage(nil), value...),
		expiresAt: expiry(s.now(), ttl),
	}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, orgID uuid.UUID, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.orgs[orgID][key]
	if !ok {
		return false, nil
	}
	delete(s.orgs[orgID], key)
	return e.live(s.now()), nil
}

// matching returns live keys with prefix in sorted order. Caller holds the lock.
func (s *MemoryStore) matching(orgID uuid.UUID, prefix string) []string {
	now := s.now()
	var keys []string
	for k, e := range s.orgs[orgID] {
		if strings.HasPrefix(k, prefix) && e.live(now) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

func (s *MemoryStore) List(_ context.Context, orgID uuid.UUID, prefix string, limit int) ([]Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := s.matching(orgID, prefix)
	if limit > 0 && len(keys) > limit {
		keys = keys[:limit]
	}
	items := make([]Item, 0, len(keys))
	for _, k := range keys {
		e := s.orgs[orgID][k]
		items = append(items, Item{Key: k, Value: e.value, ExpiresAt: e.expiresAt})
	}
	return items, nil
}

func (s *MemoryStore) Count(_ context.Context, orgID uuid.UUID, prefix string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.matching(orgID, prefix))), nil
}

func (s *MemoryStore) Clear(_ context.Context, orgID uuid.UUID, prefix string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for k := range s.orgs[orgID] {
		if strings.HasPrefix(k, prefix) {
			delete(s.orgs[orgID], k)
			n++
		}
	}
	return n, nil
}

func (s *MemoryStore) Sweep(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	var n int64
	for orgID, entries := range s.orgs {
		for k, e := range entries {
			if !e.live(now) {
				delete(entries, k)
				n++
			}
		}
		if len(entries) == 0 {
			delete(s.orgs, orgID)
		}
	}
	return n, nil
}
