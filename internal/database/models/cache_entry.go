package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// CacheEntry is one key of the database cache store
type CacheEntry struct {
	OrgID     uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Key       string          `gorm:"primaryKey;size:512"`
	Value     json.RawMessage `gorm:"type:jsonb;not null"`
	ExpiresAt *time.Time      `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for CacheEntry
func (CacheEntry) TableName() string {
	return "cache_entries"
}

// Expired reports whether the entry is past its expiry at now
func (c *CacheEntry) Expired(now time.Time) bool {
	return c.ExpiresAt != nil && !c.ExpiresAt.After(now)
}
