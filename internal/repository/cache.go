package repository

import (
	"context"
	"time"

	"cortex-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CacheRepository handles database operations for cache entries
type CacheRepository struct {
	db *gorm.DB
}

// NewCacheRepository creates a new cache repository
func NewCacheRepository(db *gorm.DB) *CacheRepository {
	return &CacheRepository{db: db}
}

func (r *CacheRepository) live(ctx context.Context, orgID uuid.UUID, now time.Time) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.CacheEntry{}).
		Where("org_id = ?", orgID).
		Where("expires_at IS NULL OR expires_at > ?", now)
}

// Get retrieves an unexpired entry
func (r *CacheRepository) Get(ctx context.Context, orgID uuid.UUID, key string, now time.Time) (*models.CacheEntry, error) {
	var entry models.CacheEntry
	err := r.live(ctx, orgID, now).Where("key = ?", key).First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Set inserts or replaces an entry
func (r *CacheRepository) Set(ctx context.Context, entry *models.CacheEntry) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "org_id"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "expires_at", "updated_at"}),
	}).Create(entry).Error
}

// Delete removes an unexpired entry and reports whether it existed. Expired
// rows are left to PurgeExpired.
func (r *CacheRepository) Delete(ctx context.Context, orgID uuid.UUID, key string, now time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("org_id = ? AND key = ?", orgID, key).
		Where("expires_at IS NULL OR expires_at > ?", now).
		Delete(&models.CacheEntry{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// List retrieves unexpired entries whose keys start with prefix, in key order
func (r *CacheRepository) List(ctx context.Context, orgID uuid.UUID, prefix string, limit int, now time.Time) ([]models.CacheEntry, error) {
	var entries []models.CacheEntry
	q := r.live(ctx, orgID, now)
	if prefix != "" {
		q = q.Where("key LIKE ?", escapeLike(prefix)+"%")
	}
	if err := q.Order("key ASC").Limit(limit).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Count counts unexpired entries whose keys start with prefix
func (r *CacheRepository) Count(ctx context.Context, orgID uuid.UUID, prefix string, now time.Time) (int64, error) {
	var count int64
	q := r.live(ctx, orgID, now)
	if prefix != "" {
		q = q.Where("key LIKE ?", escapeLike(prefix)+"%")
	}
	err := q.Count(&count).Error
	return count, err
}

// Clear removes every entry whose key starts with prefix
func (r *CacheRepository) Clear(ctx context.Context, orgID uuid.UUID, prefix string) (int64, error) {
	q := r.db.WithContext(ctx).Where("org_id = ?", orgID)
	if prefix != "" {
		q = q.Where("key LIKE ?", escapeLike(prefix)+"%")
	}
	result := q.Delete(&models.CacheEntry{})
	return result.RowsAffected, result.Error
}

// PurgeExpired removes expired entries of every org
func (r *CacheRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("expires_at IS NOT NULL AND expires_at <= ?", now).Delete(&models.CacheEntry{})
	return result.RowsAffected, result.Error
}
