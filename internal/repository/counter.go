package repository

import (
	"context"

	"cortex-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CounterRepository handles database operations for counters
type CounterRepository struct {
	db *gorm.DB
}

// NewCounterRepository creates a new counter repository
func NewCounterRepository(db *gorm.DB) *CounterRepository {
	return &CounterRepository{db: db}
}

// Next atomically adds by to the named counter, creating it at by, and
// returns the new value
func (r *CounterRepository) Next(ctx context.Context, orgID uuid.UUID, name string, by int64) (int64, error) {
	var value int64
	err := r.db.WithContext(ctx).Raw(
		`INSERT INTO counters (org_id, name, value, updated_at) VALUES (?, ?, ?, NOW())
		ON CONFLICT (org_id, name) DO UPDATE SET value = counters.value + EXCLUDED.value, updated_at = NOW()
		RETURNING value`,
		orgID, name, by,
	).Scan(&value).Error
	if err != nil {
		return 0, err
	}
	return value, nil
}

// Get retrieves a counter by name
func (r *CounterRepository) Get(ctx context.Context, orgID uuid.UUID, name string) (*models.Counter, error) {
	var counter models.Counter
	err := r.db.WithContext(ctx).First(&counter, "org_id = ? AND name = ?", orgID, name).Error
	if err != nil {
		return nil, err
	}
	return &counter, nil
}

// Reset removes a counter so that it restarts from zero
func (r *CounterRepository) Reset(ctx context.Context, orgID uuid.UUID, name string) error {
	result := r.db.WithContext(ctx).Delete(&models.Counter{}, "org_id = ? AND name = ?", orgID, name)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// List retrieves the counters of an org whose names start with prefix
func (r *CounterRepository) List(ctx context.Context, orgID uuid.UUID, prefix string, limit, offset int) ([]models.Counter, int64, error) {
	var counters []models.Counter
	var total int64

	query := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&models.Counter{}).Where("org_id = ?", orgID)
		if prefix != "" {
			q = q.Where("name LIKE ?", escapeLike(prefix)+"%")
		}
		return q
	}

	if err := query().Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query().Order("name ASC").Limit(limit).Offset(offset).Find(&counters).Error
	if err != nil {
		return nil, 0, err
	}
	return counters, total, nil
}
