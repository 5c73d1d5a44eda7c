package repository

import (
	"context"
	"encoding/json"
	"time"

	"cortex-backend/internal/database/models"
	apperrors "cortex-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InstanceRepository handles database operations for object instances
type InstanceRepository struct {
	db *gorm.DB
}

// NewInstanceRepository creates a new instance repository
func NewInstanceRepository(db *gorm.DB) *InstanceRepository {
	return &InstanceRepository{db: db}
}

// Create creates a new instance
func (r *InstanceRepository) Create(ctx context.Context, instance *models.Instance) error {
	return r.db.WithContext(ctx).Create(instance).Error
}

// GetByID retrieves an instance of an object by ID
func (r *InstanceRepository) GetByID(ctx context.Context, orgID uuid.UUID, object string, id uuid.UUID) (*models.Instance, error) {
	var instance models.Instance
	err := r.db.WithContext(ctx).
		First(&instance, "org_id = ? AND object = ? AND id = ?", orgID, object, id).Error
	if err != nil {
		return nil, err
	}
	return &instance, nil
}

// List retrieves instances of an object, newest first. A non-empty where is
// matched against the document with jsonb containment.
func (r *InstanceRepository) List(ctx context.Context, orgID uuid.UUID, object string, where json.RawMessage, limit, offset int) ([]models.Instance, int64, error) {
	var instances []models.Instance
	var total int64

	query := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&models.Instance{}).Where("org_id = ? AND object = ?", orgID, object)
		if len(where) > 0 {
			q = q.Where("properties @> ?::jsonb", string(where))
		}
		return q
	}

	if err := query().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query().Order("created_at DESC").Order("id DESC").Limit(limit).Offset(offset).Find(&instances).Error
	if err != nil {
		return nil, 0, err
	}

	return instances, total, nil
}

// UpdateWithSequence writes the document, ACL and owner of instance if nobody
// else wrote it since expected was read. On success instance.Sequence is advanced.
func (r *InstanceRepository) UpdateWithSequence(ctx context.Context, instance *models.Instance, expected int64) error {
	now := time.Now()
	result := r.db.WithContext(ctx).Model(&models.Instance{}).
		Where("org_id = ? AND id = ? AND sequence = ?", instance.OrgID, instance.ID, expected).
		Updates(map[string]interface{}{
			"properties": instance.Properties,
			"acl":        instance.ACL,
			"owner_id":   instance.OwnerID,
			"sequence":   expected + 1,
			"updated_at": now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrSequencing.WithResource(instance.Object + "." + instance.ID.String())
	}
	instance.Sequence = expected + 1
	instance.UpdatedAt = now
	return nil
}

// Delete deletes an instance of an org
func (r *InstanceRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Instance{}, "org_id = ? AND id = ?", orgID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountByObject counts the instances of an object
func (r *InstanceRepository) CountByObject(ctx context.Context, orgID uuid.UUID, object string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Instance{}).
		Where("org_id = ? AND object = ?", orgID, object).
		Count(&count).Error
	return count, err
}
