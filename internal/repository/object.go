package repository

import (
	"context"

	"cortex-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ObjectRepository handles database operations for object definitions
type ObjectRepository struct {
	db *gorm.DB
}

// NewObjectRepository creates a new object definition repository
func NewObjectRepository(db *gorm.DB) *ObjectRepository {
	return &ObjectRepository{db: db}
}

// Create creates a new object definition
func (r *ObjectRepository) Create(ctx context.Context, object *models.ObjectDefinition) error {
	return r.db.WithContext(ctx).Omit("Org").Create(object).Error
}

// GetByName retrieves an object definition of an org by name
func (r *ObjectRepository) GetByName(ctx context.Context, orgID uuid.UUID, name string) (*models.ObjectDefinition, error) {
	var object models.ObjectDefinition
	err := r.db.WithContext(ctx).First(&object, "org_id = ? AND name = ?", orgID, name).Error
	if err != nil {
		return nil, err
	}
	return &object, nil
}

// GetByOrg retrieves every object definition of an org
func (r *ObjectRepository) GetByOrg(ctx context.Context, orgID uuid.UUID) ([]models.ObjectDefinition, error) {
	var objects []models.ObjectDefinition
	err := r.db.WithContext(ctx).Where("org_id = ?", orgID).Order("name ASC").Find(&objects).Error
	if err != nil {
		return nil, err
	}
	return objects, nil
}

// Update updates an object definition
func (r *ObjectRepository) Update(ctx context.Context, object *models.ObjectDefinition) error {
	return r.db.WithContext(ctx).Omit("Org").Save(object).Error
}

// Delete deletes an object definition of an org
func (r *ObjectRepository) Delete(ctx context.Context, orgID uuid.UUID, name string) error {
	result := r.db.WithContext(ctx).Delete(&models.ObjectDefinition{}, "org_id = ? AND name = ?", orgID, name)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ReplaceAll upserts objects by (org, name) and records deployment, all or nothing
func (r *ObjectRepository) ReplaceAll(ctx context.Context, orgID uuid.UUID, objects []models.ObjectDefinition, deployment *models.Deployment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range objects {
			objects[i].OrgID = orgID
			err := tx.Omit("Org").Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "org_id"}, {Name: "name"}},
				DoUpdates: clause.AssignmentColumns([]string{"label", "properties", "default_acl", "create_acl", "triggers", "updated_at"}),
			}).Create(&objects[i]).Error
			if err != nil {
				return err
			}
		}
		if deployment == nil {
			return nil
		}
		deployment.OrgID = orgID
		return tx.Omit("Org").Create(deployment).Error
	})
}
