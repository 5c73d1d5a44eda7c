package repository

import (
	"context"
	"strings"

	"cortex-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrgRepository handles database operations for orgs
type OrgRepository struct {
	db *gorm.DB
}

// NewOrgRepository creates a new org repository
func NewOrgRepository(db *gorm.DB) *OrgRepository {
	return &OrgRepository{db: db}
}

// Create creates a new org
func (r *OrgRepository) Create(ctx context.Context, org *models.Org) error {
	return r.db.WithContext(ctx).Create(org).Error
}

// GetByID retrieves an org by ID
func (r *OrgRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Org, error) {
	var org models.Org
	err := r.db.WithContext(ctx).First(&org, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// GetByCode retrieves an org by its code
func (r *OrgRepository) GetByCode(ctx context.Context, code string) (*models.Org, error) {
	var org models.Org
	err := r.db.WithContext(ctx).First(&org, "code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// GetAll retrieves all orgs with pagination
func (r *OrgRepository) GetAll(ctx context.Context, limit, offset int) ([]models.Org, int64, error) {
	var orgs []models.Org
	var total int64

	db := r.db.WithContext(ctx)
	if err := db.Model(&models.Org{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Order("code ASC").Limit(limit).Offset(offset).Find(&orgs).Error
	if err != nil {
		return nil, 0, err
	}

	return orgs, total, nil
}

// Update updates an org
func (r *OrgRepository) Update(ctx context.Context, org *models.Org) error {
	return r.db.WithContext(ctx).Save(org).Error
}

// Delete deletes an org. Org-scoped rows cascade.
func (r *OrgRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Org{}, "id = ?", id).Error
}

// Provision creates an org and its first account atomically
func (r *OrgRepository) Provision(ctx context.Context, org *models.Org, admin *models.Account) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(org).Error; err != nil {
			return err
		}
		admin.OrgID = org.ID
		return tx.Create(admin).Error
	})
}

// escapeLike escapes LIKE wildcards so prefix matches literally
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
