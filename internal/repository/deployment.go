package repository

import (
	"context"

	"cortex-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeploymentRepository handles database operations for deployment history
type DeploymentRepository struct {
	db *gorm.DB
}

// NewDeploymentRepository creates a new deployment repository
func NewDeploymentRepository(db *gorm.DB) *DeploymentRepository {
	return &DeploymentRepository{db: db}
}

// Create records a deployment
func (r *DeploymentRepository) Create(ctx context.Context, deployment *models.Deployment) error {
	return r.db.WithContext(ctx).Omit("Org").Create(deployment).Error
}

// Latest retrieves the most recent deployment of an org
func (r *DeploymentRepository) Latest(ctx context.Context, orgID uuid.UUID) (*models.Deployment, error) {
	var deployment models.Deployment
	err := r.db.WithContext(ctx).
		Where("org_id = ?", orgID).
		Order("created_at DESC").
		First(&deployment).Error
	if err != nil {
		return nil, err
	}
	return &deployment, nil
}

// List retrieves the deployment history of an org, newest first
func (r *DeploymentRepository) List(ctx context.Context, orgID uuid.UUID, limit, offset int) ([]models.Deployment, int64, error) {
	var deployments []models.Deployment
	var total int64

	db := r.db.WithContext(ctx)
	if err := db.Model(&models.Deployment{}).Where("org_id = ?", orgID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Where("org_id = ?", orgID).Order("created_at DESC").Limit(limit).Offset(offset).Find(&deployments).Error
	if err != nil {
		return nil, 0, err
	}

	return deployments, total, nil
}
