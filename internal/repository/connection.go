package repository

import (
	"context"

	"cortex-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConnectionRepository handles database operations for connections
type ConnectionRepository struct {
	db *gorm.DB
}

// NewConnectionRepository creates a new connection repository
func NewConnectionRepository(db *gorm.DB) *ConnectionRepository {
	return &ConnectionRepository{db: db}
}

// Create creates a new connection
func (r *ConnectionRepository) Create(ctx context.Context, connection *models.Connection) error {
	return r.db.WithContext(ctx).Create(connection).Error
}

// GetByID retrieves a connection of an org by ID
func (r *ConnectionRepository) GetByID(ctx context.Context, orgID, id uuid.UUID) (*models.Connection, error) {
	var connection models.Connection
	err := r.db.WithContext(ctx).First(&connection, "org_id = ? AND id = ?", orgID, id).Error
	if err != nil {
		return nil, err
	}
	return &connection, nil
}

// FindOpen retrieves the pending or active connection of target to a context, if any
func (r *ConnectionRepository) FindOpen(ctx context.Context, orgID, contextID, targetID uuid.UUID) (*models.Connection, error) {
	var connection models.Connection
	err := r.db.WithContext(ctx).
		Where("org_id = ? AND context_id = ? AND target_id = ?", orgID, contextID, targetID).
		Where("state IN ?", []models.ConnectionState{models.ConnectionStatePending, models.ConnectionStateActive}).
		First(&connection).Error
	if err != nil {
		return nil, err
	}
	return &connection, nil
}

// ListByContext retrieves every connection to a context
func (r *ConnectionRepository) ListByContext(ctx context.Context, orgID, contextID uuid.UUID) ([]models.Connection, error) {
	var connections []models.Connection
	err := r.db.WithContext(ctx).
		Where("org_id = ? AND context_id = ?", orgID, contextID).
		Order("created_at ASC").
		Find(&connections).Error
	if err != nil {
		return nil, err
	}
	return connections, nil
}

// ListByTarget retrieves the connections offered to a target account with pagination
func (r *ConnectionRepository) ListByTarget(ctx context.Context, orgID, targetID uuid.UUID, limit, offset int) ([]models.Connection, int64, error) {
	var connections []models.Connection
	var total int64

	db := r.db.WithContext(ctx)
	if err := db.Model(&models.Connection{}).Where("org_id = ? AND target_id = ?", orgID, targetID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Where("org_id = ? AND target_id = ?", orgID, targetID).
		Order("created_at DESC").Limit(limit).Offset(offset).
		Find(&connections).Error
	if err != nil {
		return nil, 0, err
	}

	return connections, total, nil
}

// ListActiveForTarget retrieves the active connections of target to any of contextIDs
func (r *ConnectionRepository) ListActiveForTarget(ctx context.Context, orgID, targetID uuid.UUID, contextIDs []uuid.UUID) ([]models.Connection, error) {
	var connections []models.Connection
	if len(contextIDs) == 0 {
		return connections, nil
	}
	err := r.db.WithContext(ctx).
		Where("org_id = ? AND target_id = ? AND state = ?", orgID, targetID, models.ConnectionStateActive).
		Where("context_id IN ?", contextIDs).
		Find(&connections).Error
	if err != nil {
		return nil, err
	}
	return connections, nil
}

// Update updates a connection
func (r *ConnectionRepository) Update(ctx context.Context, connection *models.Connection) error {
	return r.db.WithContext(ctx).Save(connection).Error
}

// Delete deletes a connection of an org
func (r *ConnectionRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Connection{}, "org_id = ? AND id = ?", orgID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteByContext removes every connection to a context
func (r *ConnectionRepository) DeleteByContext(ctx context.Context, orgID, contextID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Connection{}, "org_id = ? AND context_id = ?", orgID, contextID).Error
}
