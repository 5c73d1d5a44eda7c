package repository

import (
	"context"
	"strings"

	"cortex-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountRepository handles database operations for accounts
type AccountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create creates a new account
func (r *AccountRepository) Create(ctx context.Context, account *models.Account) error {
	return r.db.WithContext(ctx).Omit("Org").Create(account).Error
}

// GetByID retrieves an account of an org by ID
func (r *AccountRepository) GetByID(ctx context.Context, orgID, id uuid.UUID) (*models.Account, error) {
	var account models.Account
	err := r.db.WithContext(ctx).First(&account, "org_id = ? AND id = ?", orgID, id).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// GetByEmail retrieves an account of an org by email, case-insensitively
func (r *AccountRepository) GetByEmail(ctx context.Context, orgID uuid.UUID, email string) (*models.Account, error) {
	var account models.Account
	err := r.db.WithContext(ctx).
		First(&account, "org_id = ? AND email = ?", orgID, strings.ToLower(email)).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// GetByOrg retrieves the accounts of an org with pagination
func (r *AccountRepository) GetByOrg(ctx context.Context, orgID uuid.UUID, limit, offset int) ([]models.Account, int64, error) {
	var accounts []models.Account
	var total int64

	db := r.db.WithContext(ctx)
	if err := db.Model(&models.Account{}).Where("org_id = ?", orgID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Where("org_id = ?", orgID).Order("email ASC").Limit(limit).Offset(offset).Find(&accounts).Error
	if err != nil {
		return nil, 0, err
	}

	return accounts, total, nil
}

// Update updates an account
func (r *AccountRepository) Update(ctx context.Context, account *models.Account) error {
	return r.db.WithContext(ctx).Omit("Org").Save(account).Error
}

// Delete deletes an account of an org
func (r *AccountRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Account{}, "org_id = ? AND id = ?", orgID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Exists reports whether the org has an account with id
func (r *AccountRepository) Exists(ctx context.Context, orgID, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Account{}).
		Where("org_id = ? AND id = ?", orgID, id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
