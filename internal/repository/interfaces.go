package repository

import (
	"context"
	"encoding/json"
	"time"

	"cortex-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrgRepositoryInterface defines the interface for org repository operations
type OrgRepositoryInterface interface {
	Create(ctx context.Context, org *models.Org) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Org, error)
	GetByCode(ctx context.Context, code string) (*models.Org, error)
	GetAll(ctx context.Context, limit, offset int) ([]models.Org, int64, error)
	Update(ctx context.Context, org *models.Org) error
	Delete(ctx context.Context, id uuid.UUID) error
	// Provision creates an org together with its first account in one transaction
	Provision(ctx context.Context, org *models.Org, admin *models.Account) error
}

// AccountRepositoryInterface defines the interface for account repository operations
type AccountRepositoryInterface interface {
	Create(ctx context.Context, account *models.Account) error
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*models.Account, error)
	GetByEmail(ctx context.Context, orgID uuid.UUID, email string) (*models.Account, error)
	GetByOrg(ctx context.Context, orgID uuid.UUID, limit, offset int) ([]models.Account, int64, error)
	Update(ctx context.Context, account *models.Account) error
	Delete(ctx context.Context, orgID, id uuid.UUID) error
	Exists(ctx context.Context, orgID, id uuid.UUID) (bool, error)
}

// ObjectRepositoryInterface defines the interface for object definition repository operations
type ObjectRepositoryInterface interface {
	Create(ctx context.Context, object *models.ObjectDefinition) error
	GetByName(ctx context.Context, orgID uuid.UUID, name string) (*models.ObjectDefinition, error)
	GetByOrg(ctx context.Context, orgID uuid.UUID) ([]models.ObjectDefinition, error)
	Update(ctx context.Context, object *models.ObjectDefinition) error
	Delete(ctx context.Context, orgID uuid.UUID, name string) error
	// ReplaceAll upserts objects by name and records deployment in one transaction
	ReplaceAll(ctx context.Context, orgID uuid.UUID, objects []models.ObjectDefinition, deployment *models.Deployment) error
}

// InstanceRepositoryInterface defines the interface for instance repository operations
type InstanceRepositoryInterface interface {
	Create(ctx context.Context, instance *models.Instance) error
	GetByID(ctx context.Context, orgID uuid.UUID, object string, id uuid.UUID) (*models.Instance, error)
	List(ctx context.Context, orgID uuid.UUID, object string, where json.RawMessage, limit, offset int) ([]models.Instance, int64, error)
	// UpdateWithSequence writes instance only if its stored sequence still equals expected
	UpdateWithSequence(ctx context.Context, instance *models.Instance, expected int64) error
	Delete(ctx context.Context, orgID, id uuid.UUID) error
	CountByObject(ctx context.Context, orgID uuid.UUID, object string) (int64, error)
}

// ConnectionRepositoryInterface defines the interface for connection repository operations
type ConnectionRepositoryInterface interface {
	Create(ctx context.Context, connection *models.Connection) error
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*models.Connection, error)
	FindOpen(ctx context.Context, orgID, contextID, targetID uuid.UUID) (*models.Connection, error)
	ListByContext(ctx context.Context, orgID, contextID uuid.UUID) ([]models.Connection, error)
	ListByTarget(ctx context.Context, orgID, targetID uuid.UUID, limit, offset int) ([]models.Connection, int64, error)
	ListActiveForTarget(ctx context.Context, orgID, targetID uuid.UUID, contextIDs []uuid.UUID) ([]models.Connection, error)
	Update(ctx context.Context, connection *models.Connection) error
	Delete(ctx context.Context, orgID, id uuid.UUID) error
	DeleteByContext(ctx context.Context, orgID, contextID uuid.UUID) error
}

// CounterRepositoryInterface defines the interface for counter repository operations
type CounterRepositoryInterface interface {
	Next(ctx context.Context, orgID uuid.UUID, name string, by int64) (int64, error)
	Get(ctx context.Context, orgID uuid.UUID, name string) (*models.Counter, error)
	Reset(ctx context.Context, orgID uuid.UUID, name string) error
	List(ctx context.Context, orgID uuid.UUID, prefix string, limit, offset int) ([]models.Counter, int64, error)
}

// CacheRepositoryInterface defines the interface for the database cache table
type CacheRepositoryInterface interface {
	Get(ctx context.Context, orgID uuid.UUID, key string, now time.Time) (*models.CacheEntry, error)
	Set(ctx context.Context, entry *models.CacheEntry) error
	Delete(ctx context.Context, orgID uuid.UUID, key string, now time.Time) (bool, error)
	List(ctx context.Context, orgID uuid.UUID, prefix string, limit int, now time.Time) ([]models.CacheEntry, error)
	Count(ctx context.Context, orgID uuid.UUID, prefix string, now time.Time) (int64, error)
	Clear(ctx context.Context, orgID uuid.UUID, prefix string) (int64, error)
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}

// DeploymentRepositoryInterface defines the interface for deployment history operations
type DeploymentRepositoryInterface interface {
	Create(ctx context.Context, deployment *models.Deployment) error
	Latest(ctx context.Context, orgID uuid.UUID) (*models.Deployment, error)
	List(ctx context.Context, orgID uuid.UUID, limit, offset int) ([]models.Deployment, int64, error)
}

// Compile-time interface checks
var (
	_ OrgRepositoryInterface        = (*OrgRepository)(nil)
	_ AccountRepositoryInterface    = (*AccountRepository)(nil)
	_ ObjectRepositoryInterface     = (*ObjectRepository)(nil)
	_ InstanceRepositoryInterface   = (*InstanceRepository)(nil)
	_ ConnectionRepositoryInterface = (*ConnectionRepository)(nil)
	_ CounterRepositoryInterface    = (*CounterRepository)(nil)
	_ CacheRepositoryInterface      = (*CacheRepository)(nil)
	_ DeploymentRepositoryInterface = (*DeploymentRepository)(nil)
)
