package service

import (
	"context"

	"cortex-backend/internal/acl"
	"cortex-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// OrgServiceInterface defines the interface for org service
type OrgServiceInterface interface {
	Provision(ctx context.Context, req *ProvisionRequest) (*ProvisionResponse, error)
	Resolve(ctx context.Context, code string) (*models.Org, error)
	GetByCode(ctx context.Context, code string) (*OrgResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*OrgResponse, error)
	List(ctx context.Context, page, pageSize int) (*OrgListResponse, error)
	Update(ctx context.Context, principal acl.Principal, id uuid.UUID, req *UpdateOrgRequest) (*OrgResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// AccountServiceInterface defines the interface for account service
type AccountServiceInterface interface {
	Create(ctx context.Context, principal acl.Principal, req *CreateAccountRequest) (*AccountResponse, error)
	Get(ctx context.Context, principal acl.Principal, id uuid.UUID) (*AccountResponse, error)
	List(ctx context.Context, principal acl.Principal, page, pageSize int) (*AccountListResponse, error)
	Update(ctx context.Context, principal acl.Principal, id uuid.UUID, req *UpdateAccountRequest) (*AccountResponse, error)
	Delete(ctx context.Context, principal acl.Principal, id uuid.UUID) error
	Authenticate(ctx context.Context, org *models.Org, req *LoginRequest) (*LoginResponse, error)
}

// ObjectServiceInterface defines the interface for object definition service
type ObjectServiceInterface interface {
	Create(ctx context.Context, principal acl.Principal, req *ObjectRequest) (*ObjectResponse, error)
	Get(ctx context.Context, principal acl.Principal, name string) (*ObjectResponse, error)
	List(ctx context.Context, principal acl.Principal) ([]ObjectResponse, error)
	Update(ctx context.Context, principal acl.Principal, name string, req *ObjectRequest) (*ObjectResponse, error)
	Delete(ctx context.Context, principal acl.Principal, name string) error
}

// InstanceServiceInterface defines the interface for instance service
type InstanceServiceInterface interface {
	Create(ctx context.Context, principal acl.Principal, objectName string, input map[string]interface{}) (InstanceResponse, error)
	Get(ctx context.Context, principal acl.Principal, objectName string, id uuid.UUID) (InstanceResponse, error)
	List(ctx context.Context, principal acl.Principal, objectName string, req ListInstancesRequest) (*InstanceListResponse, error)
	Update(ctx context.Context, principal acl.Principal, objectName string, id uuid.UUID, patch map[string]interface{}) (InstanceResponse, error)
	Delete(ctx context.Context, principal acl.Principal, objectName string, id uuid.UUID) error
}

// ConnectionServiceInterface defines the interface for connection service
type ConnectionServiceInterface interface {
	Create(ctx context.Context, principal acl.Principal, objectName string, instanceID uuid.UUID, req *CreateConnectionRequest) (*ConnectionResponse, error)
	ListForContext(ctx context.Context, principal acl.Principal, objectName string, instanceID uuid.UUID) ([]ConnectionResponse, error)
	ListMine(ctx context.Context, principal acl.Principal, page Page) (*ConnectionListResponse, error)
	Accept(ctx context.Context, principal acl.Principal, id uuid.UUID) (*ConnectionResponse, error)
	Reject(ctx context.Context, principal acl.Principal, id uuid.UUID) error
	Delete(ctx context.Context, principal acl.Principal, id uuid.UUID) error
}

// CounterServiceInterface defines the interface for counter service
type CounterServiceInterface interface {
	Next(ctx context.Context, principal acl.Principal, name string, by int64) (*CounterResponse, error)
	Get(ctx context.Context, principal acl.Principal, name string) (*CounterResponse, error)
	Reset(ctx context.Context, principal acl.Principal, name string) error
	List(ctx context.Context, principal acl.Principal, prefix string, page Page) (*CounterListResponse, error)
}

// CacheServiceInterface defines the interface for cache administration
type CacheServiceInterface interface {
	Get(ctx context.Context, principal acl.Principal, key string) (*CacheValueResponse, error)
	Has(ctx context.Context, principal acl.Principal, key string) (bool, error)
	Set(ctx context.Context, principal acl.Principal, key string, req *SetCacheRequest) (*CacheValueResponse, error)
	Delete(ctx context.Context, principal acl.Principal, key string) error
	List(ctx context.Context, principal acl.Principal, prefix string, limit int) (*CacheListResponse, error)
	Count(ctx context.Context, principal acl.Principal, prefix string) (int64, error)
	Clear(ctx context.Context, principal acl.Principal, prefix string) (int64, error)
}

// DeploymentServiceInterface defines the interface for deployment service
type DeploymentServiceInterface interface {
	Export(ctx context.Context, principal acl.Principal, version string) (*Bundle, error)
	Import(ctx context.Context, principal acl.Principal, req ImportRequest) (*DeploymentResponse, error)
	History(ctx context.Context, principal acl.Principal, page Page) (*DeploymentListResponse, error)
}

// Compile-time interface checks
var (
	_ OrgServiceInterface        = (*OrgService)(nil)
	_ AccountServiceInterface    = (*AccountService)(nil)
	_ ObjectServiceInterface     = (*ObjectService)(nil)
	_ InstanceServiceInterface   = (*InstanceService)(nil)
	_ ConnectionServiceInterface = (*ConnectionService)(nil)
	_ CounterServiceInterface    = (*CounterService)(nil)
	_ CacheServiceInterface      = (*CacheService)(nil)
	_ DeploymentServiceInterface = (*DeploymentService)(nil)
	_ ObjectLoader               = (*ObjectService)(nil)
	_ InstanceAccessor           = (*InstanceService)(nil)
)
