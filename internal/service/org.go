package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"cortex-backend/internal/acl"
	"cortex-backend/internal/database/models"
	apperrors "cortex-backend/internal/errors"
	"cortex-backend/internal/logger"
	"cortex-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	orgCodePattern  = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{2,39}$`)
	roleNamePattern = regexp.MustCompile(`^[a-z][a-zA-Z0-9_-]{0,39}$`)
)

// OrgService handles business logic for orgs
type OrgService struct {
	orgs      repository.OrgRepositoryInterface
	passwords *PasswordHasher
	validator *validator.Validate
}

// NewOrgService creates a new org service
func NewOrgService(orgs repository.OrgRepositoryInterface, passwords *PasswordHasher, validator *validator.Validate) *OrgService {
	return &OrgService{
		orgs:      orgs,
		passwords: passwords,
		validator: validator,
	}
}

// ProvisionRequest represents the request to provision an org
type ProvisionRequest struct {
	Code  string       `json:"code" validate:"required"`
	Name  string       `json:"name" validate:"required,min=1,max=100"`
	Admin AdminRequest `json:"admin" validate:"required"`
}

// AdminRequest describes the first administrator of a new org
type AdminRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Name     string `json:"name" validate:"max=200"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// UpdateOrgRequest represents the request to update an org. Nil fields are left unchanged.
type UpdateOrgRequest struct {
	Name  *string   `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	State *string   `json:"state,omitempty" validate:"omitempty,oneof=enabled disabled"`
	Roles *[]string `json:"roles,omitempty"`
}

// OrgResponse represents the response for org operations
type OrgResponse struct {
	ID      uuid.UUID       `json:"_id"`
	Object  string          `json:"object"`
	Code    string          `json:"code"`
	Name    string          `json:"name"`
	State   models.OrgState `json:"state"`
	Roles   []string        `json:"roles"`
	Created time.Time       `json:"created"`
	Updated time.Time       `json:"updated"`
}

// OrgListResponse represents a paginated list of orgs
type OrgListResponse struct {
	Data []OrgResponse `json:"data"`
	ListMeta
}

// ProvisionResponse carries the new org and its administrator
type ProvisionResponse struct {
	Org   *OrgResponse     `json:"org"`
	Admin *AccountResponse `json:"admin"`
}

// Provision creates an org with the built-in roles and its first administrator
func (s *OrgService) Provision(ctx context.Context, req *ProvisionRequest) (*ProvisionResponse, error) {
	req.Code = strings.ToLower(strings.TrimSpace(req.Code))
	req.Admin.Email = strings.ToLower(strings.TrimSpace(req.Admin.Email))
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if !orgCodePattern.MatchString(req.Code) {
		return nil, validationOf(
			apperrors.InvalidArgument("pattern", "code must match "+orgCodePattern.String()).WithPath("code"))
	}

	existing, err := s.orgs.GetByCode(ctx, req.Code)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing org by code: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrOrgExists
	}

	hash, err := s.passwords.Hash(req.Admin.Password)
	if err != nil {
		return nil, err
	}

	org := &models.Org{
		Code:  req.Code,
		Name:  req.Name,
		State: models.OrgStateEnabled,
	}
	if err := org.SetRoles(acl.BuiltinRoles); err != nil {
		return nil, fmt.Errorf("failed to encode org roles: %w", err)
	}
	admin := &models.Account{
		Email:        req.Admin.Email,
		Name:         req.Admin.Name,
		PasswordHash: hash,
		State:        models.AccountStateActive,
	}
	if err := admin.SetRoles([]string{acl.RoleAdministrator}); err != nil {
		return nil, fmt.Errorf("failed to encode account roles: %w", err)
	}

	if err := s.orgs.Provision(ctx, org, admin); err != nil {
		return nil, fmt.Errorf("failed to provision org: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"org":   org.Code,
		"admin": admin.ID.String(),
	}).Info("Provisioned org")

	return &ProvisionResponse{
		Org:   toOrgResponse(org),
		Admin: toAccountResponse(admin),
	}, nil
}

// Resolve loads an org by code for request scoping. Disabled orgs are rejected.
func (s *OrgService) Resolve(ctx context.Context, code string) (*models.Org, error) {
	org, err := s.orgs.GetByCode(ctx, strings.ToLower(code))
	if err != nil {
		return nil, notFound(err, apperrors.ErrOrgNotFound, "get org")
	}
	if !org.Enabled() {
		return nil, apperrors.ErrOrgDisabled
	}
	return org, nil
}

// GetByCode retrieves an org by code
func (s *OrgService) GetByCode(ctx context.Context, code string) (*OrgResponse, error) {
	org, err := s.orgs.GetByCode(ctx, strings.ToLower(code))
	if err != nil {
		return nil, notFound(err, apperrors.ErrOrgNotFound, "get org")
	}
	return toOrgResponse(org), nil
}

// GetByID retrieves an org by ID
func (s *OrgService) GetByID(ctx context.Context, id uuid.UUID) (*OrgResponse, error) {
	org, err := s.orgs.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrOrgNotFound, "get org")
	}
	return toOrgResponse(org), nil
}

// List retrieves orgs with pagination
func (s *OrgService) List(ctx context.Context, page, pageSize int) (*OrgListResponse, error) {
	p, err := NewPage(page, pageSize)
	if err != nil {
		return nil, err
	}
	orgs, total, err := s.orgs.GetAll(ctx, p.PageSize, p.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list orgs: %w", err)
	}
	resp := &OrgListResponse{Data: make([]OrgResponse, 0, len(orgs)), ListMeta: p.meta(total)}
	for i := range orgs {
		resp.Data = append(resp.Data, *toOrgResponse(&orgs[i]))
	}
	return resp, nil
}

// Update changes an org's name, state or custom roles. The built-in roles are always kept.
func (s *OrgService) Update(ctx context.Context, principal acl.Principal, id uuid.UUID, req *UpdateOrgRequest) (*OrgResponse, error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}
	if principal.OrgID != id {
		return nil, apperrors.ErrAccessDenied
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	org, err := s.orgs.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrOrgNotFound, "get org")
	}

	if req.Name != nil {
		org.Name = *req.Name
	}
	if req.State != nil {
		org.State = models.OrgState(*req.State)
	}
	if req.Roles != nil {
		roles, err := mergeRoles(*req.Roles)
		if err != nil {
			return nil, err
		}
		if err := org.SetRoles(roles); err != nil {
			return nil, fmt.Errorf("failed to encode org roles: %w", err)
		}
	}

	if err := s.orgs.Update(ctx, org); err != nil {
		return nil, fmt.Errorf("failed to update org: %w", err)
	}
	return toOrgResponse(org), nil
}

// Delete removes an org and everything scoped to it
func (s *OrgService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.orgs.GetByID(ctx, id); err != nil {
		return notFound(err, apperrors.ErrOrgNotFound, "get org")
	}
	if err := s.orgs.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete org: %w", err)
	}
	return nil
}

// mergeRoles validates custom roles and prepends the built-in ones
func mergeRoles(custom []string) ([]string, error) {
	roles := append([]string(nil), acl.BuiltinRoles...)
	seen := map[string]bool{}
	for _, r := range roles {
		seen[r] = true
	}
	container := apperrors.NewValidation()
	for i, r := range custom {
		if !roleNamePattern.MatchString(r) {
			container.Add(apperrors.InvalidArgument("pattern", "invalid role name").WithPath(fmt.Sprintf("roles.%d", i)))
			continue
		}
		if !seen[r] {
			seen[r] = true
			roles = append(roles, r)
		}
	}
	if container.HasFaults() {
		return nil, container
	}
	return roles, nil
}

func toOrgResponse(org *models.Org) *OrgResponse {
	roles, _ := org.RoleNames()
	if roles == nil {
		roles = []string{}
	}
	return &OrgResponse{
		ID:      org.ID,
		Object:  "org",
		Code:    org.Code,
		Name:    org.Name,
		State:   org.State,
		Roles:   roles,
		Created: org.CreatedAt,
		Updated: org.UpdatedAt,
	}
}
