package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cortex-backend/internal/acl"
	"cortex-backend/internal/auth"
	"cortex-backend/internal/database/models"
	apperrors "cortex-backend/internal/errors"
	"cortex-backend/internal/logger"
	"cortex-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountService handles business logic for org accounts
type AccountService struct {
	accounts  repository.AccountRepositoryInterface
	orgs      repository.OrgRepositoryInterface
	tokens    *auth.TokenService
	passwords *PasswordHasher
	validator *validator.Validate
}

// NewAccountService creates a new account service
func NewAccountService(
	accounts repository.AccountRepositoryInterface,
	orgs repository.OrgRepositoryInterface,
	tokens *auth.TokenService,
	passwords *PasswordHasher,
	validator *validator.Validate,
) *AccountService {
	return &AccountService{
		accounts:  accounts,
		orgs:      orgs,
		tokens:    tokens,
		passwords: passwords,
		validator: validator,
	}
}

// CreateAccountRequest represents the request to create an account
type CreateAccountRequest struct {
	Email    string   `json:"email" validate:"required,email,max=255"`
	Name     string   `json:"name" validate:"max=200"`
	Password string   `json:"password" validate:"required,min=8,max=72"`
	Roles    []string `json:"roles"`
}

// UpdateAccountRequest represents the request to update an account. Nil fields are left unchanged.
type UpdateAccountRequest struct {
	Name     *string   `json:"name,omitempty" validate:"omitempty,max=200"`
	Password *string   `json:"password,omitempty" validate:"omitempty,min=8,max=72"`
	Roles    *[]string `json:"roles,omitempty"`
	State    *string   `json:"state,omitempty" validate:"omitempty,oneof=active locked"`
}

// LoginRequest represents the credentials of a login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AccountResponse represents the response for account operations
type AccountResponse struct {
	ID        uuid.UUID           `json:"_id"`
	Object    string              `json:"object"`
	Org       uuid.UUID           `json:"org"`
	Email     string              `json:"email"`
	Name      string              `json:"name"`
	Roles     []string            `json:"roles"`
	State     models.AccountState `json:"state"`
	LastLogin *time.Time          `json:"lastLogin,omitempty"`
	Created   time.Time           `json:"created"`
	Updated   time.Time           `json:"updated"`
}

// AccountListResponse represents a paginated list of accounts
type AccountListResponse struct {
	Data []AccountResponse `json:"data"`
	ListMeta
}

// LoginResponse carries the session token and the account it belongs to
type LoginResponse struct {
	*auth.TokenResponse
	Account *AccountResponse `json:"account"`
}

// Create adds an account to the principal's org
func (s *AccountService) Create(ctx context.Context, principal acl.Principal, req *CreateAccountRequest) (*AccountResponse, error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if err := s.checkRoles(ctx, principal.OrgID, req.Roles); err != nil {
		return nil, err
	}

	existing, err := s.accounts.GetByEmail(ctx, principal.OrgID, req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing account by email: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrAccountExists
	}

	hash, err := s.passwords.Hash(req.Password)
	if err != nil {
		return nil, err
	}
	account := &models.Account{
		OrgID:        principal.OrgID,
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hash,
		State:        models.AccountStateActive,
	}
	if err := account.SetRoles(req.Roles); err != nil {
		return nil, fmt.Errorf("failed to encode account roles: %w", err)
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return toAccountResponse(account), nil
}

// Get retrieves an account. Non-administrators may only read their own.
func (s *AccountService) Get(ctx context.Context, principal acl.Principal, id uuid.UUID) (*AccountResponse, error) {
	if id != principal.AccountID {
		if err := requireAdmin(principal); err != nil {
			return nil, err
		}
	}
	account, err := s.accounts.GetByID(ctx, principal.OrgID, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrAccountNotFound, "get account")
	}
	return toAccountResponse(account), nil
}

// List retrieves the org's accounts with pagination
func (s *AccountService) List(ctx context.Context, principal acl.Principal, page, pageSize int) (*AccountListResponse, error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}
	p, err := NewPage(page, pageSize)
	if err != nil {
		return nil, err
	}
	accounts, total, err := s.accounts.GetByOrg(ctx, principal.OrgID, p.PageSize, p.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	resp := &AccountListResponse{Data: make([]AccountResponse, 0, len(accounts)), ListMeta: p.meta(total)}
	for i := range accounts {
		resp.Data = append(resp.Data, *toAccountResponse(&accounts[i]))
	}
	return resp, nil
}

// Update changes an account. Principals may change their own name and password;
// roles and state need an administrator, who cannot lock or demote themselves.
func (s *AccountService) Update(ctx context.Context, principal acl.Principal, id uuid.UUID, req *UpdateAccountRequest) (*AccountResponse, error) {
	self := id == principal.AccountID
	privileged := req.Roles != nil || req.State != nil
	if !self || privileged {
		if err := requireAdmin(principal); err != nil {
			return nil, err
		}
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	account, err := s.accounts.GetByID(ctx, principal.OrgID, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrAccountNotFound, "get account")
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.Password != nil {
		hash, err := s.passwords.Hash(*req.Password)
		if err != nil {
			return nil, err
		}
		account.PasswordHash = hash
	}
	if req.Roles != nil {
		if self && !contains(*req.Roles, acl.RoleAdministrator) {
			return nil, validationOf(apperrors.InvalidArgument("selfDemotion", "administrators cannot remove their own administrator role").WithPath("roles"))
		}
		if err := s.checkRoles(ctx, principal.OrgID, *req.Roles); err != nil {
			return nil, err
		}
		if err := account.SetRoles(*req.Roles); err != nil {
			return nil, fmt.Errorf("failed to encode account roles: %w", err)
		}
	}
	if req.State != nil {
		state := models.AccountState(*req.State)
		if self && state == models.AccountStateLocked {
			return nil, validationOf(apperrors.InvalidArgument("selfLock", "administrators cannot lock their own account").WithPath("state"))
		}
		account.State = state
	}

	if err := s.accounts.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}
	return toAccountResponse(account), nil
}

// Delete removes an account. Administrators cannot delete themselves.
func (s *AccountService) Delete(ctx context.Context, principal acl.Principal, id uuid.UUID) error {
	if err := requireAdmin(principal); err != nil {
		return err
	}
	if id == principal.AccountID {
		return apperrors.InvalidArgument("selfDelete", "administrators cannot delete their own account")
	}
	if err := s.accounts.Delete(ctx, principal.OrgID, id); err != nil {
		return notFound(err, apperrors.ErrAccountNotFound, "delete account")
	}
	return nil
}

// Authenticate checks credentials against an org and issues a session token
func (s *AccountService) Authenticate(ctx context.Context, org *models.Org, req *LoginRequest) (*LoginResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if !org.Enabled() {
		return nil, apperrors.ErrOrgDisabled
	}

	account, err := s.accounts.GetByEmail(ctx, org.ID, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	ok, err := s.passwords.Check(account.PasswordHash, req.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		logger.WithContext(ctx).WithField("account", account.ID.String()).Warn("Rejected login with wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}
	if account.State == models.AccountStateLocked {
		return nil, apperrors.ErrAccountLocked
	}

	token, err := s.tokens.Issue(org, account)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	account.LastLogin = &now
	if err := s.accounts.Update(ctx, account); err != nil {
		logger.WithContext(ctx).WithError(err).Warn("Failed to record last login")
	}

	return &LoginResponse{TokenResponse: token, Account: toAccountResponse(account)}, nil
}

// checkRoles verifies that every role is defined in the org
func (s *AccountService) checkRoles(ctx context.Context, orgID uuid.UUID, roles []string) error {
	if len(roles) == 0 {
		return nil
	}
	org, err := s.orgs.GetByID(ctx, orgID)
	if err != nil {
		return notFound(err, apperrors.ErrOrgNotFound, "get org")
	}
	defined, err := org.RoleNames()
	if err != nil {
		return fmt.Errorf("failed to read org roles: %w", err)
	}
	container := apperrors.NewValidation()
	for i, r := range roles {
		if !contains(defined, r) {
			container.Add(apperrors.InvalidArgument("unknownRole", fmt.Sprintf("role %q is not defined in the org", r)).
				WithPath(fmt.Sprintf("roles.%d", i)))
		}
	}
	if container.HasFaults() {
		return container
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func toAccountResponse(account *models.Account) *AccountResponse {
	roles, _ := account.RoleNames()
	if roles == nil {
		roles = []string{}
	}
	return &AccountResponse{
		ID:        account.ID,
		Object:    "account",
		Org:       account.OrgID,
		Email:     account.Email,
		Name:      account.Name,
		Roles:     roles,
		State:     account.State,
		LastLogin: account.LastLogin,
		Created:   account.CreatedAt,
		Updated:   account.UpdatedAt,
	}
}
