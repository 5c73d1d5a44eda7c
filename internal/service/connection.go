package service

import (
	"context"
	"fmt"
	"time"

	"cortex-backend/internal/acl"
	"cortex-backend/internal/database/models"
	apperrors "cortex-backend/internal/errors"
	"cortex-backend/internal/logger"
	"cortex-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// InstanceAccessor resolves a principal's access to an instance
type InstanceAccessor interface {
	AccessTo(ctx context.Context, principal acl.Principal, objectName string, id uuid.UUID) (*models.Instance, acl.Level, error)
}

// CreateConnectionRequest shares an instance with an account
type CreateConnectionRequest struct {
	Target uuid.UUID `json:"target" validate:"required"`
	Access acl.Level `json:"access" validate:"required"`
}

// ConnectionResponse represents the response for connection operations
type ConnectionResponse struct {
	ID      uuid.UUID              `json:"_id"`
	Object  string                 `json:"object"`
	Context ConnectionContext      `json:"context"`
	Creator uuid.UUID              `json:"creator"`
	Target  uuid.UUID              `json:"target"`
	Access  int                    `json:"access"`
	State   models.ConnectionState `json:"state"`
	Created time.Time              `json:"created"`
	Updated time.Time              `json:"updated"`
}

// ConnectionContext names the shared instance
type ConnectionContext struct {
	ID     uuid.UUID `json:"_id"`
	Object string    `json:"object"`
}

// ConnectionListResponse represents a page of connections
type ConnectionListResponse struct {
	Data []ConnectionResponse `json:"data"`
	ListMeta
}

// ConnectionService shares instances between accounts
type ConnectionService struct {
	connections repository.ConnectionRepositoryInterface
	accounts    repository.AccountRepositoryInterface
	instances   InstanceAccessor
	validator   *validator.Validate
}

// NewConnectionService creates a new connection service
func NewConnectionService(
	connections repository.ConnectionRepositoryInterface,
	accounts repository.AccountRepositoryInterface,
	instances InstanceAccessor,
	validator *validator.Validate,
) *ConnectionService {
	return &ConnectionService{
		connections: connections,
		accounts:    accounts,
		instances:   instances,
		validator:   validator,
	}
}

// Create offers a pending connection to the target account. The caller needs
// Share access and cannot grant more than it holds.
func (s *ConnectionService) Create(ctx context.Context, principal acl.Principal, objectName string, instanceID uuid.UUID, req *CreateConnectionRequest) (*ConnectionResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	instance, access, err := s.instances.AccessTo(ctx, principal, objectName, instanceID)
	if err != nil {
		return nil, err
	}
	if !access.Satisfies(acl.Share) {
		return nil, apperrors.ErrShareDenied.WithResource(instanceID.String())
	}
	if req.Access < acl.Public || req.Access > access {
		return nil, validationOf(apperrors.ErrInvalidLevel.WithReason(
			fmt.Sprintf("access must be between %s and %s", acl.Public, access)).WithPath("access"))
	}
	if req.Target == principal.AccountID {
		return nil, validationOf(apperrors.InvalidArgument("target", "cannot connect an account to itself").WithPath("target"))
	}

	exists, err := s.accounts.Exists(ctx, principal.OrgID, req.Target)
	if err != nil {
		return nil, fmt.Errorf("failed to check target account: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrAccountNotFound.WithResource(req.Target.String())
	}

	if _, err := s.connections.FindOpen(ctx, principal.OrgID, instance.ID, req.Target); err == nil {
		return nil, apperrors.ErrConnectionExists
	} else if !isRecordNotFound(err) {
		return nil, fmt.Errorf("failed to check existing connection: %w", err)
	}

	connection := &models.Connection{
		OrgID:     principal.OrgID,
		Object:    instance.Object,
		ContextID: instance.ID,
		CreatorID: principal.AccountID,
		TargetID:  req.Target,
		Access:    int(req.Access),
		State:     models.ConnectionStatePending,
	}
	if err := s.connections.Create(ctx, connection); err != nil {
		return nil, fmt.Errorf("failed to create connection: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"connection": connection.ID,
		"context":    instance.ID,
		"target":     req.Target,
	}).Info("Connection created")
	return toConnectionResponse(connection), nil
}

// ListForContext lists the connections made to an instance
func (s *ConnectionService) ListForContext(ctx context.Context, principal acl.Principal, objectName string, instanceID uuid.UUID) ([]ConnectionResponse, error) {
	instance, access, err := s.instances.AccessTo(ctx, principal, objectName, instanceID)
	if err != nil {
		return nil, err
	}
	if !access.Satisfies(acl.Share) {
		return nil, apperrors.ErrShareDenied.WithResource(instanceID.String())
	}
	connections, err := s.connections.ListByContext(ctx, principal.OrgID, instance.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list connections: %w", err)
	}
	out := make([]ConnectionResponse, 0, len(connections))
	for i := range connections {
		out = append(out, *toConnectionResponse(&connections[i]))
	}
	return out, nil
}

// ListMine lists the connections offered to the principal
func (s *ConnectionService) ListMine(ctx context.Context, principal acl.Principal, page Page) (*ConnectionListResponse, error) {
	connections, total, err := s.connections.ListByTarget(ctx, principal.OrgID, principal.AccountID, page.PageSize, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list connections: %w", err)
	}
	data := make([]ConnectionResponse, 0, len(connections))
	for i := range connections {
		data = append(data, *toConnectionResponse(&connections[i]))
	}
	return &ConnectionListResponse{Data: data, ListMeta: page.meta(total)}, nil
}

// Accept activates a pending connection. Only its target may accept it.
func (s *ConnectionService) Accept(ctx context.Context, principal acl.Principal, id uuid.UUID) (*ConnectionResponse, error) {
	connection, err := s.get(ctx, principal, id)
	if err != nil {
		return nil, err
	}
	if connection.TargetID != principal.AccountID {
		return nil, apperrors.ErrConnectionForbidden.WithReason("only the target can accept a connection")
	}
	if connection.State == models.ConnectionStateActive {
		return toConnectionResponse(connection), nil
	}
	connection.State = models.ConnectionStateActive
	if err := s.connections.Update(ctx, connection); err != nil {
		return nil, fmt.Errorf("failed to accept connection: %w", err)
	}
	return toConnectionResponse(connection), nil
}

// Reject removes a connection offered to the principal
func (s *ConnectionService) Reject(ctx context.Context, principal acl.Principal, id uuid.UUID) error {
	connection, err := s.get(ctx, principal, id)
	if err != nil {
		return err
	}
	if connection.TargetID != principal.AccountID {
		return apperrors.ErrConnectionForbidden.WithReason("only the target can reject a connection")
	}
	return s.remove(ctx, principal, connection)
}

// Delete removes a connection. Allowed for its creator, its target and
// principals with Delete access to the shared instance.
func (s *ConnectionService) Delete(ctx context.Context, principal acl.Principal, id uuid.UUID) error {
	connection, err := s.get(ctx, principal, id)
	if err != nil {
		return err
	}
	if connection.CreatorID != principal.AccountID && connection.TargetID != principal.AccountID {
		_, access, err := s.instances.AccessTo(ctx, principal, connection.Object, connection.ContextID)
		if err != nil && !apperrors.IsNotFound(err) {
			return err
		}
		if !access.Satisfies(acl.Delete) {
			return apperrors.ErrConnectionForbidden
		}
	}
	return s.remove(ctx, principal, connection)
}

func (s *ConnectionService) get(ctx context.Context, principal acl.Principal, id uuid.UUID) (*models.Connection, error) {
	connection, err := s.connections.GetByID(ctx, principal.OrgID, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrConnectionNotFound.WithResource(id.String()), "get connection")
	}
	return connection, nil
}

func (s *ConnectionService) remove(ctx context.Context, principal acl.Principal, connection *models.Connection) error {
	if err := s.connections.Delete(ctx, principal.OrgID, connection.ID); err != nil {
		return notFound(err, apperrors.ErrConnectionNotFound.WithResource(connection.ID.String()), "delete connection")
	}
	return nil
}

func toConnectionResponse(c *models.Connection) *ConnectionResponse {
	return &ConnectionResponse{
		ID:      c.ID,
		Object:  "connection",
		Context: ConnectionContext{ID: c.ContextID, Object: c.Object},
		Creator: c.CreatorID,
		Target:  c.TargetID,
		Access:  c.Access,
		State:   c.State,
		Created: c.CreatedAt,
		Updated: c.UpdatedAt,
	}
}
