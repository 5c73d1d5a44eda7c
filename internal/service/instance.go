package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cortex-backend/internal/acl"
	"cortex-backend/internal/database/models"
	apperrors "cortex-backend/internal/errors"
	"cortex-backend/internal/logger"
	"cortex-backend/internal/metrics"
	"cortex-backend/internal/property"
	"cortex-backend/internal/repository"
	"cortex-backend/internal/sandbox"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
)

// ObjectLoader loads compiled object definitions
type ObjectLoader interface {
	Load(ctx context.Context, orgID uuid.UUID, name string) (*Object, error)
}

// RetryPolicy bounds the retries of a write that lost a sequencing race
type RetryPolicy struct {
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// DefaultRetryPolicy is used when no policy is configured
var DefaultRetryPolicy = RetryPolicy{
	MaxRetries:      5,
	InitialInterval: 10 * time.Millisecond,
	MaxInterval:     250 * time.Millisecond,
}

func (p RetryPolicy) backOff(ctx context.Context) backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = p.InitialInterval
	exp.MaxInterval = p.MaxInterval
	exp.MaxElapsedTime = 0
	return backoff.WithContext(backoff.WithMaxRetries(exp, p.MaxRetries), ctx)
}

// InstanceResponse is an instance flattened into one document: its meta
// fields plus the properties readable at the caller's access level
type InstanceResponse map[string]interface{}

// InstanceListResponse represents a page of instances
type InstanceListResponse struct {
	Data []InstanceResponse `json:"data"`
	ListMeta
}

// ListInstancesRequest selects a page of instances
type ListInstancesRequest struct {
	Where json.RawMessage
	Page  Page
}

// InstanceService reads and writes instances of object definitions
type InstanceService struct {
	objects     ObjectLoader
	instances   repository.InstanceRepositoryInterface
	connections repository.ConnectionRepositoryInterface
	counters    repository.CounterRepositoryInterface
	runner      *sandbox.Runner
	retry       RetryPolicy
}

// NewInstanceService creates a new instance service
func NewInstanceService(
	objects ObjectLoader,
	instances repository.InstanceRepositoryInterface,
	connections repository.ConnectionRepositoryInterface,
	counters repository.CounterRepositoryInterface,
	runner *sandbox.Runner,
	retry RetryPolicy,
) *InstanceService {
	if retry.InitialInterval <= 0 || retry.MaxInterval <= 0 {
		retry.InitialInterval = DefaultRetryPolicy.InitialInterval
		retry.MaxInterval = DefaultRetryPolicy.MaxInterval
	}
	return &InstanceService{
		objects:     objects,
		instances:   instances,
		connections: connections,
		counters:    counters,
		runner:      runner,
		retry:       retry,
	}
}

// Create writes a new instance owned by the principal
func (s *InstanceService) Create(ctx context.Context, principal acl.Principal, objectName string, input map[string]interface{}) (InstanceResponse, error) {
	obj, err := s.objects.Load(ctx, principal.OrgID, objectName)
	if err != nil {
		return nil, err
	}
	if !acl.CanCreate(principal, obj.CreateACL) {
		return nil, apperrors.ErrCreateDenied.WithResource(objectName)
	}
	instanceACL, input, err := splitACL(copyDoc(input))
	if err != nil {
		return nil, err
	}

	if trigger, ok := obj.Trigger(EventCreateBefore); ok {
		result, err := s.runTrigger(ctx, principal, obj, trigger, map[string]interface{}{
			"input": input,
		})
		if err != nil {
			return nil, err
		}
		input = mergeInto(input, result)
	}

	subject := acl.Subject{OwnerID: principal.AccountID}
	access := acl.MaxOf(acl.Resolve(principal, subject, obj.DefaultACL, instanceACL), acl.Update)
	doc, err := obj.Schema.Create(ctx, s.env(principal, obj, access), input)
	if err != nil {
		return nil, err
	}

	instance := &models.Instance{
		OrgID:     principal.OrgID,
		Object:    obj.Name(),
		OwnerID:   principal.AccountID,
		CreatorID: principal.AccountID,
	}
	if err := setACL(instance, instanceACL); err != nil {
		return nil, err
	}
	if err := instance.SetDocument(doc); err != nil {
		return nil, fmt.Errorf("failed to encode instance: %w", err)
	}
	if err := s.instances.Create(ctx, instance); err != nil {
		return nil, fmt.Errorf("failed to create instance: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"object":   obj.Name(),
		"instance": instance.ID,
	}).Debug("Instance created")
	return toInstanceResponse(obj, instance, doc, acl.Resolve(principal, subject, obj.DefaultACL, instanceACL)), nil
}

// Get reads an instance. Instances the principal has no access to are reported as not found.
func (s *InstanceService) Get(ctx context.Context, principal acl.Principal, objectName string, id uuid.UUID) (InstanceResponse, error) {
	obj, instance, access, err := s.load(ctx, principal, objectName, id)
	if err != nil {
		return nil, err
	}
	doc, err := instance.Document()
	if err != nil {
		return nil, fmt.Errorf("failed to decode instance: %w", err)
	}
	return toInstanceResponse(obj, instance, doc, access), nil
}

// List returns a page of instances. Rows the principal cannot read are left out of the page.
func (s *InstanceService) List(ctx context.Context, principal acl.Principal, objectName string, req ListInstancesRequest) (*InstanceListResponse, error) {
	obj, err := s.objects.Load(ctx, principal.OrgID, objectName)
	if err != nil {
		return nil, err
	}
	where, err := normalizeWhere(req.Where)
	if err != nil {
		return nil, err
	}

	rows, total, err := s.instances.List(ctx, principal.OrgID, obj.Name(), where, req.Page.PageSize, req.Page.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list instances: %w", err)
	}

	data := make([]InstanceResponse, 0, len(rows))
	for i := range rows {
		instance := &rows[i]
		access, err := s.accessTo(ctx, principal, obj, instance)
		if err != nil {
			return nil, err
		}
		if access == acl.None {
			continue
		}
		doc, err := instance.Document()
		if err != nil {
			return nil, fmt.Errorf("failed to decode instance %s: %w", instance.ID, err)
		}
		data = append(data, toInstanceResponse(obj, instance, doc, access))
	}
	return &InstanceListResponse{Data: data, ListMeta: req.Page.meta(total)}, nil
}

// Update patches an instance. A write that loses a sequencing race is re-read
// and retried with exponential backoff; every other fault ends the operation.
func (s *InstanceService) Update(ctx context.Context, principal acl.Principal, objectName string, id uuid.UUID, patch map[string]interface{}) (InstanceResponse, error) {
	var resp InstanceResponse
	attempt := 0
	op := func() error {
		attempt++
		if attempt > 1 {
			metrics.RecordSequenceRetry(objectName)
		}
		out, err := s.update(ctx, principal, objectName, id, patch)
		if err != nil {
			if apperrors.IsSequencing(err) {
				return err
			}
			return backoff.Permanent(err)
		}
		resp = out
		return nil
	}
	if err := backoff.Retry(op, s.retry.backOff(ctx)); err != nil {
		if apperrors.IsSequencing(err) {
			logger.WithContext(ctx).WithFields(map[string]interface{}{
				"object":   objectName,
				"instance": id,
				"attempts": attempt,
			}).Warn("Giving up on instance update after sequencing conflicts")
		}
		return nil, err
	}
	return resp, nil
}

func (s *InstanceService) update(ctx context.Context, principal acl.Principal, objectName string, id uuid.UUID, patch map[string]interface{}) (InstanceResponse, error) {
	obj, instance, access, err := s.load(ctx, principal, objectName, id)
	if err != nil {
		return nil, err
	}
	if !access.Satisfies(acl.Update) {
		return nil, apperrors.ErrInstanceUpdate.WithResource(id.String())
	}
	current, err := instance.Document()
	if err != nil {
		return nil, fmt.Errorf("failed to decode instance: %w", err)
	}

	instanceACL, patch, err := splitACL(copyDoc(patch))
	if err != nil {
		return nil, err
	}
	if instanceACL != nil {
		if !access.Satisfies(acl.Share) || !principal.IsAdmin() && instance.OwnerID != principal.AccountID {
			return nil, apperrors.ErrShareDenied.WithReason("only the owner or an administrator can change an instance acl")
		}
		if err := setACL(instance, instanceACL); err != nil {
			return nil, err
		}
	}

	if trigger, ok := obj.Trigger(EventUpdateBefore); ok {
		result, err := s.runTrigger(ctx, principal, obj, trigger, map[string]interface{}{
			"current": current,
			"patch":   patch,
			"_id":     instance.ID.String(),
		})
		if err != nil {
			return nil, err
		}
		patch = mergeInto(patch, result)
	}

	doc, err := obj.Schema.Update(ctx, s.env(principal, obj, access), current, patch)
	if err != nil {
		return nil, err
	}
	if err := instance.SetDocument(doc); err != nil {
		return nil, fmt.Errorf("failed to encode instance: %w", err)
	}
	if err := s.instances.UpdateWithSequence(ctx, instance, instance.Sequence); err != nil {
		if apperrors.IsSequencing(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update instance: %w", err)
	}
	return toInstanceResponse(obj, instance, doc, access), nil
}

// Delete removes an instance and the connections made to it
func (s *InstanceService) Delete(ctx context.Context, principal acl.Principal, objectName string, id uuid.UUID) error {
	obj, instance, access, err := s.load(ctx, principal, objectName, id)
	if err != nil {
		return err
	}
	if !access.Satisfies(acl.Delete) {
		return apperrors.ErrInstanceDelete.WithResource(id.String())
	}

	if trigger, ok := obj.Trigger(EventDeleteBefore); ok {
		current, err := instance.Document()
		if err != nil {
			return fmt.Errorf("failed to decode instance: %w", err)
		}
		if _, err := s.runTrigger(ctx, principal, obj, trigger, map[string]interface{}{
			"current": current,
			"_id":     instance.ID.String(),
		}); err != nil {
			return err
		}
	}

	if err := s.instances.Delete(ctx, principal.OrgID, instance.ID); err != nil {
		return notFound(err, apperrors.ErrInstanceNotFound.WithResource(id.String()), "delete instance")
	}
	if err := s.connections.DeleteByContext(ctx, principal.OrgID, instance.ID); err != nil {
		return fmt.Errorf("failed to delete connections of instance: %w", err)
	}
	return nil
}

// AccessTo resolves the principal's access to an instance. None means the
// instance does not exist for the principal.
func (s *InstanceService) AccessTo(ctx context.Context, principal acl.Principal, objectName string, id uuid.UUID) (*models.Instance, acl.Level, error) {
	_, instance, access, err := s.load(ctx, principal, objectName, id)
	if err != nil {
		return nil, acl.None, err
	}
	return instance, access, nil
}

func (s *InstanceService) load(ctx context.Context, principal acl.Principal, objectName string, id uuid.UUID) (*Object, *models.Instance, acl.Level, error) {
	obj, err := s.objects.Load(ctx, principal.OrgID, objectName)
	if err != nil {
		return nil, nil, acl.None, err
	}
	instance, err := s.instances.GetByID(ctx, principal.OrgID, obj.Name(), id)
	if err != nil {
		return nil, nil, acl.None, notFound(err, apperrors.ErrInstanceNotFound.WithResource(id.String()), "get instance")
	}
	access, err := s.accessTo(ctx, principal, obj, instance)
	if err != nil {
		return nil, nil, acl.None, err
	}
	if access == acl.None {
		return nil, nil, acl.None, apperrors.ErrInstanceNotFound.WithResource(id.String())
	}
	return obj, instance, access, nil
}

// accessTo merges the definition ACL, the instance ACL and the principal's active connections
func (s *InstanceService) accessTo(ctx context.Context, principal acl.Principal, obj *Object, instance *models.Instance) (acl.Level, error) {
	instanceACL, err := instanceEntries(instance)
	if err != nil {
		return acl.None, err
	}
	access := acl.Resolve(principal, acl.Subject{OwnerID: instance.OwnerID}, obj.DefaultACL, instanceACL)
	if principal.Anonymous || access >= acl.Max {
		return access, nil
	}

	connections, err := s.connections.ListActiveForTarget(ctx, principal.OrgID, principal.AccountID, []uuid.UUID{instance.ID})
	if err != nil {
		return acl.None, fmt.Errorf("failed to list connections: %w", err)
	}
	for _, c := range connections {
		access = acl.MaxOf(access, acl.Clamp(acl.Level(c.Access)))
	}
	return access, nil
}

func (s *InstanceService) env(principal acl.Principal, obj *Object, access acl.Level) property.Env {
	return property.Env{
		Access:    access,
		Org:       principal.OrgID.String(),
		Principal: principalDoc(principal),
		NextValue: func(ctx context.Context, path string) (int64, error) {
			return s.counters.Next(ctx, principal.OrgID, obj.Name()+"."+path, 1)
		},
	}
}

// runTrigger executes a trigger script. A returned object is handed back for merging;
// any other return value is ignored.
func (s *InstanceService) runTrigger(ctx context.Context, principal acl.Principal, obj *Object, trigger Trigger, args map[string]interface{}) (map[string]interface{}, error) {
	result, err := s.runner.Run(ctx, sandbox.Script{
		Name:      obj.Name() + "." + trigger.Event,
		Source:    trigger.Script,
		Org:       principal.OrgID.String(),
		Principal: principalDoc(principal),
		Arguments: args,
	})
	if err != nil {
		return nil, err
	}
	out, _ := result.(map[string]interface{})
	return out, nil
}

// splitACL removes the "acl" key from doc and parses it
func splitACL(doc map[string]interface{}) ([]acl.Entry, map[string]interface{}, error) {
	raw, ok := doc["acl"]
	if !ok {
		return nil, doc, nil
	}
	delete(doc, "acl")
	if raw == nil {
		return []acl.Entry{}, doc, nil
	}
	b, err := json.Marshal(raw)
	if err != nil {
		return nil, nil, apperrors.ErrInvalidBody.Wrap(err)
	}
	var entries []acl.Entry
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, nil, validationOf(apperrors.ErrInvalidLevel.WithReason(err.Error()).WithPath("acl"))
	}
	container := apperrors.NewValidation()
	for i, e := range entries {
		if err := e.Validate(); err != nil {
			container.Add(apperrors.ErrInvalidLevel.WithReason(err.Error()).WithPath(fmt.Sprintf("acl.%d", i)))
		}
	}
	if container.HasFaults() {
		return nil, nil, container
	}
	return entries, doc, nil
}

func setACL(instance *models.Instance, entries []acl.Entry) error {
	raw, err := json.Marshal(nonNilEntries(entries))
	if err != nil {
		return fmt.Errorf("failed to encode instance acl: %w", err)
	}
	instance.ACL = raw
	return nil
}

func instanceEntries(instance *models.Instance) ([]acl.Entry, error) {
	if len(instance.ACL) == 0 || string(instance.ACL) == "null" {
		return nil, nil
	}
	var entries []acl.Entry
	if err := json.Unmarshal(instance.ACL, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode acl of instance %s: %w", instance.ID, err)
	}
	return entries, nil
}

// normalizeWhere checks that a filter is a JSON object
func normalizeWhere(where json.RawMessage) (json.RawMessage, error) {
	if len(where) == 0 {
		return nil, nil
	}
	var filter map[string]interface{}
	if err := json.Unmarshal(where, &filter); err != nil {
		return nil, apperrors.InvalidArgument("where", "where must be a JSON object").Wrap(err)
	}
	if len(filter) == 0 {
		return nil, nil
	}
	return where, nil
}

// mergeInto copies the top-level keys of src over dst
func mergeInto(dst, src map[string]interface{}) map[string]interface{} {
	if dst == nil {
		dst = map[string]interface{}{}
	}
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func copyDoc(doc map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}

func toInstanceResponse(obj *Object, instance *models.Instance, doc map[string]interface{}, access acl.Level) InstanceResponse {
	resp := InstanceResponse{}
	for k, v := range obj.Schema.Project(doc, access) {
		resp[k] = v
	}
	resp["_id"] = instance.ID
	resp["object"] = instance.Object
	resp["owner"] = instance.OwnerID
	resp["creator"] = instance.CreatorID
	resp["created"] = instance.CreatedAt
	resp["updated"] = instance.UpdatedAt
	resp["sequence"] = instance.Sequence
	resp["access"] = int(access)
	if access.Satisfies(acl.Share) {
		if entries, err := instanceEntries(instance); err == nil {
			resp["acl"] = nonNilEntries(entries)
		}
	}
	return resp
}
