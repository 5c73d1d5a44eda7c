package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"time"

	"cortex-backend/internal/acl"
	"cortex-backend/internal/database/models"
	apperrors "cortex-backend/internal/errors"
	"cortex-backend/internal/property"
	"cortex-backend/internal/repository"
	"cortex-backend/internal/sandbox"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var objectNamePattern = regexp.MustCompile(`^c_[a-z][a-zA-Z0-9_]{0,37}$`)

// Trigger events
const (
	EventCreateBefore = "create.before"
	EventUpdateBefore = "update.before"
	EventDeleteBefore = "delete.before"
)

var triggerEvents = map[string]bool{
	EventCreateBefore: true,
	EventUpdateBefore: true,
	EventDeleteBefore: true,
}

// Trigger runs a script before an instance write
type Trigger struct {
	Event  string `json:"event" yaml:"event"`
	Script string `json:"script" yaml:"script"`
}

// ObjectRequest describes an object definition for create, update and deployments
type ObjectRequest struct {
	Name       string                `json:"name" yaml:"name" validate:"required"`
	Label      string                `json:"label" yaml:"label" validate:"max=100"`
	Properties []property.Definition `json:"properties" yaml:"properties"`
	DefaultACL []acl.Entry           `json:"defaultAcl,omitempty" yaml:"defaultAcl,omitempty"`
	CreateACL  []acl.Entry           `json:"createAcl,omitempty" yaml:"createAcl,omitempty"`
	Triggers   []Trigger             `json:"triggers,omitempty" yaml:"triggers,omitempty"`
}

// ObjectResponse represents the response for object definition operations
type ObjectResponse struct {
	ID         uuid.UUID             `json:"_id"`
	Object     string                `json:"object"`
	Name       string                `json:"name"`
	Label      string                `json:"label"`
	Properties []property.Definition `json:"properties"`
	DefaultACL []acl.Entry           `json:"defaultAcl"`
	CreateACL  []acl.Entry           `json:"createAcl"`
	Triggers   []Trigger             `json:"triggers"`
	Created    time.Time             `json:"created"`
	Updated    time.Time             `json:"updated"`
}

// Object is a loaded definition with its compiled schema
type Object struct {
	Definition *models.ObjectDefinition
	Schema     *property.Schema
	DefaultACL []acl.Entry
	CreateACL  []acl.Entry
	Triggers   []Trigger
}

// Name returns the object name
func (o *Object) Name() string {
	return o.Definition.Name
}

// Trigger returns the script bound to event, if any
func (o *Object) Trigger(event string) (Trigger, bool) {
	for _, t := range o.Triggers {
		if t.Event == event {
			return t, true
		}
	}
	return Trigger{}, false
}

// ObjectService manages object definitions
type ObjectService struct {
	objects   repository.ObjectRepositoryInterface
	instances repository.InstanceRepositoryInterface
	runner    *sandbox.Runner
	validator *validator.Validate
}

// NewObjectService creates a new object service
func NewObjectService(
	objects repository.ObjectRepositoryInterface,
	instances repository.InstanceRepositoryInterface,
	runner *sandbox.Runner,
	validator *validator.Validate,
) *ObjectService {
	return &ObjectService{
		objects:   objects,
		instances: instances,
		runner:    runner,
		validator: validator,
	}
}

// Create adds an object definition to the principal's org
func (s *ObjectService) Create(ctx context.Context, principal acl.Principal, req *ObjectRequest) (*ObjectResponse, error) {
	if err := requireDeveloper(principal); err != nil {
		return nil, err
	}
	if err := s.Validate(req); err != nil {
		return nil, err
	}

	existing, err := s.objects.GetByName(ctx, principal.OrgID, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing object by name: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrObjectExists
	}

	def, err := ToModel(principal.OrgID, req)
	if err != nil {
		return nil, err
	}
	if err := s.objects.Create(ctx, def); err != nil {
		return nil, fmt.Errorf("failed to create object: %w", err)
	}
	return toObjectResponse(def)
}

// Get retrieves an object definition by name
func (s *ObjectService) Get(ctx context.Context, principal acl.Principal, name string) (*ObjectResponse, error) {
	def, err := s.objects.GetByName(ctx, principal.OrgID, name)
	if err != nil {
		return nil, notFound(err, apperrors.ErrObjectNotFound.WithResource(name), "get object")
	}
	return toObjectResponse(def)
}

// List retrieves every object definition of the org
func (s *ObjectService) List(ctx context.Context, principal acl.Principal) ([]ObjectResponse, error) {
	defs, err := s.objects.GetByOrg(ctx, principal.OrgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list objects: %w", err)
	}
	out := make([]ObjectResponse, 0, len(defs))
	for i := range defs {
		resp, err := toObjectResponse(&defs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

// Update replaces a definition's label, properties, ACLs and triggers. The name is fixed.
func (s *ObjectService) Update(ctx context.Context, principal acl.Principal, name string, req *ObjectRequest) (*ObjectResponse, error) {
	if err := requireDeveloper(principal); err != nil {
		return nil, err
	}
	req.Name = name
	if err := s.Validate(req); err != nil {
		return nil, err
	}

	def, err := s.objects.GetByName(ctx, principal.OrgID, name)
	if err != nil {
		return nil, notFound(err, apperrors.ErrObjectNotFound.WithResource(name), "get object")
	}
	updated, err := ToModel(principal.OrgID, req)
	if err != nil {
		return nil, err
	}
	updated.BaseModel = def.BaseModel

	if err := s.objects.Update(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to update object: %w", err)
	}
	return toObjectResponse(updated)
}

// Delete removes a definition that has no instances left
func (s *ObjectService) Delete(ctx context.Context, principal acl.Principal, name string) error {
	if err := requireDeveloper(principal); err != nil {
		return err
	}
	if _, err := s.objects.GetByName(ctx, principal.OrgID, name); err != nil {
		return notFound(err, apperrors.ErrObjectNotFound.WithResource(name), "get object")
	}
	count, err := s.instances.CountByObject(ctx, principal.OrgID, name)
	if err != nil {
		return fmt.Errorf("failed to count instances: %w", err)
	}
	if count > 0 {
		return apperrors.ErrInstancesExist.WithResource(name)
	}
	if err := s.objects.Delete(ctx, principal.OrgID, name); err != nil {
		return notFound(err, apperrors.ErrObjectNotFound.WithResource(name), "delete object")
	}
	return nil
}

// Load reads and compiles a definition for instance operations
func (s *ObjectService) Load(ctx context.Context, orgID uuid.UUID, name string) (*Object, error) {
	def, err := s.objects.GetByName(ctx, orgID, name)
	if err != nil {
		return nil, notFound(err, apperrors.ErrObjectNotFound.WithResource(name), "get object")
	}
	req, err := fromModel(def)
	if err != nil {
		return nil, err
	}
	schema, err := property.NewSchema(req.Properties, s.runner)
	if err != nil {
		return nil, fmt.Errorf("stored definition of %s no longer compiles: %w", name, err)
	}
	defaultACL := req.DefaultACL
	if len(defaultACL) == 0 {
		defaultACL = acl.DefaultObjectACL()
	}
	return &Object{
		Definition: def,
		Schema:     schema,
		DefaultACL: defaultACL,
		CreateACL:  req.CreateACL,
		Triggers:   req.Triggers,
	}, nil
}

// Validate checks a definition request and collects every fault
func (s *ObjectService) Validate(req *ObjectRequest) error {
	container := apperrors.NewValidation()
	s.collect(req, "", container)
	if container.HasFaults() {
		return container
	}
	return nil
}

// collect adds the faults of req to container, with paths under prefix
func (s *ObjectService) collect(req *ObjectRequest, prefix string, container *apperrors.Fault) {
	if err := validateStruct(s.validator, req); err != nil {
		addChildren(container, prefix, err)
	}
	if req.Name != "" && !objectNamePattern.MatchString(req.Name) {
		container.Add(apperrors.InvalidArgument("pattern", "object names must match "+objectNamePattern.String()).
			WithPath(prefix + "name"))
	}
	if err := property.ValidateDefinitions(req.Properties); err != nil {
		addChildren(container, prefix+"properties.", err)
	}
	for i, e := range req.DefaultACL {
		if err := e.Validate(); err != nil {
			container.Add(apperrors.ErrInvalidLevel.WithReason(err.Error()).WithPath(fmt.Sprintf("%sdefaultAcl.%d", prefix, i)))
		}
	}
	for i, e := range req.CreateACL {
		if err := e.Validate(); err != nil {
			container.Add(apperrors.ErrInvalidLevel.WithReason(err.Error()).WithPath(fmt.Sprintf("%screateAcl.%d", prefix, i)))
		}
	}
	seen := map[string]bool{}
	for i, t := range req.Triggers {
		path := fmt.Sprintf("%striggers.%d", prefix, i)
		if !triggerEvents[t.Event] {
			container.Add(apperrors.InvalidArgument("event", fmt.Sprintf("unknown trigger event %q", t.Event)).WithPath(path + ".event"))
			continue
		}
		if seen[t.Event] {
			container.Add(apperrors.InvalidArgument("duplicate", "only one trigger per event").WithPath(path + ".event"))
		}
		seen[t.Event] = true
		if err := s.runner.Check(t.Script); err != nil {
			addChildren(container, path+".script", err)
		}
	}
}

// addChildren copies the faults in err into container. Validation containers are
// flattened; child paths are prefixed.
func addChildren(container *apperrors.Fault, prefix string, err error) {
	fault := apperrors.From(err)
	if fault.ErrCode != apperrors.ErrCodeValidation {
		if fault.Path == "" {
			container.Add(fault.WithPath(trimDot(prefix)))
		} else {
			container.Add(fault.WithPath(prefix + fault.Path))
		}
		return
	}
	for _, child := range fault.Faults {
		addChildren(container, prefix, child)
	}
}

func trimDot(s string) string {
	if n := len(s); n > 0 && s[n-1] == '.' {
		return s[:n-1]
	}
	return s
}

// ToModel converts a validated request into a definition row of orgID
func ToModel(orgID uuid.UUID, req *ObjectRequest) (*models.ObjectDefinition, error) {
	props, err := json.Marshal(nonNilDefs(req.Properties))
	if err != nil {
		return nil, fmt.Errorf("failed to encode properties: %w", err)
	}
	defaultACL, err := json.Marshal(nonNilEntries(req.DefaultACL))
	if err != nil {
		return nil, fmt.Errorf("failed to encode default acl: %w", err)
	}
	createACL, err := json.Marshal(nonNilEntries(req.CreateACL))
	if err != nil {
		return nil, fmt.Errorf("failed to encode create acl: %w", err)
	}
	triggers := req.Triggers
	if triggers == nil {
		triggers = []Trigger{}
	}
	triggersRaw, err := json.Marshal(triggers)
	if err != nil {
		return nil, fmt.Errorf("failed to encode triggers: %w", err)
	}
	return &models.ObjectDefinition{
		OrgID:      orgID,
		Name:       req.Name,
		Label:      req.Label,
		Properties: props,
		DefaultACL: defaultACL,
		CreateACL:  createACL,
		Triggers:   triggersRaw,
	}, nil
}

func fromModel(def *models.ObjectDefinition) (*ObjectRequest, error) {
	req := &ObjectRequest{Name: def.Name, Label: def.Label}
	fields := []struct {
		raw  json.RawMessage
		out  interface{}
		name string
	}{
		{def.Properties, &req.Properties, "properties"},
		{def.DefaultACL, &req.DefaultACL, "default acl"},
		{def.CreateACL, &req.CreateACL, "create acl"},
		{def.Triggers, &req.Triggers, "triggers"},
	}
	for _, f := range fields {
		if len(f.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(f.raw, f.out); err != nil {
			return nil, fmt.Errorf("failed to decode %s of %s: %w", f.name, def.Name, err)
		}
	}
	return req, nil
}

func nonNilDefs(defs []property.Definition) []property.Definition {
	if defs == nil {
		return []property.Definition{}
	}
	return defs
}

func nonNilEntries(entries []acl.Entry) []acl.Entry {
	if entries == nil {
		return []acl.Entry{}
	}
	return entries
}

func toObjectResponse(def *models.ObjectDefinition) (*ObjectResponse, error) {
	req, err := fromModel(def)
	if err != nil {
		return nil, err
	}
	return &ObjectResponse{
		ID:         def.ID,
		Object:     "object",
		Name:       def.Name,
		Label:      def.Label,
		Properties: nonNilDefs(req.Properties),
		DefaultACL: nonNilEntries(req.DefaultACL),
		CreateACL:  nonNilEntries(req.CreateACL),
		Triggers:   req.Triggers,
		Created:    def.CreatedAt,
		Updated:    def.UpdatedAt,
	}, nil
}
