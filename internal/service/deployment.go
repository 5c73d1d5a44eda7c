package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"cortex-backend/internal/acl"
	"cortex-backend/internal/database/models"
	apperrors "cortex-backend/internal/errors"
	"cortex-backend/internal/logger"
	"cortex-backend/internal/repository"

	"github.com/Masterminds/semver/v3"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Bundle formats
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// initialVersion is exported when an org has never been deployed to
const initialVersion = "1.0.0"

// Bundle is a portable set of object definitions
type Bundle struct {
	Version  string          `json:"version" yaml:"version"`
	Source   string          `json:"source" yaml:"source"`
	Exported time.Time       `json:"exported" yaml:"exported"`
	Objects  []ObjectRequest `json:"objects" yaml:"objects"`
}

// Checksum is the sha256 of the bundle's JSON encoding
func (b *Bundle) Checksum() (string, error) {
	raw, err := json.Marshal(b)
	if err != nil {
		return "", fmt.Errorf("failed to encode bundle: %w", err)
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:]), nil
}

// Encode serializes the bundle in format
func (b *Bundle) Encode(format string) ([]byte, error) {
	switch format {
	case FormatJSON, "":
		return json.MarshalIndent(b, "", "  ")
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(b); err != nil {
			return nil, fmt.Errorf("failed to encode bundle: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode bundle: %w", err)
		}
		return buf.Bytes(), nil
	}
	return nil, apperrors.InvalidArgument("format", fmt.Sprintf("unknown bundle format %q", format))
}

// DecodeBundle parses a bundle. YAML is used when the content type mentions it, JSON otherwise.
func DecodeBundle(data []byte, contentType string) (*Bundle, error) {
	var bundle Bundle
	if strings.Contains(contentType, "yaml") {
		if err := yaml.Unmarshal(data, &bundle); err != nil {
			return nil, apperrors.ErrInvalidBundle.WithReason(err.Error())
		}
		return &bundle, nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&bundle); err != nil {
		return nil, apperrors.ErrInvalidBundle.WithReason(err.Error())
	}
	return &bundle, nil
}

// ImportRequest applies a bundle to the principal's org
type ImportRequest struct {
	Bundle *Bundle
	// Force applies bundles whose version is not newer than the last deployment
	Force bool
}

// DeploymentResponse represents one recorded deployment
type DeploymentResponse struct {
	ID         uuid.UUID `json:"_id"`
	Object     string    `json:"object"`
	Version    string    `json:"version"`
	Source     string    `json:"source"`
	Checksum   string    `json:"checksum"`
	DeployedBy uuid.UUID `json:"deployedBy"`
	Objects    int       `json:"objects"`
	Created    time.Time `json:"created"`
}

// DeploymentListResponse represents a page of deployment history
type DeploymentListResponse struct {
	Data []DeploymentResponse `json:"data"`
	ListMeta
}

// DeploymentService moves object definitions between orgs
type DeploymentService struct {
	objects     *ObjectService
	definitions repository.ObjectRepositoryInterface
	deployments repository.DeploymentRepositoryInterface
	orgs        repository.OrgRepositoryInterface
}

// NewDeploymentService creates a new deployment service
func NewDeploymentService(
	objects *ObjectService,
	definitions repository.ObjectRepositoryInterface,
	deployments repository.DeploymentRepositoryInterface,
	orgs repository.OrgRepositoryInterface,
) *DeploymentService {
	return &DeploymentService{
		objects:     objects,
		definitions: definitions,
		deployments: deployments,
		orgs:        orgs,
	}
}

// Export bundles every object definition of the org. An empty version reuses
// the org's last deployed version.
func (s *DeploymentService) Export(ctx context.Context, principal acl.Principal, version string) (*Bundle, error) {
	if err := requireDeveloper(principal); err != nil {
		return nil, err
	}
	if version == "" {
		latest, err := s.latest(ctx, principal.OrgID)
		if err != nil {
			return nil, err
		}
		version = initialVersion
		if latest != nil {
			version = latest.Version
		}
	}
	if _, err := semver.NewVersion(version); err != nil {
		return nil, validationOf(apperrors.InvalidArgument("semver", err.Error()).WithPath("version"))
	}

	org, err := s.orgs.GetByID(ctx, principal.OrgID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrOrgNotFound, "get org")
	}
	defs, err := s.definitions.GetByOrg(ctx, principal.OrgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list objects: %w", err)
	}

	bundle := &Bundle{
		Version:  version,
		Source:   org.Code,
		Exported: time.Now().UTC().Truncate(time.Second),
		Objects:  make([]ObjectRequest, 0, len(defs)),
	}
	for i := range defs {
		req, err := fromModel(&defs[i])
		if err != nil {
			return nil, err
		}
		bundle.Objects = append(bundle.Objects, *req)
	}
	return bundle, nil
}

// Import validates every definition of the bundle and applies them in one
// transaction, recording the deployment.
func (s *DeploymentService) Import(ctx context.Context, principal acl.Principal, req ImportRequest) (*DeploymentResponse, error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}
	bundle := req.Bundle
	if bundle == nil {
		return nil, apperrors.ErrInvalidBundle.WithReason("a bundle is required")
	}

	version, err := semver.NewVersion(bundle.Version)
	if err != nil {
		return nil, validationOf(apperrors.InvalidArgument("semver", "bundle version must be a semantic version").WithPath("version"))
	}
	latest, err := s.latest(ctx, principal.OrgID)
	if err != nil {
		return nil, err
	}
	if latest != nil && !req.Force {
		current, err := semver.NewVersion(latest.Version)
		if err == nil && !version.GreaterThan(current) {
			return nil, apperrors.ErrStaleDeployment.WithReason(
				fmt.Sprintf("version %s is not newer than the deployed version %s", bundle.Version, latest.Version))
		}
	}

	if err := s.validate(bundle); err != nil {
		return nil, err
	}

	checksum, err := bundle.Checksum()
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(bundle)
	if err != nil {
		return nil, fmt.Errorf("failed to encode bundle: %w", err)
	}

	defs := make([]models.ObjectDefinition, 0, len(bundle.Objects))
	for i := range bundle.Objects {
		def, err := ToModel(principal.OrgID, &bundle.Objects[i])
		if err != nil {
			return nil, err
		}
		defs = append(defs, *def)
	}

	deployment := &models.Deployment{
		OrgID:      principal.OrgID,
		Version:    version.String(),
		Source:     bundle.Source,
		Checksum:   checksum,
		DeployedBy: principal.AccountID,
		Objects:    len(defs),
		Bundle:     raw,
	}
	if err := s.definitions.ReplaceAll(ctx, principal.OrgID, defs, deployment); err != nil {
		return nil, fmt.Errorf("failed to apply deployment: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"version":  deployment.Version,
		"source":   deployment.Source,
		"objects":  deployment.Objects,
		"checksum": checksum,
		"forced":   req.Force,
	}).Info("Deployment applied")
	return toDeploymentResponse(deployment), nil
}

// History lists the org's deployments, newest first
func (s *DeploymentService) History(ctx context.Context, principal acl.Principal, page Page) (*DeploymentListResponse, error) {
	if err := requireDeveloper(principal); err != nil {
		return nil, err
	}
	deployments, total, err := s.deployments.List(ctx, principal.OrgID, page.PageSize, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list deployments: %w", err)
	}
	data := make([]DeploymentResponse, 0, len(deployments))
	for i := range deployments {
		data = append(data, *toDeploymentResponse(&deployments[i]))
	}
	return &DeploymentListResponse{Data: data, ListMeta: page.meta(total)}, nil
}

// validate collects the faults of every definition in the bundle
func (s *DeploymentService) validate(bundle *Bundle) error {
	container := apperrors.NewValidation()
	seen := map[string]int{}
	for i := range bundle.Objects {
		obj := &bundle.Objects[i]
		prefix := fmt.Sprintf("objects.%d.", i)
		if first, ok := seen[obj.Name]; ok && obj.Name != "" {
			container.Add(apperrors.InvalidArgument("duplicate",
				fmt.Sprintf("object %s is already defined at objects.%d", obj.Name, first)).WithPath(prefix + "name"))
			continue
		}
		seen[obj.Name] = i
		s.objects.collect(obj, prefix, container)
	}
	if container.HasFaults() {
		return container
	}
	return nil
}

func (s *DeploymentService) latest(ctx context.Context, orgID uuid.UUID) (*models.Deployment, error) {
	latest, err := s.deployments.Latest(ctx, orgID)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest deployment: %w", err)
	}
	return latest, nil
}

func toDeploymentResponse(d *models.Deployment) *DeploymentResponse {
	return &DeploymentResponse{
		ID:         d.ID,
		Object:     "deployment",
		Version:    d.Version,
		Source:     d.Source,
		Checksum:   d.Checksum,
		DeployedBy: d.DeployedBy,
		Objects:    d.Objects,
		Created:    d.CreatedAt,
	}
}
