package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	apperrors "cortex-backend/internal/errors"
	"cortex-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// maxBundleBytes bounds an uploaded deployment bundle
const maxBundleBytes = 8 << 20

// DeploymentHandler handles HTTP requests for deployments
type DeploymentHandler struct {
	service service.DeploymentServiceInterface
}

// NewDeploymentHandler creates a new deployment handler
func NewDeploymentHandler(service service.DeploymentServiceInterface) *DeploymentHandler {
	return &DeploymentHandler{service: service}
}

// ExportBundle handles GET /api/v1/orgs/:org/deployments/export
// @Summary Export the org's object definitions
// @Tags deployments
// @Produce json
// @Produce application/yaml
// @Param org path string true "Org code"
// @Param version query string false "Bundle version (semver); defaults to the last deployed version"
// @Param format query string false "json or yaml"
// @Success 200 {object} service.Bundle
// @Security BearerAuth
// @Router /orgs/{org}/deployments/export [get]
func (h *DeploymentHandler) ExportBundle(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	format := c.DefaultQuery("format", service.FormatJSON)

	bundle, err := h.service.Export(c.Request.Context(), p, c.Query("version"))
	if err != nil {
		respondError(c, err)
		return
	}
	data, err := bundle.Encode(format)
	if err != nil {
		respondError(c, err)
		return
	}

	contentType := "application/json; charset=utf-8"
	if format == service.FormatYAML {
		contentType = "application/yaml; charset=utf-8"
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s-%s.%s"`, bundle.Source, bundle.Version, format))
	c.Data(http.StatusOK, contentType, data)
}

// ImportBundle handles POST /api/v1/orgs/:org/deployments/import
// @Summary Import a bundle of object definitions
// @Description The body is a bundle in JSON, or YAML when the content type says so
// @Tags deployments
// @Accept json
// @Accept application/yaml
// @Produce json
// @Param org path string true "Org code"
// @Param force query bool false "Apply even when the version is not newer"
// @Success 201 {object} service.DeploymentResponse
// @Failure 400 {object} apperrors.Fault "Invalid bundle"
// @Failure 409 {object} apperrors.Fault "Stale version"
// @Security BearerAuth
// @Router /orgs/{org}/deployments/import [post]
func (h *DeploymentHandler) ImportBundle(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	force := false
	if raw := c.Query("force"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(c, apperrors.InvalidArgument("force", "force must be a boolean").WithPath("force"))
			return
		}
		force = parsed
	}

	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBundleBytes+1))
	if err != nil {
		respondError(c, apperrors.ErrInvalidBody.Wrap(err))
		return
	}
	if len(data) > maxBundleBytes {
		respondError(c, apperrors.ErrInvalidBundle.WithReason("bundle is too large"))
		return
	}
	bundle, err := service.DecodeBundle(data, c.ContentType())
	if err != nil {
		respondError(c, err)
		return
	}

	resp, err := h.service.Import(c.Request.Context(), p, service.ImportRequest{Bundle: bundle, Force: force})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListDeployments handles GET /api/v1/orgs/:org/deployments
func (h *DeploymentHandler) ListDeployments(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	page, ok := queryPage(c)
	if !ok {
		return
	}

	resp, err := h.service.History(c.Request.Context(), p, page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
