package handlers

import (
	"encoding/json"
	"net/http"

	"cortex-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// InstanceHandler handles HTTP requests for object instances
type InstanceHandler struct {
	service service.InstanceServiceInterface
}

// NewInstanceHandler creates a new instance handler
func NewInstanceHandler(service service.InstanceServiceInterface) *InstanceHandler {
	return &InstanceHandler{service: service}
}

// CreateInstance handles POST /api/v1/orgs/:org/objects/:object/instances
// @Summary Create an instance
// @Description The body is the instance document. An "acl" key sets the instance access list.
// @Tags instances
// @Accept json
// @Produce json
// @Param org path string true "Org code"
// @Param object path string true "Object name"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} apperrors.Fault "Validation fault"
// @Failure 403 {object} apperrors.Fault "Create access denied"
// @Security BearerAuth
// @Router /orgs/{org}/objects/{object}/instances [post]
func (h *InstanceHandler) CreateInstance(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var input map[string]interface{}
	if !bindJSON(c, &input) {
		return
	}

	resp, err := h.service.Create(c.Request.Context(), p, c.Param("object"), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetInstance handles GET /api/v1/orgs/:org/objects/:object/instances/:id
// @Summary Get an instance
// @Description Properties above the caller's access level are left out
// @Tags instances
// @Produce json
// @Param org path string true "Org code"
// @Param object path string true "Object name"
// @Param id path string true "Instance ID (UUID)"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} apperrors.Fault "Instance not found"
// @Security BearerAuth
// @Router /orgs/{org}/objects/{object}/instances/{id} [get]
func (h *InstanceHandler) GetInstance(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	resp, err := h.service.Get(c.Request.Context(), p, c.Param("object"), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListInstances handles GET /api/v1/orgs/:org/objects/:object/instances
// @Summary List instances
// @Tags instances
// @Produce json
// @Param org path string true "Org code"
// @Param object path string true "Object name"
// @Param where query string false "JSON object of property equality filters"
// @Param page query int false "Page number (1-based)"
// @Param pageSize query int false "Page size"
// @Success 200 {object} service.InstanceListResponse
// @Security BearerAuth
// @Router /orgs/{org}/objects/{object}/instances [get]
func (h *InstanceHandler) ListInstances(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	page, ok := queryPage(c)
	if !ok {
		return
	}

	req := service.ListInstancesRequest{Page: page}
	if where := c.Query("where"); where != "" {
		req.Where = json.RawMessage(where)
	}

	resp, err := h.service.List(c.Request.Context(), p, c.Param("object"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateInstance handles PATCH /api/v1/orgs/:org/objects/:object/instances/:id
// @Summary Patch an instance
// @Description Top-level keys of the body replace the stored values; null removes a value
// @Tags instances
// @Accept json
// @Produce json
// @Param org path string true "Org code"
// @Param object path string true "Object name"
// @Param id path string true "Instance ID (UUID)"
// @Success 200 {object} map[string]interface{}
// @Failure 409 {object} apperrors.Fault "Concurrent modification"
// @Security BearerAuth
// @Router /orgs/{org}/objects/{object}/instances/{id} [patch]
func (h *InstanceHandler) UpdateInstance(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var patch map[string]interface{}
	if !bindJSON(c, &patch) {
		return
	}

	resp, err := h.service.Update(c.Request.Context(), p, c.Param("object"), id, patch)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteInstance handles DELETE /api/v1/orgs/:org/objects/:object/instances/:id
// @Summary Delete an instance
// @Tags instances
// @Param org path string true "Org code"
// @Param object path string true "Object name"
// @Param id path string true "Instance ID (UUID)"
// @Success 204
// @Security BearerAuth
// @Router /orgs/{org}/objects/{object}/instances/{id} [delete]
func (h *InstanceHandler) DeleteInstance(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), p, c.Param("object"), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
