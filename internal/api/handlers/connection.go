package handlers

import (
	"net/http"

	"cortex-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ConnectionHandler handles HTTP requests for connections
type ConnectionHandler struct {
	service service.ConnectionServiceInterface
}

// NewConnectionHandler creates a new connection handler
func NewConnectionHandler(service service.ConnectionServiceInterface) *ConnectionHandler {
	return &ConnectionHandler{service: service}
}

// CreateConnection handles POST /api/v1/orgs/:org/objects/:object/instances/:id/connections
// @Summary Share an instance with an account
// @Tags connections
// @Accept json
// @Produce json
// @Param org path string true "Org code"
// @Param object path string true "Object name"
// @Param id path string true "Instance ID (UUID)"
// @Param connection body service.CreateConnectionRequest true "Target and access level"
// @Success 201 {object} service.ConnectionResponse
// @Failure 403 {object} apperrors.Fault "Share access required"
// @Security BearerAuth
// @Router /orgs/{org}/objects/{object}/instances/{id}/connections [post]
func (h *ConnectionHandler) CreateConnection(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req service.CreateConnectionRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.Create(c.Request.Context(), p, c.Param("object"), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListInstanceConnections handles GET /api/v1/orgs/:org/objects/:object/instances/:id/connections
// @Summary List the connections of an instance
// @Tags connections
// @Produce json
// @Param org path string true "Org code"
// @Param object path string true "Object name"
// @Param id path string true "Instance ID (UUID)"
// @Success 200 {array} service.ConnectionResponse
// @Security BearerAuth
// @Router /orgs/{org}/objects/{object}/instances/{id}/connections [get]
func (h *ConnectionHandler) ListInstanceConnections(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	resp, err := h.service.ListForContext(c.Request.Context(), p, c.Param("object"), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"object": "list", "data": resp})
}

// ListMyConnections handles GET /api/v1/orgs/:org/connections
// @Summary List connections offered to the caller
// @Tags connections
// @Produce json
// @Param org path string true "Org code"
// @Param page query int false "Page number (1-based)"
// @Param pageSize query int false "Page size"
// @Success 200 {object} service.ConnectionListResponse
// @Security BearerAuth
// @Router /orgs/{org}/connections [get]
func (h *ConnectionHandler) ListMyConnections(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	page, ok := queryPage(c)
	if !ok {
		return
	}

	resp, err := h.service.ListMine(c.Request.Context(), p, page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// AcceptConnection handles POST /api/v1/orgs/:org/connections/:id/accept
func (h *ConnectionHandler) AcceptConnection(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	resp, err := h.service.Accept(c.Request.Context(), p, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RejectConnection handles POST /api/v1/orgs/:org/connections/:id/reject
func (h *ConnectionHandler) RejectConnection(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Reject(c.Request.Context(), p, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteConnection handles DELETE /api/v1/orgs/:org/connections/:id
func (h *ConnectionHandler) DeleteConnection(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), p, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
