package handlers

import (
	"net/http"

	"cortex-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ObjectHandler handles HTTP requests for object definitions
type ObjectHandler struct {
	service service.ObjectServiceInterface
}

// NewObjectHandler creates a new object handler
func NewObjectHandler(service service.ObjectServiceInterface) *ObjectHandler {
	return &ObjectHandler{service: service}
}

// CreateObject handles POST /api/v1/orgs/:org/objects
// @Summary Define an object
// @Description Define a custom object with its properties, access lists and triggers. Every fault in the definition is reported at once.
// @Tags objects
// @Accept json
// @Produce json
// @Param org path string true "Org code"
// @Param object body service.ObjectRequest true "Object definition"
// @Success 201 {object} service.ObjectResponse
// @Failure 400 {object} apperrors.Fault "Validation fault"
// @Failure 409 {object} apperrors.Fault "Object name taken"
// @Security BearerAuth
// @Router /orgs/{org}/objects [post]
func (h *ObjectHandler) CreateObject(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req service.ObjectRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.Create(c.Request.Context(), p, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetObject handles GET /api/v1/orgs/:org/objects/:object
// @Summary Get an object definition
// @Tags objects
// @Produce json
// @Param org path string true "Org code"
// @Param object path string true "Object name"
// @Success 200 {object} service.ObjectResponse
// @Failure 404 {object} apperrors.Fault "Object not found"
// @Security BearerAuth
// @Router /orgs/{org}/objects/{object} [get]
func (h *ObjectHandler) GetObject(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	resp, err := h.service.Get(c.Request.Context(), p, c.Param("object"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListObjects handles GET /api/v1/orgs/:org/objects
// @Summary List object definitions
// @Tags objects
// @Produce json
// @Param org path string true "Org code"
// @Success 200 {array} service.ObjectResponse
// @Security BearerAuth
// @Router /orgs/{org}/objects [get]
func (h *ObjectHandler) ListObjects(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	resp, err := h.service.List(c.Request.Context(), p)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"object": "list", "data": resp})
}

// UpdateObject handles PUT /api/v1/orgs/:org/objects/:object
// @Summary Replace an object definition
// @Tags objects
// @Accept json
// @Produce json
// @Param org path string true "Org code"
// @Param object path string true "Object name"
// @Param definition body service.ObjectRequest true "Object definition"
// @Success 200 {object} service.ObjectResponse
// @Security BearerAuth
// @Router /orgs/{org}/objects/{object} [put]
func (h *ObjectHandler) UpdateObject(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req service.ObjectRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.Update(c.Request.Context(), p, c.Param("object"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteObject handles DELETE /api/v1/orgs/:org/objects/:object
// @Summary Delete an object definition
// @Description Refused while instances of the object exist
// @Tags objects
// @Param org path string true "Org code"
// @Param object path string true "Object name"
// @Success 204
// @Failure 409 {object} apperrors.Fault "Instances exist"
// @Security BearerAuth
// @Router /orgs/{org}/objects/{object} [delete]
func (h *ObjectHandler) DeleteObject(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), p, c.Param("object")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
