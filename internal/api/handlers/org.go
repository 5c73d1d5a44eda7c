package handlers

import (
	"crypto/subtle"
	"net/http"

	"cortex-backend/internal/auth"
	apperrors "cortex-backend/internal/errors"
	"cortex-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProvisioningKeyHeader carries the operator key required to create and remove orgs
const ProvisioningKeyHeader = "X-Provisioning-Key"

// OrgHandler handles HTTP requests for orgs and logins
type OrgHandler struct {
	orgs            service.OrgServiceInterface
	accounts        service.AccountServiceInterface
	provisioningKey string
}

// NewOrgHandler creates a new org handler
func NewOrgHandler(orgs service.OrgServiceInterface, accounts service.AccountServiceInterface, provisioningKey string) *OrgHandler {
	return &OrgHandler{orgs: orgs, accounts: accounts, provisioningKey: provisioningKey}
}

// RequireProvisioningKey rejects requests that do not carry the provisioning key
func (h *OrgHandler) RequireProvisioningKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(ProvisioningKeyHeader)
		if h.provisioningKey == "" || subtle.ConstantTimeCompare([]byte(key), []byte(h.provisioningKey)) != 1 {
			respondError(c, apperrors.ErrProvisioningDenied)
			return
		}
		c.Next()
	}
}

// Provision handles POST /api/v1/orgs
// @Summary Provision an org
// @Description Create an org with the built-in roles and its first administrator
// @Tags orgs
// @Accept json
// @Produce json
// @Param org body service.ProvisionRequest true "Org and administrator"
// @Success 201 {object} service.ProvisionResponse
// @Failure 400 {object} apperrors.Fault "Validation fault"
// @Failure 403 {object} apperrors.Fault "Missing or wrong provisioning key"
// @Failure 409 {object} apperrors.Fault "Org code taken"
// @Router /orgs [post]
func (h *OrgHandler) Provision(c *gin.Context) {
	var req service.ProvisionRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.orgs.Provision(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListOrgs handles GET /api/v1/orgs
// @Summary List orgs
// @Tags orgs
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param pageSize query int false "Page size"
// @Success 200 {object} service.OrgListResponse
// @Router /orgs [get]
func (h *OrgHandler) ListOrgs(c *gin.Context) {
	page, ok := queryInt(c, "page")
	if !ok {
		return
	}
	pageSize, ok := queryInt(c, "pageSize")
	if !ok {
		return
	}

	resp, err := h.orgs.List(c.Request.Context(), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetOrg handles GET /api/v1/orgs/:org
// @Summary Get an org by code
// @Tags orgs
// @Produce json
// @Param org path string true "Org code"
// @Success 200 {object} service.OrgResponse
// @Failure 404 {object} apperrors.Fault "Org not found"
// @Router /orgs/{org} [get]
func (h *OrgHandler) GetOrg(c *gin.Context) {
	resp, err := h.orgs.GetByCode(c.Request.Context(), c.Param("org"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateOrg handles PUT /api/v1/orgs/:org
// @Summary Update the caller's org
// @Tags orgs
// @Accept json
// @Produce json
// @Param org path string true "Org code"
// @Param org body service.UpdateOrgRequest true "Changes"
// @Success 200 {object} service.OrgResponse
// @Failure 403 {object} apperrors.Fault "Administrator role required"
// @Security BearerAuth
// @Router /orgs/{org} [put]
func (h *OrgHandler) UpdateOrg(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req service.UpdateOrgRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.orgs.Update(c.Request.Context(), p, p.OrgID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteOrg handles DELETE /api/v1/orgs/:org
// @Summary Remove an org and everything it owns
// @Tags orgs
// @Param org path string true "Org code"
// @Success 204
// @Router /orgs/{org} [delete]
func (h *OrgHandler) DeleteOrg(c *gin.Context) {
	org, err := h.orgs.GetByCode(c.Request.Context(), c.Param("org"))
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.orgs.Delete(c.Request.Context(), org.ID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Login handles POST /api/v1/orgs/:org/login
// @Summary Log in to an org
// @Tags auth
// @Accept json
// @Produce json
// @Param org path string true "Org code"
// @Param credentials body service.LoginRequest true "Email and password"
// @Success 200 {object} service.LoginResponse
// @Failure 401 {object} apperrors.Fault "Invalid credentials"
// @Router /orgs/{org}/login [post]
func (h *OrgHandler) Login(c *gin.Context) {
	org, ok := auth.GetOrg(c)
	if !ok {
		respondError(c, apperrors.ErrOrgNotFound)
		return
	}
	var req service.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.accounts.Authenticate(c.Request.Context(), org, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
