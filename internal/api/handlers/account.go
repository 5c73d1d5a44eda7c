package handlers

import (
	"net/http"

	"cortex-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AccountHandler handles HTTP requests for accounts
type AccountHandler struct {
	service service.AccountServiceInterface
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(service service.AccountServiceInterface) *AccountHandler {
	return &AccountHandler{service: service}
}

// CreateAccount handles POST /api/v1/orgs/:org/accounts
// @Summary Create an account
// @Tags accounts
// @Accept json
// @Produce json
// @Param org path string true "Org code"
// @Param account body service.CreateAccountRequest true "Account data"
// @Success 201 {object} service.AccountResponse
// @Failure 400 {object} apperrors.Fault "Validation fault"
// @Failure 409 {object} apperrors.Fault "Email taken"
// @Security BearerAuth
// @Router /orgs/{org}/accounts [post]
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req service.CreateAccountRequest
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

// GetAccount handles GET /api/v1/orgs/:org/accounts/:id
// @Summary Get an account
// @Tags accounts
// @Produce json
// @Param org path string true "Org code"
// @Param id path string true "Account ID (UUID)"
// @Success 200 {object} service.AccountResponse
// @Failure 404 {object} apperrors.Fault "Account not found"
// @Security BearerAuth
// @Router /orgs/{org}/accounts/{id} [get]
func (h *AccountHandler) GetAccount(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	resp, err := h.service.Get(c.Request.Context(), p, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Me handles GET /api/v1/orgs/:org/accounts/me
func (h *AccountHandler) Me(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	resp, err := h.service.Get(c.Request.Context(), p, p.AccountID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListAccounts handles GET /api/v1/orgs/:org/accounts
// @Summary List accounts
// @Tags accounts
// @Produce json
// @Param org path string true "Org code"
// @Param page query int false "Page number (1-based)"
// @Param pageSize query int false "Page size"
// @Success 200 {object} service.AccountListResponse
// @Security BearerAuth
// @Router /orgs/{org}/accounts [get]
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	page, ok := queryInt(c, "page")
	if !ok {
		return
	}
	pageSize, ok := queryInt(c, "pageSize")
	if !ok {
		return
	}

	resp, err := h.service.List(c.Request.Context(), p, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateAccount handles PUT /api/v1/orgs/:org/accounts/:id
// @Summary Update an account
// @Tags accounts
// @Accept json
// @Produce json
// @Param org path string true "Org code"
// @Param id path string true "Account ID (UUID)"
// @Param account body service.UpdateAccountRequest true "Changes"
// @Success 200 {object} service.AccountResponse
// @Security BearerAuth
// @Router /orgs/{org}/accounts/{id} [put]
func (h *AccountHandler) UpdateAccount(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req service.UpdateAccountRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.Update(c.Request.Context(), p, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteAccount handles DELETE /api/v1/orgs/:org/accounts/:id
// @Summary Delete an account
// @Tags accounts
// @Param org path string true "Org code"
// @Param id path string true "Account ID (UUID)"
// @Success 204
// @Security BearerAuth
// @Router /orgs/{org}/accounts/{id} [delete]
func (h *AccountHandler) DeleteAccount(c *gin.Context) {
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
