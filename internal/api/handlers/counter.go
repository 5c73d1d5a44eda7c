package handlers

import (
	"net/http"

	"cortex-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CounterHandler handles HTTP requests for counters
type CounterHandler struct {
	service service.CounterServiceInterface
}

// NewCounterHandler creates a new counter handler
func NewCounterHandler(service service.CounterServiceInterface) *CounterHandler {
	return &CounterHandler{service: service}
}

// NextRequest is the optional body of a counter increment
type NextRequest struct {
	By int64 `json:"by"`
}

// ListCounters handles GET /api/v1/orgs/:org/counters
// @Summary List counters
// @Tags counters
// @Produce json
// @Param org path string true "Org code"
// @Param prefix query string false "Name prefix"
// @Success 200 {object} service.CounterListResponse
// @Security BearerAuth
// @Router /orgs/{org}/counters [get]
func (h *CounterHandler) ListCounters(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	page, ok := queryPage(c)
	if !ok {
		return
	}

	resp, err := h.service.List(c.Request.Context(), p, c.Query("prefix"), page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetCounter handles GET /api/v1/orgs/:org/counters/:name
func (h *CounterHandler) GetCounter(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	resp, err := h.service.Get(c.Request.Context(), p, c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// NextCounter handles POST /api/v1/orgs/:org/counters/:name/next
// @Summary Increment a counter
// @Description The body is optional; "by" defaults to 1
// @Tags counters
// @Accept json
// @Produce json
// @Param org path string true "Org code"
// @Param name path string true "Counter name"
// @Success 200 {object} service.CounterResponse
// @Security BearerAuth
// @Router /orgs/{org}/counters/{name}/next [post]
func (h *CounterHandler) NextCounter(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req NextRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.Next(c.Request.Context(), p, c.Param("name"), req.By)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ResetCounter handles DELETE /api/v1/orgs/:org/counters/:name
func (h *CounterHandler) ResetCounter(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	if err := h.service.Reset(c.Request.Context(), p, c.Param("name")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
