package handlers

import (
	"net/http"
	"strconv"

	"cortex-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TotalCountHeader carries the number of matching cache entries on HEAD /cache
const TotalCountHeader = "X-Total-Count"

// CacheHandler handles HTTP requests for the org cache
type CacheHandler struct {
	service service.CacheServiceInterface
}

// NewCacheHandler creates a new cache handler
func NewCacheHandler(service service.CacheServiceInterface) *CacheHandler {
	return &CacheHandler{service: service}
}

// ListCache handles GET /api/v1/orgs/:org/cache
// @Summary List cache entries
// @Tags cache
// @Produce json
// @Param org path string true "Org code"
// @Param prefix query string false "Key prefix"
// @Param limit query int false "Maximum entries returned"
// @Success 200 {object} service.CacheListResponse
// @Security BearerAuth
// @Router /orgs/{org}/cache [get]
func (h *CacheHandler) ListCache(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	limit, ok := queryInt(c, "limit")
	if !ok {
		return
	}

	resp, err := h.service.List(c.Request.Context(), p, c.Query("prefix"), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CountCache handles HEAD /api/v1/orgs/:org/cache
func (h *CacheHandler) CountCache(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	total, err := h.service.Count(c.Request.Context(), p, c.Query("prefix"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header(TotalCountHeader, strconv.FormatInt(total, 10))
	c.Status(http.StatusNoContent)
}

// ClearCache handles DELETE /api/v1/orgs/:org/cache
// @Summary Clear cache entries
// @Tags cache
// @Produce json
// @Param org path string true "Org code"
// @Param prefix query string false "Key prefix; empty clears everything"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /orgs/{org}/cache [delete]
func (h *CacheHandler) ClearCache(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	cleared, err := h.service.Clear(c.Request.Context(), p, c.Query("prefix"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cleared": cleared})
}

// GetCacheKey handles GET /api/v1/orgs/:org/cache/:key
func (h *CacheHandler) GetCacheKey(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	resp, err := h.service.Get(c.Request.Context(), p, c.Param("key"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// HasCacheKey handles HEAD /api/v1/orgs/:org/cache/:key
func (h *CacheHandler) HasCacheKey(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	has, err := h.service.Has(c.Request.Context(), p, c.Param("key"))
	if err != nil {
		respondError(c, err)
		return
	}
	if !has {
		c.Status(http.StatusNotFound)
		return
	}

	c.Status(http.StatusNoContent)
}

// SetCacheKey handles PUT /api/v1/orgs/:org/cache/:key
// @Summary Store a JSON value
// @Tags cache
// @Accept json
// @Produce json
// @Param org path string true "Org code"
// @Param key path string true "Cache key"
// @Param value body service.SetCacheRequest true "Value and ttl in seconds"
// @Success 200 {object} service.CacheValueResponse
// @Security BearerAuth
// @Router /orgs/{org}/cache/{key} [put]
func (h *CacheHandler) SetCacheKey(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req service.SetCacheRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.Set(c.Request.Context(), p, c.Param("key"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteCacheKey handles DELETE /api/v1/orgs/:org/cache/:key
func (h *CacheHandler) DeleteCacheKey(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), p, c.Param("key")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
