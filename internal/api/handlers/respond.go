package handlers

import (
	"errors"
	"io"
	"strconv"

	"cortex-backend/internal/acl"
	"cortex-backend/internal/auth"
	apperrors "cortex-backend/internal/errors"
	"cortex-backend/internal/logger"
	"cortex-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// respondError serializes err as a fault. Faults outside the cortex namespaces
// are logged with their cause and returned as cortex.error.unspecified.
func respondError(c *gin.Context, err error) {
	fault := apperrors.From(err)
	if fault.Namespace() == apperrors.NamespaceError {
		logger.WithContext(c.Request.Context()).WithError(apperrors.Cause(err)).
			WithField("path", c.Request.URL.Path).Error("Unexpected error")
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(fault.Status, fault)
}

// bindJSON decodes the request body into req, reporting malformed bodies as cortex.invalidArgument.body
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		if errors.Is(err, io.EOF) {
			respondError(c, apperrors.ErrInvalidBody.WithReason("request body is required"))
			return false
		}
		respondError(c, apperrors.ErrInvalidBody.WithReason(err.Error()).Wrap(err))
		return false
	}
	return true
}

// principal returns the authenticated caller set by auth.RequireAuth
func principal(c *gin.Context) (acl.Principal, bool) {
	p, ok := auth.GetPrincipal(c)
	if !ok {
		respondError(c, apperrors.ErrMissingToken)
		return acl.Principal{}, false
	}
	return p, true
}

// paramID parses a UUID route parameter
func paramID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		respondError(c, apperrors.ErrInvalidID.WithReason("invalid "+name+": invalid UUID format").WithPath(name))
		return uuid.Nil, false
	}
	return id, true
}

// queryInt reads an optional integer query parameter
func queryInt(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		respondError(c, apperrors.ErrInvalidPaging.WithReason(name+" must be an integer").WithPath(name))
		return 0, false
	}
	return n, true
}

// queryPage reads the page and pageSize query parameters
func queryPage(c *gin.Context) (service.Page, bool) {
	page, ok := queryInt(c, "page")
	if !ok {
		return service.Page{}, false
	}
	pageSize, ok := queryInt(c, "pageSize")
	if !ok {
		return service.Page{}, false
	}
	p, err := service.NewPage(page, pageSize)
	if err != nil {
		respondError(c, err)
		return service.Page{}, false
	}
	return p, true
}
