package auth

import (
	"context"
	"strings"

	"cortex-backend/internal/acl"
	"cortex-backend/internal/database/models"
	apperrors "cortex-backend/internal/errors"
	"cortex-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Gin context keys
const (
	keyOrg       = "cortex.org"
	keyPrincipal = "cortex.principal"
	keyClaims    = "cortex.claims"
)

type principalKey struct{}

// OrgResolver loads an enabled org by its code
type OrgResolver interface {
	Resolve(ctx context.Context, code string) (*models.Org, error)
}

// AuthMiddleware scopes requests to an org and authenticates callers
type AuthMiddleware struct {
	tokens *TokenService
	orgs   OrgResolver
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(tokens *TokenService, orgs OrgResolver) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, orgs: orgs}
}

// RequireOrg loads the org named by the :org route parameter
func (m *AuthMiddleware) RequireOrg() gin.HandlerFunc {
	return func(c *gin.Context) {
		org, err := m.orgs.Resolve(c.Request.Context(), c.Param("org"))
		if err != nil {
			abort(c, err)
			return
		}
		SetOrg(c, org)
		c.Request = c.Request.WithContext(logger.WithValues(c.Request.Context(), "", org.Code, ""))
		c.Next()
	}
}

// RequireAuth validates the bearer token against the route's org and sets the principal.
// Must run after RequireOrg.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abort(c, apperrors.ErrMissingToken)
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")
		if token == header || token == "" {
			abort(c, apperrors.ErrInvalidToken.WithReason("invalid authorization header format"))
			return
		}

		claims, err := m.tokens.Validate(token)
		if err != nil {
			abort(c, err)
			return
		}
		principal, err := claims.Principal()
		if err != nil {
			abort(c, apperrors.ErrInvalidToken.Wrap(err))
			return
		}

		org, ok := GetOrg(c)
		if !ok {
			abort(c, apperrors.ErrOrgNotFound)
			return
		}
		if principal.OrgID != org.ID {
			abort(c, apperrors.ErrWrongOrg)
			return
		}

		c.Set(keyClaims, claims)
		SetPrincipal(c, principal)
		ctx := WithPrincipal(c.Request.Context(), principal)
		c.Request = c.Request.WithContext(logger.WithValues(ctx, "", "", principal.AccountID.String()))
		c.Next()
	}
}

// RequireRole rejects principals holding none of roles. Administrators always pass.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		if !ok {
			abort(c, apperrors.ErrMissingToken)
			return
		}
		if p.IsAdmin() {
			c.Next()
			return
		}
		for _, r := range roles {
			if p.HasRole(r) {
				c.Next()
				return
			}
		}
		abort(c, apperrors.ErrRoleRequired)
	}
}

func abort(c *gin.Context, err error) {
	fault := apperrors.From(err)
	_ = c.Error(err)
	c.AbortWithStatusJSON(fault.Status, fault)
}

// SetOrg stores the route's org on the gin context
func SetOrg(c *gin.Context, org *models.Org) {
	c.Set(keyOrg, org)
}

// SetPrincipal stores the authenticated caller on the gin context
func SetPrincipal(c *gin.Context, p acl.Principal) {
	c.Set(keyPrincipal, p)
}

// GetOrg returns the org loaded by RequireOrg
func GetOrg(c *gin.Context) (*models.Org, bool) {
	v, ok := c.Get(keyOrg)
	if !ok {
		return nil, false
	}
	org, ok := v.(*models.Org)
	return org, ok
}

// GetPrincipal returns the authenticated caller
func GetPrincipal(c *gin.Context) (acl.Principal, bool) {
	v, ok := c.Get(keyPrincipal)
	if !ok {
		return acl.Principal{}, false
	}
	p, ok := v.(acl.Principal)
	return p, ok
}

// GetClaims returns the validated token claims
func GetClaims(c *gin.Context) (*Claims, bool) {
	v, ok := c.Get(keyClaims)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*Claims)
	return claims, ok
}

// WithPrincipal stores p on ctx
func WithPrincipal(ctx context.Context, p acl.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns the principal stored by WithPrincipal
func PrincipalFromContext(ctx context.Context) (acl.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(acl.Principal)
	return p, ok
}
