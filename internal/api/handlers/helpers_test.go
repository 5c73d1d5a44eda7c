package handlers

import (
	"cortex-backend/internal/acl"
	"cortex-backend/internal/auth"
	"cortex-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// authenticatedAs stands in for auth.RequireOrg and auth.RequireAuth in handler tests
func authenticatedAs(org *models.Org, p acl.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth.SetOrg(c, org)
		auth.SetPrincipal(c, p)
		c.Next()
	}
}

func testPrincipal(orgID uuid.UUID, roles ...string) acl.Principal {
	return acl.Principal{OrgID: orgID, AccountID: uuid.New(), Email: "someone@example.com", Roles: roles}
}
