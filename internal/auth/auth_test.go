package auth

import (
	"context"
	"net/http"
	"testing"
	"time"

	"cortex-backend/internal/acl"
	"cortex-backend/internal/database/models"
	apperrors "cortex-backend/internal/errors"
	"cortex-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type stubOrgs map[string]*models.Org

func (s stubOrgs) Resolve(_ context.Context, code string) (*models.Org, error) {
	org, ok := s[code]
	if !ok {
		return nil, apperrors.ErrOrgNotFound
	}
	if !org.Enabled() {
		return nil, apperrors.ErrOrgDisabled
	}
	return org, nil
}

func TestNewTokenService(t *testing.T) {
	_, err := NewTokenService("", time.Hour)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "JWT secret is required")

	_, err = NewTokenService("secret", 0)
	assert.Error(t, err)
}

func TestIssueAndValidate(t *testing.T) {
	factories := testutils.NewFactorySet()
	org := factories.Org.Create()
	account := factories.Account.WithRoles(acl.RoleDeveloper)
	account.OrgID = org.ID

	tokens, err := NewTokenService("test-secret", time.Hour)
	require.NoError(t, err)

	issued, err := tokens.Issue(org, account)
	require.NoError(t, err)
	assert.Equal(t, "Bearer", issued.TokenType)
	assert.Equal(t, int64(3600), issued.ExpiresIn)

	claims, err := tokens.Validate(issued.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, org.ID.String(), claims.Org)
	assert.Equal(t, []string{acl.RoleDeveloper}, claims.Roles)

	principal, err := claims.Principal()
	require.NoError(t, err)
	assert.Equal(t, account.ID, principal.AccountID)
	assert.Equal(t, org.ID, principal.OrgID)
	assert.True(t, principal.IsDeveloper())

	t.Run("wrong secret", func(t *testing.T) {
		other, _ := NewTokenService("other-secret", time.Hour)
		_, err := other.Validate(issued.AccessToken)
		assert.True(t, apperrors.IsUnauthorized(err))
	})

	t.Run("expired", func(t *testing.T) {
		later, _ := NewTokenService("test-secret", time.Hour)
		later.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err := later.Validate(issued.AccessToken)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
		assert.Contains(t, err.Error(), "expired")
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := tokens.Validate("not.a.token")
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}

// MiddlewareTestSuite drives RequireOrg and RequireAuth through a gin router
type MiddlewareTestSuite struct {
	suite.Suite
	http    *testutils.HTTPTestSuite
	tokens  *TokenService
	org     *models.Org
	other   *models.Org
	account *models.Account
}

func (suite *MiddlewareTestSuite) SetupTest() {
	factories := testutils.NewFactorySet()
	suite.org = factories.Org.WithCode("acme")
	suite.other = factories.Org.WithCode("globex")
	disabled := factories.Org.WithCode("initech")
	disabled.State = models.OrgStateDisabled
	suite.account = factories.Account.WithRoles(acl.RoleSupport)
	suite.account.OrgID = suite.org.ID

	suite.tokens, _ = NewTokenService("test-secret", time.Hour)
	mw := NewAuthMiddleware(suite.tokens, stubOrgs{"acme": suite.org, "globex": suite.other, "initech": disabled})

	suite.http = testutils.SetupHTTPTest()
	group := suite.http.Router.Group("/orgs/:org", mw.RequireOrg())
	group.GET("/open", func(c *gin.Context) {
		org, _ := GetOrg(c)
		c.JSON(http.StatusOK, gin.H{"org": org.Code})
	})
	secured := group.Group("", mw.RequireAuth())
	secured.GET("/me", func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		suite.True(ok)
		fromCtx, ok := PrincipalFromContext(c.Request.Context())
		suite.True(ok)
		suite.Equal(p.AccountID, fromCtx.AccountID)
		c.JSON(http.StatusOK, gin.H{"account": p.AccountID.String()})
	})
	secured.GET("/admin", RequireRole(acl.RoleDeveloper), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
}

func (suite *MiddlewareTestSuite) token(org *models.Org) map[string]string {
	issued, err := suite.tokens.Issue(org, suite.account)
	suite.Require().NoError(err)
	return testutils.BearerHeader(issued.AccessToken)
}

func (suite *MiddlewareTestSuite) TestOrgResolution() {
	var body map[string]string
	testutils.AssertJSONResponse(suite.T(), suite.http.MakeRequest(http.MethodGet, "/orgs/acme/open", nil), http.StatusOK, &body)
	suite.Equal("acme", body["org"])

	testutils.AssertFaultResponse(suite.T(), suite.http.MakeRequest(http.MethodGet, "/orgs/nope/open", nil),
		http.StatusNotFound, "cortex.notFound.org")
	testutils.AssertFaultResponse(suite.T(), suite.http.MakeRequest(http.MethodGet, "/orgs/initech/open", nil),
		http.StatusForbidden, "cortex.accessDenied.orgDisabled")
}

func (suite *MiddlewareTestSuite) TestRequireAuth() {
	var body map[string]string
	rec := suite.http.MakeRequestWithHeaders(http.MethodGet, "/orgs/acme/me", nil, suite.token(suite.org))
	testutils.AssertJSONResponse(suite.T(), rec, http.StatusOK, &body)
	suite.Equal(suite.account.ID.String(), body["account"])

	testutils.AssertFaultResponse(suite.T(), suite.http.MakeRequest(http.MethodGet, "/orgs/acme/me", nil),
		http.StatusUnauthorized, "cortex.unauthorized.missingToken")
	testutils.AssertFaultResponse(suite.T(),
		suite.http.MakeRequestWithHeaders(http.MethodGet, "/orgs/acme/me", nil, map[string]string{"Authorization": "Token abc"}),
		http.StatusUnauthorized, "cortex.unauthorized.invalidToken")
}

func (suite *MiddlewareTestSuite) TestTokenForAnotherOrg() {
	rec := suite.http.MakeRequestWithHeaders(http.MethodGet, "/orgs/globex/me", nil, suite.token(suite.org))
	testutils.AssertFaultResponse(suite.T(), rec, http.StatusUnauthorized, "cortex.unauthorized.wrongOrg")
}

func (suite *MiddlewareTestSuite) TestRequireRole() {
	rec := suite.http.MakeRequestWithHeaders(http.MethodGet, "/orgs/acme/admin", nil, suite.token(suite.org))
	testutils.AssertFaultResponse(suite.T(), rec, http.StatusForbidden, "cortex.accessDenied.role")
}

func TestMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(MiddlewareTestSuite))
}
