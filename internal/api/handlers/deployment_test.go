package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"cortex-backend/internal/acl"
	apperrors "cortex-backend/internal/errors"
	"cortex-backend/internal/mocks"
	"cortex-backend/internal/service"
	"cortex-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gopkg.in/yaml.v3"
)

const yamlBundle = `version: 2.0.0
source: staging
objects:
  - name: c_ticket
    label: Ticket
`

// DeploymentHandlerTestSuite defines the test suite for DeploymentHandler
type DeploymentHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockDeploymentServiceInterface
	httpSuite   *testutils.HTTPTestSuite
	admin       acl.Principal
}

// SetupTest sets up the test suite
func (suite *DeploymentHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockDeploymentServiceInterface(suite.ctrl)
	suite.httpSuite = testutils.SetupHTTPTest()
	org := testutils.NewOrgFactory().WithCode("acme")
	suite.admin = testPrincipal(org.ID, acl.RoleAdministrator)

	handler := NewDeploymentHandler(suite.mockService)
	group := suite.httpSuite.Router.Group("/api/v1/orgs/:org/deployments", authenticatedAs(org, suite.admin))
	{
		group.GET("", handler.ListDeployments)
		group.GET("/export", handler.ExportBundle)
		group.POST("/import", handler.ImportBundle)
	}
}

// TearDownTest cleans up after each test
func (suite *DeploymentHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *DeploymentHandlerTestSuite) exported() *service.Bundle {
	return &service.Bundle{
		Version:  "1.4.0",
		Source:   "acme",
		Exported: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Objects:  []service.ObjectRequest{{Name: "c_ticket", Label: "Ticket"}},
	}
}

func (suite *DeploymentHandlerTestSuite) TestExportJSON() {
	suite.mockService.EXPECT().Export(gomock.Any(), suite.admin, "").Return(suite.exported(), nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/orgs/acme/deployments/export", nil)

	var bundle service.Bundle
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &bundle)
	suite.Equal("1.4.0", bundle.Version)
	suite.Require().Len(bundle.Objects, 1)
	suite.Equal(`attachment; filename="acme-1.4.0.json"`, recorder.Header().Get("Content-Disposition"))
}

func (suite *DeploymentHandlerTestSuite) TestExportYAML() {
	suite.mockService.EXPECT().Export(gomock.Any(), suite.admin, "1.4.0").Return(suite.exported(), nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/orgs/acme/deployments/export?format=yaml&version=1.4.0", nil)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Equal("application/yaml; charset=utf-8", recorder.Header().Get("Content-Type"))
	var bundle service.Bundle
	suite.Require().NoError(yaml.Unmarshal(recorder.Body.Bytes(), &bundle))
	suite.Equal("acme", bundle.Source)
	suite.Equal("c_ticket", bundle.Objects[0].Name)
}

func (suite *DeploymentHandlerTestSuite) TestExportUnknownFormat() {
	suite.mockService.EXPECT().Export(gomock.Any(), suite.admin, "").Return(suite.exported(), nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/orgs/acme/deployments/export?format=xml", nil)
	testutils.AssertFaultResponse(suite.T(), recorder, http.StatusBadRequest, "cortex.invalidArgument.format")
}

func (suite *DeploymentHandlerTestSuite) TestImportYAMLWithForce() {
	deploymentID := uuid.New()
	suite.mockService.EXPECT().Import(gomock.Any(), suite.admin, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ acl.Principal, req service.ImportRequest) (*service.DeploymentResponse, error) {
			suite.True(req.Force)
			suite.Equal("2.0.0", req.Bundle.Version)
			suite.Equal("staging", req.Bundle.Source)
			suite.Require().Len(req.Bundle.Objects, 1)
			return &service.DeploymentResponse{ID: deploymentID, Object: "deployment", Version: "2.0.0", Objects: 1}, nil
		})

	recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/v1/orgs/acme/deployments/import?force=true",
		yamlBundle, map[string]string{"Content-Type": "application/yaml"})

	var resp service.DeploymentResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &resp)
	suite.Equal(deploymentID, resp.ID)
}

func (suite *DeploymentHandlerTestSuite) TestImportStale() {
	suite.mockService.EXPECT().Import(gomock.Any(), suite.admin, gomock.Any()).Return(nil, apperrors.ErrStaleDeployment)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/orgs/acme/deployments/import",
		`{"version":"1.0.0","source":"staging","objects":[]}`)
	testutils.AssertFaultResponse(suite.T(), recorder, http.StatusConflict, apperrors.ErrStaleDeployment.ErrCode)
}

func (suite *DeploymentHandlerTestSuite) TestImportRejectsUnknownFields() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/orgs/acme/deployments/import",
		`{"version":"1.0.0","flavour":"vanilla"}`)
	testutils.AssertFaultResponse(suite.T(), recorder, http.StatusBadRequest, apperrors.ErrInvalidBundle.ErrCode)
}

func (suite *DeploymentHandlerTestSuite) TestImportBadForce() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/orgs/acme/deployments/import?force=maybe", `{}`)

	fault := testutils.AssertFaultResponse(suite.T(), recorder, http.StatusBadRequest, "cortex.invalidArgument.force")
	suite.Equal("force", fault["path"])
}

func (suite *DeploymentHandlerTestSuite) TestListDeployments() {
	page, _ := service.NewPage(1, 10)
	suite.mockService.EXPECT().History(gomock.Any(), suite.admin, page).Return(&service.DeploymentListResponse{
		Data:     []service.DeploymentResponse{{Version: "1.0.0"}},
		ListMeta: service.ListMeta{Total: 1, Page: 1, PageSize: 10},
	}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/orgs/acme/deployments?pageSize=10", nil)

	var resp service.DeploymentListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	suite.Len(resp.Data, 1)
}

// TestDeploymentHandlerTestSuite runs the test suite
func TestDeploymentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DeploymentHandlerTestSuite))
}
