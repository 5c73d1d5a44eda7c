package handlers

import (
	"context"
	"net/http"
	"testing"

	"cortex-backend/internal/acl"
	apperrors "cortex-backend/internal/errors"
	"cortex-backend/internal/mocks"
	"cortex-backend/internal/service"
	"cortex-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ObjectHandlerTestSuite defines the test suite for ObjectHandler and AccountHandler
type ObjectHandlerTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockObjectService  *mocks.MockObjectServiceInterface
	mockAccountService *mocks.MockAccountServiceInterface
	httpSuite          *testutils.HTTPTestSuite
	developer          acl.Principal
}

// SetupTest sets up the test suite
func (suite *ObjectHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockObjectService = mocks.NewMockObjectServiceInterface(suite.ctrl)
	suite.mockAccountService = mocks.NewMockAccountServiceInterface(suite.ctrl)
	suite.httpSuite = testutils.SetupHTTPTest()
	org := testutils.NewOrgFactory().WithCode("acme")
	suite.developer = testPrincipal(org.ID, acl.RoleDeveloper)

	objects := NewObjectHandler(suite.mockObjectService)
	accounts := NewAccountHandler(suite.mockAccountService)
	scoped := suite.httpSuite.Router.Group("/api/v1/orgs/:org", authenticatedAs(org, suite.developer))
	{
		scoped.POST("/objects", objects.CreateObject)
		scoped.GET("/objects", objects.ListObjects)
		scoped.GET("/objects/:object", objects.GetObject)
		scoped.PUT("/objects/:object", objects.UpdateObject)
		scoped.DELETE("/objects/:object", objects.DeleteObject)

		scoped.POST("/accounts", accounts.CreateAccount)
		scoped.GET("/accounts", accounts.ListAccounts)
		scoped.GET("/accounts/me", accounts.Me)
		scoped.GET("/accounts/:id", accounts.GetAccount)
		scoped.PUT("/accounts/:id", accounts.UpdateAccount)
		scoped.DELETE("/accounts/:id", accounts.DeleteAccount)
	}
}

// TearDownTest cleans up after each test
func (suite *ObjectHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ObjectHandlerTestSuite) TestCreateObject() {
	suite.mockObjectService.EXPECT().Create(gomock.Any(), suite.developer, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ acl.Principal, req *service.ObjectRequest) (*service.ObjectResponse, error) {
			suite.Equal("c_ticket", req.Name)
			return &service.ObjectResponse{ID: uuid.New(), Object: "object", Name: req.Name, Label: req.Label}, nil
		})

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/orgs/acme/objects", map[string]interface{}{
		"name":  "c_ticket",
		"label": "Ticket",
	})

	var resp service.ObjectResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &resp)
	suite.Equal("Ticket", resp.Label)
}

func (suite *ObjectHandlerTestSuite) TestListObjects() {
	suite.mockObjectService.EXPECT().List(gomock.Any(), suite.developer).
		Return([]service.ObjectResponse{{Name: "c_ticket"}, {Name: "c_asset"}}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/orgs/acme/objects", nil)

	var resp map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	suite.Equal("list", resp["object"])
	suite.Len(resp["data"], 2)
}

func (suite *ObjectHandlerTestSuite) TestDeleteObjectWithInstances() {
	suite.mockObjectService.EXPECT().Delete(gomock.Any(), suite.developer, "c_ticket").Return(apperrors.ErrInstancesExist)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/orgs/acme/objects/c_ticket", nil)
	testutils.AssertFaultResponse(suite.T(), recorder, http.StatusConflict, apperrors.ErrInstancesExist.ErrCode)
}

func (suite *ObjectHandlerTestSuite) TestMeUsesPrincipalAccount() {
	suite.mockAccountService.EXPECT().Get(gomock.Any(), suite.developer, suite.developer.AccountID).
		Return(&service.AccountResponse{ID: suite.developer.AccountID, Email: suite.developer.Email}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/orgs/acme/accounts/me", nil)

	var resp service.AccountResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	suite.Equal(suite.developer.AccountID, resp.ID)
}

func (suite *ObjectHandlerTestSuite) TestGetAccountInvalidID() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/orgs/acme/accounts/42", nil)
	testutils.AssertFaultResponse(suite.T(), recorder, http.StatusBadRequest, apperrors.ErrInvalidID.ErrCode)
}

func (suite *ObjectHandlerTestSuite) TestCreateAccountDenied() {
	suite.mockAccountService.EXPECT().Create(gomock.Any(), suite.developer, gomock.Any()).Return(nil, apperrors.ErrRoleRequired)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/orgs/acme/accounts", map[string]interface{}{
		"email":    "new@acme.test",
		"password": "long enough",
	})
	testutils.AssertFaultResponse(suite.T(), recorder, http.StatusForbidden, apperrors.ErrRoleRequired.ErrCode)
}

func (suite *ObjectHandlerTestSuite) TestListAccountsPaging() {
	suite.mockAccountService.EXPECT().List(gomock.Any(), suite.developer, 3, 25).
		Return(&service.AccountListResponse{Data: []service.AccountResponse{}}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/orgs/acme/accounts?page=3&pageSize=25", nil)
	suite.Equal(http.StatusOK, recorder.Code)
}

// TestObjectHandlerTestSuite runs the test suite
func TestObjectHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ObjectHandlerTestSuite))
}
