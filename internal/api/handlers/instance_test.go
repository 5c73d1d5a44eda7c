package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"cortex-backend/internal/acl"
	"cortex-backend/internal/database/models"
	apperrors "cortex-backend/internal/errors"
	"cortex-backend/internal/mocks"
	"cortex-backend/internal/service"
	"cortex-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// InstanceHandlerTestSuite defines the test suite for InstanceHandler
type InstanceHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockInstanceServiceInterface
	httpSuite   *testutils.HTTPTestSuite
	org         *models.Org
	caller      acl.Principal
}

// SetupTest sets up the test suite
func (suite *InstanceHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockInstanceServiceInterface(suite.ctrl)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.org = testutils.NewOrgFactory().WithCode("acme")
	suite.caller = testPrincipal(suite.org.ID)

	handler := NewInstanceHandler(suite.mockService)
	instances := suite.httpSuite.Router.Group("/api/v1/orgs/:org/objects/:object/instances", authenticatedAs(suite.org, suite.caller))
	{
		instances.POST("", handler.CreateInstance)
		instances.GET("", handler.ListInstances)
		instances.GET("/:id", handler.GetInstance)
		instances.PATCH("/:id", handler.UpdateInstance)
		instances.DELETE("/:id", handler.DeleteInstance)
	}
}

// TearDownTest cleans up after each test
func (suite *InstanceHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *InstanceHandlerTestSuite) TestCreateInstance() {
	id := uuid.New()
	suite.mockService.EXPECT().
		Create(gomock.Any(), suite.caller, "c_ticket", map[string]interface{}{"c_title": "Printer on fire"}).
		Return(service.InstanceResponse{"_id": id.String(), "object": "c_ticket", "c_title": "Printer on fire", "c_number": float64(1)}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/orgs/acme/objects/c_ticket/instances", map[string]interface{}{
		"c_title": "Printer on fire",
	})

	var resp map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &resp)
	suite.Equal(id.String(), resp["_id"])
	suite.EqualValues(1, resp["c_number"])
}

func (suite *InstanceHandlerTestSuite) TestCreateInstanceValidationFault() {
	validation := apperrors.NewValidation()
	validation.Add(apperrors.InvalidArgument("required", "c_title is required").WithPath("c_title"))
	suite.mockService.EXPECT().Create(gomock.Any(), suite.caller, "c_ticket", gomock.Any()).Return(nil, validation)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/orgs/acme/objects/c_ticket/instances", map[string]interface{}{})

	fault := testutils.AssertFaultResponse(suite.T(), recorder, http.StatusBadRequest, apperrors.ErrCodeValidation)
	suite.Equal("validation", fault["name"])
	faults, ok := fault["faults"].([]interface{})
	suite.Require().True(ok)
	suite.Require().Len(faults, 1)
	suite.Equal("c_title", faults[0].(map[string]interface{})["path"])
}

func (suite *InstanceHandlerTestSuite) TestCreateInstanceEmptyBody() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/orgs/acme/objects/c_ticket/instances", nil)
	testutils.AssertFaultResponse(suite.T(), recorder, http.StatusBadRequest, apperrors.ErrInvalidBody.ErrCode)
}

func (suite *InstanceHandlerTestSuite) TestGetInstanceInvalidID() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/orgs/acme/objects/c_ticket/instances/not-a-uuid", nil)

	fault := testutils.AssertFaultResponse(suite.T(), recorder, http.StatusBadRequest, apperrors.ErrInvalidID.ErrCode)
	suite.Equal("id", fault["path"])
}

func (suite *InstanceHandlerTestSuite) TestGetInstanceNotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().Get(gomock.Any(), suite.caller, "c_ticket", id).
		Return(nil, apperrors.ErrInstanceNotFound.WithResource(id.String()))

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/orgs/acme/objects/c_ticket/instances/"+id.String(), nil)

	fault := testutils.AssertFaultResponse(suite.T(), recorder, http.StatusNotFound, apperrors.ErrInstanceNotFound.ErrCode)
	suite.Equal(id.String(), fault["resource"])
}

func (suite *InstanceHandlerTestSuite) TestListInstancesPassesWhereAndPage() {
	suite.mockService.EXPECT().List(gomock.Any(), suite.caller, "c_ticket", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ acl.Principal, _ string, req service.ListInstancesRequest) (*service.InstanceListResponse, error) {
			suite.JSONEq(`{"c_status":"open"}`, string(req.Where))
			suite.Equal(2, req.Page.Page)
			suite.Equal(5, req.Page.PageSize)
			return &service.InstanceListResponse{
				Data:     []service.InstanceResponse{{"c_title": "one"}},
				ListMeta: service.ListMeta{Total: 6, Page: 2, PageSize: 5},
			}, nil
		})

	recorder := suite.httpSuite.MakeRequest(http.MethodGet,
		`/api/v1/orgs/acme/objects/c_ticket/instances?page=2&pageSize=5&where=%7B%22c_status%22%3A%22open%22%7D`, nil)

	var resp map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	suite.EqualValues(6, resp["total"])
	suite.Len(resp["data"], 1)
}

func (suite *InstanceHandlerTestSuite) TestListInstancesBadPaging() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/orgs/acme/objects/c_ticket/instances?page=two", nil)
	fault := testutils.AssertFaultResponse(suite.T(), recorder, http.StatusBadRequest, apperrors.ErrInvalidPaging.ErrCode)
	suite.Equal("page", fault["path"])
}

func (suite *InstanceHandlerTestSuite) TestUpdateInstanceSequencing() {
	id := uuid.New()
	suite.mockService.EXPECT().Update(gomock.Any(), suite.caller, "c_ticket", id, map[string]interface{}{"c_status": "closed"}).
		Return(nil, apperrors.ErrSequencing)

	recorder := suite.httpSuite.MakeRequest(http.MethodPatch, "/api/v1/orgs/acme/objects/c_ticket/instances/"+id.String(),
		map[string]interface{}{"c_status": "closed"})

	testutils.AssertFaultResponse(suite.T(), recorder, http.StatusConflict, apperrors.ErrSequencing.ErrCode)
}

func (suite *InstanceHandlerTestSuite) TestDeleteInstance() {
	id := uuid.New()
	suite.mockService.EXPECT().Delete(gomock.Any(), suite.caller, "c_ticket", id).Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/orgs/acme/objects/c_ticket/instances/"+id.String(), nil)
	suite.Equal(http.StatusNoContent, recorder.Code)
}

func (suite *InstanceHandlerTestSuite) TestDeleteInstanceDenied() {
	id := uuid.New()
	suite.mockService.EXPECT().Delete(gomock.Any(), suite.caller, "c_ticket", id).Return(apperrors.ErrInstanceDelete)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/orgs/acme/objects/c_ticket/instances/"+id.String(), nil)

	var fault map[string]interface{}
	suite.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &fault))
	suite.Equal(http.StatusForbidden, recorder.Code)
	suite.Equal(apperrors.ErrInstanceDelete.ErrCode, fault["errCode"])
}

// TestInstanceHandlerTestSuite runs the test suite
func TestInstanceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(InstanceHandlerTestSuite))
}
