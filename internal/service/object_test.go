package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"cortex-backend/internal/acl"
	"cortex-backend/internal/database/models"
	apperrors "cortex-backend/internal/errors"
	"cortex-backend/internal/mocks"
	"cortex-backend/internal/property"
	"cortex-backend/internal/sandbox"
	"cortex-backend/internal/service"
	"cortex-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ObjectServiceTestSuite defines the test suite for ObjectService
type ObjectServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockObjectRepo   *mocks.MockObjectRepositoryInterface
	mockInstanceRepo *mocks.MockInstanceRepositoryInterface
	objectService    *service.ObjectService
	factories        *testutils.FactorySet
	developer        acl.Principal
	ctx              context.Context
}

// SetupTest sets up the test suite
func (suite *ObjectServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockObjectRepo = mocks.NewMockObjectRepositoryInterface(suite.ctrl)
	suite.mockInstanceRepo = mocks.NewMockInstanceRepositoryInterface(suite.ctrl)
	suite.objectService = service.NewObjectService(
		suite.mockObjectRepo,
		suite.mockInstanceRepo,
		sandbox.NewRunner(sandbox.Config{}),
		service.NewValidator(),
	)
	suite.factories = testutils.NewFactorySet()
	suite.developer = acl.Principal{OrgID: uuid.New(), AccountID: uuid.New(), Roles: []string{acl.RoleDeveloper}}
	suite.ctx = context.Background()
}

// TearDownTest cleans up after each test
func (suite *ObjectServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func ticketProperties(t *testing.T) []property.Definition {
	var defs []property.Definition
	if err := json.Unmarshal([]byte(testutils.TicketProperties), &defs); err != nil {
		t.Fatalf("invalid ticket properties: %v", err)
	}
	return defs
}

func (suite *ObjectServiceTestSuite) TestCreate() {
	req := &service.ObjectRequest{
		Name:       "c_ticket",
		Label:      "Ticket",
		Properties: ticketProperties(suite.T()),
		Triggers:   []service.Trigger{{Event: service.EventCreateBefore, Script: "return {};"}},
	}
	suite.mockObjectRepo.EXPECT().GetByName(suite.ctx, suite.developer.OrgID, "c_ticket").Return(nil, gorm.ErrRecordNotFound)
	suite.mockObjectRepo.EXPECT().Create(suite.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, def *models.ObjectDefinition) error {
		suite.Equal(suite.developer.OrgID, def.OrgID)
		suite.JSONEq(`[]`, string(def.DefaultACL))
		return nil
	})

	resp, err := suite.objectService.Create(suite.ctx, suite.developer, req)
	suite.Require().NoError(err)
	suite.Equal("object", resp.Object)
	suite.Len(resp.Properties, 3)
	suite.Len(resp.Triggers, 1)
}

func (suite *ObjectServiceTestSuite) TestCreateCollectsEveryFault() {
	req := &service.ObjectRequest{
		Name: "ticket",
		Properties: []property.Definition{
			{Name: "c_title", Type: "Strng"},
		},
		DefaultACL: []acl.Entry{{Type: acl.EntryOwner, Allow: acl.None}},
		Triggers: []service.Trigger{
			{Event: "create.after", Script: "return 1;"},
			{Event: service.EventUpdateBefore, Script: "return {"},
		},
	}

	_, err := suite.objectService.Create(suite.ctx, suite.developer, req)
	fault := apperrors.From(err)
	suite.Equal(apperrors.ErrCodeValidation, fault.ErrCode)

	paths := map[string]bool{}
	for _, f := range fault.Faults {
		paths[f.Path] = true
	}
	suite.True(paths["name"], "name")
	suite.True(paths["properties.c_title"], "properties.c_title")
	suite.True(paths["defaultAcl.0"], "defaultAcl.0")
	suite.True(paths["triggers.0.event"], "triggers.0.event")
	suite.True(paths["triggers.1.script"], "triggers.1.script")
}

func (suite *ObjectServiceTestSuite) TestCreateRequiresDeveloper() {
	support := acl.Principal{OrgID: suite.developer.OrgID, Roles: []string{acl.RoleSupport}}
	_, err := suite.objectService.Create(suite.ctx, support, &service.ObjectRequest{Name: "c_ticket"})
	suite.True(errors.Is(err, apperrors.ErrRoleRequired))
}

func (suite *ObjectServiceTestSuite) TestCreateDuplicate() {
	existing := suite.factories.Object.Named("c_ticket")
	suite.mockObjectRepo.EXPECT().GetByName(suite.ctx, suite.developer.OrgID, "c_ticket").Return(&existing, nil)

	_, err := suite.objectService.Create(suite.ctx, suite.developer, &service.ObjectRequest{Name: "c_ticket"})
	suite.True(errors.Is(err, apperrors.ErrObjectExists))
}

func (suite *ObjectServiceTestSuite) TestDeleteRefusedWhileInstancesExist() {
	existing := suite.factories.Object.Named("c_ticket")
	suite.mockObjectRepo.EXPECT().GetByName(suite.ctx, suite.developer.OrgID, "c_ticket").Return(&existing, nil)
	suite.mockInstanceRepo.EXPECT().CountByObject(suite.ctx, suite.developer.OrgID, "c_ticket").Return(int64(3), nil)

	err := suite.objectService.Delete(suite.ctx, suite.developer, "c_ticket")
	suite.True(errors.Is(err, apperrors.ErrInstancesExist))
}

func (suite *ObjectServiceTestSuite) TestDelete() {
	existing := suite.factories.Object.Named("c_ticket")
	suite.mockObjectRepo.EXPECT().GetByName(suite.ctx, suite.developer.OrgID, "c_ticket").Return(&existing, nil)
	suite.mockInstanceRepo.EXPECT().CountByObject(suite.ctx, suite.developer.OrgID, "c_ticket").Return(int64(0), nil)
	suite.mockObjectRepo.EXPECT().Delete(suite.ctx, suite.developer.OrgID, "c_ticket").Return(nil)

	suite.NoError(suite.objectService.Delete(suite.ctx, suite.developer, "c_ticket"))
}

func (suite *ObjectServiceTestSuite) TestUpdateKeepsIdentity() {
	existing := suite.factories.Object.Named("c_ticket")
	existing.ID = uuid.New()
	suite.mockObjectRepo.EXPECT().GetByName(suite.ctx, suite.developer.OrgID, "c_ticket").Return(&existing, nil)
	suite.mockObjectRepo.EXPECT().Update(suite.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, def *models.ObjectDefinition) error {
		suite.Equal(existing.ID, def.ID)
		suite.Equal("Renamed", def.Label)
		return nil
	})

	resp, err := suite.objectService.Update(suite.ctx, suite.developer, "c_ticket", &service.ObjectRequest{
		Name:       "c_ignored",
		Label:      "Renamed",
		Properties: ticketProperties(suite.T()),
	})
	suite.Require().NoError(err)
	suite.Equal("c_ticket", resp.Name)
}

func (suite *ObjectServiceTestSuite) TestLoad() {
	def := suite.factories.Object.Named("c_ticket")
	suite.mockObjectRepo.EXPECT().GetByName(suite.ctx, suite.developer.OrgID, "c_ticket").Return(&def, nil)

	obj, err := suite.objectService.Load(suite.ctx, suite.developer.OrgID, "c_ticket")
	suite.Require().NoError(err)
	suite.Equal("c_ticket", obj.Name())
	suite.Equal([]acl.Entry{{Type: acl.EntryOwner, Allow: acl.Delete}}, obj.DefaultACL)
	suite.Len(obj.Schema.Definitions(), 3)

	suite.mockObjectRepo.EXPECT().GetByName(suite.ctx, suite.developer.OrgID, "c_missing").Return(nil, gorm.ErrRecordNotFound)
	_, err = suite.objectService.Load(suite.ctx, suite.developer.OrgID, "c_missing")
	suite.True(errors.Is(err, apperrors.ErrObjectNotFound))
}

// TestObjectServiceTestSuite runs the test suite
func TestObjectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ObjectServiceTestSuite))
}
