package service_test

import (
	"context"
	"errors"
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
	"gorm.io/gorm"
)

// ConnectionServiceTestSuite defines the test suite for ConnectionService
type ConnectionServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockConnectionRepo *mocks.MockConnectionRepositoryInterface
	mockAccountRepo    *mocks.MockAccountRepositoryInterface
	mockInstances      *mocks.MockInstanceServiceInterface
	connectionService  *service.ConnectionService
	owner              acl.Principal
	friend             acl.Principal
	ticket             *models.Instance
	ctx                context.Context
}

// SetupTest sets up the test suite
func (suite *ConnectionServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockConnectionRepo = mocks.NewMockConnectionRepositoryInterface(suite.ctrl)
	suite.mockAccountRepo = mocks.NewMockAccountRepositoryInterface(suite.ctrl)
	suite.mockInstances = mocks.NewMockInstanceServiceInterface(suite.ctrl)
	suite.connectionService = service.NewConnectionService(
		suite.mockConnectionRepo, suite.mockAccountRepo, suite.mockInstances, service.NewValidator())

	orgID := uuid.New()
	suite.owner = acl.Principal{OrgID: orgID, AccountID: uuid.New()}
	suite.friend = acl.Principal{OrgID: orgID, AccountID: uuid.New()}
	suite.ticket = testutils.NewInstanceFactory().For(orgID, "c_ticket", suite.owner.AccountID, `{"c_title":"t"}`)
	suite.ctx = context.Background()
}

// TearDownTest cleans up after each test
func (suite *ConnectionServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ConnectionServiceTestSuite) ownerAccess(level acl.Level) {
	suite.mockInstances.EXPECT().AccessTo(suite.ctx, suite.owner, "c_ticket", suite.ticket.ID).Return(suite.ticket, level, nil)
}

func (suite *ConnectionServiceTestSuite) pending() *models.Connection {
	return &models.Connection{
		BaseModel: models.BaseModel{ID: uuid.New()},
		OrgID:     suite.owner.OrgID,
		Object:    "c_ticket",
		ContextID: suite.ticket.ID,
		CreatorID: suite.owner.AccountID,
		TargetID:  suite.friend.AccountID,
		Access:    int(acl.Connected),
		State:     models.ConnectionStatePending,
	}
}

func (suite *ConnectionServiceTestSuite) TestCreate() {
	suite.ownerAccess(acl.Delete)
	suite.mockAccountRepo.EXPECT().Exists(suite.ctx, suite.owner.OrgID, suite.friend.AccountID).Return(true, nil)
	suite.mockConnectionRepo.EXPECT().FindOpen(suite.ctx, suite.owner.OrgID, suite.ticket.ID, suite.friend.AccountID).
		Return(nil, gorm.ErrRecordNotFound)
	suite.mockConnectionRepo.EXPECT().Create(suite.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c *models.Connection) error {
		suite.Equal(models.ConnectionStatePending, c.State)
		suite.Equal(int(acl.Update), c.Access)
		suite.Equal("c_ticket", c.Object)
		c.ID = uuid.New()
		return nil
	})

	resp, err := suite.connectionService.Create(suite.ctx, suite.owner, "c_ticket", suite.ticket.ID, &service.CreateConnectionRequest{
		Target: suite.friend.AccountID,
		Access: acl.Update,
	})
	suite.Require().NoError(err)
	suite.Equal("connection", resp.Object)
	suite.Equal(suite.ticket.ID, resp.Context.ID)
	suite.Equal(suite.friend.AccountID, resp.Target)
}

func (suite *ConnectionServiceTestSuite) TestCreateCannotGrantMoreThanHeld() {
	suite.ownerAccess(acl.Share)

	_, err := suite.connectionService.Create(suite.ctx, suite.owner, "c_ticket", suite.ticket.ID, &service.CreateConnectionRequest{
		Target: suite.friend.AccountID,
		Access: acl.Delete,
	})
	fault := apperrors.From(err)
	suite.Equal(apperrors.ErrCodeValidation, fault.ErrCode)
	suite.Require().Len(fault.Faults, 1)
	suite.Equal("access", fault.Faults[0].Path)
}

func (suite *ConnectionServiceTestSuite) TestCreateRequiresShare() {
	suite.mockInstances.EXPECT().AccessTo(suite.ctx, suite.friend, "c_ticket", suite.ticket.ID).Return(suite.ticket, acl.Connected, nil)

	_, err := suite.connectionService.Create(suite.ctx, suite.friend, "c_ticket", suite.ticket.ID, &service.CreateConnectionRequest{
		Target: suite.owner.AccountID,
		Access: acl.Public,
	})
	suite.True(errors.Is(err, apperrors.ErrShareDenied))
}

func (suite *ConnectionServiceTestSuite) TestCreateRejectsSelfAndDuplicates() {
	suite.ownerAccess(acl.Delete)
	_, err := suite.connectionService.Create(suite.ctx, suite.owner, "c_ticket", suite.ticket.ID, &service.CreateConnectionRequest{
		Target: suite.owner.AccountID,
		Access: acl.Public,
	})
	suite.Equal("target", apperrors.From(err).Faults[0].Path)

	suite.ownerAccess(acl.Delete)
	suite.mockAccountRepo.EXPECT().Exists(suite.ctx, suite.owner.OrgID, suite.friend.AccountID).Return(true, nil)
	suite.mockConnectionRepo.EXPECT().FindOpen(suite.ctx, suite.owner.OrgID, suite.ticket.ID, suite.friend.AccountID).
		Return(suite.pending(), nil)
	_, err = suite.connectionService.Create(suite.ctx, suite.owner, "c_ticket", suite.ticket.ID, &service.CreateConnectionRequest{
		Target: suite.friend.AccountID,
		Access: acl.Public,
	})
	suite.True(errors.Is(err, apperrors.ErrConnectionExists))
}

func (suite *ConnectionServiceTestSuite) TestCreateUnknownTarget() {
	suite.ownerAccess(acl.Delete)
	suite.mockAccountRepo.EXPECT().Exists(suite.ctx, suite.owner.OrgID, gomock.Any()).Return(false, nil)

	_, err := suite.connectionService.Create(suite.ctx, suite.owner, "c_ticket", suite.ticket.ID, &service.CreateConnectionRequest{
		Target: uuid.New(),
		Access: acl.Public,
	})
	suite.True(errors.Is(err, apperrors.ErrAccountNotFound))
}

func (suite *ConnectionServiceTestSuite) TestCreateValidation() {
	_, err := suite.connectionService.Create(suite.ctx, suite.owner, "c_ticket", suite.ticket.ID, &service.CreateConnectionRequest{})
	fault := apperrors.From(err)
	suite.Equal(apperrors.ErrCodeValidation, fault.ErrCode)
	suite.Len(fault.Faults, 2)
}

func (suite *ConnectionServiceTestSuite) TestAcceptOnlyByTarget() {
	connection := suite.pending()
	suite.mockConnectionRepo.EXPECT().GetByID(suite.ctx, suite.owner.OrgID, connection.ID).Return(connection, nil)

	_, err := suite.connectionService.Accept(suite.ctx, suite.owner, connection.ID)
	suite.True(errors.Is(err, apperrors.ErrConnectionForbidden))

	suite.mockConnectionRepo.EXPECT().GetByID(suite.ctx, suite.owner.OrgID, connection.ID).Return(connection, nil)
	suite.mockConnectionRepo.EXPECT().Update(suite.ctx, connection).Return(nil)

	resp, err := suite.connectionService.Accept(suite.ctx, suite.friend, connection.ID)
	suite.Require().NoError(err)
	suite.Equal(models.ConnectionStateActive, resp.State)
}

func (suite *ConnectionServiceTestSuite) TestReject() {
	connection := suite.pending()
	suite.mockConnectionRepo.EXPECT().GetByID(suite.ctx, suite.owner.OrgID, connection.ID).Return(connection, nil)
	suite.mockConnectionRepo.EXPECT().Delete(suite.ctx, suite.owner.OrgID, connection.ID).Return(nil)

	suite.NoError(suite.connectionService.Reject(suite.ctx, suite.friend, connection.ID))
}

func (suite *ConnectionServiceTestSuite) TestDeleteByThirdParty() {
	connection := suite.pending()
	outsider := acl.Principal{OrgID: suite.owner.OrgID, AccountID: uuid.New()}
	suite.mockConnectionRepo.EXPECT().GetByID(suite.ctx, suite.owner.OrgID, connection.ID).Return(connection, nil)
	suite.mockInstances.EXPECT().AccessTo(suite.ctx, outsider, "c_ticket", suite.ticket.ID).
		Return(nil, acl.None, apperrors.ErrInstanceNotFound)

	err := suite.connectionService.Delete(suite.ctx, outsider, connection.ID)
	suite.True(errors.Is(err, apperrors.ErrConnectionForbidden))

	admin := acl.Principal{OrgID: suite.owner.OrgID, AccountID: uuid.New(), Roles: []string{acl.RoleAdministrator}}
	suite.mockConnectionRepo.EXPECT().GetByID(suite.ctx, suite.owner.OrgID, connection.ID).Return(connection, nil)
	suite.mockInstances.EXPECT().AccessTo(suite.ctx, admin, "c_ticket", suite.ticket.ID).Return(suite.ticket, acl.Delete, nil)
	suite.mockConnectionRepo.EXPECT().Delete(suite.ctx, suite.owner.OrgID, connection.ID).Return(nil)

	suite.NoError(suite.connectionService.Delete(suite.ctx, admin, connection.ID))
}

func (suite *ConnectionServiceTestSuite) TestListMine() {
	page, err := service.NewPage(2, 1)
	suite.Require().NoError(err)
	suite.mockConnectionRepo.EXPECT().ListByTarget(suite.ctx, suite.owner.OrgID, suite.friend.AccountID, 1, 1).
		Return([]models.Connection{*suite.pending()}, int64(3), nil)

	resp, err := suite.connectionService.ListMine(suite.ctx, suite.friend, page)
	suite.Require().NoError(err)
	suite.Len(resp.Data, 1)
	suite.Equal(int64(3), resp.Total)
	suite.True(resp.HasMore)
}

func (suite *ConnectionServiceTestSuite) TestGetMissing() {
	id := uuid.New()
	suite.mockConnectionRepo.EXPECT().GetByID(suite.ctx, suite.owner.OrgID, id).Return(nil, gorm.ErrRecordNotFound)

	err := suite.connectionService.Reject(suite.ctx, suite.owner, id)
	suite.True(errors.Is(err, apperrors.ErrConnectionNotFound))
}

// TestConnectionServiceTestSuite runs the test suite
func TestConnectionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ConnectionServiceTestSuite))
}
