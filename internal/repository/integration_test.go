//go:build integration
// +build integration

package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"cortex-backend/internal/database/models"
	apperrors "cortex-backend/internal/errors"
	"cortex-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// RepositoryIntegrationTestSuite runs the repositories against a real Postgres
type RepositoryIntegrationTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	factories     *testutils.FactorySet
	ctx           context.Context

	orgs        *OrgRepository
	accounts    *AccountRepository
	objects     *ObjectRepository
	instances   *InstanceRepository
	connections *ConnectionRepository
	counters    *CounterRepository
	cache       *CacheRepository
	deployments *DeploymentRepository
}

// SetupSuite runs before all tests in the suite
func (suite *RepositoryIntegrationTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	db := suite.baseTestSuite.DB

	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
	suite.orgs = NewOrgRepository(db)
	suite.accounts = NewAccountRepository(db)
	suite.objects = NewObjectRepository(db)
	suite.instances = NewInstanceRepository(db)
	suite.connections = NewConnectionRepository(db)
	suite.counters = NewCounterRepository(db)
	suite.cache = NewCacheRepository(db)
	suite.deployments = NewDeploymentRepository(db)
}

// TearDownSuite runs after all tests in the suite
func (suite *RepositoryIntegrationTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *RepositoryIntegrationTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *RepositoryIntegrationTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *RepositoryIntegrationTestSuite) provision() (*models.Org, *models.Account) {
	org := suite.factories.Org.Create()
	admin := suite.factories.Account.Create()
	suite.Require().NoError(suite.orgs.Provision(suite.ctx, org, admin))
	return org, admin
}

func (suite *RepositoryIntegrationTestSuite) TestProvisionAndLookup() {
	org, admin := suite.provision()

	found, err := suite.orgs.GetByCode(suite.ctx, org.Code)
	suite.NoError(err)
	suite.Equal(org.ID, found.ID)

	account, err := suite.accounts.GetByEmail(suite.ctx, org.ID, admin.Email)
	suite.NoError(err)
	suite.Equal(admin.ID, account.ID)

	exists, err := suite.accounts.Exists(suite.ctx, org.ID, admin.ID)
	suite.NoError(err)
	suite.True(exists)
}

func (suite *RepositoryIntegrationTestSuite) TestDuplicateOrgCode() {
	org, _ := suite.provision()

	dup := suite.factories.Org.WithCode(org.Code)
	err := suite.orgs.Create(suite.ctx, dup)
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

func (suite *RepositoryIntegrationTestSuite) TestGetByIDNotFound() {
	org, err := suite.orgs.GetByID(suite.ctx, uuid.New())
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(org)
}

func (suite *RepositoryIntegrationTestSuite) TestInstanceSequencing() {
	org, admin := suite.provision()

	instance := suite.factories.Instance.For(org.ID, "c_ticket", admin.ID, `{"c_title":"first","c_status":"open"}`)
	suite.Require().NoError(suite.instances.Create(suite.ctx, instance))

	stale := *instance
	instance.Properties = json.RawMessage(`{"c_title":"second","c_status":"open"}`)
	suite.NoError(suite.instances.UpdateWithSequence(suite.ctx, instance, 0))
	suite.Equal(int64(1), instance.Sequence)

	stale.Properties = json.RawMessage(`{"c_title":"lost"}`)
	err := suite.instances.UpdateWithSequence(suite.ctx, &stale, 0)
	suite.True(apperrors.IsSequencing(err))

	items, total, err := suite.instances.List(suite.ctx, org.ID, "c_ticket", json.RawMessage(`{"c_status":"open"}`), 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(items, 1)

	_, total, err = suite.instances.List(suite.ctx, org.ID, "c_ticket", json.RawMessage(`{"c_status":"closed"}`), 10, 0)
	suite.NoError(err)
	suite.Zero(total)
}

func (suite *RepositoryIntegrationTestSuite) TestCounterNext() {
	org, _ := suite.provision()

	for want := int64(1); want <= 3; want++ {
		got, err := suite.counters.Next(suite.ctx, org.ID, "c_ticket.c_number", 1)
		suite.NoError(err)
		suite.Equal(want, got)
	}
	got, err := suite.counters.Next(suite.ctx, org.ID, "c_ticket.c_number", 10)
	suite.NoError(err)
	suite.Equal(int64(13), got)

	suite.NoError(suite.counters.Reset(suite.ctx, org.ID, "c_ticket.c_number"))
	_, err = suite.counters.Get(suite.ctx, org.ID, "c_ticket.c_number")
	suite.Equal(gorm.ErrRecordNotFound, err)
}

func (suite *RepositoryIntegrationTestSuite) TestCacheExpiry() {
	org, _ := suite.provision()
	now := time.Now()
	past := now.Add(-time.Minute)

	suite.NoError(suite.cache.Set(suite.ctx, &models.CacheEntry{OrgID: org.ID, Key: "live", Value: json.RawMessage(`1`)}))
	suite.NoError(suite.cache.Set(suite.ctx, &models.CacheEntry{OrgID: org.ID, Key: "gone", Value: json.RawMessage(`2`), ExpiresAt: &past}))

	_, err := suite.cache.Get(suite.ctx, org.ID, "gone", now)
	suite.Equal(gorm.ErrRecordNotFound, err)

	count, err := suite.cache.Count(suite.ctx, org.ID, "", now)
	suite.NoError(err)
	suite.Equal(int64(1), count)

	purged, err := suite.cache.PurgeExpired(suite.ctx, now)
	suite.NoError(err)
	suite.Equal(int64(1), purged)
}

func (suite *RepositoryIntegrationTestSuite) TestReplaceAllRecordsDeployment() {
	org, admin := suite.provision()

	objects := []models.ObjectDefinition{suite.factories.Object.Named("c_ticket")}
	deployment := &models.Deployment{Version: "1.0.0", Checksum: "abc", DeployedBy: admin.ID, Objects: 1}
	suite.NoError(suite.objects.ReplaceAll(suite.ctx, org.ID, objects, deployment))

	objects = []models.ObjectDefinition{suite.factories.Object.Named("c_ticket")}
	objects[0].Label = "Tickets v2"
	suite.NoError(suite.objects.ReplaceAll(suite.ctx, org.ID, objects, &models.Deployment{Version: "1.1.0", Checksum: "def", Objects: 1}))

	stored, err := suite.objects.GetByName(suite.ctx, org.ID, "c_ticket")
	suite.NoError(err)
	suite.Equal("Tickets v2", stored.Label)

	latest, err := suite.deployments.Latest(suite.ctx, org.ID)
	suite.NoError(err)
	suite.Equal("1.1.0", latest.Version)
}

func (suite *RepositoryIntegrationTestSuite) TestConnections() {
	org, admin := suite.provision()
	target := suite.factories.Account.Create()
	target.OrgID = org.ID
	suite.Require().NoError(suite.accounts.Create(suite.ctx, target))

	contextID := uuid.New()
	conn := &models.Connection{OrgID: org.ID, Object: "c_ticket", ContextID: contextID, CreatorID: admin.ID, TargetID: target.ID, Access: 2, State: models.ConnectionStatePending}
	suite.Require().NoError(suite.connections.Create(suite.ctx, conn))

	open, err := suite.connections.FindOpen(suite.ctx, org.ID, contextID, target.ID)
	suite.NoError(err)
	suite.Equal(conn.ID, open.ID)

	active, err := suite.connections.ListActiveForTarget(suite.ctx, org.ID, target.ID, []uuid.UUID{contextID})
	suite.NoError(err)
	suite.Empty(active)

	conn.State = models.ConnectionStateActive
	suite.NoError(suite.connections.Update(suite.ctx, conn))
	active, err = suite.connections.ListActiveForTarget(suite.ctx, org.ID, target.ID, []uuid.UUID{contextID})
	suite.NoError(err)
	suite.Len(active, 1)

	suite.NoError(suite.connections.DeleteByContext(suite.ctx, org.ID, contextID))
	_, err = suite.connections.GetByID(suite.ctx, org.ID, conn.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestRepositoryIntegrationTestSuite runs the test suite
func TestRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryIntegrationTestSuite))
}
