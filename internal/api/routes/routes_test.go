package routes

import (
	"net/http"
	"testing"

	"cortex-backend/internal/config"
	apperrors "cortex-backend/internal/errors"
	"cortex-backend/internal/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// RoutesTestSuite exercises the assembled router against a mocked database
type RoutesTestSuite struct {
	suite.Suite
	mock      sqlmock.Sqlmock
	server    *Server
	httpSuite *testutils.HTTPTestSuite
}

func (suite *RoutesTestSuite) SetupTest() {
	sqlDB, mock, err := sqlmock.New()
	suite.Require().NoError(err)
	suite.T().Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	suite.Require().NoError(err)

	cfg := &config.Config{
		Environment:        "test",
		JWTSecret:          "test-secret",
		JWTTTLMinutes:      60,
		ProvisioningKey:    "test-provisioning-key",
		CacheDriver:        config.CacheDriverMemory,
		CacheSweepSchedule: "@every 1m",
		SandboxTimeoutMS:   1000,
		SequenceMaxRetries: 3,
		RateLimitRPS:       100,
		RateLimitBurst:     100,
		MetricsEnabled:     true,
	}
	server, err := SetupRoutes(db, cfg)
	suite.Require().NoError(err)

	suite.mock = mock
	suite.server = server
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router = server.Router
}

func (suite *RoutesTestSuite) TearDownTest() {
	suite.NoError(suite.mock.ExpectationsWereMet())
}

func (suite *RoutesTestSuite) TestUnknownRouteIsAFault() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/nowhere", nil)

	fault := testutils.AssertFaultResponse(suite.T(), recorder, http.StatusNotFound, apperrors.ErrRouteNotFound.ErrCode)
	suite.Equal("GET /api/v1/nowhere", fault["resource"])
}

func (suite *RoutesTestSuite) TestProvisioningNeedsKey() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/orgs", map[string]interface{}{"code": "acme"})
	testutils.AssertFaultResponse(suite.T(), recorder, http.StatusForbidden, apperrors.ErrProvisioningDenied.ErrCode)
}

func (suite *RoutesTestSuite) TestUnknownOrg() {
	suite.mock.ExpectQuery(`SELECT \* FROM "orgs"`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/orgs/ghost/objects", nil)
	testutils.AssertFaultResponse(suite.T(), recorder, http.StatusNotFound, apperrors.ErrOrgNotFound.ErrCode)
}

func (suite *RoutesTestSuite) TestMetricsExposed() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/metrics", nil)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Body.String(), "go_goroutines")
}

func (suite *RoutesTestSuite) TestRequestIDEchoed() {
	recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/health/live", nil, map[string]string{"X-Request-ID": "req-123"})

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Equal("req-123", recorder.Header().Get("X-Request-ID"))
}

func TestRoutesTestSuite(t *testing.T) {
	suite.Run(t, new(RoutesTestSuite))
}
