package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"cortex-backend/internal/database/models"
	apperrors "cortex-backend/internal/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SQLRepositoryTestSuite checks the SQL issued by repositories against go-sqlmock
type SQLRepositoryTestSuite struct {
	suite.Suite
	db   *gorm.DB
	mock sqlmock.Sqlmock
	ctx  context.Context
}

func (suite *SQLRepositoryTestSuite) SetupTest() {
	sqlDB, mock, err := sqlmock.New()
	suite.Require().NoError(err)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	suite.Require().NoError(err)

	suite.db = db
	suite.mock = mock
	suite.ctx = context.Background()
}

func (suite *SQLRepositoryTestSuite) TearDownTest() {
	suite.NoError(suite.mock.ExpectationsWereMet())
}

func (suite *SQLRepositoryTestSuite) TestCounterNextUpserts() {
	orgID := uuid.New()
	suite.mock.ExpectQuery(`INSERT INTO counters .* ON CONFLICT \(org_id, name\) DO UPDATE .* RETURNING value`).
		WithArgs(sqlmock.AnyArg(), "c_ticket.number", int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(int64(7)))

	value, err := NewCounterRepository(suite.db).Next(suite.ctx, orgID, "c_ticket.number", 1)
	suite.NoError(err)
	suite.Equal(int64(7), value)
}

func (suite *SQLRepositoryTestSuite) TestUpdateWithSequenceConflict() {
	suite.mock.ExpectExec(`UPDATE "instances" SET .*WHERE .*sequence = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	instance := &models.Instance{OrgID: uuid.New(), Object: "c_ticket", Sequence: 3}
	instance.ID = uuid.New()

	err := NewInstanceRepository(suite.db).UpdateWithSequence(suite.ctx, instance, 3)
	suite.True(apperrors.IsSequencing(err))
	suite.Equal(int64(3), instance.Sequence)
}

func (suite *SQLRepositoryTestSuite) TestUpdateWithSequenceAdvances() {
	suite.mock.ExpectExec(`UPDATE "instances" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	instance := &models.Instance{OrgID: uuid.New(), Object: "c_ticket", Sequence: 3}
	instance.ID = uuid.New()

	err := NewInstanceRepository(suite.db).UpdateWithSequence(suite.ctx, instance, 3)
	suite.NoError(err)
	suite.Equal(int64(4), instance.Sequence)
}

func (suite *SQLRepositoryTestSuite) TestInstanceListFiltersWithContainment() {
	suite.mock.ExpectQuery(`SELECT count\(\*\) FROM "instances" WHERE .*properties @> \$\d+::jsonb`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))
	suite.mock.ExpectQuery(`SELECT \* FROM "instances" WHERE .*properties @> \$\d+::jsonb.* ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "object", "sequence"}).AddRow(uuid.New().String(), "c_ticket", int64(2)))

	instances, total, err := NewInstanceRepository(suite.db).
		List(suite.ctx, uuid.New(), "c_ticket", json.RawMessage(`{"c_status":"open"}`), 20, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(instances, 1)
	suite.Equal(int64(2), instances[0].Sequence)
}

func (suite *SQLRepositoryTestSuite) TestAccountDeleteMissing() {
	suite.mock.ExpectExec(`DELETE FROM "accounts" WHERE`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := NewAccountRepository(suite.db).Delete(suite.ctx, uuid.New(), uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *SQLRepositoryTestSuite) TestCachePurgeExpired() {
	suite.mock.ExpectExec(`DELETE FROM "cache_entries" WHERE .*expires_at IS NOT NULL AND expires_at <= \$1`).
		WillReturnResult(sqlmock.NewResult(0, 3))

	purged, err := NewCacheRepository(suite.db).PurgeExpired(suite.ctx, time.Now())
	suite.NoError(err)
	suite.Equal(int64(3), purged)
}

func (suite *SQLRepositoryTestSuite) TestCacheClearByPrefix() {
	suite.mock.ExpectExec(`DELETE FROM "cache_entries" WHERE org_id = \$1 AND key LIKE \$2`).
		WithArgs(sqlmock.AnyArg(), `session\_%`).
		WillReturnResult(sqlmock.NewResult(0, 2))

	cleared, err := NewCacheRepository(suite.db).Clear(suite.ctx, uuid.New(), "session_")
	suite.NoError(err)
	suite.Equal(int64(2), cleared)
}

func (suite *SQLRepositoryTestSuite) TestCacheDeleteSkipsExpired() {
	suite.mock.ExpectExec(`DELETE FROM "cache_entries" WHERE .*org_id = \$1 AND key = \$2.*expires_at IS NULL OR expires_at > \$3`).
		WithArgs(sqlmock.AnyArg(), "session", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	removed, err := NewCacheRepository(suite.db).Delete(suite.ctx, uuid.New(), "session", time.Now())
	suite.NoError(err)
	suite.False(removed)
}

func TestSQLRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SQLRepositoryTestSuite))
}

func TestEscapeLike(t *testing.T) {
	require.Equal(t, `a\%b\_c\\d`, escapeLike(`a%b_c\d`))
	assert.Equal(t, "plain", escapeLike("plain"))
}
