package repository

import (
	"ceam-backend/models"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// MockDatabaseClient implements dal.DatabaseClientInterface for testing
type MockDatabaseClient struct {
	mock.Mock
}

func (m *MockDatabaseClient) PutItem(ctx context.Context, tableName string, item interface{}) error {
	args := m.Called(ctx, tableName, item)
	return args.Error(0)
}

func (m *MockDatabaseClient) Scan(ctx context.Context, tableName string, results interface{}) error {
	args := m.Called(ctx, tableName, results)
	if recs, ok := args.Get(0).([]*models.DeliveryRecord); ok {
		*(results.(*[]*models.DeliveryRecord)) = recs
	}
	return args.Error(1)
}

func (m *MockDatabaseClient) ScanWhere(ctx context.Context, tableName, attr, value string, results interface{}) error {
	args := m.Called(ctx, tableName, attr, value, results)
	if recs, ok := args.Get(0).([]*models.DeliveryRecord); ok {
		*(results.(*[]*models.DeliveryRecord)) = recs
	}
	return args.Error(1)
}

func (m *MockDatabaseClient) CreateTable(ctx context.Context, input *dynamodb.CreateTableInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

func (m *MockDatabaseClient) DescribeTable(ctx context.Context, tableName string) (*dynamodb.DescribeTableOutput, error) {
	args := m.Called(ctx, tableName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dynamodb.DescribeTableOutput), args.Error(1)
}

// DeliveryRepositoryTestSuite covers the DynamoDB backed ledger
type DeliveryRepositoryTestSuite struct {
	suite.Suite
	ctx    context.Context
	db     *MockDatabaseClient
	config *models.Config
	repo   *DeliveryRepository
}

func (suite *DeliveryRepositoryTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.db = &MockDatabaseClient{}
	suite.config = &models.Config{DynamoDBTablePrefix: "test"}
	suite.repo = NewDeliveryRepository(suite.db, suite.config, discardLogger())
}

func (suite *DeliveryRepositoryTestSuite) TearDownTest() {
	suite.db.AssertExpectations(suite.T())
}

func TestDeliveryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(DeliveryRepositoryTestSuite))
}

func (suite *DeliveryRepositoryTestSuite) TestRecord() {
	record := &models.DeliveryRecord{ID: "abc", Status: models.DeliveryStatusSent}
	suite.db.On("PutItem", suite.ctx, "test_deliveries", record).Return(nil).Once()

	assert.True(suite.T(), suite.repo.Enabled())
	assert.NoError(suite.T(), suite.repo.Record(suite.ctx, record))
}

func (suite *DeliveryRepositoryTestSuite) TestRecordError() {
	record := &models.DeliveryRecord{ID: "abc"}
	suite.db.On("PutItem", suite.ctx, "test_deliveries", record).Return(errors.New("throttled")).Once()

	err := suite.repo.Record(suite.ctx, record)
	require.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "throttled")
}

func (suite *DeliveryRepositoryTestSuite) TestListNewestFirstWithLimit() {
	now := time.Now()
	stored := []*models.DeliveryRecord{
		{ID: "old", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "new", CreatedAt: now},
		{ID: "mid", CreatedAt: now.Add(-time.Hour)},
	}
	suite.db.On("Scan", suite.ctx, "test_deliveries", mock.Anything).Return(stored, nil).Once()

	records, err := suite.repo.List(suite.ctx, models.DeliveryFilter{Limit: 2})
	require.NoError(suite.T(), err)
	require.Len(suite.T(), records, 2)
	assert.Equal(suite.T(), "new", records[0].ID)
	assert.Equal(suite.T(), "mid", records[1].ID)
}

func (suite *DeliveryRepositoryTestSuite) TestListByStatus() {
	stored := []*models.DeliveryRecord{{ID: "f", Status: models.DeliveryStatusFailed}}
	suite.db.On("ScanWhere", suite.ctx, "test_deliveries", "status", "failed", mock.Anything).Return(stored, nil).Once()

	records, err := suite.repo.List(suite.ctx, models.DeliveryFilter{Status: models.DeliveryStatusFailed})
	require.NoError(suite.T(), err)
	assert.Len(suite.T(), records, 1)
}

func (suite *DeliveryRepositoryTestSuite) TestListError() {
	suite.db.On("Scan", suite.ctx, "test_deliveries", mock.Anything).Return(nil, errors.New("boom")).Once()

	_, err := suite.repo.List(suite.ctx, models.DeliveryFilter{})
	assert.Error(suite.T(), err)
}

func TestDisabledDeliveryRepository(t *testing.T) {
	repo := DisabledDeliveryRepository{}
	assert.False(t, repo.Enabled())
	assert.NoError(t, repo.Record(context.Background(), &models.DeliveryRecord{}))

	records, err := repo.List(context.Background(), models.DeliveryFilter{})
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestNewRepositoryWithoutLedger(t *testing.T) {
	repo, err := NewRepository(nil, &models.Config{DeliveryLogEnabled: true}, discardLogger())
	require.NoError(t, err)
	assert.False(t, repo.GetDeliveryRepository().Enabled())
	assert.Len(t, repo.GetCatalogRepository().Events(), 2)
}
