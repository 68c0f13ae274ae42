package dal

import (
	"ceam-backend/models"
	"ceam-backend/utils/logger"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// MockDynamoAPI implements DynamoAPI for testing
type MockDynamoAPI struct {
	mock.Mock
}

func (m *MockDynamoAPI) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dynamodb.PutItemOutput), args.Error(1)
}

func (m *MockDynamoAPI) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dynamodb.ScanOutput), args.Error(1)
}

func (m *MockDynamoAPI) CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dynamodb.CreateTableOutput), args.Error(1)
}

func (m *MockDynamoAPI) DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dynamodb.DescribeTableOutput), args.Error(1)
}

type record struct {
	ID     string `dynamodbav:"id"`
	Status string `dynamodbav:"status"`
}

// DALTestSuite defines a test suite for DAL functions
type DALTestSuite struct {
	suite.Suite
	ctx    context.Context
	api    *MockDynamoAPI
	client *DynamoDBClient
}

// SetupTest runs before each test
func (suite *DALTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.api = &MockDynamoAPI{}
	suite.client = NewDynamoDBClientWithAPI(suite.api, &models.Config{}, logger.NewLoggerWithOutput("error", "json", io.Discard))
}

// TearDownTest runs after each test
func (suite *DALTestSuite) TearDownTest() {
	suite.api.AssertExpectations(suite.T())
}

func TestDALTestSuite(t *testing.T) {
	suite.Run(t, new(DALTestSuite))
}

func item(id, status string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id":     &types.AttributeValueMemberS{Value: id},
		"status": &types.AttributeValueMemberS{Value: status},
	}
}

// TestPutItem tests that items are marshalled with their dynamodbav tags
func (suite *DALTestSuite) TestPutItem() {
	suite.api.On("PutItem", suite.ctx, mock.MatchedBy(func(in *dynamodb.PutItemInput) bool {
		id, ok := in.Item["id"].(*types.AttributeValueMemberS)
		return aws.ToString(in.TableName) == "dev_deliveries" && ok && id.Value == "abc"
	})).Return(&dynamodb.PutItemOutput{}, nil).Once()

	err := suite.client.PutItem(suite.ctx, "dev_deliveries", record{ID: "abc", Status: "sent"})
	assert.NoError(suite.T(), err)
}

// TestPutItemError tests PutItem with error
func (suite *DALTestSuite) TestPutItemError() {
	suite.api.On("PutItem", suite.ctx, mock.Anything).Return(nil, errors.New("PutItem error")).Once()

	err := suite.client.PutItem(suite.ctx, "dev_deliveries", record{ID: "abc"})
	assert.ErrorContains(suite.T(), err, "PutItem error")
}

// TestScanFollowsPagination tests that every page is collected
func (suite *DALTestSuite) TestScanFollowsPagination() {
	lastKey := map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "b"}}

	suite.api.On("Scan", suite.ctx, mock.MatchedBy(func(in *dynamodb.ScanInput) bool {
		return in.ExclusiveStartKey == nil
	})).Return(&dynamodb.ScanOutput{
		Items:            []map[string]types.AttributeValue{item("a", "sent"), item("b", "failed")},
		LastEvaluatedKey: lastKey,
	}, nil).Once()
	suite.api.On("Scan", suite.ctx, mock.MatchedBy(func(in *dynamodb.ScanInput) bool {
		return in.ExclusiveStartKey != nil
	})).Return(&dynamodb.ScanOutput{
		Items: []map[string]types.AttributeValue{item("c", "sent")},
	}, nil).Once()

	var out []record
	require.NoError(suite.T(), suite.client.Scan(suite.ctx, "dev_deliveries", &out))
	assert.Len(suite.T(), out, 3)
	assert.Equal(suite.T(), "c", out[2].ID)
}

// TestScanWhereSetsFilter tests that the filter expression is built
func (suite *DALTestSuite) TestScanWhereSetsFilter() {
	suite.api.On("Scan", suite.ctx, mock.MatchedBy(func(in *dynamodb.ScanInput) bool {
		v, ok := in.ExpressionAttributeValues[":v"].(*types.AttributeValueMemberS)
		return aws.ToString(in.FilterExpression) == "#a = :v" &&
			in.ExpressionAttributeNames["#a"] == "status" && ok && v.Value == "failed"
	})).Return(&dynamodb.ScanOutput{
		Items: []map[string]types.AttributeValue{item("b", "failed")},
	}, nil).Once()

	var out []record
	require.NoError(suite.T(), suite.client.ScanWhere(suite.ctx, "dev_deliveries", "status", "failed", &out))
	assert.Len(suite.T(), out, 1)
}

// TestScanError tests Scan with error
func (suite *DALTestSuite) TestScanError() {
	suite.api.On("Scan", suite.ctx, mock.Anything).Return(nil, errors.New("Scan error")).Once()

	var out []record
	assert.ErrorContains(suite.T(), suite.client.Scan(suite.ctx, "dev_deliveries", &out), "Scan error")
}

// TestTableManagement tests CreateTable and DescribeTable pass through
func (suite *DALTestSuite) TestTableManagement() {
	input := &dynamodb.CreateTableInput{TableName: aws.String("dev_deliveries")}
	suite.api.On("CreateTable", suite.ctx, input).Return(&dynamodb.CreateTableOutput{}, nil).Once()
	suite.api.On("DescribeTable", suite.ctx, mock.MatchedBy(func(in *dynamodb.DescribeTableInput) bool {
		return aws.ToString(in.TableName) == "dev_deliveries"
	})).Return(&dynamodb.DescribeTableOutput{Table: &types.TableDescription{TableStatus: types.TableStatusActive}}, nil).Once()

	require.NoError(suite.T(), suite.client.CreateTable(suite.ctx, input))
	out, err := suite.client.DescribeTable(suite.ctx, "dev_deliveries")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), types.TableStatusActive, out.Table.TableStatus)
}
