package dal

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DatabaseClientInterface defines the contract for database operations
type DatabaseClientInterface interface {
	PutItem(ctx context.Context, tableName string, item interface{}) error

	Scan(ctx context.Context, tableName string, results interface{}) error
	ScanWhere(ctx context.Context, tableName, attr, value string, results interface{}) error

	// Table management operations
	CreateTable(ctx context.Context, input *dynamodb.CreateTableInput) error
	DescribeTable(ctx context.Context, tableName string) (*dynamodb.DescribeTableOutput, error)
}

var _ DatabaseClientInterface = (*DynamoDBClient)(nil)
