package infrastructure

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/tidwall/gjson"
)

const billingPayPerRequest = "PAY_PER_REQUEST"

type TableSchema struct {
	TableName             string                `json:"TableName"`
	BillingMode           string                `json:"BillingMode,omitempty"`
	AttributeDefinitions  []AttributeDefinition `json:"AttributeDefinitions"`
	KeySchema             []KeySchemaElement    `json:"KeySchema"`
	ProvisionedThroughput Throughput            `json:"ProvisionedThroughput"`
}

type AttributeDefinition struct {
	AttributeName string `json:"AttributeName"`
	AttributeType string `json:"AttributeType"`
}

type KeySchemaElement struct {
	AttributeName string `json:"AttributeName"`
	KeyType       string `json:"KeyType"`
}

type Throughput struct {
	ReadCapacityUnits  int64 `json:"ReadCapacityUnits"`
	WriteCapacityUnits int64 `json:"WriteCapacityUnits"`
}

//go:embed table_schema.json
var tablesSchema []byte

// SchemaNames lists the base table names the embedded schema knows about
func SchemaNames() []string {
	var names []string
	gjson.ParseBytes(tablesSchema).ForEach(func(key, _ gjson.Result) bool {
		names = append(names, key.String())
		return true
	})
	sort.Strings(names)
	return names
}

// GetTables returns the create input for a prefixed table name, e.g. "dev_deliveries"
func GetTables(tableName string) (*dynamodb.CreateTableInput, error) {
	schemaKey := extractBaseTableName(tableName)

	tableJSON := gjson.GetBytes(tablesSchema, schemaKey)
	if !tableJSON.Exists() {
		return nil, fmt.Errorf("table schema not found for key: %s", schemaKey)
	}

	var schema TableSchema
	if err := json.Unmarshal([]byte(tableJSON.Raw), &schema); err != nil {
		return nil, fmt.Errorf("failed to unmarshal schema JSON: %w", err)
	}
	if len(schema.KeySchema) == 0 {
		return nil, fmt.Errorf("table schema %s has no key schema", schemaKey)
	}

	// The schema carries the base name; the real table carries the prefix
	schema.TableName = tableName
	return schema.ToDynamoInput(), nil
}

// extractBaseTableName strips the environment prefix: "dev_deliveries" -> "deliveries"
func extractBaseTableName(tableName string) string {
	if i := strings.LastIndex(tableName, "_"); i >= 0 {
		return tableName[i+1:]
	}
	return tableName
}

// ToDynamoInput converts the schema to a CreateTable request
func (ts *TableSchema) ToDynamoInput() *dynamodb.CreateTableInput {
	attrDefs := make([]types.AttributeDefinition, 0, len(ts.AttributeDefinitions))
	for _, a := range ts.AttributeDefinitions {
		attrDefs = append(attrDefs, types.AttributeDefinition{
			AttributeName: aws.String(a.AttributeName),
			AttributeType: types.ScalarAttributeType(a.AttributeType),
		})
	}

	keySchema := make([]types.KeySchemaElement, 0, len(ts.KeySchema))
	for _, k := range ts.KeySchema {
		keySchema = append(keySchema, types.KeySchemaElement{
			AttributeName: aws.String(k.AttributeName),
			KeyType:       types.KeyType(k.KeyType),
		})
	}

	input := &dynamodb.CreateTableInput{
		TableName:            aws.String(ts.TableName),
		AttributeDefinitions: attrDefs,
		KeySchema:            keySchema,
	}

	if ts.BillingMode == billingPayPerRequest {
		input.BillingMode = types.BillingModePayPerRequest
		return input
	}

	input.BillingMode = types.BillingModeProvisioned
	input.ProvisionedThroughput = &types.ProvisionedThroughput{
		ReadCapacityUnits:  aws.Int64(ts.ProvisionedThroughput.ReadCapacityUnits),
		WriteCapacityUnits: aws.Int64(ts.ProvisionedThroughput.WriteCapacityUnits),
	}
	return input
}
