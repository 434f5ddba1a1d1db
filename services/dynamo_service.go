package services

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DocumentStore is the document-store surface the typed services consume.
// DynamoService is the production implementation.
type DocumentStore interface {
	GetItem(ctx context.Context, tableName string, key map[string]types.AttributeValue) (map[string]types.AttributeValue, error)
	PutItem(ctx context.Context, tableName string, item interface{}) error
	UpdateItem(ctx context.Context, tableName string, updateExpression string, key map[string]types.AttributeValue, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string) (map[string]types.AttributeValue, error)
	QueryItemsWithIndex(ctx context.Context, tableName string, indexName string, keyConditionExpression string, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string, limit int32) ([]map[string]types.AttributeValue, error)
	ScanPage(ctx context.Context, tableName string, filterExpression string, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string, limit int32, startKey map[string]types.AttributeValue) ([]map[string]types.AttributeValue, map[string]types.AttributeValue, error)
	BatchDeleteItems(ctx context.Context, tableName string, keys []map[string]types.AttributeValue) error
}

// DynamoService wraps the generic document-store operations the engine
// needs: CRUD, filtered paged scans and chunked batch deletes.
type DynamoService struct {
	Client *dynamodb.Client
}

// LoadAWSConfig loads the shared AWS configuration for the given region.
func LoadAWSConfig(region string) aws.Config {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(region))
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}
	return cfg
}

// InitializeDynamoDBClient initializes the DynamoDB client
func InitializeDynamoDBClient(cfg aws.Config) *dynamodb.Client {
	return dynamodb.NewFromConfig(cfg)
}

// GetItem retrieves a single item by key. Returns ErrItemNotFound for
// absent documents.
func (ds *DynamoService) GetItem(ctx context.Context, tableName string, key map[string]types.AttributeValue) (map[string]types.AttributeValue, error) {
	output, err := ds.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &tableName,
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get item from table '%s': %w", tableName, err)
	}
	if output.Item == nil {
		return nil, ErrItemNotFound
	}
	return output.Item, nil
}

// PutItem marshals and inserts an item.
func (ds *DynamoService) PutItem(ctx context.Context, tableName string, item interface{}) error {
	marshaled, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal item: %w", err)
	}
	_, err = ds.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &tableName,
		Item:      marshaled,
	})
	if err != nil {
		return fmt.Errorf("failed to put item in table '%s': %w", tableName, err)
	}
	return nil
}

// UpdateItem applies an update expression to a single document and returns
// the new attributes.
func (ds *DynamoService) UpdateItem(
	ctx context.Context,
	tableName string,
	updateExpression string,
	key map[string]types.AttributeValue,
	expressionAttributeValues map[string]types.AttributeValue,
	expressionAttributeNames map[string]string,
) (map[string]types.AttributeValue, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("update failed: key cannot be empty")
	}
	if updateExpression == "" {
		return nil, fmt.Errorf("update failed: updateExpression cannot be empty")
	}

	// REMOVE-only expressions carry no attribute values.
	var expAttrValues map[string]types.AttributeValue
	if len(expressionAttributeValues) > 0 {
		expAttrValues = expressionAttributeValues
	}

	output, err := ds.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 &tableName,
		Key:                       key,
		UpdateExpression:          &updateExpression,
		ExpressionAttributeValues: expAttrValues,
		ExpressionAttributeNames:  expressionAttributeNames,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update item in table '%s': %w", tableName, err)
	}
	if output.Attributes == nil {
		return map[string]types.AttributeValue{}, nil
	}
	return output.Attributes, nil
}

// DeleteItem removes an item from DynamoDB
func (ds *DynamoService) DeleteItem(ctx context.Context, tableName string, key map[string]types.AttributeValue) error {
	_, err := ds.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: &tableName,
		Key:       key,
	})
	if err != nil {
		return fmt.Errorf("failed to delete item from table '%s': %w", tableName, err)
	}
	return nil
}

// QueryItemsWithIndex queries items using a Global Secondary Index (GSI)
func (ds *DynamoService) QueryItemsWithIndex(
	ctx context.Context,
	tableName string,
	indexName string,
	keyConditionExpression string,
	expressionAttributeValues map[string]types.AttributeValue,
	expressionAttributeNames map[string]string,
	limit int32,
) ([]map[string]types.AttributeValue, error) {
	output, err := ds.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 &tableName,
		IndexName:                 &indexName,
		KeyConditionExpression:    &keyConditionExpression,
		ExpressionAttributeValues: expressionAttributeValues,
		ExpressionAttributeNames:  expressionAttributeNames,
		Limit:                     &limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query GSI '%s': %w", indexName, err)
	}
	return output.Items, nil
}

// ScanPage runs one page of a filtered scan. The store's contains() filter
// has an implementation ceiling on filter-set size, so callers page with a
// fixed limit instead of scanning unbounded.
func (ds *DynamoService) ScanPage(
	ctx context.Context,
	tableName string,
	filterExpression string,
	expressionAttributeValues map[string]types.AttributeValue,
	expressionAttributeNames map[string]string,
	limit int32,
	startKey map[string]types.AttributeValue,
) ([]map[string]types.AttributeValue, map[string]types.AttributeValue, error) {
	input := &dynamodb.ScanInput{
		TableName:                 &tableName,
		FilterExpression:          &filterExpression,
		ExpressionAttributeValues: expressionAttributeValues,
		Limit:                     &limit,
	}
	if len(expressionAttributeNames) > 0 {
		input.ExpressionAttributeNames = expressionAttributeNames
	}
	if len(startKey) > 0 {
		input.ExclusiveStartKey = startKey
	}

	output, err := ds.Client.Scan(ctx, input)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to scan table '%s': %w", tableName, err)
	}
	return output.Items, output.LastEvaluatedKey, nil
}

// BatchDeleteItems deletes the given keys in chunks of 25, the store's
// batch-write ceiling.
func (ds *DynamoService) BatchDeleteItems(ctx context.Context, tableName string, keys []map[string]types.AttributeValue) error {
	const maxBatchSize = 25

	for i := 0; i < len(keys); i += maxBatchSize {
		end := i + maxBatchSize
		if end > len(keys) {
			end = len(keys)
		}

		requests := make([]types.WriteRequest, 0, end-i)
		for _, key := range keys[i:end] {
			requests = append(requests, types.WriteRequest{
				DeleteRequest: &types.DeleteRequest{Key: key},
			})
		}

		_, err := ds.Client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{
				tableName: requests,
			},
		})
		if err != nil {
			return fmt.Errorf("failed to batch delete items from table '%s': %w", tableName, err)
		}
	}
	return nil
}
