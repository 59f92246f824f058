package dynamo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const tableWaitTimeout = 2 * time.Minute

// AdminAPI is the subset of the DynamoDB client needed for table management.
// It embeds DescribeTableAPIClient so the table-exists waiter can use it.
type AdminAPI interface {
	dynamodb.DescribeTableAPIClient
	CreateTable(ctx context.Context, in *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

// Migrate creates the photos table when it does not exist and waits until it
// is active. An existing table is left untouched.
func Migrate(ctx context.Context, client AdminAPI, tableName string) error {
	_, err := client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(tableName),
	})
	if err == nil {
		return nil
	}

	var notFound *types.ResourceNotFoundException
	if !errors.As(err, &notFound) {
		return fmt.Errorf("migrate %s: describe table: %w", tableName, err)
	}

	_, err = client.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName: aws.String(tableName),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("familyId"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("photoId"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("familyId"), KeyType: types.KeyTypeHash},
			{AttributeName: aws.String("photoId"), KeyType: types.KeyTypeRange},
		},
		BillingMode: types.BillingModePayPerRequest,
	})
	if err != nil {
		return fmt.Errorf("migrate %s: create table: %w", tableName, err)
	}

	waiter := dynamodb.NewTableExistsWaiter(client)
	if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(tableName),
	}, tableWaitTimeout); err != nil {
		return fmt.Errorf("migrate %s: wait for table: %w", tableName, err)
	}

	return nil
}

// ValidateSchema checks that the table exists and is keyed by
// (familyId HASH, photoId RANGE).
func ValidateSchema(ctx context.Context, client AdminAPI, tableName string) error {
	out, err := client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(tableName),
	})
	if err != nil {
		return fmt.Errorf("validate schema %s: %w", tableName, err)
	}

	keys := map[string]types.KeyType{}
	for _, k := range out.Table.KeySchema {
		keys[aws.ToString(k.AttributeName)] = k.KeyType
	}

	if keys["familyId"] != types.KeyTypeHash || keys["photoId"] != types.KeyTypeRange {
		return fmt.Errorf("validate schema %s: unexpected key schema %v", tableName, keys)
	}

	return nil
}
