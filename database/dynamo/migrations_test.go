package dynamo_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sagarc03/pawtrait/database/dynamo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAdmin simulates the control-plane calls Migrate makes. Tables start
// absent and become ACTIVE once created.
type fakeAdmin struct {
	tables       map[string]*types.TableDescription
	createCalls  int
	describeErr  error
	createFailed error
}

func newFakeAdmin() *fakeAdmin {
	return &fakeAdmin{tables: map[string]*types.TableDescription{}}
}

func (f *fakeAdmin) DescribeTable(_ context.Context, in *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	if f.describeErr != nil {
		return nil, f.describeErr
	}
	table, ok := f.tables[aws.ToString(in.TableName)]
	if !ok {
		return nil, &types.ResourceNotFoundException{Message: aws.String("table not found")}
	}
	return &dynamodb.DescribeTableOutput{Table: table}, nil
}

func (f *fakeAdmin) CreateTable(_ context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	f.createCalls++
	if f.createFailed != nil {
		return nil, f.createFailed
	}
	desc := &types.TableDescription{
		TableName:   in.TableName,
		TableStatus: types.TableStatusActive,
		KeySchema:   in.KeySchema,
	}
	f.tables[aws.ToString(in.TableName)] = desc
	return &dynamodb.CreateTableOutput{TableDescription: desc}, nil
}

func TestMigrate_CreatesTable(t *testing.T) {
	admin := newFakeAdmin()
	ctx := context.Background()

	err := dynamo.Migrate(ctx, admin, "photos")
	require.NoError(t, err)
	assert.Equal(t, 1, admin.createCalls)

	assert.NoError(t, dynamo.ValidateSchema(ctx, admin, "photos"))
}

func TestMigrate_ExistingTableUntouched(t *testing.T) {
	admin := newFakeAdmin()
	ctx := context.Background()

	require.NoError(t, dynamo.Migrate(ctx, admin, "photos"))
	require.NoError(t, dynamo.Migrate(ctx, admin, "photos"))

	assert.Equal(t, 1, admin.createCalls, "migrate should be idempotent")
}

func TestMigrate_DescribeFailure(t *testing.T) {
	admin := newFakeAdmin()
	admin.describeErr = fmt.Errorf("access denied")

	err := dynamo.Migrate(context.Background(), admin, "photos")
	assert.ErrorContains(t, err, "describe table")
	assert.Zero(t, admin.createCalls)
}

func TestMigrate_CreateFailure(t *testing.T) {
	admin := newFakeAdmin()
	admin.createFailed = fmt.Errorf("limit exceeded")

	err := dynamo.Migrate(context.Background(), admin, "photos")
	assert.ErrorContains(t, err, "create table")
}

func TestValidateSchema_MissingTable(t *testing.T) {
	admin := newFakeAdmin()

	err := dynamo.ValidateSchema(context.Background(), admin, "photos")
	assert.Error(t, err)
}

func TestValidateSchema_WrongKeySchema(t *testing.T) {
	admin := newFakeAdmin()
	admin.tables["photos"] = &types.TableDescription{
		TableName:   aws.String("photos"),
		TableStatus: types.TableStatusActive,
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
	}

	err := dynamo.ValidateSchema(context.Background(), admin, "photos")
	assert.ErrorContains(t, err, "unexpected key schema")
}
