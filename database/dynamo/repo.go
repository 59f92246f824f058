package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sagarc03/pawtrait"
)

// API is the subset of the DynamoDB client the repo uses.
type API interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

type Repo struct {
	client    API
	tableName string
}

func NewRepo(client API, tableName string) (*Repo, error) {
	if err := pawtrait.ValidateTableName(tableName); err != nil {
		return nil, fmt.Errorf("new repo: %w", err)
	}

	return &Repo{client: client, tableName: tableName}, nil
}

func (r *Repo) Put(ctx context.Context, item pawtrait.PhotoMetadata) (pawtrait.PhotoMetadata, error) {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return pawtrait.PhotoMetadata{}, fmt.Errorf("put: marshal: %w", err)
	}

	// Unconditional put: a repeated record for the same key replaces the
	// stored item.
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return pawtrait.PhotoMetadata{}, fmt.Errorf("put: %w", err)
	}

	return item, nil
}

func (r *Repo) Get(ctx context.Context, familyID, photoID string) (pawtrait.PhotoMetadata, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"familyId": &types.AttributeValueMemberS{Value: familyID},
			"photoId":  &types.AttributeValueMemberS{Value: photoID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return pawtrait.PhotoMetadata{}, fmt.Errorf("get: %w", err)
	}

	if len(out.Item) == 0 {
		return pawtrait.PhotoMetadata{}, pawtrait.ErrNotFound
	}

	var m pawtrait.PhotoMetadata
	if err := attributevalue.UnmarshalMap(out.Item, &m); err != nil {
		return pawtrait.PhotoMetadata{}, fmt.Errorf("get: unmarshal: %w", err)
	}

	return m, nil
}

func (r *Repo) ListByFamily(ctx context.Context, familyID string) ([]pawtrait.PhotoMetadata, error) {
	keyCond := expression.Key("familyId").Equal(expression.Value(familyID))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, fmt.Errorf("list by family: build expression: %w", err)
	}

	items := []pawtrait.PhotoMetadata{}
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.client.Query(ctx, &dynamodb.QueryInput{
			TableName:                 aws.String(r.tableName),
			KeyConditionExpression:    expr.KeyCondition(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("list by family: %w", err)
		}

		var page []pawtrait.PhotoMetadata
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("list by family: unmarshal: %w", err)
		}
		items = append(items, page...)

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return items, nil
}
