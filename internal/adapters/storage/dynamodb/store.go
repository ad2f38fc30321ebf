// Package dynamodb provides a storage backend on Amazon DynamoDB. Records are
// items with string attributes; pK is the partition key and sK the sort key.
package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/jsamuelsen11/todo-lifecycle-service/internal/adapters/storage/record"
	"github.com/jsamuelsen11/todo-lifecycle-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-lifecycle-service/internal/platform/config"
)

// API is the subset of the DynamoDB client the store calls.
// *dynamodb.Client satisfies it.
type API interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, opts ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// NewClient builds a DynamoDB client from the default AWS credential chain.
// SDK retries are disabled because the repository applies its own policy.
func NewClient(ctx context.Context, cfg *config.DynamoDBConfig) (*dynamodb.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithRetryMaxAttempts(1),
	)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}), nil
}

// Store reads and writes todo items in one DynamoDB table.
type Store struct {
	api   API
	table string
}

// New creates a Store over table.
func New(api API, table string) *Store {
	return &Store{api: api, table: table}
}

// Name returns "dynamodb".
func (s *Store) Name() string { return "dynamodb" }

// Save puts item, replacing any item with the same key.
func (s *Store) Save(ctx context.Context, item record.Item) error {
	av := make(map[string]types.AttributeValue, len(item))
	for name, value := range item {
		av[name] = &types.AttributeValueMemberS{Value: value}
	}

	_, err := s.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      av,
	})
	if err != nil {
		key := todo.Key{UserID: item[record.AttrPartitionKey], TodoID: item[record.AttrSortKey]}
		return fmt.Errorf("put item %s: %w", key, err)
	}
	return nil
}

// Find queries for the single item matching both key parts.
func (s *Store) Find(ctx context.Context, key todo.Key) (record.Item, error) {
	out, err := s.api.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.table),
		KeyConditionExpression: aws.String("#pK = :user_id and #sK = :todo_uuid"),
		ExpressionAttributeNames: map[string]string{
			"#pK": record.AttrPartitionKey,
			"#sK": record.AttrSortKey,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":user_id":   &types.AttributeValueMemberS{Value: key.UserID},
			":todo_uuid": &types.AttributeValueMemberS{Value: key.TodoID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", key, err)
	}
	if len(out.Items) == 0 {
		return nil, fmt.Errorf("%w: %s", record.ErrNotFound, key)
	}

	return toItem(out.Items[0])
}

// toItem flattens a DynamoDB item. Every attribute must be a string.
func toItem(av map[string]types.AttributeValue) (record.Item, error) {
	item := make(record.Item, len(av))
	for name, value := range av {
		s, ok := value.(*types.AttributeValueMemberS)
		if !ok {
			return nil, fmt.Errorf("%w: attribute %q is %T, want string", record.ErrMalformed, name, value)
		}
		item[name] = s.Value
	}
	return item, nil
}
