package dynamodb_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ddbstore "github.com/jsamuelsen11/todo-lifecycle-service/internal/adapters/storage/dynamodb"
	"github.com/jsamuelsen11/todo-lifecycle-service/internal/adapters/storage/record"
	"github.com/jsamuelsen11/todo-lifecycle-service/internal/domain/todo"
)

// fakeAPI keeps items keyed by pK/sK and records the last inputs.
type fakeAPI struct {
	mu        sync.Mutex
	items     map[[2]string]map[string]types.AttributeValue
	lastPut   *dynamodb.PutItemInput
	lastQuery *dynamodb.QueryInput
	err       error
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{items: make(map[[2]string]map[string]types.AttributeValue)}
}

func str(av types.AttributeValue) string {
	if s, ok := av.(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func (f *fakeAPI) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.lastPut = in
	if f.err != nil {
		return nil, f.err
	}
	f.items[[2]string{str(in.Item["pK"]), str(in.Item["sK"])}] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeAPI) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.lastQuery = in
	if f.err != nil {
		return nil, f.err
	}
	key := [2]string{
		str(in.ExpressionAttributeValues[":user_id"]),
		str(in.ExpressionAttributeValues[":todo_uuid"]),
	}
	item, ok := f.items[key]
	if !ok {
		return &dynamodb.QueryOutput{}, nil
	}
	return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{item}}, nil
}

var key = todo.Key{UserID: "alice", TodoID: "t1"}

func baseItem() record.Item {
	return record.Item{
		"pK": "alice", "sK": "t1", "todo_type": "transcode",
		"state": "Paused", "source_file": "in.mp4",
	}
}

func TestStore_SaveWritesStringAttributes(t *testing.T) {
	t.Parallel()

	api := newFakeAPI()
	s := ddbstore.New(api, "todo")

	require.NoError(t, s.Save(context.Background(), baseItem()))

	require.NotNil(t, api.lastPut)
	assert.Equal(t, "todo", aws.ToString(api.lastPut.TableName))
	assert.Len(t, api.lastPut.Item, 5)
	for name, want := range baseItem() {
		got, ok := api.lastPut.Item[name].(*types.AttributeValueMemberS)
		require.True(t, ok, "attribute %s is not a string", name)
		assert.Equal(t, want, got.Value)
	}
}

func TestStore_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	for _, withResult := range []bool{false, true} {
		api := newFakeAPI()
		s := ddbstore.New(api, "todo")

		in := baseItem()
		if withResult {
			in["result_file"] = "out.mp4"
		}
		require.NoError(t, s.Save(ctx, in))

		got, err := s.Find(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, in, got)
	}
}

func TestStore_FindQueriesBothKeys(t *testing.T) {
	t.Parallel()

	api := newFakeAPI()
	s := ddbstore.New(api, "jobs")

	_, _ = s.Find(context.Background(), key)

	q := api.lastQuery
	require.NotNil(t, q)
	assert.Equal(t, "jobs", aws.ToString(q.TableName))
	assert.Equal(t, "#pK = :user_id and #sK = :todo_uuid", aws.ToString(q.KeyConditionExpression))
	assert.Equal(t, map[string]string{"#pK": "pK", "#sK": "sK"}, q.ExpressionAttributeNames)
	assert.Equal(t, int32(1), aws.ToInt32(q.Limit))
}

func TestStore_FindMissing(t *testing.T) {
	t.Parallel()

	_, err := ddbstore.New(newFakeAPI(), "todo").Find(context.Background(), key)
	require.ErrorIs(t, err, record.ErrNotFound)
}

func TestStore_FindNonStringAttribute(t *testing.T) {
	t.Parallel()

	api := newFakeAPI()
	api.items[[2]string{"alice", "t1"}] = map[string]types.AttributeValue{
		"pK":          &types.AttributeValueMemberS{Value: "alice"},
		"sK":          &types.AttributeValueMemberS{Value: "t1"},
		"todo_type":   &types.AttributeValueMemberS{Value: "transcode"},
		"state":       &types.AttributeValueMemberN{Value: "3"},
		"source_file": &types.AttributeValueMemberS{Value: "in.mp4"},
	}

	_, err := ddbstore.New(api, "todo").Find(context.Background(), key)
	require.ErrorIs(t, err, record.ErrMalformed)
	assert.Contains(t, err.Error(), "state")
}

func TestStore_TransportErrors(t *testing.T) {
	t.Parallel()

	errThrottled := errors.New("ProvisionedThroughputExceededException")
	api := newFakeAPI()
	api.err = errThrottled
	s := ddbstore.New(api, "todo")

	err := s.Save(context.Background(), baseItem())
	require.ErrorIs(t, err, errThrottled)

	_, err = s.Find(context.Background(), key)
	require.ErrorIs(t, err, errThrottled)
	assert.NotErrorIs(t, err, record.ErrNotFound)
}

func TestStore_Name(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "dynamodb", ddbstore.New(newFakeAPI(), "todo").Name())
}
