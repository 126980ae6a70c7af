package dynamodb

import (
	"context"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamoClient is an in-memory DynamoDBAPI. It stores items per table
// keyed by id, enforces the conditional expressions the repositories use and
// applies SET update expressions, which is enough to exercise the repository
// semantics without a real store.
type fakeDynamoClient struct {
	mu     sync.Mutex
	tables map[string]map[string]map[string]types.AttributeValue

	// failNext, when set, is returned by the next call and cleared.
	failNext error
}

func newFakeDynamoClient() *fakeDynamoClient {
	return &fakeDynamoClient{
		tables: make(map[string]map[string]map[string]types.AttributeValue),
	}
}

func (f *fakeDynamoClient) table(name string) map[string]map[string]types.AttributeValue {
	if f.tables[name] == nil {
		f.tables[name] = make(map[string]map[string]types.AttributeValue)
	}
	return f.tables[name]
}

func (f *fakeDynamoClient) takeFailure() error {
	err := f.failNext
	f.failNext = nil
	return err
}

func keyID(key map[string]types.AttributeValue) string {
	if av, ok := key["id"].(*types.AttributeValueMemberS); ok {
		return av.Value
	}
	return ""
}

func copyItem(item map[string]types.AttributeValue) map[string]types.AttributeValue {
	out := make(map[string]types.AttributeValue, len(item))
	for k, v := range item {
		out[k] = v
	}
	return out
}

func attrEqual(a, b types.AttributeValue) bool {
	switch av := a.(type) {
	case *types.AttributeValueMemberS:
		bv, ok := b.(*types.AttributeValueMemberS)
		return ok && av.Value == bv.Value
	case *types.AttributeValueMemberN:
		bv, ok := b.(*types.AttributeValueMemberN)
		return ok && av.Value == bv.Value
	case *types.AttributeValueMemberBOOL:
		bv, ok := b.(*types.AttributeValueMemberBOOL)
		return ok && av.Value == bv.Value
	}
	return false
}

func (f *fakeDynamoClient) GetItem(_ context.Context, params *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.takeFailure(); err != nil {
		return nil, err
	}

	item, ok := f.table(aws.ToString(params.TableName))[keyID(params.Key)]
	if !ok {
		return &dynamodb.GetItemOutput{}, nil
	}
	return &dynamodb.GetItemOutput{Item: copyItem(item)}, nil
}

func (f *fakeDynamoClient) PutItem(_ context.Context, params *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.takeFailure(); err != nil {
		return nil, err
	}

	tbl := f.table(aws.ToString(params.TableName))
	id := keyID(params.Item)

	if cond := aws.ToString(params.ConditionExpression); strings.Contains(cond, "attribute_not_exists") {
		if _, exists := tbl[id]; exists {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
		}
	}

	tbl[id] = copyItem(params.Item)
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamoClient) UpdateItem(_ context.Context, params *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.takeFailure(); err != nil {
		return nil, err
	}

	tbl := f.table(aws.ToString(params.TableName))
	id := keyID(params.Key)

	item, exists := tbl[id]
	if cond := aws.ToString(params.ConditionExpression); strings.Contains(cond, "attribute_exists") && !exists {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
	}
	if !exists {
		item = map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}}
	}

	updated := copyItem(item)
	expr := strings.TrimPrefix(aws.ToString(params.UpdateExpression), "SET ")
	for _, assignment := range strings.Split(expr, ", ") {
		parts := strings.Split(assignment, " = ")
		if len(parts) != 2 {
			continue
		}
		field := params.ExpressionAttributeNames[parts[0]]
		updated[field] = params.ExpressionAttributeValues[parts[1]]
	}
	tbl[id] = updated

	return &dynamodb.UpdateItemOutput{Attributes: copyItem(updated)}, nil
}

func (f *fakeDynamoClient) DeleteItem(_ context.Context, params *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.takeFailure(); err != nil {
		return nil, err
	}

	tbl := f.table(aws.ToString(params.TableName))
	id := keyID(params.Key)

	if cond := aws.ToString(params.ConditionExpression); strings.Contains(cond, "attribute_exists") {
		if _, exists := tbl[id]; !exists {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
		}
	}

	delete(tbl, id)
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeDynamoClient) Scan(_ context.Context, params *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.takeFailure(); err != nil {
		return nil, err
	}

	field, want, filtered := parseEquality(aws.ToString(params.FilterExpression), params.ExpressionAttributeNames, params.ExpressionAttributeValues)

	var items []map[string]types.AttributeValue
	for _, item := range f.table(aws.ToString(params.TableName)) {
		if filtered {
			av, ok := item[field]
			if !ok || !attrEqual(av, want) {
				continue
			}
		}
		items = append(items, copyItem(item))
		if params.Limit != nil && int32(len(items)) >= aws.ToInt32(params.Limit) {
			break
		}
	}

	return &dynamodb.ScanOutput{Items: items}, nil
}

func (f *fakeDynamoClient) Query(_ context.Context, params *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.takeFailure(); err != nil {
		return nil, err
	}

	field, want, ok := parseEquality(aws.ToString(params.KeyConditionExpression), params.ExpressionAttributeNames, params.ExpressionAttributeValues)
	if !ok {
		return &dynamodb.QueryOutput{}, nil
	}

	var items []map[string]types.AttributeValue
	for _, item := range f.table(aws.ToString(params.TableName)) {
		if av, present := item[field]; present && attrEqual(av, want) {
			items = append(items, copyItem(item))
		}
	}

	return &dynamodb.QueryOutput{Items: items}, nil
}

// parseEquality resolves a single "#name = :value" predicate against the
// supplied placeholder maps.
func parseEquality(expr string, names map[string]string, values map[string]types.AttributeValue) (string, types.AttributeValue, bool) {
	parts := strings.Split(strings.TrimSpace(expr), " = ")
	if len(parts) != 2 {
		return "", nil, false
	}
	field, ok := names[strings.TrimSpace(parts[0])]
	if !ok {
		return "", nil, false
	}
	want, ok := values[strings.TrimSpace(parts[1])]
	if !ok {
		return "", nil, false
	}
	return field, want, true
}
