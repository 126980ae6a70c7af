package dynamodb

import (
	"context"
	"errors"
	"time"

	"fitit-backend/domain/events"
	apperrors "fitit-backend/pkg/errors"
	"fitit-backend/pkg/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"go.uber.org/zap"
)

// keyAttribute is the primary key attribute shared by every entity table.
const keyAttribute = "id"

// DynamoDBAPI is the subset of the DynamoDB client used by repositories.
// Narrowing the dependency to an interface lets tests substitute an
// in-memory store.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// Config defines the per-entity settings for a repository instance.
type Config struct {
	TableName  string
	EntityName string
}

// ChangeNotifier receives entity change events after successful writes.
type ChangeNotifier interface {
	Notify(ctx context.Context, event events.EntityChanged)
}

// OperationRecorder records repository operation metrics.
type OperationRecorder interface {
	RecordOperation(ctx context.Context, entity, operation string, duration time.Duration, err error)
}

// Repository provides CRUD operations for a single entity kind stored in its
// own DynamoDB table, keyed by the "id" attribute. Concrete repositories wrap
// it with their secondary-index queries. All write operations are guarded by
// conditional expressions so check-then-act races collapse into atomic,
// store-enforced preconditions.
type Repository[T any] struct {
	client   DynamoDBAPI
	cfg      Config
	logger   *zap.Logger
	notifier ChangeNotifier
	metrics  OperationRecorder
}

// NewRepository creates a repository for one entity kind.
func NewRepository[T any](client DynamoDBAPI, cfg Config, logger *zap.Logger) *Repository[T] {
	return &Repository[T]{
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

// SetNotifier attaches a change notifier for create/delete events.
func (r *Repository[T]) SetNotifier(notifier ChangeNotifier) {
	r.notifier = notifier
}

// SetMetrics attaches an operation recorder.
func (r *Repository[T]) SetMetrics(metrics OperationRecorder) {
	r.metrics = metrics
}

// FindByID looks an entity up by primary key. A missing entity is not an
// error: the result is a nil pointer.
func (r *Repository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	var err error
	defer r.observe(ctx, "FindByID", time.Now(), &err)

	result, getErr := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.cfg.TableName),
		Key:       r.key(id),
	})
	if getErr != nil {
		err = r.storageFailure("FindByID", id, getErr)
		return nil, err
	}

	if result.Item == nil {
		return nil, nil
	}

	entity := new(T)
	if umErr := attributevalue.UnmarshalMap(result.Item, entity); umErr != nil {
		err = r.storageFailure("FindByID", id, umErr)
		return nil, err
	}

	return entity, nil
}

// GetByID looks an entity up by primary key and fails with a not found error
// when it is absent.
func (r *Repository[T]) GetByID(ctx context.Context, id string) (*T, error) {
	entity, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, apperrors.NewNotFoundError(r.cfg.EntityName, id)
	}
	return entity, nil
}

// List retrieves every entity in the table, optionally capped by limit.
// This is a full scan with no pagination cursor, so it is only suitable for
// small tables.
func (r *Repository[T]) List(ctx context.Context, limit int32) ([]T, error) {
	var err error
	defer r.observe(ctx, "List", time.Now(), &err)

	input := &dynamodb.ScanInput{
		TableName: aws.String(r.cfg.TableName),
	}
	if limit > 0 {
		input.Limit = aws.Int32(limit)
	}

	result, scanErr := r.client.Scan(ctx, input)
	if scanErr != nil {
		err = r.storageFailure("List", "", scanErr)
		return nil, err
	}

	return r.unmarshalItems(result.Items)
}

// Create stores a new entity, injecting createdAt and updatedAt. The write is
// conditional on the id not existing yet, so a duplicate id fails without
// side effects.
func (r *Repository[T]) Create(ctx context.Context, entity T) (*T, error) {
	var err error
	defer r.observe(ctx, "Create", time.Now(), &err)

	item, mErr := attributevalue.MarshalMap(entity)
	if mErr != nil {
		err = r.storageFailure("Create", "", mErr)
		return nil, err
	}

	now := utils.NowRFC3339()
	item["createdAt"] = &types.AttributeValueMemberS{Value: now}
	item["updatedAt"] = &types.AttributeValueMemberS{Value: now}

	id := r.itemID(item)

	condition := expression.AttributeNotExists(expression.Name(keyAttribute))
	expr, bErr := expression.NewBuilder().WithCondition(condition).Build()
	if bErr != nil {
		err = r.storageFailure("Create", id, bErr)
		return nil, err
	}

	_, putErr := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(r.cfg.TableName),
		Item:                      item,
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if putErr != nil {
		if isConditionalCheckFailed(putErr) {
			err = apperrors.NewConflictError(r.cfg.EntityName + " with id " + id + " already exists").
				WithCode("DUPLICATE_ID").
				WithCause(putErr)
			r.logFailure("Create", id, err)
			return nil, err
		}
		err = r.storageFailure("Create", id, putErr)
		return nil, err
	}

	stored := new(T)
	if umErr := attributevalue.UnmarshalMap(item, stored); umErr != nil {
		err = r.storageFailure("Create", id, umErr)
		return nil, err
	}

	r.logger.Info("Entity created",
		zap.String("entity", r.cfg.EntityName),
		zap.String("id", id),
	)
	r.notify(ctx, "created", id)

	return stored, nil
}

// Update merges the supplied fields into the stored entity and refreshes
// updatedAt. The id field is never applied from the payload. An empty payload
// issues no write and returns the stored entity. The write is conditional on
// the entity existing; a failed condition maps to a not found error and is
// never retried.
func (r *Repository[T]) Update(ctx context.Context, id string, fields map[string]interface{}) (*T, error) {
	updates := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		if k == keyAttribute {
			continue
		}
		updates[k] = v
	}

	if len(updates) == 0 {
		return r.GetByID(ctx, id)
	}

	var err error
	defer r.observe(ctx, "Update", time.Now(), &err)

	updates["updatedAt"] = utils.NowRFC3339()

	updateExpr, bErr := BuildUpdateExpression(updates)
	if bErr != nil {
		err = r.storageFailure("Update", id, bErr)
		return nil, err
	}
	updateExpr.Names["#pk"] = keyAttribute

	result, upErr := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.cfg.TableName),
		Key:                       r.key(id),
		UpdateExpression:          aws.String(updateExpr.Expression),
		ConditionExpression:       aws.String("attribute_exists(#pk)"),
		ExpressionAttributeNames:  updateExpr.Names,
		ExpressionAttributeValues: updateExpr.Values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if upErr != nil {
		if isConditionalCheckFailed(upErr) {
			err = apperrors.NewNotFoundError(r.cfg.EntityName, id).WithCause(upErr)
			r.logFailure("Update", id, err)
			return nil, err
		}
		err = r.storageFailure("Update", id, upErr)
		return nil, err
	}

	updated := new(T)
	if umErr := attributevalue.UnmarshalMap(result.Attributes, updated); umErr != nil {
		err = r.storageFailure("Update", id, umErr)
		return nil, err
	}

	r.logger.Debug("Entity updated",
		zap.String("entity", r.cfg.EntityName),
		zap.String("id", id),
	)

	return updated, nil
}

// Delete removes an entity. The delete is conditional on the entity existing;
// a failed condition maps to a not found error.
func (r *Repository[T]) Delete(ctx context.Context, id string) error {
	var err error
	defer r.observe(ctx, "Delete", time.Now(), &err)

	condition := expression.AttributeExists(expression.Name(keyAttribute))
	expr, bErr := expression.NewBuilder().WithCondition(condition).Build()
	if bErr != nil {
		err = r.storageFailure("Delete", id, bErr)
		return err
	}

	_, delErr := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:                aws.String(r.cfg.TableName),
		Key:                      r.key(id),
		ConditionExpression:      expr.Condition(),
		ExpressionAttributeNames: expr.Names(),
	})
	if delErr != nil {
		if isConditionalCheckFailed(delErr) {
			err = apperrors.NewNotFoundError(r.cfg.EntityName, id).WithCause(delErr)
			r.logFailure("Delete", id, err)
			return err
		}
		err = r.storageFailure("Delete", id, delErr)
		return err
	}

	r.logger.Info("Entity deleted",
		zap.String("entity", r.cfg.EntityName),
		zap.String("id", id),
	)
	r.notify(ctx, "deleted", id)

	return nil
}

// queryByIndex performs an exact-match lookup against a named secondary
// index. No matches is an empty slice; a missing index surfaces as a storage
// error, since DynamoDB reports that case opaquely.
func (r *Repository[T]) queryByIndex(ctx context.Context, indexName, keyField, keyValue string) ([]T, error) {
	var err error
	defer r.observe(ctx, "Query:"+indexName, time.Now(), &err)

	keyCond := expression.Key(keyField).Equal(expression.Value(keyValue))
	expr, bErr := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if bErr != nil {
		err = r.storageFailure("Query", keyValue, bErr)
		return nil, err
	}

	result, qErr := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.cfg.TableName),
		IndexName:                 aws.String(indexName),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if qErr != nil {
		err = r.storageFailure("Query", keyValue, qErr)
		return nil, err
	}

	return r.unmarshalItems(result.Items)
}

// scanWithFilter performs a full-table scan with a filter predicate expressed
// against named and valued placeholders.
func (r *Repository[T]) scanWithFilter(ctx context.Context, filterExpr string, names map[string]string, values map[string]interface{}) ([]T, error) {
	var err error
	defer r.observe(ctx, "Scan", time.Now(), &err)

	attrValues, mErr := attributevalue.MarshalMap(values)
	if mErr != nil {
		err = r.storageFailure("Scan", "", mErr)
		return nil, err
	}

	result, scanErr := r.client.Scan(ctx, &dynamodb.ScanInput{
		TableName:                 aws.String(r.cfg.TableName),
		FilterExpression:          aws.String(filterExpr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: attrValues,
	})
	if scanErr != nil {
		err = r.storageFailure("Scan", "", scanErr)
		return nil, err
	}

	return r.unmarshalItems(result.Items)
}

func (r *Repository[T]) key(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		keyAttribute: &types.AttributeValueMemberS{Value: id},
	}
}

func (r *Repository[T]) itemID(item map[string]types.AttributeValue) string {
	if av, ok := item[keyAttribute].(*types.AttributeValueMemberS); ok {
		return av.Value
	}
	return ""
}

func (r *Repository[T]) unmarshalItems(items []map[string]types.AttributeValue) ([]T, error) {
	entities := make([]T, 0, len(items))
	for _, item := range items {
		var entity T
		if err := attributevalue.UnmarshalMap(item, &entity); err != nil {
			r.logger.Warn("Failed to unmarshal item",
				zap.String("entity", r.cfg.EntityName),
				zap.Error(err),
			)
			continue
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

// storageFailure logs a store-level failure with its context and wraps it in
// a storage error.
func (r *Repository[T]) storageFailure(operation, id string, cause error) error {
	err := apperrors.NewStorageError(operation, cause)
	r.logFailure(operation, id, err)
	return err
}

func (r *Repository[T]) logFailure(operation, id string, err error) {
	fields := []zap.Field{
		zap.String("entity", r.cfg.EntityName),
		zap.String("operation", operation),
		zap.Error(err),
	}
	if id != "" {
		fields = append(fields, zap.String("id", id))
	}
	if code := awsErrorCode(err); code != "" {
		fields = append(fields, zap.String("awsErrorCode", code))
	}
	r.logger.Error("Repository operation failed", fields...)
}

func (r *Repository[T]) notify(ctx context.Context, action, id string) {
	if r.notifier == nil {
		return
	}
	r.notifier.Notify(ctx, events.EntityChanged{
		Entity: r.cfg.EntityName,
		Action: action,
		ID:     id,
		At:     time.Now().UTC(),
	})
}

func (r *Repository[T]) observe(ctx context.Context, operation string, start time.Time, err *error) {
	if r.metrics == nil {
		return
	}
	r.metrics.RecordOperation(ctx, r.cfg.EntityName, operation, time.Since(start), *err)
}

// isConditionalCheckFailed reports whether the error is DynamoDB rejecting a
// conditional write.
func isConditionalCheckFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	return errors.As(err, &ccf)
}

// awsErrorCode extracts the AWS service error code, if any, for logging.
func awsErrorCode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}
