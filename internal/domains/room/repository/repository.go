package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	awsDynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"hotel/config"
	"hotel/infras/dynamodb"
	"hotel/infras/otel"
	"hotel/internal/domains/room/model"
	"hotel/shared/constant"
	"hotel/shared/logger"
)

// ErrRoomNotFound reports a missing room id. Callers translate it to a not-found
// failure; every other storage error stays an internal one.
var ErrRoomNotFound = errors.New("room not found")

type Room interface {
	ListAll(ctx context.Context) ([]model.Room, error)
	Put(ctx context.Context, room model.Room) (model.Room, error)
	UpdateByKey(ctx context.Context, id int, fields map[string]any) (model.Room, error)
	DeleteByKey(ctx context.Context, id int) error
}

type repositoryImpl struct {
	db    dynamodb.DynamoDB
	table string
	otel  otel.Otel
}

func New(db dynamodb.DynamoDB, cfg *config.Config, otel otel.Otel) Room {
	return &repositoryImpl{
		db:    db,
		table: cfg.DB.DynamoDB.TableName,
		otel:  otel,
	}
}

// ListAll scans the whole table, following pagination until every item is read.
// An empty table yields an empty slice, not an error.
func (repo *repositoryImpl) ListAll(ctx context.Context) ([]model.Room, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.ListAll", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	rooms := make([]model.Room, 0)

	input := &awsDynamodb.ScanInput{
		TableName: aws.String(repo.table),
	}

	for {
		output, err := repo.db.Scan(ctx, input)
		if err != nil {
			logger.ErrorWithStack(err)
			scope.TraceError(err)

			return nil, fmt.Errorf("failed to scan %s table: %w", model.EntityName, err)
		}

		var page []model.Room
		if err := attributevalue.UnmarshalListOfMaps(output.Items, &page); err != nil {
			logger.ErrorWithStack(err)
			scope.TraceError(err)

			return nil, fmt.Errorf("failed to unmarshal %s items: %w", model.EntityName, err)
		}

		rooms = append(rooms, page...)

		if output.LastEvaluatedKey == nil {
			break
		}

		input.ExclusiveStartKey = output.LastEvaluatedKey
	}

	return rooms, nil
}

// Put writes the room unconditionally, creating or replacing the item under its id.
func (repo *repositoryImpl) Put(ctx context.Context, room model.Room) (model.Room, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Put", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	item, err := attributevalue.MarshalMap(room)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model.Room{}, fmt.Errorf("failed to marshal %s: %w", model.EntityName, err)
	}

	if _, err := repo.db.PutItem(ctx, &awsDynamodb.PutItemInput{
		TableName: aws.String(repo.table),
		Item:      item,
	}); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model.Room{}, fmt.Errorf("failed to put %s: %w", model.EntityName, err)
	}

	return room, nil
}

// UpdateByKey sets exactly the given attributes on an existing room and returns the
// item as stored after the write. The existence read and the update are two separate
// calls, so a concurrent delete in between surfaces as an update error, not a 404.
func (repo *repositoryImpl) UpdateByKey(ctx context.Context, id int, fields map[string]any) (model.Room, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.UpdateByKey", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	if err := repo.exists(ctx, id); err != nil {
		return model.Room{}, err
	}

	var update expression.UpdateBuilder
	for field, value := range fields {
		update = update.Set(expression.Name(field), expression.Value(value))
	}

	expr, err := expression.NewBuilder().WithUpdate(update).Build()
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model.Room{}, fmt.Errorf("failed to build %s update expression: %w", model.EntityName, err)
	}

	output, err := repo.db.UpdateItem(ctx, &awsDynamodb.UpdateItemInput{
		TableName:                 aws.String(repo.table),
		Key:                       roomKey(id),
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model.Room{}, fmt.Errorf("failed to update %s: %w", model.EntityName, err)
	}

	var room model.Room
	if err := attributevalue.UnmarshalMap(output.Attributes, &room); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model.Room{}, fmt.Errorf("failed to unmarshal updated %s: %w", model.EntityName, err)
	}

	return room, nil
}

// DeleteByKey removes an existing room. Same two-call shape as UpdateByKey.
func (repo *repositoryImpl) DeleteByKey(ctx context.Context, id int) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.DeleteByKey", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	if err := repo.exists(ctx, id); err != nil {
		return err
	}

	if _, err := repo.db.DeleteItem(ctx, &awsDynamodb.DeleteItemInput{
		TableName: aws.String(repo.table),
		Key:       roomKey(id),
	}); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to delete %s: %w", model.EntityName, err)
	}

	return nil
}

func (repo *repositoryImpl) exists(ctx context.Context, id int) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.exists", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	output, err := repo.db.GetItem(ctx, &awsDynamodb.GetItemInput{
		TableName: aws.String(repo.table),
		Key:       roomKey(id),
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to get %s by id: %w", model.EntityName, err)
	}

	// A GetItem without a match returns an empty output, not an error.
	if output.Item == nil {
		return ErrRoomNotFound
	}

	return nil
}

func roomKey(id int) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		model.FieldID: &types.AttributeValueMemberN{Value: strconv.Itoa(id)},
	}
}
