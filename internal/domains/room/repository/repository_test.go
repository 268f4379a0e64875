package repository_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	awsDynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotel/config"
	dynamoMocks "hotel/infras/dynamodb/mocks"
	"hotel/infras/otel/mocks"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/repository"
)

func newRepository(mockDB *dynamoMocks.MockDynamoDB) repository.Room {
	cfg := &config.Config{}
	cfg.DB.DynamoDB.TableName = "Rooms"

	return repository.New(mockDB, cfg, mocks.NewOtel())
}

// roomItem builds the stored attribute shape of a room, the same shape
// attributevalue.MarshalMap produces.
func roomItem(id, floor int, hasView bool, status string, capacity int) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id":       &types.AttributeValueMemberN{Value: strconv.Itoa(id)},
		"floor":    &types.AttributeValueMemberN{Value: strconv.Itoa(floor)},
		"hasView":  &types.AttributeValueMemberBOOL{Value: hasView},
		"status":   &types.AttributeValueMemberS{Value: status},
		"capacity": &types.AttributeValueMemberN{Value: strconv.Itoa(capacity)},
	}
}

func TestRoomRepository_ListAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := dynamoMocks.NewMockDynamoDB(ctrl)
	repo := newRepository(mockDB)

	t.Run("empty table yields empty slice", func(t *testing.T) {
		mockDB.EXPECT().
			Scan(gomock.Any(), gomock.Any()).
			Return(&awsDynamodb.ScanOutput{}, nil)

		rooms, err := repo.ListAll(context.Background())

		assert.NoError(t, err)
		assert.NotNil(t, rooms)
		assert.Empty(t, rooms)
	})

	t.Run("single page", func(t *testing.T) {
		mockDB.EXPECT().
			Scan(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input *awsDynamodb.ScanInput, _ ...func(*awsDynamodb.Options)) (*awsDynamodb.ScanOutput, error) {
				assert.Equal(t, "Rooms", *input.TableName)

				return &awsDynamodb.ScanOutput{
					Items: []map[string]types.AttributeValue{
						roomItem(1, 1, true, "available", 2),
						roomItem(2, 2, false, "occupied", 4),
					},
				}, nil
			})

		rooms, err := repo.ListAll(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, []model.Room{
			{ID: 1, Floor: 1, HasView: true, Status: model.StatusAvailable, Capacity: 2},
			{ID: 2, Floor: 2, HasView: false, Status: model.StatusOccupied, Capacity: 4},
		}, rooms)
	})

	t.Run("follows pagination", func(t *testing.T) {
		lastKey := map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: "1"},
		}

		mockDB.EXPECT().
			Scan(gomock.Any(), gomock.Any()).
			Return(&awsDynamodb.ScanOutput{
				Items:            []map[string]types.AttributeValue{roomItem(1, 1, true, "available", 2)},
				LastEvaluatedKey: lastKey,
			}, nil)
		mockDB.EXPECT().
			Scan(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input *awsDynamodb.ScanInput, _ ...func(*awsDynamodb.Options)) (*awsDynamodb.ScanOutput, error) {
				assert.Equal(t, lastKey, input.ExclusiveStartKey)

				return &awsDynamodb.ScanOutput{
					Items: []map[string]types.AttributeValue{roomItem(2, 2, false, "maintenance", 6)},
				}, nil
			})

		rooms, err := repo.ListAll(context.Background())

		assert.NoError(t, err)
		assert.Len(t, rooms, 2)
		assert.Equal(t, 1, rooms[0].ID)
		assert.Equal(t, 2, rooms[1].ID)
	})

	t.Run("scan error", func(t *testing.T) {
		mockDB.EXPECT().
			Scan(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("throughput exceeded"))

		rooms, err := repo.ListAll(context.Background())

		assert.Error(t, err)
		assert.Nil(t, rooms)
	})
}

func TestRoomRepository_Put(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := dynamoMocks.NewMockDynamoDB(ctrl)
	repo := newRepository(mockDB)

	room := model.Room{ID: 5, Floor: 1, HasView: true, Status: model.StatusAvailable, Capacity: 2}

	t.Run("writes the marshaled item", func(t *testing.T) {
		mockDB.EXPECT().
			PutItem(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input *awsDynamodb.PutItemInput, _ ...func(*awsDynamodb.Options)) (*awsDynamodb.PutItemOutput, error) {
				assert.Equal(t, "Rooms", *input.TableName)
				assert.Equal(t, roomItem(5, 1, true, "available", 2), input.Item)

				return &awsDynamodb.PutItemOutput{}, nil
			})

		stored, err := repo.Put(context.Background(), room)

		assert.NoError(t, err)
		assert.Equal(t, room, stored)
	})

	t.Run("put error", func(t *testing.T) {
		mockDB.EXPECT().
			PutItem(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("table missing"))

		_, err := repo.Put(context.Background(), room)

		assert.Error(t, err)
	})
}

func TestRoomRepository_UpdateByKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := dynamoMocks.NewMockDynamoDB(ctrl)
	repo := newRepository(mockDB)

	t.Run("missing room short-circuits before the write", func(t *testing.T) {
		mockDB.EXPECT().
			GetItem(gomock.Any(), gomock.Any()).
			Return(&awsDynamodb.GetItemOutput{}, nil)

		_, err := repo.UpdateByKey(context.Background(), 9, map[string]any{"floor": 3})

		assert.ErrorIs(t, err, repository.ErrRoomNotFound)
	})

	t.Run("sets only the given fields and returns the stored state", func(t *testing.T) {
		mockDB.EXPECT().
			GetItem(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input *awsDynamodb.GetItemInput, _ ...func(*awsDynamodb.Options)) (*awsDynamodb.GetItemOutput, error) {
				assert.Equal(t, &types.AttributeValueMemberN{Value: "1"}, input.Key["id"])

				return &awsDynamodb.GetItemOutput{Item: roomItem(1, 1, true, "available", 2)}, nil
			})
		mockDB.EXPECT().
			UpdateItem(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input *awsDynamodb.UpdateItemInput, _ ...func(*awsDynamodb.Options)) (*awsDynamodb.UpdateItemOutput, error) {
				assert.Equal(t, &types.AttributeValueMemberN{Value: "1"}, input.Key["id"])
				assert.Equal(t, types.ReturnValueAllNew, input.ReturnValues)
				assert.NotNil(t, input.UpdateExpression)

				return &awsDynamodb.UpdateItemOutput{
					Attributes: roomItem(1, 5, true, "available", 2),
				}, nil
			})

		room, err := repo.UpdateByKey(context.Background(), 1, map[string]any{"floor": 5})

		assert.NoError(t, err)
		assert.Equal(t, model.Room{ID: 1, Floor: 5, HasView: true, Status: model.StatusAvailable, Capacity: 2}, room)
	})

	t.Run("existence read error", func(t *testing.T) {
		mockDB.EXPECT().
			GetItem(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection reset"))

		_, err := repo.UpdateByKey(context.Background(), 1, map[string]any{"floor": 5})

		assert.Error(t, err)
		assert.NotErrorIs(t, err, repository.ErrRoomNotFound)
	})

	t.Run("update error", func(t *testing.T) {
		mockDB.EXPECT().
			GetItem(gomock.Any(), gomock.Any()).
			Return(&awsDynamodb.GetItemOutput{Item: roomItem(1, 1, true, "available", 2)}, nil)
		mockDB.EXPECT().
			UpdateItem(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("conditional check failed"))

		_, err := repo.UpdateByKey(context.Background(), 1, map[string]any{"floor": 5})

		assert.Error(t, err)
	})
}

func TestRoomRepository_DeleteByKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := dynamoMocks.NewMockDynamoDB(ctrl)
	repo := newRepository(mockDB)

	t.Run("missing room short-circuits before the delete", func(t *testing.T) {
		mockDB.EXPECT().
			GetItem(gomock.Any(), gomock.Any()).
			Return(&awsDynamodb.GetItemOutput{}, nil)

		err := repo.DeleteByKey(context.Background(), 9)

		assert.ErrorIs(t, err, repository.ErrRoomNotFound)
	})

	t.Run("deletes by key", func(t *testing.T) {
		mockDB.EXPECT().
			GetItem(gomock.Any(), gomock.Any()).
			Return(&awsDynamodb.GetItemOutput{Item: roomItem(2, 1, false, "occupied", 3)}, nil)
		mockDB.EXPECT().
			DeleteItem(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input *awsDynamodb.DeleteItemInput, _ ...func(*awsDynamodb.Options)) (*awsDynamodb.DeleteItemOutput, error) {
				assert.Equal(t, "Rooms", *input.TableName)
				assert.Equal(t, &types.AttributeValueMemberN{Value: "2"}, input.Key["id"])

				return &awsDynamodb.DeleteItemOutput{}, nil
			})

		err := repo.DeleteByKey(context.Background(), 2)

		assert.NoError(t, err)
	})

	t.Run("delete error", func(t *testing.T) {
		mockDB.EXPECT().
			GetItem(gomock.Any(), gomock.Any()).
			Return(&awsDynamodb.GetItemOutput{Item: roomItem(2, 1, false, "occupied", 3)}, nil)
		mockDB.EXPECT().
			DeleteItem(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection reset"))

		err := repo.DeleteByKey(context.Background(), 2)

		assert.Error(t, err)
	})
}
