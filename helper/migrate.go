package helper

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsDynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog/log"

	"hotel/config"
	"hotel/infras/dynamodb"
	"hotel/internal/domains/room/model"
)

// Runner provisions or tears down the room table. DynamoDB has no schema to
// migrate, so "up" and "drop" are the only actions.
func Runner(config *config.Config, action string) error {
	db := dynamodb.New(config)
	table := config.DB.DynamoDB.TableName

	switch action {
	case "up":
		return CreateRoomTable(context.Background(), db, table)
	case "drop":
		return DropRoomTable(context.Background(), db, table)
	}

	return nil
}

func Up(config *config.Config) error {
	return Runner(config, "up")
}

func Drop(config *config.Config) error {
	return Runner(config, "drop")
}

// CreateRoomTable creates the table keyed by the numeric room id. Creation is
// skipped when the table is already there.
func CreateRoomTable(ctx context.Context, db dynamodb.DynamoDB, table string) error {
	_, err := db.DescribeTable(ctx, &awsDynamodb.DescribeTableInput{
		TableName: aws.String(table),
	})
	if err == nil {
		log.Info().Str("table", table).Msg("Table already exists, nothing to do")

		return nil
	}

	var notFound *types.ResourceNotFoundException
	if !errors.As(err, &notFound) {
		return fmt.Errorf("error describing table: %w", err)
	}

	_, err = db.CreateTable(ctx, &awsDynamodb.CreateTableInput{
		TableName: aws.String(table),
		AttributeDefinitions: []types.AttributeDefinition{
			{
				AttributeName: aws.String(model.FieldID),
				AttributeType: types.ScalarAttributeTypeN,
			},
		},
		KeySchema: []types.KeySchemaElement{
			{
				AttributeName: aws.String(model.FieldID),
				KeyType:       types.KeyTypeHash,
			},
		},
		BillingMode: types.BillingModePayPerRequest,
	})
	if err != nil {
		return fmt.Errorf("error creating table: %w", err)
	}

	log.Info().Str("table", table).Msg("Table created successfully")

	return nil
}

// DropRoomTable removes the table, tolerating a table that never existed.
func DropRoomTable(ctx context.Context, db dynamodb.DynamoDB, table string) error {
	_, err := db.DeleteTable(ctx, &awsDynamodb.DeleteTableInput{
		TableName: aws.String(table),
	})

	var notFound *types.ResourceNotFoundException
	if errors.As(err, &notFound) {
		log.Info().Str("table", table).Msg("Table does not exist, nothing to do")

		return nil
	}

	if err != nil {
		return fmt.Errorf("error deleting table: %w", err)
	}

	log.Info().Str("table", table).Msg("Table deleted successfully")

	return nil
}
