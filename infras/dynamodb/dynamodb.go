package dynamodb

//go:generate go run go.uber.org/mock/mockgen -source=./dynamodb.go -destination=./mocks/dynamodb_mock.go -package=mocks

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awsDynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/rs/zerolog/log"

	"hotel/config"
)

// DynamoDB is the subset of the SDK client operations this service uses.
type DynamoDB interface {
	GetItem(ctx context.Context, params *awsDynamodb.GetItemInput, optFns ...func(*awsDynamodb.Options)) (*awsDynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *awsDynamodb.PutItemInput, optFns ...func(*awsDynamodb.Options)) (*awsDynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *awsDynamodb.UpdateItemInput, optFns ...func(*awsDynamodb.Options)) (*awsDynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *awsDynamodb.DeleteItemInput, optFns ...func(*awsDynamodb.Options)) (*awsDynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, params *awsDynamodb.ScanInput, optFns ...func(*awsDynamodb.Options)) (*awsDynamodb.ScanOutput, error)
	CreateTable(ctx context.Context, params *awsDynamodb.CreateTableInput, optFns ...func(*awsDynamodb.Options)) (*awsDynamodb.CreateTableOutput, error)
	DeleteTable(ctx context.Context, params *awsDynamodb.DeleteTableInput, optFns ...func(*awsDynamodb.Options)) (*awsDynamodb.DeleteTableOutput, error)
	DescribeTable(ctx context.Context, params *awsDynamodb.DescribeTableInput, optFns ...func(*awsDynamodb.Options)) (*awsDynamodb.DescribeTableOutput, error)
}

func New(config *config.Config) DynamoDB {
	region := config.DB.DynamoDB.Region
	endpoint := config.DB.DynamoDB.Endpoint
	accessKeyID := config.DB.DynamoDB.AccessKeyID
	secretAccessKey := config.DB.DynamoDB.SecretAccessKey

	opts := []func(*awsConfig.LoadOptions) error{
		awsConfig.WithRegion(region),
	}

	if accessKeyID != "" {
		staticProvider := credentials.NewStaticCredentialsProvider(
			accessKeyID,
			secretAccessKey,
			"",
		)

		opts = append(opts, awsConfig.WithCredentialsProvider(staticProvider))
	}

	cfg, err := awsConfig.LoadDefaultConfig(context.TODO(), opts...)

	if err != nil {
		log.Err(err).Msg("Error loading AWS configuration")
	}

	client := awsDynamodb.NewFromConfig(cfg, func(o *awsDynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	log.Info().
		Str("region", region).
		Str("table", config.DB.DynamoDB.TableName).
		Msg("DynamoDB client configured")

	return client
}
