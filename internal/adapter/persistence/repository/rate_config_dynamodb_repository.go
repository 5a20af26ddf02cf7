package repository

import (
	"context"
	"encoding/json"
	"log"

	"linguaquote/internal/domain/pricing"
	"linguaquote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultRateConfigTableName = "rate_configs"
	rateConfigRowID            = "default"
)

type rateConfigItem struct {
	ID         string `dynamodbav:"id"`
	ConfigJSON string `dynamodbav:"config_json"`
}

// RateConfigDynamoRepository loads the pricing schedule from DynamoDB.
//
// Table requirements:
//   - PK: id (string), single row with id "default"
//
// The schedule is stored as one JSON document so operations can edit it as a
// unit. A missing row falls back to the compiled-in default schedule; a row
// that fails validation is an error, never a silent fallback.

type RateConfigDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRateConfigRepository = (*RateConfigDynamoRepository)(nil)

func NewRateConfigDynamoRepository(ddb *dynamodb.Client) *RateConfigDynamoRepository {
	return &RateConfigDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RATE_CONFIG_TABLE", defaultRateConfigTableName),
	}
}

func (r *RateConfigDynamoRepository) Load(ctx context.Context) (pricing.RateConfig, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: rateConfigRowID},
		},
	})
	if err != nil {
		return pricing.RateConfig{}, err
	}
	if len(out.Item) == 0 {
		log.Printf("[rate_config][repository] no schedule row, using compiled-in defaults")
		return pricing.DefaultRateConfig(), nil
	}

	raw, ok := out.Item["config_json"].(*types.AttributeValueMemberS)
	if !ok || raw.Value == "" {
		log.Printf("[rate_config][repository] schedule row missing config_json, using compiled-in defaults")
		return pricing.DefaultRateConfig(), nil
	}

	var cfg pricing.RateConfig
	if err := json.Unmarshal([]byte(raw.Value), &cfg); err != nil {
		return pricing.RateConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return pricing.RateConfig{}, err
	}
	return cfg, nil
}
