package repository

import (
	"context"
	"errors"
	"time"

	"linguaquote/internal/domain/entities"
	"linguaquote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultQuotesTableName = "quotes"
	quotesNumberIndex      = "quote_number-index"
)

type modifierItem struct {
	Enabled bool   `dynamodbav:"enabled"`
	Type    string `dynamodbav:"type,omitempty"`
	Value   string `dynamodbav:"value,omitempty"`
	Reason  string `dynamodbav:"reason,omitempty"`
}

type quoteItem struct {
	ID               string `dynamodbav:"id"`
	QuoteNumber      string `dynamodbav:"quote_number"`
	Status           string `dynamodbav:"status"`
	ProcessingStatus string `dynamodbav:"processing_status"`
	CustomerRef      string `dynamodbav:"customer_ref"`
	SourceLanguage   string `dynamodbav:"source_language,omitempty"`
	TargetLanguage   string `dynamodbav:"target_language"`
	TaxRegion        string `dynamodbav:"tax_region,omitempty"`

	Turnaround  string       `dynamodbav:"turnaround"`
	DeliveryFee string       `dynamodbav:"delivery_fee"`
	Discount    modifierItem `dynamodbav:"discount"`
	Surcharge   modifierItem `dynamodbav:"surcharge"`

	Subtotal  string `dynamodbav:"subtotal"`
	TaxRate   string `dynamodbav:"tax_rate"`
	TaxAmount string `dynamodbav:"tax_amount"`
	Total     string `dynamodbav:"total"`

	Version   int64  `dynamodbav:"version"`
	ExpiresAt string `dynamodbav:"expires_at"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
	DeletedAt string `dynamodbav:"deleted_at,omitempty"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quote_number-index (PK: quote_number)
//
// Money fields round-trip as strings so the fixed-point representation never
// passes through float64. Status transitions and totals writes are
// conditional; a failed condition follows the shared zero-entity convention.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) GetByNumber(ctx context.Context, number string) (entities.Quote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesNumberIndex),
		KeyConditionExpression: aws.String("quote_number = :qn"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qn": &types.AttributeValueMemberS{Value: number},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Items) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.QuoteStatus) (entities.Quote, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:    aws.String("SET #status = :to, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from":       &types.AttributeValueMemberS{Value: string(from)},
			":to":         &types.AttributeValueMemberS{Value: string(to)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) SaveTotals(ctx context.Context, q entities.Quote, expectedVersion int64) (entities.Quote, error) {
	discount, err := attributevalue.Marshal(toModifierItem(q.Discount))
	if err != nil {
		return entities.Quote{}, err
	}
	surcharge, err := attributevalue.Marshal(toModifierItem(q.Surcharge))
	if err != nil {
		return entities.Quote{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: q.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		UpdateExpression: aws.String("SET #processing_status = :processing_status, #turnaround = :turnaround, " +
			"#delivery_fee = :delivery_fee, #discount = :discount, #surcharge = :surcharge, " +
			"#subtotal = :subtotal, #tax_amount = :tax_amount, #total = :total, " +
			"#version = :next, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":                "id",
			"#processing_status": "processing_status",
			"#turnaround":        "turnaround",
			"#delivery_fee":      "delivery_fee",
			"#discount":          "discount",
			"#surcharge":         "surcharge",
			"#subtotal":          "subtotal",
			"#tax_amount":        "tax_amount",
			"#total":             "total",
			"#version":           "version",
			"#updated_at":        "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected":          &types.AttributeValueMemberN{Value: int64ToString(expectedVersion)},
			":next":              &types.AttributeValueMemberN{Value: int64ToString(expectedVersion + 1)},
			":processing_status": &types.AttributeValueMemberS{Value: string(q.ProcessingStatus)},
			":turnaround":        &types.AttributeValueMemberS{Value: q.Turnaround},
			":delivery_fee":      &types.AttributeValueMemberS{Value: q.DeliveryFee.String()},
			":discount":          discount,
			":surcharge":         surcharge,
			":subtotal":          &types.AttributeValueMemberS{Value: q.Subtotal.String()},
			":tax_amount":        &types.AttributeValueMemberS{Value: q.TaxAmount.String()},
			":total":             &types.AttributeValueMemberS{Value: q.Total.String()},
			":updated_at":        &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) SoftDelete(ctx context.Context, id string) (entities.Quote, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND NOT #status IN (:paid, :expired, :cancelled)"),
		UpdateExpression:    aws.String("SET #status = :cancelled, #deleted_at = :now, #updated_at = :now"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#deleted_at": "deleted_at",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":paid":      &types.AttributeValueMemberS{Value: string(entities.QuoteStatusPaid)},
			":expired":   &types.AttributeValueMemberS{Value: string(entities.QuoteStatusExpired)},
			":cancelled": &types.AttributeValueMemberS{Value: string(entities.QuoteStatusCancelled)},
			":now":       &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func toModifierItem(m entities.QuoteModifier) modifierItem {
	it := modifierItem{
		Enabled: m.Enabled,
		Type:    string(m.Type),
		Reason:  m.Reason,
	}
	if !m.Value.IsZero() {
		it.Value = m.Value.String()
	}
	return it
}

func fromModifierItem(it modifierItem) entities.QuoteModifier {
	return entities.QuoteModifier{
		Enabled: it.Enabled,
		Type:    entities.FeeType(it.Type),
		Value:   decStringOrZero(it.Value),
		Reason:  it.Reason,
	}
}

func toQuoteItem(q entities.Quote) quoteItem {
	it := quoteItem{
		ID:               q.ID,
		QuoteNumber:      q.QuoteNumber,
		Status:           string(q.Status),
		ProcessingStatus: string(q.ProcessingStatus),
		CustomerRef:      q.CustomerRef,
		SourceLanguage:   q.SourceLanguage,
		TargetLanguage:   q.TargetLanguage,
		TaxRegion:        q.TaxRegion,
		Turnaround:       q.Turnaround,
		DeliveryFee:      q.DeliveryFee.String(),
		Discount:         toModifierItem(q.Discount),
		Surcharge:        toModifierItem(q.Surcharge),
		Subtotal:         q.Subtotal.String(),
		TaxRate:          q.TaxRate.String(),
		TaxAmount:        q.TaxAmount.String(),
		Total:            q.Total.String(),
		Version:          q.Version,
		ExpiresAt:        q.ExpiresAt.UTC().Format(time.RFC3339Nano),
		CreatedAt:        q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if q.DeletedAt != nil {
		it.DeletedAt = q.DeletedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromQuoteItem(it quoteItem) entities.Quote {
	expiresAt, _ := time.Parse(time.RFC3339Nano, it.ExpiresAt)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	q := entities.Quote{
		ID:               it.ID,
		QuoteNumber:      it.QuoteNumber,
		Status:           entities.QuoteStatus(it.Status),
		ProcessingStatus: entities.ProcessingStatus(it.ProcessingStatus),
		CustomerRef:      it.CustomerRef,
		SourceLanguage:   it.SourceLanguage,
		TargetLanguage:   it.TargetLanguage,
		TaxRegion:        it.TaxRegion,
		Turnaround:       it.Turnaround,
		DeliveryFee:      decStringOrZero(it.DeliveryFee),
		Discount:         fromModifierItem(it.Discount),
		Surcharge:        fromModifierItem(it.Surcharge),
		Subtotal:         decStringOrZero(it.Subtotal),
		TaxRate:          decStringOrZero(it.TaxRate),
		TaxAmount:        decStringOrZero(it.TaxAmount),
		Total:            decStringOrZero(it.Total),
		Version:          it.Version,
		ExpiresAt:        expiresAt,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
	if it.DeletedAt != "" {
		deletedAt, err := time.Parse(time.RFC3339Nano, it.DeletedAt)
		if err == nil {
			q.DeletedAt = &deletedAt
		}
	}
	return q
}

func decStringOrZero(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
