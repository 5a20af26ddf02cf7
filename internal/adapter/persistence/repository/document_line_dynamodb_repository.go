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
	defaultDocumentLinesTableName = "document_lines"
	documentLinesQuoteIDIndex     = "quote_id-index"
)

type documentLineItem struct {
	ID      string `dynamodbav:"id"`
	QuoteID string `dynamodbav:"quote_id"`

	FileName      string  `dynamodbav:"file_name"`
	DetectedType  string  `dynamodbav:"detected_type,omitempty"`
	ConfirmedType string  `dynamodbav:"confirmed_type,omitempty"`
	Confidence    float64 `dynamodbav:"confidence"`

	WordCount int `dynamodbav:"word_count"`
	PageCount int `dynamodbav:"page_count"`

	Complexity           string `dynamodbav:"complexity"`
	ComplexityMultiplier string `dynamodbav:"complexity_multiplier"`

	AutoBillablePages     string `dynamodbav:"auto_billable_pages"`
	BillablePagesOverride string `dynamodbav:"billable_pages_override,omitempty"`
	AutoPerPageRate       string `dynamodbav:"auto_per_page_rate"`
	PerPageRateOverride   string `dynamodbav:"per_page_rate_override,omitempty"`

	Certification    string `dynamodbav:"certification"`
	CertificationFee string `dynamodbav:"certification_fee"`
	LineTotal        string `dynamodbav:"line_total"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// DocumentLineDynamoRepository persists DocumentLine entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quote_id-index (PK: quote_id)

type DocumentLineDynamoRepository struct {
	ddb        *dynamodb.Client
	tableName  string
	quoteTable string
}

var _ interfaces.IDocumentLineRepository = (*DocumentLineDynamoRepository)(nil)

func NewDocumentLineDynamoRepository(ddb *dynamodb.Client) *DocumentLineDynamoRepository {
	return &DocumentLineDynamoRepository{
		ddb:        ddb,
		tableName:  getenvDefault("DOCUMENT_LINES_TABLE", defaultDocumentLinesTableName),
		quoteTable: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *DocumentLineDynamoRepository) Create(ctx context.Context, l entities.DocumentLine) (entities.DocumentLine, error) {
	av, err := attributevalue.MarshalMap(toDocumentLineItem(l))
	if err != nil {
		return entities.DocumentLine{}, err
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
		return entities.DocumentLine{}, err
	}
	return l, nil
}

func (r *DocumentLineDynamoRepository) GetByID(ctx context.Context, id string) (entities.DocumentLine, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.DocumentLine{}, err
	}
	if len(out.Item) == 0 {
		return entities.DocumentLine{}, nil
	}

	var it documentLineItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.DocumentLine{}, err
	}
	return fromDocumentLineItem(it), nil
}

func (r *DocumentLineDynamoRepository) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.DocumentLine, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(documentLinesQuoteIDIndex),
		KeyConditionExpression: aws.String("quote_id = :qid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qid": &types.AttributeValueMemberS{Value: quoteID},
		},
	})
	if err != nil {
		return nil, err
	}

	lines := make([]entities.DocumentLine, 0, len(out.Items))
	for _, raw := range out.Items {
		var it documentLineItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		lines = append(lines, fromDocumentLineItem(it))
	}
	return lines, nil
}

// UpdateWithTotals commits the repriced line and the quote's totals block in
// one TransactWriteItems call. The quote update carries the version
// condition; a cancelled transaction returns the zero line per the shared
// convention.
func (r *DocumentLineDynamoRepository) UpdateWithTotals(ctx context.Context, l entities.DocumentLine, q entities.Quote, expectedVersion int64) (entities.DocumentLine, error) {
	lineAV, err := attributevalue.MarshalMap(toDocumentLineItem(l))
	if err != nil {
		return entities.DocumentLine{}, err
	}
	discount, err := attributevalue.Marshal(toModifierItem(q.Discount))
	if err != nil {
		return entities.DocumentLine{}, err
	}
	surcharge, err := attributevalue.Marshal(toModifierItem(q.Surcharge))
	if err != nil {
		return entities.DocumentLine{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                lineAV,
					ConditionExpression: aws.String("attribute_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(r.quoteTable),
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
				},
			},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			return entities.DocumentLine{}, nil
		}
		return entities.DocumentLine{}, err
	}
	return l, nil
}

func toDocumentLineItem(l entities.DocumentLine) documentLineItem {
	it := documentLineItem{
		ID:                   l.ID,
		QuoteID:              l.QuoteID,
		FileName:             l.FileName,
		DetectedType:         l.DetectedType,
		ConfirmedType:        l.ConfirmedType,
		Confidence:           l.Confidence,
		WordCount:            l.WordCount,
		PageCount:            l.PageCount,
		Complexity:           string(l.Complexity),
		ComplexityMultiplier: l.ComplexityMultiplier.String(),
		AutoBillablePages:    l.AutoBillablePages.String(),
		AutoPerPageRate:      l.AutoPerPageRate.String(),
		Certification:        string(l.Certification),
		CertificationFee:     l.CertificationFee.String(),
		LineTotal:            l.LineTotal.String(),
		CreatedAt:            l.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:            l.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if l.BillablePagesOverride != nil {
		it.BillablePagesOverride = l.BillablePagesOverride.String()
	}
	if l.PerPageRateOverride != nil {
		it.PerPageRateOverride = l.PerPageRateOverride.String()
	}
	return it
}

func fromDocumentLineItem(it documentLineItem) entities.DocumentLine {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	l := entities.DocumentLine{
		ID:                   it.ID,
		QuoteID:              it.QuoteID,
		FileName:             it.FileName,
		DetectedType:         it.DetectedType,
		ConfirmedType:        it.ConfirmedType,
		Confidence:           it.Confidence,
		WordCount:            it.WordCount,
		PageCount:            it.PageCount,
		Complexity:           entities.ComplexityTier(it.Complexity),
		ComplexityMultiplier: decStringOrZero(it.ComplexityMultiplier),
		AutoBillablePages:    decStringOrZero(it.AutoBillablePages),
		AutoPerPageRate:      decStringOrZero(it.AutoPerPageRate),
		Certification:        entities.CertificationType(it.Certification),
		CertificationFee:     decStringOrZero(it.CertificationFee),
		LineTotal:            decStringOrZero(it.LineTotal),
		CreatedAt:            createdAt,
		UpdatedAt:            updatedAt,
	}
	if it.BillablePagesOverride != "" {
		if d, err := decimal.NewFromString(it.BillablePagesOverride); err == nil {
			l.BillablePagesOverride = &d
		}
	}
	if it.PerPageRateOverride != "" {
		if d, err := decimal.NewFromString(it.PerPageRateOverride); err == nil {
			l.PerPageRateOverride = &d
		}
	}
	return l
}
