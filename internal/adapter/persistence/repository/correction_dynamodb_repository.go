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
)

const (
	defaultCorrectionsTableName  = "corrections"
	correctionsQuoteIDIndex      = "quote_id-index"
	correctionsDocumentLineIndex = "document_line_id-index"
)

type correctionItem struct {
	ID             string `dynamodbav:"id"`
	QuoteID        string `dynamodbav:"quote_id"`
	DocumentLineID string `dynamodbav:"document_line_id"`
	Field          string `dynamodbav:"field"`
	OriginalValue  string `dynamodbav:"original_value"`
	CorrectedValue string `dynamodbav:"corrected_value"`
	Actor          string `dynamodbav:"actor"`
	CreatedAt      string `dynamodbav:"created_at"`
}

// CorrectionDynamoRepository persists the append-only correction ledger.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quote_id-index (PK: quote_id)
//   - GSI: document_line_id-index (PK: document_line_id)
//
// AppendWithRecompute is a TransactWriteItems call: the ledger entry, the
// repriced document line and the quote's new totals commit together or not at
// all. The quote write carries a version condition; a cancelled transaction
// returns the zero correction per the shared convention.

type CorrectionDynamoRepository struct {
	ddb        *dynamodb.Client
	tableName  string
	linesTable string
	quoteTable string
}

var _ interfaces.ICorrectionRepository = (*CorrectionDynamoRepository)(nil)

func NewCorrectionDynamoRepository(ddb *dynamodb.Client) *CorrectionDynamoRepository {
	return &CorrectionDynamoRepository{
		ddb:        ddb,
		tableName:  getenvDefault("CORRECTIONS_TABLE", defaultCorrectionsTableName),
		linesTable: getenvDefault("DOCUMENT_LINES_TABLE", defaultDocumentLinesTableName),
		quoteTable: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *CorrectionDynamoRepository) AppendWithRecompute(ctx context.Context, c entities.Correction, line entities.DocumentLine, q entities.Quote, expectedVersion int64) (entities.Correction, error) {
	correctionAV, err := attributevalue.MarshalMap(toCorrectionItem(c))
	if err != nil {
		return entities.Correction{}, err
	}
	lineAV, err := attributevalue.MarshalMap(toDocumentLineItem(line))
	if err != nil {
		return entities.Correction{}, err
	}
	discount, err := attributevalue.Marshal(toModifierItem(q.Discount))
	if err != nil {
		return entities.Correction{}, err
	}
	surcharge, err := attributevalue.Marshal(toModifierItem(q.Surcharge))
	if err != nil {
		return entities.Correction{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                correctionAV,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(r.linesTable),
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
					UpdateExpression: aws.String("SET #discount = :discount, #surcharge = :surcharge, " +
						"#subtotal = :subtotal, #tax_amount = :tax_amount, #total = :total, " +
						"#version = :next, #updated_at = :updated_at"),
					ExpressionAttributeNames: map[string]string{
						"#id":         "id",
						"#discount":   "discount",
						"#surcharge":  "surcharge",
						"#subtotal":   "subtotal",
						"#tax_amount": "tax_amount",
						"#total":      "total",
						"#version":    "version",
						"#updated_at": "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":expected":   &types.AttributeValueMemberN{Value: int64ToString(expectedVersion)},
						":next":       &types.AttributeValueMemberN{Value: int64ToString(expectedVersion + 1)},
						":discount":   discount,
						":surcharge":  surcharge,
						":subtotal":   &types.AttributeValueMemberS{Value: q.Subtotal.String()},
						":tax_amount": &types.AttributeValueMemberS{Value: q.TaxAmount.String()},
						":total":      &types.AttributeValueMemberS{Value: q.Total.String()},
						":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
					},
				},
			},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			return entities.Correction{}, nil
		}
		return entities.Correction{}, err
	}
	return c, nil
}

func (r *CorrectionDynamoRepository) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.Correction, error) {
	return r.list(ctx, correctionsQuoteIDIndex, "quote_id = :v", quoteID)
}

func (r *CorrectionDynamoRepository) ListByDocumentLineID(ctx context.Context, lineID string) ([]entities.Correction, error) {
	return r.list(ctx, correctionsDocumentLineIndex, "document_line_id = :v", lineID)
}

func (r *CorrectionDynamoRepository) list(ctx context.Context, index, keyCondition, value string) ([]entities.Correction, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(keyCondition),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}

	corrections := make([]entities.Correction, 0, len(out.Items))
	for _, raw := range out.Items {
		var it correctionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		corrections = append(corrections, fromCorrectionItem(it))
	}
	return corrections, nil
}

func toCorrectionItem(c entities.Correction) correctionItem {
	return correctionItem{
		ID:             c.ID,
		QuoteID:        c.QuoteID,
		DocumentLineID: c.DocumentLineID,
		Field:          string(c.Field),
		OriginalValue:  c.OriginalValue,
		CorrectedValue: c.CorrectedValue,
		Actor:          c.Actor,
		CreatedAt:      c.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromCorrectionItem(it correctionItem) entities.Correction {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Correction{
		ID:             it.ID,
		QuoteID:        it.QuoteID,
		DocumentLineID: it.DocumentLineID,
		Field:          entities.CorrectionField(it.Field),
		OriginalValue:  it.OriginalValue,
		CorrectedValue: it.CorrectedValue,
		Actor:          it.Actor,
		CreatedAt:      createdAt,
	}
}
