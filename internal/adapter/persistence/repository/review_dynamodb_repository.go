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
	defaultReviewsTableName = "reviews"
	reviewsQuoteIDIndex     = "quote_id-index"
)

type reviewItem struct {
	ID                  string   `dynamodbav:"id"`
	QuoteID             string   `dynamodbav:"quote_id"`
	Status              string   `dynamodbav:"status"`
	AssignedTo          string   `dynamodbav:"assigned_to,omitempty"`
	TriggerReasons      []string `dynamodbav:"trigger_reasons"`
	RequiredClaimRole   string   `dynamodbav:"required_claim_role"`
	SLADeadline         string   `dynamodbav:"sla_deadline"`
	ResolutionNotes     string   `dynamodbav:"resolution_notes,omitempty"`
	RejectedDocumentIDs []string `dynamodbav:"rejected_document_ids,omitempty"`
	CreatedAt           string   `dynamodbav:"created_at"`
	UpdatedAt           string   `dynamodbav:"updated_at"`
}

// ReviewDynamoRepository persists ReviewRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quote_id-index (PK: quote_id)
//
// assigned_to is absent exactly while the record is unclaimed; every claim
// mutation is a conditional write so two concurrent claims can never both
// succeed. A claim lost to a condition check returns the zero record.

type ReviewDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IReviewRepository = (*ReviewDynamoRepository)(nil)

func NewReviewDynamoRepository(ddb *dynamodb.Client) *ReviewDynamoRepository {
	return &ReviewDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REVIEWS_TABLE", defaultReviewsTableName),
	}
}

func (r *ReviewDynamoRepository) Create(ctx context.Context, rec entities.ReviewRecord) (entities.ReviewRecord, error) {
	av, err := attributevalue.MarshalMap(toReviewItem(rec))
	if err != nil {
		return entities.ReviewRecord{}, err
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
		return entities.ReviewRecord{}, err
	}
	return rec, nil
}

func (r *ReviewDynamoRepository) GetByID(ctx context.Context, id string) (entities.ReviewRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ReviewRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.ReviewRecord{}, nil
	}

	var it reviewItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ReviewRecord{}, err
	}
	return fromReviewItem(it), nil
}

func (r *ReviewDynamoRepository) GetOpenByQuoteID(ctx context.Context, quoteID string) (entities.ReviewRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(reviewsQuoteIDIndex),
		KeyConditionExpression: aws.String("quote_id = :qid"),
		FilterExpression:       aws.String("#status IN (:pending, :in_review)"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qid":       &types.AttributeValueMemberS{Value: quoteID},
			":pending":   &types.AttributeValueMemberS{Value: string(entities.ReviewStatusPending)},
			":in_review": &types.AttributeValueMemberS{Value: string(entities.ReviewStatusInReview)},
		},
	})
	if err != nil {
		return entities.ReviewRecord{}, err
	}
	if len(out.Items) == 0 {
		return entities.ReviewRecord{}, nil
	}

	var it reviewItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.ReviewRecord{}, err
	}
	return fromReviewItem(it), nil
}

func (r *ReviewDynamoRepository) Claim(ctx context.Context, id, staffID string) (entities.ReviewRecord, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending AND attribute_not_exists(#assigned_to)"),
		UpdateExpression:    aws.String("SET #status = :in_review, #assigned_to = :staff, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#status":      "status",
			"#assigned_to": "assigned_to",
			"#updated_at":  "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":    &types.AttributeValueMemberS{Value: string(entities.ReviewStatusPending)},
			":in_review":  &types.AttributeValueMemberS{Value: string(entities.ReviewStatusInReview)},
			":staff":      &types.AttributeValueMemberS{Value: staffID},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ReviewRecord{}, nil
		}
		return entities.ReviewRecord{}, err
	}

	var it reviewItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ReviewRecord{}, err
	}
	return fromReviewItem(it), nil
}

func (r *ReviewDynamoRepository) Release(ctx context.Context, id, claimant string) (entities.ReviewRecord, error) {
	return r.release(ctx, id, aws.String(claimant))
}

func (r *ReviewDynamoRepository) ForceRelease(ctx context.Context, id string) (entities.ReviewRecord, error) {
	return r.release(ctx, id, nil)
}

func (r *ReviewDynamoRepository) release(ctx context.Context, id string, claimant *string) (entities.ReviewRecord, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	cond := "attribute_exists(#id) AND #status = :in_review"
	values := map[string]types.AttributeValue{
		":in_review":  &types.AttributeValueMemberS{Value: string(entities.ReviewStatusInReview)},
		":pending":    &types.AttributeValueMemberS{Value: string(entities.ReviewStatusPending)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	if claimant != nil {
		cond += " AND #assigned_to = :claimant"
		values[":claimant"] = &types.AttributeValueMemberS{Value: *claimant}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String(cond),
		UpdateExpression:    aws.String("SET #status = :pending, #updated_at = :updated_at REMOVE #assigned_to"),
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#status":      "status",
			"#assigned_to": "assigned_to",
			"#updated_at":  "updated_at",
		},
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ReviewRecord{}, nil
		}
		return entities.ReviewRecord{}, err
	}

	var it reviewItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ReviewRecord{}, err
	}
	return fromReviewItem(it), nil
}

func (r *ReviewDynamoRepository) Resolve(ctx context.Context, rec entities.ReviewRecord, expectedClaimant string) (entities.ReviewRecord, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	expr := "SET #status = :status, #updated_at = :updated_at"
	names := map[string]string{
		"#id":          "id",
		"#status":      "status",
		"#assigned_to": "assigned_to",
		"#updated_at":  "updated_at",
	}
	values := map[string]types.AttributeValue{
		":in_review":  &types.AttributeValueMemberS{Value: string(entities.ReviewStatusInReview)},
		":claimant":   &types.AttributeValueMemberS{Value: expectedClaimant},
		":status":     &types.AttributeValueMemberS{Value: string(rec.Status)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	if rec.ResolutionNotes != "" {
		expr += ", #resolution_notes = :notes"
		names["#resolution_notes"] = "resolution_notes"
		values[":notes"] = &types.AttributeValueMemberS{Value: rec.ResolutionNotes}
	}
	if len(rec.RejectedDocumentIDs) > 0 {
		rejected, err := attributevalue.Marshal(rec.RejectedDocumentIDs)
		if err != nil {
			return entities.ReviewRecord{}, err
		}
		expr += ", #rejected_document_ids = :rejected"
		names["#rejected_document_ids"] = "rejected_document_ids"
		values[":rejected"] = rejected
	}
	expr += " REMOVE #assigned_to"

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: rec.ID},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :in_review AND #assigned_to = :claimant"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ReviewRecord{}, nil
		}
		return entities.ReviewRecord{}, err
	}

	var it reviewItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ReviewRecord{}, err
	}
	return fromReviewItem(it), nil
}

func toReviewItem(rec entities.ReviewRecord) reviewItem {
	reasons := make([]string, 0, len(rec.TriggerReasons))
	for _, tr := range rec.TriggerReasons {
		reasons = append(reasons, string(tr))
	}
	return reviewItem{
		ID:                  rec.ID,
		QuoteID:             rec.QuoteID,
		Status:              string(rec.Status),
		AssignedTo:          rec.AssignedTo,
		TriggerReasons:      reasons,
		RequiredClaimRole:   string(rec.RequiredClaimRole),
		SLADeadline:         rec.SLADeadline.UTC().Format(time.RFC3339Nano),
		ResolutionNotes:     rec.ResolutionNotes,
		RejectedDocumentIDs: rec.RejectedDocumentIDs,
		CreatedAt:           rec.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:           rec.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromReviewItem(it reviewItem) entities.ReviewRecord {
	slaDeadline, _ := time.Parse(time.RFC3339Nano, it.SLADeadline)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	reasons := make([]entities.TriggerReason, 0, len(it.TriggerReasons))
	for _, tr := range it.TriggerReasons {
		reasons = append(reasons, entities.TriggerReason(tr))
	}
	return entities.ReviewRecord{
		ID:                  it.ID,
		QuoteID:             it.QuoteID,
		Status:              entities.ReviewStatus(it.Status),
		AssignedTo:          it.AssignedTo,
		TriggerReasons:      reasons,
		RequiredClaimRole:   entities.StaffRole(it.RequiredClaimRole),
		SLADeadline:         slaDeadline,
		ResolutionNotes:     it.ResolutionNotes,
		RejectedDocumentIDs: it.RejectedDocumentIDs,
		CreatedAt:           createdAt,
		UpdatedAt:           updatedAt,
	}
}
