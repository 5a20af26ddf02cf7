package entities

import "time"

// ReviewStatus is the human-review disposition state.
//
//	pending -> in_review -> {approved, rejected, escalated}
//
// approved, rejected and escalated are terminal for the record; escalation
// spawns a fresh pending record for the supervisory tier.

type ReviewStatus string

const (
	ReviewStatusPending   ReviewStatus = "pending"
	ReviewStatusInReview  ReviewStatus = "in_review"
	ReviewStatusApproved  ReviewStatus = "approved"
	ReviewStatusRejected  ReviewStatus = "rejected"
	ReviewStatusEscalated ReviewStatus = "escalated"
)

var reviewTransitions = map[ReviewStatus][]ReviewStatus{
	ReviewStatusPending:  {ReviewStatusInReview},
	ReviewStatusInReview: {ReviewStatusPending, ReviewStatusApproved, ReviewStatusRejected, ReviewStatusEscalated},
}

func (s ReviewStatus) CanTransitionTo(next ReviewStatus) bool {
	for _, allowed := range reviewTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s ReviewStatus) Terminal() bool {
	switch s {
	case ReviewStatusApproved, ReviewStatusRejected, ReviewStatusEscalated:
		return true
	}
	return false
}

// TriggerReason records why a quote entered manual review.

type TriggerReason string

const (
	TriggerLowConfidence     TriggerReason = "low_confidence"
	TriggerCustomerRequested TriggerReason = "customer_requested"
	TriggerAnalysisFailed    TriggerReason = "analysis_failed"
	TriggerHighValue         TriggerReason = "high_value"
	TriggerEscalated         TriggerReason = "escalated"
)

// ReviewRecord is the human-review wrapper around a quote requiring manual
// attention.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quote_id-index): quote_id
//
// AssignedTo is the sole claim mutex: it is non-empty exactly when the status
// is in_review, and it is only ever mutated through conditional writes so two
// concurrent claims can never both succeed. At most one non-terminal record
// exists per quote.

type ReviewRecord struct {
	ID                  string          `json:"id"`
	QuoteID             string          `json:"quote_id"`
	Status              ReviewStatus    `json:"status"`
	AssignedTo          string          `json:"assigned_to,omitempty"`
	TriggerReasons      []TriggerReason `json:"trigger_reasons"`
	RequiredClaimRole   StaffRole       `json:"required_claim_role"`
	SLADeadline         time.Time       `json:"sla_deadline"`
	ResolutionNotes     string          `json:"resolution_notes,omitempty"`
	RejectedDocumentIDs []string        `json:"rejected_document_ids,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// ClaimedBy reports whether staffID currently holds the claim.
func (r ReviewRecord) ClaimedBy(staffID string) bool {
	return r.Status == ReviewStatusInReview && r.AssignedTo == staffID
}
