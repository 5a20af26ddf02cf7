package request

// CorrectionRequest is one manual override submitted under a review claim.
type CorrectionRequest struct {
	DocumentID     string `json:"document_id" binding:"required"`
	Field          string `json:"field" binding:"required"`
	CorrectedValue string `json:"corrected_value" binding:"required"`
}

// ApproveReviewRequest carries optional resolution notes.
type ApproveReviewRequest struct {
	Notes string `json:"notes"`
}

// RejectReviewRequest names the problem and the specific documents that
// triggered it.
type RejectReviewRequest struct {
	Reason      string   `json:"reason" binding:"required"`
	DocumentIDs []string `json:"document_ids"`
}

// EscalateReviewRequest requires an explicit confirmation flag; escalation is
// terminal for the current record.
type EscalateReviewRequest struct {
	Confirm bool `json:"confirm"`
}
