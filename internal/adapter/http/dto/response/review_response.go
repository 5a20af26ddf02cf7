package response

import (
	"time"

	"linguaquote/internal/domain/entities"
	"linguaquote/internal/usecase"
)

type ReviewResponse struct {
	ID                  string    `json:"id"`
	QuoteID             string    `json:"quote_id"`
	Status              string    `json:"status"`
	AssignedTo          string    `json:"assigned_to,omitempty"`
	TriggerReasons      []string  `json:"trigger_reasons"`
	RequiredClaimRole   string    `json:"required_claim_role"`
	SLADeadline         time.Time `json:"sla_deadline"`
	ResolutionNotes     string    `json:"resolution_notes,omitempty"`
	RejectedDocumentIDs []string  `json:"rejected_document_ids,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type CorrectionResponse struct {
	ID             string    `json:"id"`
	QuoteID        string    `json:"quote_id"`
	DocumentID     string    `json:"document_id"`
	Field          string    `json:"field"`
	OriginalValue  string    `json:"original_value"`
	CorrectedValue string    `json:"corrected_value"`
	Actor          string    `json:"actor"`
	CreatedAt      time.Time `json:"created_at"`
}

type ReviewDetailResponse struct {
	Review      ReviewResponse       `json:"review"`
	Corrections []CorrectionResponse `json:"corrections"`
}

type CorrectionResultResponse struct {
	Correction CorrectionResponse   `json:"correction"`
	Line       DocumentLineResponse `json:"line"`
	Quote      QuoteResponse        `json:"quote"`
}

func FromReview(r entities.ReviewRecord) ReviewResponse {
	reasons := make([]string, 0, len(r.TriggerReasons))
	for _, tr := range r.TriggerReasons {
		reasons = append(reasons, string(tr))
	}
	return ReviewResponse{
		ID:                  r.ID,
		QuoteID:             r.QuoteID,
		Status:              string(r.Status),
		AssignedTo:          r.AssignedTo,
		TriggerReasons:      reasons,
		RequiredClaimRole:   string(r.RequiredClaimRole),
		SLADeadline:         r.SLADeadline,
		ResolutionNotes:     r.ResolutionNotes,
		RejectedDocumentIDs: r.RejectedDocumentIDs,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
}

func FromCorrection(c entities.Correction) CorrectionResponse {
	return CorrectionResponse{
		ID:             c.ID,
		QuoteID:        c.QuoteID,
		DocumentID:     c.DocumentLineID,
		Field:          string(c.Field),
		OriginalValue:  c.OriginalValue,
		CorrectedValue: c.CorrectedValue,
		Actor:          c.Actor,
		CreatedAt:      c.CreatedAt,
	}
}

func FromReviewDetail(d usecase.ReviewDetail) ReviewDetailResponse {
	corrections := make([]CorrectionResponse, 0, len(d.Corrections))
	for _, c := range d.Corrections {
		corrections = append(corrections, FromCorrection(c))
	}
	return ReviewDetailResponse{Review: FromReview(d.Review), Corrections: corrections}
}

func FromCorrectionResult(r usecase.CorrectionResult) CorrectionResultResponse {
	return CorrectionResultResponse{
		Correction: FromCorrection(r.Correction),
		Line:       FromDocumentLine(r.Line),
		Quote:      FromQuote(r.Quote),
	}
}
