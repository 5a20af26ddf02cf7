package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteStatus is the customer-visible lifecycle of a quote.
//
// Lifecycle:
//
//	draft -> details_pending -> {quote_ready, review_required}
//	review_required -> quote_ready (review approved)
//	review_required -> details_pending (review rejected, customer resubmits)
//	{quote_ready} -> paid
//	any non-terminal -> expired | cancelled
//
// paid, expired and cancelled are terminal.

type QuoteStatus string

const (
	QuoteStatusDraft          QuoteStatus = "draft"
	QuoteStatusDetailsPending QuoteStatus = "details_pending"
	QuoteStatusQuoteReady     QuoteStatus = "quote_ready"
	QuoteStatusReviewRequired QuoteStatus = "review_required"
	QuoteStatusPaid           QuoteStatus = "paid"
	QuoteStatusExpired        QuoteStatus = "expired"
	QuoteStatusCancelled      QuoteStatus = "cancelled"
)

var quoteTransitions = map[QuoteStatus][]QuoteStatus{
	QuoteStatusDraft:          {QuoteStatusDetailsPending, QuoteStatusExpired, QuoteStatusCancelled},
	QuoteStatusDetailsPending: {QuoteStatusQuoteReady, QuoteStatusReviewRequired, QuoteStatusExpired, QuoteStatusCancelled},
	QuoteStatusQuoteReady:     {QuoteStatusReviewRequired, QuoteStatusPaid, QuoteStatusExpired, QuoteStatusCancelled},
	QuoteStatusReviewRequired: {QuoteStatusQuoteReady, QuoteStatusDetailsPending, QuoteStatusExpired, QuoteStatusCancelled},
}

func (s QuoteStatus) CanTransitionTo(next QuoteStatus) bool {
	for _, allowed := range quoteTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s QuoteStatus) Terminal() bool {
	switch s {
	case QuoteStatusPaid, QuoteStatusExpired, QuoteStatusCancelled:
		return true
	}
	return false
}

// ProcessingStatus tracks the automated-analysis pipeline for a quote,
// independent of the commercial lifecycle above.

type ProcessingStatus string

const (
	ProcessingStatusPending   ProcessingStatus = "pending"
	ProcessingStatusAnalyzing ProcessingStatus = "analyzing"
	ProcessingStatusAnalyzed  ProcessingStatus = "analyzed"
	ProcessingStatusFailed    ProcessingStatus = "failed"
)

// Quote is one translation request/order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quote_number-index): quote_number
//
// Monetary representation:
//   - All money fields are fixed-point decimals and round-trip DynamoDB as
//     strings; display rounding to 2 decimals happens only in response DTOs.
//
// Version is an optimistic-lock counter: every totals write is conditional on
// the version the computation read, so a recompute can never land on top of
// line data that changed underneath it.

type Quote struct {
	ID               string           `json:"id"`
	QuoteNumber      string           `json:"quote_number"`
	Status           QuoteStatus      `json:"status"`
	ProcessingStatus ProcessingStatus `json:"processing_status"`
	CustomerRef      string           `json:"customer_ref"`
	SourceLanguage   string           `json:"source_language"`
	TargetLanguage   string           `json:"target_language"`
	TaxRegion        string           `json:"tax_region"`

	Turnaround  string          `json:"turnaround"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	Discount    QuoteModifier   `json:"discount"`
	Surcharge   QuoteModifier   `json:"surcharge"`

	Subtotal  decimal.Decimal `json:"subtotal"`
	TaxRate   decimal.Decimal `json:"tax_rate"`
	TaxAmount decimal.Decimal `json:"tax_amount"`
	Total     decimal.Decimal `json:"total"`

	Version   int64      `json:"version"`
	ExpiresAt time.Time  `json:"expires_at"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// QuoteModifier is an order-level discount or surcharge. An enabled modifier
// must carry a positive value and a non-empty reason; the aggregator rejects
// anything else.
type QuoteModifier struct {
	Enabled bool            `json:"enabled"`
	Type    FeeType         `json:"type,omitempty"`
	Value   decimal.Decimal `json:"value"`
	Reason  string          `json:"reason,omitempty"`
}

// FeeType qualifies how a fee or modifier value is applied.
type FeeType string

const (
	FeeTypePercentage FeeType = "percentage"
	FeeTypeFixed      FeeType = "fixed"
)

func (t FeeType) Valid() bool {
	return t == FeeTypePercentage || t == FeeTypeFixed
}

func (q Quote) Expired(now time.Time) bool {
	return !q.ExpiresAt.IsZero() && now.After(q.ExpiresAt)
}
