package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the provider-reported outcome of a capture attempt.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDeclined PaymentStatus = "declined"
)

// Payment is the capture record persisted when a quote is paid.
//
// Storage model (DynamoDB):
//   - PK: id (provider payment id)
//   - GSI1 (quote_id-index): quote_id
//
// ProviderRaw keeps the original provider response (JSON) for
// traceability/audit; integrations vary in schema so it is stored verbatim.

type Payment struct {
	ID          string          `json:"id"`
	QuoteID     string          `json:"quote_id"`
	Amount      decimal.Decimal `json:"amount"`
	Status      PaymentStatus   `json:"status"`
	ProviderRaw json.RawMessage `json:"provider_raw,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}
