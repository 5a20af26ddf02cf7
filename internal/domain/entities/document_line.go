package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ComplexityTier is the coarse difficulty classification of a document. It is
// a closed set; unknown tiers are rejected at the boundary before any pricing
// math runs.

type ComplexityTier string

const (
	ComplexityStandard      ComplexityTier = "standard"
	ComplexityComplex       ComplexityTier = "complex"
	ComplexityHighlyComplex ComplexityTier = "highly_complex"
)

func (t ComplexityTier) Valid() bool {
	switch t {
	case ComplexityStandard, ComplexityComplex, ComplexityHighlyComplex:
		return true
	}
	return false
}

// CertificationType selects the flat certification fee added to a line.
// CertificationNone carries a zero fee.

type CertificationType string

const (
	CertificationNone      CertificationType = "none"
	CertificationStandard  CertificationType = "standard"
	CertificationSworn     CertificationType = "sworn"
	CertificationNotarized CertificationType = "notarized"
	CertificationApostille CertificationType = "apostille"
)

// DocumentLine is one billable unit within a quote, usually one uploaded file.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quote_id-index): quote_id
//
// Billable pages and per-page rate each keep the automated value alongside an
// optional manual override. The override, when present, fully replaces the
// automated value for all downstream math; the automated value is retained as
// a reference and never discarded.

type DocumentLine struct {
	ID      string `json:"id"`
	QuoteID string `json:"quote_id"`

	FileName      string  `json:"file_name"`
	DetectedType  string  `json:"detected_type,omitempty"`
	ConfirmedType string  `json:"confirmed_type,omitempty"`
	Confidence    float64 `json:"confidence"`

	WordCount int `json:"word_count"`
	PageCount int `json:"page_count"`

	Complexity           ComplexityTier  `json:"complexity"`
	ComplexityMultiplier decimal.Decimal `json:"complexity_multiplier"`

	AutoBillablePages     decimal.Decimal  `json:"auto_billable_pages"`
	BillablePagesOverride *decimal.Decimal `json:"billable_pages_override,omitempty"`
	AutoPerPageRate       decimal.Decimal  `json:"auto_per_page_rate"`
	PerPageRateOverride   *decimal.Decimal `json:"per_page_rate_override,omitempty"`

	Certification    CertificationType `json:"certification"`
	CertificationFee decimal.Decimal   `json:"certification_fee"`
	LineTotal        decimal.Decimal   `json:"line_total"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EffectiveBillablePages returns the override when set, otherwise the
// automated estimate.
func (l DocumentLine) EffectiveBillablePages() decimal.Decimal {
	if l.BillablePagesOverride != nil {
		return *l.BillablePagesOverride
	}
	return l.AutoBillablePages
}

// EffectivePerPageRate returns the override when set, otherwise the automated
// rate.
func (l DocumentLine) EffectivePerPageRate() decimal.Decimal {
	if l.PerPageRateOverride != nil {
		return *l.PerPageRateOverride
	}
	return l.AutoPerPageRate
}

// Priced reports whether the line carries effective billable pages and a
// per-page rate (automated or overridden). A quote is only quote_ready when
// every line is priced.
func (l DocumentLine) Priced() bool {
	return l.EffectiveBillablePages().IsPositive() && l.EffectivePerPageRate().IsPositive()
}
