package request

import (
	"errors"
	"strings"

	"linguaquote/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidMoneyValue = errors.New("invalid money value")
)

// CreateQuoteRequest starts a quote for a customer.
type CreateQuoteRequest struct {
	CustomerRef    string `json:"customer_ref" binding:"required"`
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language" binding:"required"`
	TaxRegion      string `json:"tax_region"`
	Turnaround     string `json:"turnaround"`
}

// AttachDocumentRequest registers one uploaded file on a quote.
type AttachDocumentRequest struct {
	FileName      string `json:"file_name" binding:"required"`
	PageCount     int    `json:"page_count" binding:"required,min=1"`
	WordCount     int    `json:"word_count"`
	Certification string `json:"certification"`
}

// AnalysisResultRequest is the callback payload from the document-analysis
// pipeline.
type AnalysisResultRequest struct {
	Failed       bool    `json:"failed"`
	DetectedType string  `json:"detected_type"`
	WordCount    int     `json:"word_count"`
	PageCount    int     `json:"page_count"`
	Complexity   string  `json:"complexity"`
	Confidence   float64 `json:"confidence"`
}

// ModifierRequest is an order-level discount or surcharge.
type ModifierRequest struct {
	Enabled bool   `json:"enabled"`
	Type    string `json:"type"`
	Value   string `json:"value"`
	Reason  string `json:"reason"`
}

// Resolve parses the modifier's money value; money arrives as strings so the
// fixed-point representation never passes through float64.
func (r ModifierRequest) Resolve() (entities.QuoteModifier, error) {
	m := entities.QuoteModifier{
		Enabled: r.Enabled,
		Type:    entities.FeeType(strings.TrimSpace(r.Type)),
		Reason:  strings.TrimSpace(r.Reason),
	}
	if v := strings.TrimSpace(r.Value); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return entities.QuoteModifier{}, ErrInvalidMoneyValue
		}
		m.Value = d
	}
	return m, nil
}

// RecomputeRequest updates the order-level modifiers and retotals the quote.
type RecomputeRequest struct {
	Turnaround  string          `json:"turnaround"`
	DeliveryFee string          `json:"delivery_fee"`
	Discount    ModifierRequest `json:"discount"`
	Surcharge   ModifierRequest `json:"surcharge"`
}

func (r RecomputeRequest) ResolveDeliveryFee() (decimal.Decimal, error) {
	v := strings.TrimSpace(r.DeliveryFee)
	if v == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Decimal{}, ErrInvalidMoneyValue
	}
	return d, nil
}

// FastQuoteLineRequest is one staff-entered line of a manually built quote.
type FastQuoteLineRequest struct {
	FileName              string `json:"file_name" binding:"required"`
	PageCount             int    `json:"page_count" binding:"required,min=1"`
	WordCount             int    `json:"word_count"`
	Complexity            string `json:"complexity"`
	Certification         string `json:"certification"`
	BillablePagesOverride string `json:"billable_pages_override"`
	PerPageRateOverride   string `json:"per_page_rate_override"`
}

func (r FastQuoteLineRequest) ResolveOverrides() (pages, rate *decimal.Decimal, err error) {
	if v := strings.TrimSpace(r.BillablePagesOverride); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return nil, nil, ErrInvalidMoneyValue
		}
		pages = &d
	}
	if v := strings.TrimSpace(r.PerPageRateOverride); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return nil, nil, ErrInvalidMoneyValue
		}
		rate = &d
	}
	return pages, rate, nil
}

// FastQuoteRequest lets staff build a fully priced quote in one call.
type FastQuoteRequest struct {
	CreateQuoteRequest
	Lines     []FastQuoteLineRequest `json:"lines" binding:"required,min=1,dive"`
	Modifiers RecomputeRequest       `json:"modifiers"`
}
