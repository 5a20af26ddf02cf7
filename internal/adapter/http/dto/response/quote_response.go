package response

import (
	"time"

	"linguaquote/internal/domain/entities"
	"linguaquote/internal/usecase"
)

// Money renders as a string with two decimals; the stored fixed-point value
// is never widened to float64 on the wire.

type ModifierResponse struct {
	Enabled bool   `json:"enabled"`
	Type    string `json:"type,omitempty"`
	Value   string `json:"value,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

type QuoteResponse struct {
	ID               string           `json:"id"`
	QuoteNumber      string           `json:"quote_number"`
	Status           string           `json:"status"`
	ProcessingStatus string           `json:"processing_status"`
	CustomerRef      string           `json:"customer_ref"`
	SourceLanguage   string           `json:"source_language,omitempty"`
	TargetLanguage   string           `json:"target_language"`
	TaxRegion        string           `json:"tax_region,omitempty"`
	Turnaround       string           `json:"turnaround"`
	DeliveryFee      string           `json:"delivery_fee"`
	Discount         ModifierResponse `json:"discount"`
	Surcharge        ModifierResponse `json:"surcharge"`
	Subtotal         string           `json:"subtotal"`
	TaxRate          string           `json:"tax_rate"`
	TaxAmount        string           `json:"tax_amount"`
	Total            string           `json:"total"`
	Version          int64            `json:"version"`
	ExpiresAt        time.Time        `json:"expires_at"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

type DocumentLineResponse struct {
	ID                    string  `json:"id"`
	QuoteID               string  `json:"quote_id"`
	FileName              string  `json:"file_name"`
	DetectedType          string  `json:"detected_type,omitempty"`
	ConfirmedType         string  `json:"confirmed_type,omitempty"`
	Confidence            float64 `json:"confidence"`
	WordCount             int     `json:"word_count"`
	PageCount             int     `json:"page_count"`
	Complexity            string  `json:"complexity"`
	ComplexityMultiplier  string  `json:"complexity_multiplier"`
	AutoBillablePages     string  `json:"auto_billable_pages"`
	BillablePagesOverride *string `json:"billable_pages_override,omitempty"`
	BillablePages         string  `json:"billable_pages"`
	AutoPerPageRate       string  `json:"auto_per_page_rate"`
	PerPageRateOverride   *string `json:"per_page_rate_override,omitempty"`
	PerPageRate           string  `json:"per_page_rate"`
	Certification         string  `json:"certification"`
	CertificationFee      string  `json:"certification_fee"`
	LineTotal             string  `json:"line_total"`
}

type QuoteDetailResponse struct {
	Quote QuoteResponse          `json:"quote"`
	Lines []DocumentLineResponse `json:"lines"`
}

func FromModifier(m entities.QuoteModifier) ModifierResponse {
	out := ModifierResponse{
		Enabled: m.Enabled,
		Type:    string(m.Type),
		Reason:  m.Reason,
	}
	if !m.Value.IsZero() {
		out.Value = m.Value.StringFixed(2)
	}
	return out
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:               q.ID,
		QuoteNumber:      q.QuoteNumber,
		Status:           string(q.Status),
		ProcessingStatus: string(q.ProcessingStatus),
		CustomerRef:      q.CustomerRef,
		SourceLanguage:   q.SourceLanguage,
		TargetLanguage:   q.TargetLanguage,
		TaxRegion:        q.TaxRegion,
		Turnaround:       q.Turnaround,
		DeliveryFee:      q.DeliveryFee.StringFixed(2),
		Discount:         FromModifier(q.Discount),
		Surcharge:        FromModifier(q.Surcharge),
		Subtotal:         q.Subtotal.StringFixed(2),
		TaxRate:          q.TaxRate.String(),
		TaxAmount:        q.TaxAmount.StringFixed(2),
		Total:            q.Total.StringFixed(2),
		Version:          q.Version,
		ExpiresAt:        q.ExpiresAt,
		CreatedAt:        q.CreatedAt,
		UpdatedAt:        q.UpdatedAt,
	}
}

func FromDocumentLine(l entities.DocumentLine) DocumentLineResponse {
	out := DocumentLineResponse{
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
		BillablePages:        l.EffectiveBillablePages().String(),
		AutoPerPageRate:      l.AutoPerPageRate.StringFixed(2),
		PerPageRate:          l.EffectivePerPageRate().StringFixed(2),
		Certification:        string(l.Certification),
		CertificationFee:     l.CertificationFee.StringFixed(2),
		LineTotal:            l.LineTotal.StringFixed(2),
	}
	if l.BillablePagesOverride != nil {
		v := l.BillablePagesOverride.String()
		out.BillablePagesOverride = &v
	}
	if l.PerPageRateOverride != nil {
		v := l.PerPageRateOverride.StringFixed(2)
		out.PerPageRateOverride = &v
	}
	return out
}

func FromQuoteDetail(d usecase.QuoteDetail) QuoteDetailResponse {
	lines := make([]DocumentLineResponse, 0, len(d.Lines))
	for _, l := range d.Lines {
		lines = append(lines, FromDocumentLine(l))
	}
	return QuoteDetailResponse{Quote: FromQuote(d.Quote), Lines: lines}
}
