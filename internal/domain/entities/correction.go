package entities

import "time"

// CorrectionField is the closed set of AI-derived fields staff may override.
// Using a closed enum instead of a free string keeps the ledger from ever
// recording a typo'd or unsupported field.

type CorrectionField string

const (
	CorrectionFieldDocumentType         CorrectionField = "document_type"
	CorrectionFieldWordCount            CorrectionField = "word_count"
	CorrectionFieldPageCount            CorrectionField = "page_count"
	CorrectionFieldBillablePages        CorrectionField = "billable_pages"
	CorrectionFieldComplexity           CorrectionField = "complexity"
	CorrectionFieldComplexityMultiplier CorrectionField = "complexity_multiplier"
	CorrectionFieldPerPageRate          CorrectionField = "per_page_rate"
	CorrectionFieldCertificationType    CorrectionField = "certification_type"
)

func (f CorrectionField) Valid() bool {
	switch f {
	case CorrectionFieldDocumentType, CorrectionFieldWordCount, CorrectionFieldPageCount,
		CorrectionFieldBillablePages, CorrectionFieldComplexity, CorrectionFieldComplexityMultiplier,
		CorrectionFieldPerPageRate, CorrectionFieldCertificationType:
		return true
	}
	return false
}

// Correction is one audited manual override of a previously automated value.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quote_id-index): quote_id
//   - GSI2 (document_line_id-index): document_line_id
//
// The ledger is append-only: corrections are written once with a
// create-if-absent guard and never updated or deleted. Original and corrected
// values are stored in their canonical string form so one ledger shape covers
// every correctable field.

type Correction struct {
	ID             string          `json:"id"`
	QuoteID        string          `json:"quote_id"`
	DocumentLineID string          `json:"document_line_id"`
	Field          CorrectionField `json:"field"`
	OriginalValue  string          `json:"original_value"`
	CorrectedValue string          `json:"corrected_value"`
	Actor          string          `json:"actor"`
	CreatedAt      time.Time       `json:"created_at"`
}
