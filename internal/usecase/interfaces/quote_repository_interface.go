package interfaces

import (
	"context"

	"linguaquote/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// Conditional-write convention (shared by every repository here): a write
// whose condition fails returns a zero-value entity and a nil error; the
// usecase decides what losing the race means. Plumbing errors are returned
// as-is.
//
// The quoting flow needs to:
//   - create a quote on first document upload
//   - move the lifecycle status through guarded transitions
//   - persist recomputed totals conditionally on the version the
//     computation read (stale recomputes must lose)
//   - tombstone a quote on cancellation, never hard-delete

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	GetByNumber(ctx context.Context, number string) (entities.Quote, error)
	// UpdateStatus performs a guarded transition: the write only lands when
	// the stored status still equals from.
	UpdateStatus(ctx context.Context, id string, from, to entities.QuoteStatus) (entities.Quote, error)
	// SaveTotals writes the totals block and bumps the version, conditional
	// on the stored version still equalling expectedVersion.
	SaveTotals(ctx context.Context, q entities.Quote, expectedVersion int64) (entities.Quote, error)
	SoftDelete(ctx context.Context, id string) (entities.Quote, error)
}

// IDocumentLineRepository abstracts DynamoDB persistence for DocumentLine.
type IDocumentLineRepository interface {
	Create(ctx context.Context, l entities.DocumentLine) (entities.DocumentLine, error)
	GetByID(ctx context.Context, id string) (entities.DocumentLine, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.DocumentLine, error)
	// UpdateWithTotals writes the repriced line and the quote's recomputed
	// totals block in one transaction, conditional on the quote version the
	// recompute read. A repriced line must never land without its totals
	// (or the other way around); a lost race returns a zero-value line.
	UpdateWithTotals(ctx context.Context, l entities.DocumentLine, q entities.Quote, expectedVersion int64) (entities.DocumentLine, error)
}
