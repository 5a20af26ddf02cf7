package interfaces

import (
	"context"

	"linguaquote/internal/domain/entities"
)

// ICorrectionRepository abstracts the append-only correction ledger.
//
// A correction and the recompute it causes are not independent: the ledger
// entry, the updated document line and the quote's new totals land in one
// transactional write or not at all. AppendWithRecompute is conditional on
// the quote version the recompute read; a lost race returns a zero-value
// correction per the shared convention.

type ICorrectionRepository interface {
	AppendWithRecompute(ctx context.Context, c entities.Correction, line entities.DocumentLine, q entities.Quote, expectedVersion int64) (entities.Correction, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.Correction, error)
	ListByDocumentLineID(ctx context.Context, lineID string) ([]entities.Correction, error)
}
