package interfaces

import (
	"context"

	"linguaquote/internal/domain/entities"
)

// IReviewRepository abstracts DynamoDB persistence for ReviewRecord.
//
// Claim, Release and Resolve are atomic compare-and-set writes against the
// backing store: read-modify-write without the conditional guard would let
// two staff both believe they hold exclusive edit rights. A lost race follows
// the shared convention and returns a zero-value record with a nil error.

type IReviewRepository interface {
	Create(ctx context.Context, r entities.ReviewRecord) (entities.ReviewRecord, error)
	GetByID(ctx context.Context, id string) (entities.ReviewRecord, error)
	// GetOpenByQuoteID returns the quote's single non-terminal review, or a
	// zero-value record when none exists.
	GetOpenByQuoteID(ctx context.Context, quoteID string) (entities.ReviewRecord, error)
	// Claim succeeds only while the record is pending and unassigned.
	Claim(ctx context.Context, id, staffID string) (entities.ReviewRecord, error)
	// Release returns the record to pending, conditional on claimant still
	// holding it.
	Release(ctx context.Context, id, claimant string) (entities.ReviewRecord, error)
	// ForceRelease unconditionally clears the claim of an in_review record.
	// Exposed for the surrounding idle-claim policy; capability checks happen
	// in the usecase.
	ForceRelease(ctx context.Context, id string) (entities.ReviewRecord, error)
	// Resolve writes a terminal disposition, conditional on the record still
	// being in_review and held by expectedClaimant.
	Resolve(ctx context.Context, r entities.ReviewRecord, expectedClaimant string) (entities.ReviewRecord, error)
}
