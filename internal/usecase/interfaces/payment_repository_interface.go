package interfaces

import (
	"context"

	"linguaquote/internal/domain/entities"
)

// IPaymentRepository persists provider payment records for traceability.
type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.Payment, error)
}
