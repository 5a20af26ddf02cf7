package interfaces

import (
	"context"

	"linguaquote/internal/domain/pricing"
)

// IRateConfigRepository loads the pricing reference data. Implementations
// fall back to the compiled-in default schedule when the store has no row and
// must return only validated configs.
type IRateConfigRepository interface {
	Load(ctx context.Context) (pricing.RateConfig, error)
}
