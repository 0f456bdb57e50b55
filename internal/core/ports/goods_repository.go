package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
)

// GoodsRepository flips the picked-up and delivered flags on the skids and
// vinyl belonging to a set of orders. Empty order sets are a no-op.
type GoodsRepository interface {
	SetPickedUp(ctx context.Context, orderIDs []kernel.UUID, pickedUp bool) error
	SetDelivered(ctx context.Context, orderIDs []kernel.UUID, delivered bool) error
}
