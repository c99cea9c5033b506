package ports

import (
	"context"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for purchase-order
// aggregates.
type OrderRepository interface {
	// Add persists a new order and records the store-assigned identity on
	// the aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identity.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// GetAll retrieves every order in natural storage order.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
