package ports

import (
	"context"

	"inventory/internal/core/domain/model/exportorder"
	"inventory/internal/core/domain/model/kernel"
)

// ExportOrderRepository defines the persistence contract for export-order
// aggregates.
type ExportOrderRepository interface {
	// Add persists a new export order and records the store-assigned
	// identity on the aggregate.
	Add(ctx context.Context, aggregate *exportorder.ExportOrder) error

	// Update persists changes to an existing export order.
	Update(ctx context.Context, aggregate *exportorder.ExportOrder) error

	// Get retrieves an export order by its identity.
	Get(ctx context.Context, id kernel.ID) (*exportorder.ExportOrder, error)

	// GetAll retrieves every export order in natural storage order.
	GetAll(ctx context.Context) ([]*exportorder.ExportOrder, error)
}
