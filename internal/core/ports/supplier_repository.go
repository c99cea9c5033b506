package ports

import (
	"context"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/supplier"
)

// SupplierRepository defines the persistence contract for supplier aggregates.
type SupplierRepository interface {
	Add(ctx context.Context, aggregate *supplier.Supplier) error
	Update(ctx context.Context, aggregate *supplier.Supplier) error
	Get(ctx context.Context, id kernel.ID) (*supplier.Supplier, error)
	GetAll(ctx context.Context) ([]*supplier.Supplier, error)

	// Exists reports whether a supplier row with the given identity is
	// present. Used as the reference check before order writes.
	Exists(ctx context.Context, id kernel.ID) (bool, error)
}
