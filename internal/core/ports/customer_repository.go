package ports

import (
	"context"

	"inventory/internal/core/domain/model/customer"
	"inventory/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer aggregates.
type CustomerRepository interface {
	Add(ctx context.Context, aggregate *customer.Customer) error
	Update(ctx context.Context, aggregate *customer.Customer) error
	Get(ctx context.Context, id kernel.ID) (*customer.Customer, error)
	GetAll(ctx context.Context) ([]*customer.Customer, error)

	// Exists reports whether a customer row with the given identity is
	// present. Used as the reference check before export-order writes.
	Exists(ctx context.Context, id kernel.ID) (bool, error)
}
