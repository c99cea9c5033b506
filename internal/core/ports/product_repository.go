package ports

import (
	"context"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
type ProductRepository interface {
	Add(ctx context.Context, aggregate *product.Product) error
	Update(ctx context.Context, aggregate *product.Product) error
	Get(ctx context.Context, id kernel.ID) (*product.Product, error)
	GetAll(ctx context.Context) ([]*product.Product, error)

	// Exists reports whether a product row with the given identity is
	// present. Used as the reference check before dependent writes; a fresh
	// read every time, never cached.
	Exists(ctx context.Context, id kernel.ID) (bool, error)
}
