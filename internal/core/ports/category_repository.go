package ports

import (
	"context"

	"inventory/internal/core/domain/model/category"
	"inventory/internal/core/domain/model/kernel"
)

// CategoryRepository defines the persistence contract for category aggregates.
type CategoryRepository interface {
	Add(ctx context.Context, aggregate *category.Category) error
	Update(ctx context.Context, aggregate *category.Category) error
	Get(ctx context.Context, id kernel.ID) (*category.Category, error)
	GetAll(ctx context.Context) ([]*category.Category, error)

	// Exists reports whether a category row with the given identity is
	// present. Used as the reference check before product writes.
	Exists(ctx context.Context, id kernel.ID) (bool, error)
}
