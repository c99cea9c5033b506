package exportorderrepo

import (
	"context"
	"errors"

	"inventory/internal/core/domain/model/exportorder"
	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormExportOrderRepository implements ExportOrderRepository using GORM.
type GormExportOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormExportOrderRepository creates a new GORM export-order repository.
func NewGormExportOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormExportOrderRepository {
	return &GormExportOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new export order and records the store-assigned identity on
// the aggregate.
func (r *GormExportOrderRepository) Add(ctx context.Context, aggregate *exportorder.ExportOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	id, err := kernel.NewID(dto.ExportOrderID)
	if err != nil {
		return err
	}
	if err = aggregate.SetID(id); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing export order. Columns are listed explicitly so a
// cleared shipping date is written as NULL.
func (r *GormExportOrderRepository) Update(ctx context.Context, aggregate *exportorder.ExportOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ExportOrderDTO{}).
		Where("export_order_id = ?", dto.ExportOrderID).
		Select(
			"customer_id", "product_id", "quantity", "subtotal", "total_amount",
			"shipping_date", "shipping_address", "shipping_status", "status",
		).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("export order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an export order by ID.
func (r *GormExportOrderRepository) Get(ctx context.Context, id kernel.ID) (*exportorder.ExportOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ExportOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "export_order_id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("export order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every export order ordered by identity.
func (r *GormExportOrderRepository) GetAll(ctx context.Context) ([]*exportorder.ExportOrder, error) {
	var dtos []ExportOrderDTO
	if err := r.db.WithContext(ctx).Order("export_order_id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	exportOrders := make([]*exportorder.ExportOrder, 0, len(dtos))
	for _, dto := range dtos {
		eo, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		exportOrders = append(exportOrders, eo)
	}

	return exportOrders, nil
}
