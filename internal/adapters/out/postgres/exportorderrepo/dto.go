// Package exportorderrepo implements the repository pattern for the
// export-order aggregate, mapping between the domain model and the
// export_orders table.
package exportorderrepo

import (
	"time"

	"inventory/internal/core/domain/model/exportorder"
	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// ExportOrderDTO represents the database row for an export order. The two
// status dimensions are stored as separate columns.
type ExportOrderDTO struct {
	ExportOrderID   int64           `gorm:"column:export_order_id;primaryKey;autoIncrement"`
	CustomerID      int64           `gorm:"column:customer_id;index"`
	ProductID       int64           `gorm:"column:product_id;index"`
	Quantity        int             `gorm:"column:quantity"`
	Subtotal        decimal.Decimal `gorm:"column:subtotal;type:decimal(10,2)"`
	TotalAmount     decimal.Decimal `gorm:"column:total_amount;type:decimal(10,2)"`
	OrderDate       time.Time       `gorm:"column:order_date"`
	ShippingDate    *time.Time      `gorm:"column:shipping_date"`
	ShippingAddress string          `gorm:"column:shipping_address"`
	ShippingStatus  string          `gorm:"column:shipping_status;index"`
	Status          string          `gorm:"column:status;index"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName overrides GORM's default naming convention.
func (ExportOrderDTO) TableName() string {
	return "export_orders"
}

func fromDomain(aggregate *exportorder.ExportOrder) ExportOrderDTO {
	return ExportOrderDTO{
		ExportOrderID:   aggregate.ID().Int64(),
		CustomerID:      aggregate.CustomerID().Int64(),
		ProductID:       aggregate.ProductID().Int64(),
		Quantity:        aggregate.Quantity(),
		Subtotal:        aggregate.Subtotal().Decimal(),
		TotalAmount:     aggregate.TotalAmount().Decimal(),
		OrderDate:       aggregate.OrderDate(),
		ShippingDate:    aggregate.ShippingDate(),
		ShippingAddress: aggregate.ShippingAddress(),
		ShippingStatus:  aggregate.ShippingStatus().String(),
		Status:          aggregate.Status().String(),
	}
}

func toDomain(dto ExportOrderDTO) (*exportorder.ExportOrder, error) {
	id, err := kernel.NewID(dto.ExportOrderID)
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.NewID(dto.CustomerID)
	if err != nil {
		return nil, err
	}
	productID, err := kernel.NewID(dto.ProductID)
	if err != nil {
		return nil, err
	}
	subtotal, err := kernel.NewMoney(dto.Subtotal)
	if err != nil {
		return nil, err
	}
	totalAmount, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	return exportorder.RestoreExportOrder(
		id, customerID, productID,
		dto.Quantity, subtotal, totalAmount,
		dto.OrderDate, dto.ShippingDate, dto.ShippingAddress,
		exportorder.ShippingStatus(dto.ShippingStatus), order.Status(dto.Status),
		dto.CreatedAt, dto.UpdatedAt,
	)
}
