// Package orderrepo implements the repository pattern for the purchase-order
// aggregate, mapping between the domain model and the orders table.
package orderrepo

import (
	"time"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database row for a purchase order. The identity is
// store-assigned on insert.
type OrderDTO struct {
	OrderID     int64           `gorm:"column:order_id;primaryKey;autoIncrement"`
	SupplierID  int64           `gorm:"column:supplier_id;index"`
	ProductID   int64           `gorm:"column:product_id;index"`
	Quantity    int             `gorm:"column:quantity"`
	Subtotal    decimal.Decimal `gorm:"column:subtotal;type:decimal(10,2)"`
	TotalAmount decimal.Decimal `gorm:"column:total_amount;type:decimal(10,2)"`
	OrderDate   time.Time       `gorm:"column:order_date"`
	Status      string          `gorm:"column:status;index"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName overrides GORM's default naming convention.
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		OrderID:     aggregate.ID().Int64(),
		SupplierID:  aggregate.SupplierID().Int64(),
		ProductID:   aggregate.ProductID().Int64(),
		Quantity:    aggregate.Quantity(),
		Subtotal:    aggregate.Subtotal().Decimal(),
		TotalAmount: aggregate.TotalAmount().Decimal(),
		OrderDate:   aggregate.OrderDate(),
		Status:      aggregate.Status().String(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewID(dto.OrderID)
	if err != nil {
		return nil, err
	}
	supplierID, err := kernel.NewID(dto.SupplierID)
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

	return order.RestoreOrder(
		id, supplierID, productID,
		dto.Quantity, subtotal, totalAmount,
		dto.OrderDate, order.Status(dto.Status),
		dto.CreatedAt, dto.UpdatedAt,
	)
}
