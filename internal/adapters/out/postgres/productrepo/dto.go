// Package productrepo implements the repository pattern for the product
// aggregate, mapping between the domain model and the products table.
package productrepo

import (
	"time"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

// ProductDTO represents the database row for a product.
type ProductDTO struct {
	ProductID   int64           `gorm:"column:product_id;primaryKey;autoIncrement"`
	ProductName string          `gorm:"column:product_name"`
	SKU         string          `gorm:"column:sku;uniqueIndex"`
	CategoryID  int64           `gorm:"column:category_id;index"`
	Description string          `gorm:"column:description"`
	Quantity    int             `gorm:"column:quantity"`
	UnitPrice   decimal.Decimal `gorm:"column:unit_price;type:decimal(10,2)"`
	IsActive    bool            `gorm:"column:is_active"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName overrides GORM's default naming convention.
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ProductID:   aggregate.ID().Int64(),
		ProductName: aggregate.Name(),
		SKU:         aggregate.SKU(),
		CategoryID:  aggregate.CategoryID().Int64(),
		Description: aggregate.Description(),
		Quantity:    aggregate.Quantity(),
		UnitPrice:   aggregate.UnitPrice().Decimal(),
		IsActive:    aggregate.IsActive(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.NewID(dto.ProductID)
	if err != nil {
		return nil, err
	}
	categoryID, err := kernel.NewID(dto.CategoryID)
	if err != nil {
		return nil, err
	}
	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		id, dto.ProductName, dto.SKU, categoryID,
		dto.Description, dto.Quantity, unitPrice,
		dto.IsActive, dto.CreatedAt, dto.UpdatedAt,
	)
}
