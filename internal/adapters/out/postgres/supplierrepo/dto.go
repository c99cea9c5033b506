// Package supplierrepo implements the repository pattern for the supplier
// aggregate, mapping between the domain model and the suppliers table.
package supplierrepo

import (
	"time"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/supplier"
)

// SupplierDTO represents the database row for a supplier.
type SupplierDTO struct {
	SupplierID   int64     `gorm:"column:supplier_id;primaryKey;autoIncrement"`
	SupplierName string    `gorm:"column:supplier_name"`
	ContactName  string    `gorm:"column:contact_name"`
	Phone        string    `gorm:"column:phone"`
	Email        string    `gorm:"column:email"`
	Address      string    `gorm:"column:address"`
	IsActive     bool      `gorm:"column:is_active"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName overrides GORM's default naming convention.
func (SupplierDTO) TableName() string {
	return "suppliers"
}

func fromDomain(aggregate *supplier.Supplier) SupplierDTO {
	return SupplierDTO{
		SupplierID:   aggregate.ID().Int64(),
		SupplierName: aggregate.Name(),
		ContactName:  aggregate.ContactName(),
		Phone:        aggregate.Phone(),
		Email:        aggregate.Email(),
		Address:      aggregate.Address(),
		IsActive:     aggregate.IsActive(),
	}
}

func toDomain(dto SupplierDTO) (*supplier.Supplier, error) {
	id, err := kernel.NewID(dto.SupplierID)
	if err != nil {
		return nil, err
	}

	return supplier.RestoreSupplier(
		id, dto.SupplierName, dto.ContactName, dto.Phone, dto.Email, dto.Address,
		dto.IsActive, dto.CreatedAt, dto.UpdatedAt,
	)
}
