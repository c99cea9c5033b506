// Package customerrepo implements the repository pattern for the customer
// aggregate, mapping between the domain model and the customers table.
package customerrepo

import (
	"time"

	"inventory/internal/core/domain/model/customer"
	"inventory/internal/core/domain/model/kernel"
)

// CustomerDTO represents the database row for a customer.
type CustomerDTO struct {
	CustomerID   int64     `gorm:"column:customer_id;primaryKey;autoIncrement"`
	CustomerName string    `gorm:"column:customer_name"`
	ContactName  string    `gorm:"column:contact_name"`
	Phone        string    `gorm:"column:phone"`
	Email        string    `gorm:"column:email"`
	Address      string    `gorm:"column:address"`
	IsActive     bool      `gorm:"column:is_active"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName overrides GORM's default naming convention.
func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(aggregate *customer.Customer) CustomerDTO {
	return CustomerDTO{
		CustomerID:   aggregate.ID().Int64(),
		CustomerName: aggregate.Name(),
		ContactName:  aggregate.ContactName(),
		Phone:        aggregate.Phone(),
		Email:        aggregate.Email(),
		Address:      aggregate.Address(),
		IsActive:     aggregate.IsActive(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.NewID(dto.CustomerID)
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(
		id, dto.CustomerName, dto.ContactName, dto.Phone, dto.Email, dto.Address,
		dto.IsActive, dto.CreatedAt, dto.UpdatedAt,
	)
}
