// Package product contains the product aggregate of the catalog.
package product

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/errs"
	"inventory/internal/pkg/guard"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

// Product belongs to exactly one category. Quantity on hand is never
// negative, the unit price is a non-negative money amount, and the SKU is the
// unique business code (uniqueness is enforced by the store).
type Product struct {
	id          kernel.ID
	name        string
	sku         string
	categoryID  kernel.ID
	description string
	quantity    int
	unitPrice   kernel.Money
	isActive    bool

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewProduct creates a product to be persisted. New products start active.
func NewProduct(
	name, sku string,
	categoryID kernel.ID,
	description string,
	quantity int,
	unitPrice kernel.Money,
) (*Product, error) {
	p := &Product{
		isActive: true,
		guard:    guard.NewConstructorGuard(),
	}

	if err := p.setDetails(name, sku, categoryID, description, quantity, unitPrice); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a product from its persisted representation.
func RestoreProduct(
	id kernel.ID,
	name, sku string,
	categoryID kernel.ID,
	description string,
	quantity int,
	unitPrice kernel.Money,
	isActive bool,
	createdAt, updatedAt time.Time,
) (*Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	p := &Product{
		id:        id,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := p.setDetails(name, sku, categoryID, description, quantity, unitPrice); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Product was constructed through a factory function.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) ID() kernel.ID          { return p.id }
func (p *Product) Name() string           { return p.name }
func (p *Product) SKU() string            { return p.sku }
func (p *Product) CategoryID() kernel.ID  { return p.categoryID }
func (p *Product) Description() string    { return p.description }
func (p *Product) Quantity() int          { return p.quantity }
func (p *Product) UnitPrice() kernel.Money { return p.unitPrice }
func (p *Product) IsActive() bool         { return p.isActive }
func (p *Product) CreatedAt() time.Time   { return p.createdAt }
func (p *Product) UpdatedAt() time.Time   { return p.updatedAt }

// SetID records the identity assigned by the store on insert.
func (p *Product) SetID(id kernel.ID) error {
	if p.id.IsAssigned() {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("product already has identity %s", p.id))
	}
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

// ChangeDetails replaces every business field of the product.
func (p *Product) ChangeDetails(
	name, sku string,
	categoryID kernel.ID,
	description string,
	quantity int,
	unitPrice kernel.Money,
) error {
	return p.setDetails(name, sku, categoryID, description, quantity, unitPrice)
}

// SetActive flips the active flag; inactive products stay on file.
func (p *Product) SetActive(active bool) {
	p.isActive = active
}

func (p *Product) setDetails(
	name, sku string,
	categoryID kernel.ID,
	description string,
	quantity int,
	unitPrice kernel.Money,
) error {
	p.description = description
	p.unitPrice = unitPrice

	return errors.Join(
		p.setName(name),
		p.setSKU(sku),
		p.setCategoryID(categoryID),
		p.setQuantity(quantity),
	)
}

func (p *Product) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("product_name")
	}
	p.name = name
	return nil
}

func (p *Product) setSKU(sku string) error {
	if strings.TrimSpace(sku) == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	p.sku = sku
	return nil
}

func (p *Product) setCategoryID(categoryID kernel.ID) error {
	if !categoryID.IsAssigned() {
		return errs.NewValueIsRequiredError("category_id")
	}
	p.categoryID = categoryID
	return nil
}

func (p *Product) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 0, math.MaxInt)
	}
	p.quantity = quantity
	return nil
}
