package order

import (
	"errors"
	"fmt"
	"time"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/errs"
	"inventory/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the purchase-order aggregate. It references one supplier and one
// product, both of which must exist in the store at write time.
//
// Invariants:
//   - supplier and product references are assigned identities
//   - quantity is positive
//   - subtotal and total amount are non-negative (enforced by kernel.Money)
//   - status always holds a value from the closed set
//
// The identity is assigned by the store on insert; a fresh aggregate carries
// the zero ID until the repository sets it.
type Order struct {
	id          kernel.ID
	supplierID  kernel.ID
	productID   kernel.ID
	quantity    int
	subtotal    kernel.Money
	totalAmount kernel.Money
	orderDate   time.Time
	status      Status

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a purchase order to be persisted. The order date is set to
// the current time; timestamps are filled in by the store.
func NewOrder(
	supplierID, productID kernel.ID,
	quantity int,
	subtotal, totalAmount kernel.Money,
	status Status,
) (*Order, error) {
	o := &Order{
		orderDate: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := o.setBusinessFields(supplierID, productID, quantity, subtotal, totalAmount, status); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from its persisted representation.
// All invariants are re-checked so corrupt rows surface as errors.
func RestoreOrder(
	id, supplierID, productID kernel.ID,
	quantity int,
	subtotal, totalAmount kernel.Money,
	orderDate time.Time,
	status Status,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	o := &Order{
		id:        id,
		orderDate: orderDate,
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := o.setBusinessFields(supplierID, productID, quantity, subtotal, totalAmount, status); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was constructed through a factory function.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the store-assigned identity (zero until persisted).
func (o *Order) ID() kernel.ID { return o.id }

// SupplierID returns the referenced supplier's identity.
func (o *Order) SupplierID() kernel.ID { return o.supplierID }

// ProductID returns the referenced product's identity.
func (o *Order) ProductID() kernel.ID { return o.productID }

// Quantity returns the ordered quantity.
func (o *Order) Quantity() int { return o.quantity }

// Subtotal returns the order subtotal.
func (o *Order) Subtotal() kernel.Money { return o.subtotal }

// TotalAmount returns the order total.
func (o *Order) TotalAmount() kernel.Money { return o.totalAmount }

// OrderDate returns the date the order was placed.
func (o *Order) OrderDate() time.Time { return o.orderDate }

// Status returns the current order status.
func (o *Order) Status() Status { return o.status }

// CreatedAt returns the store-side creation timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns the store-side last-modification timestamp.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// SetID records the identity assigned by the store on insert.
// It may only be called once, on an aggregate that has no identity yet.
func (o *Order) SetID(id kernel.ID) error {
	if o.id.IsAssigned() {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("order already has identity %s", o.id))
	}
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// ChangeDetails replaces every business field of the order. Used by the full
// update operation; the order date and timestamps are left untouched.
func (o *Order) ChangeDetails(
	supplierID, productID kernel.ID,
	quantity int,
	subtotal, totalAmount kernel.Money,
	status Status,
) error {
	return o.setBusinessFields(supplierID, productID, quantity, subtotal, totalAmount, status)
}

// ChangeStatus replaces the status dimension only. The new value is checked
// against the closed set; no transition restrictions apply.
func (o *Order) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setBusinessFields(
	supplierID, productID kernel.ID,
	quantity int,
	subtotal, totalAmount kernel.Money,
	status Status,
) error {
	return errors.Join(
		o.setSupplierID(supplierID),
		o.setProductID(productID),
		o.setQuantity(quantity),
		o.setAmounts(subtotal, totalAmount),
		o.ChangeStatus(status),
	)
}

func (o *Order) setSupplierID(supplierID kernel.ID) error {
	if !supplierID.IsAssigned() {
		return errs.NewValueIsRequiredError("supplier_id")
	}
	o.supplierID = supplierID
	return nil
}

func (o *Order) setProductID(productID kernel.ID) error {
	if !productID.IsAssigned() {
		return errs.NewValueIsRequiredError("product_id")
	}
	o.productID = productID
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setAmounts(subtotal, totalAmount kernel.Money) error {
	o.subtotal = subtotal
	o.totalAmount = totalAmount
	return nil
}
