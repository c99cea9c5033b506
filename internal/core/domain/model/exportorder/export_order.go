package exportorder

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/order"
	"inventory/internal/pkg/errs"
	"inventory/internal/pkg/guard"
)

// ErrExportOrderIsNotConstructed is returned when an ExportOrder instance was
// not created through NewExportOrder or RestoreExportOrder.
var ErrExportOrderIsNotConstructed = errors.New(
	"ExportOrder must be created via NewExportOrder or RestoreExportOrder")

// ExportOrder is the sales-order aggregate. It references one customer and
// one product, both of which must exist in the store at write time.
//
// Invariants:
//   - customer and product references are assigned identities
//   - quantity is positive
//   - shipping address is non-blank
//   - status holds a value from the order-status closed set
//   - shipping status holds a value from its own closed set
//
// The two status dimensions are independent: changing one never touches the
// other.
type ExportOrder struct {
	id              kernel.ID
	customerID      kernel.ID
	productID       kernel.ID
	quantity        int
	subtotal        kernel.Money
	totalAmount     kernel.Money
	orderDate       time.Time
	shippingDate    *time.Time
	shippingAddress string
	shippingStatus  ShippingStatus
	status          order.Status

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewExportOrder creates an export order to be persisted. The order date is
// set to the current time; timestamps are filled in by the store.
func NewExportOrder(
	customerID, productID kernel.ID,
	quantity int,
	subtotal, totalAmount kernel.Money,
	shippingDate *time.Time,
	shippingAddress string,
	shippingStatus ShippingStatus,
	status order.Status,
) (*ExportOrder, error) {
	eo := &ExportOrder{
		orderDate: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := eo.setBusinessFields(
		customerID, productID, quantity, subtotal, totalAmount,
		shippingDate, shippingAddress, shippingStatus, status,
	); err != nil {
		return nil, err
	}

	return eo, nil
}

// RestoreExportOrder reconstructs an export order from its persisted
// representation. All invariants are re-checked.
func RestoreExportOrder(
	id, customerID, productID kernel.ID,
	quantity int,
	subtotal, totalAmount kernel.Money,
	orderDate time.Time,
	shippingDate *time.Time,
	shippingAddress string,
	shippingStatus ShippingStatus,
	status order.Status,
	createdAt, updatedAt time.Time,
) (*ExportOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	eo := &ExportOrder{
		id:        id,
		orderDate: orderDate,
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := eo.setBusinessFields(
		customerID, productID, quantity, subtotal, totalAmount,
		shippingDate, shippingAddress, shippingStatus, status,
	); err != nil {
		return nil, err
	}

	return eo, nil
}

// Validate ensures the ExportOrder was constructed through a factory function.
func (eo *ExportOrder) Validate() error {
	if eo == nil {
		return ErrExportOrderIsNotConstructed
	}
	return eo.guard.Validate(ErrExportOrderIsNotConstructed)
}

// IsEqual compares two export orders by identity.
func (eo *ExportOrder) IsEqual(other *ExportOrder) bool {
	return other != nil && eo.id.IsEqual(other.id)
}

// ID returns the store-assigned identity (zero until persisted).
func (eo *ExportOrder) ID() kernel.ID { return eo.id }

// CustomerID returns the referenced customer's identity.
func (eo *ExportOrder) CustomerID() kernel.ID { return eo.customerID }

// ProductID returns the referenced product's identity.
func (eo *ExportOrder) ProductID() kernel.ID { return eo.productID }

// Quantity returns the ordered quantity.
func (eo *ExportOrder) Quantity() int { return eo.quantity }

// Subtotal returns the order subtotal.
func (eo *ExportOrder) Subtotal() kernel.Money { return eo.subtotal }

// TotalAmount returns the order total.
func (eo *ExportOrder) TotalAmount() kernel.Money { return eo.totalAmount }

// OrderDate returns the date the order was placed.
func (eo *ExportOrder) OrderDate() time.Time { return eo.orderDate }

// ShippingDate returns the planned shipping date, nil when not set.
func (eo *ExportOrder) ShippingDate() *time.Time { return eo.shippingDate }

// ShippingAddress returns the delivery address.
func (eo *ExportOrder) ShippingAddress() string { return eo.shippingAddress }

// ShippingStatus returns the current shipping-status dimension value.
func (eo *ExportOrder) ShippingStatus() ShippingStatus { return eo.shippingStatus }

// Status returns the current order-status dimension value.
func (eo *ExportOrder) Status() order.Status { return eo.status }

// CreatedAt returns the store-side creation timestamp.
func (eo *ExportOrder) CreatedAt() time.Time { return eo.createdAt }

// UpdatedAt returns the store-side last-modification timestamp.
func (eo *ExportOrder) UpdatedAt() time.Time { return eo.updatedAt }

// SetID records the identity assigned by the store on insert.
// It may only be called once, on an aggregate that has no identity yet.
func (eo *ExportOrder) SetID(id kernel.ID) error {
	if eo.id.IsAssigned() {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("export order already has identity %s", eo.id))
	}
	if err := id.Validate(); err != nil {
		return err
	}
	eo.id = id
	return nil
}

// ChangeDetails replaces every business field of the export order. Used by
// the full update operation; the order date and timestamps are left untouched.
func (eo *ExportOrder) ChangeDetails(
	customerID, productID kernel.ID,
	quantity int,
	subtotal, totalAmount kernel.Money,
	shippingDate *time.Time,
	shippingAddress string,
	shippingStatus ShippingStatus,
	status order.Status,
) error {
	return eo.setBusinessFields(
		customerID, productID, quantity, subtotal, totalAmount,
		shippingDate, shippingAddress, shippingStatus, status,
	)
}

// ChangeStatus replaces the order-status dimension only.
func (eo *ExportOrder) ChangeStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	eo.status = status
	return nil
}

// ChangeShippingStatus replaces the shipping-status dimension only.
func (eo *ExportOrder) ChangeShippingStatus(shippingStatus ShippingStatus) error {
	if err := shippingStatus.Validate(); err != nil {
		return err
	}
	eo.shippingStatus = shippingStatus
	return nil
}

func (eo *ExportOrder) setBusinessFields(
	customerID, productID kernel.ID,
	quantity int,
	subtotal, totalAmount kernel.Money,
	shippingDate *time.Time,
	shippingAddress string,
	shippingStatus ShippingStatus,
	status order.Status,
) error {
	return errors.Join(
		eo.setCustomerID(customerID),
		eo.setProductID(productID),
		eo.setQuantity(quantity),
		eo.setAmounts(subtotal, totalAmount),
		eo.setShipping(shippingDate, shippingAddress),
		eo.ChangeShippingStatus(shippingStatus),
		eo.ChangeStatus(status),
	)
}

func (eo *ExportOrder) setCustomerID(customerID kernel.ID) error {
	if !customerID.IsAssigned() {
		return errs.NewValueIsRequiredError("customer_id")
	}
	eo.customerID = customerID
	return nil
}

func (eo *ExportOrder) setProductID(productID kernel.ID) error {
	if !productID.IsAssigned() {
		return errs.NewValueIsRequiredError("product_id")
	}
	eo.productID = productID
	return nil
}

func (eo *ExportOrder) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	eo.quantity = quantity
	return nil
}

func (eo *ExportOrder) setAmounts(subtotal, totalAmount kernel.Money) error {
	eo.subtotal = subtotal
	eo.totalAmount = totalAmount
	return nil
}

func (eo *ExportOrder) setShipping(shippingDate *time.Time, shippingAddress string) error {
	if strings.TrimSpace(shippingAddress) == "" {
		return errs.NewValueIsRequiredError("shipping_address")
	}
	eo.shippingDate = shippingDate
	eo.shippingAddress = shippingAddress
	return nil
}
