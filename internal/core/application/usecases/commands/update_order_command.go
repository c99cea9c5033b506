package commands

import (
	"errors"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/order"
	"inventory/internal/pkg/errs"
	"inventory/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a full replacement of a purchase order's
// business fields. The same required-field and reference rules as creation
// apply.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.ID
	supplierID  kernel.ID
	productID   kernel.ID
	quantity    int
	subtotal    kernel.Money
	totalAmount kernel.Money
	status      order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to replace an order's business fields.
func NewUpdateOrderCommand(
	orderID, supplierID, productID kernel.ID,
	quantity int,
	subtotal, totalAmount kernel.Money,
	status order.Status,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setSupplierID(supplierID),
		cmd.setProductID(productID),
		cmd.setQuantity(quantity),
		cmd.setAmounts(subtotal, totalAmount),
		cmd.setStatus(status),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identity of the order being updated.
func (c UpdateOrderCommand) OrderID() kernel.ID { return c.orderID }

// SupplierID returns the referenced supplier's identity.
func (c UpdateOrderCommand) SupplierID() kernel.ID { return c.supplierID }

// ProductID returns the referenced product's identity.
func (c UpdateOrderCommand) ProductID() kernel.ID { return c.productID }

// Quantity returns the ordered quantity.
func (c UpdateOrderCommand) Quantity() int { return c.quantity }

// Subtotal returns the order subtotal.
func (c UpdateOrderCommand) Subtotal() kernel.Money { return c.subtotal }

// TotalAmount returns the order total.
func (c UpdateOrderCommand) TotalAmount() kernel.Money { return c.totalAmount }

// Status returns the requested status (Pending when defaulted).
func (c UpdateOrderCommand) Status() order.Status { return c.status }

func (c *UpdateOrderCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setSupplierID(supplierID kernel.ID) error {
	if !supplierID.IsAssigned() {
		return errs.NewValueIsRequiredError("supplier_id")
	}
	c.supplierID = supplierID
	return nil
}

func (c *UpdateOrderCommand) setProductID(productID kernel.ID) error {
	if !productID.IsAssigned() {
		return errs.NewValueIsRequiredError("product_id")
	}
	c.productID = productID
	return nil
}

func (c *UpdateOrderCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}
	c.quantity = quantity
	return nil
}

func (c *UpdateOrderCommand) setAmounts(subtotal, totalAmount kernel.Money) error {
	c.subtotal = subtotal
	c.totalAmount = totalAmount
	return nil
}

func (c *UpdateOrderCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
