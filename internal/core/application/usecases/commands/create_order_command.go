package commands

import (
	"errors"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/order"
	"inventory/internal/pkg/errs"
	"inventory/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to create a new purchase order.
// Supplier and product references are required; the status defaults to
// Pending when the caller passes none.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	supplierID  kernel.ID
	productID   kernel.ID
	quantity    int
	subtotal    kernel.Money
	totalAmount kernel.Money
	status      order.Status

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a purchase order.
// Validates that both references are assigned, the quantity is positive, and
// the status belongs to the closed set.
func NewCreateOrderCommand(
	supplierID, productID kernel.ID,
	quantity int,
	subtotal, totalAmount kernel.Money,
	status order.Status,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSupplierID(supplierID),
		cmd.setProductID(productID),
		cmd.setQuantity(quantity),
		cmd.setAmounts(subtotal, totalAmount),
		cmd.setStatus(status),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// SupplierID returns the referenced supplier's identity.
func (c CreateOrderCommand) SupplierID() kernel.ID { return c.supplierID }

// ProductID returns the referenced product's identity.
func (c CreateOrderCommand) ProductID() kernel.ID { return c.productID }

// Quantity returns the ordered quantity.
func (c CreateOrderCommand) Quantity() int { return c.quantity }

// Subtotal returns the order subtotal.
func (c CreateOrderCommand) Subtotal() kernel.Money { return c.subtotal }

// TotalAmount returns the order total.
func (c CreateOrderCommand) TotalAmount() kernel.Money { return c.totalAmount }

// Status returns the requested status (Pending when defaulted).
func (c CreateOrderCommand) Status() order.Status { return c.status }

func (c *CreateOrderCommand) setSupplierID(supplierID kernel.ID) error {
	if !supplierID.IsAssigned() {
		return errs.NewValueIsRequiredError("supplier_id")
	}
	c.supplierID = supplierID
	return nil
}

func (c *CreateOrderCommand) setProductID(productID kernel.ID) error {
	if !productID.IsAssigned() {
		return errs.NewValueIsRequiredError("product_id")
	}
	c.productID = productID
	return nil
}

func (c *CreateOrderCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}
	c.quantity = quantity
	return nil
}

func (c *CreateOrderCommand) setAmounts(subtotal, totalAmount kernel.Money) error {
	c.subtotal = subtotal
	c.totalAmount = totalAmount
	return nil
}

func (c *CreateOrderCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
