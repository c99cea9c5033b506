package commands

import (
	"errors"
	"strings"
	"time"

	"inventory/internal/core/domain/model/exportorder"
	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/order"
	"inventory/internal/pkg/errs"
	"inventory/internal/pkg/guard"
)

var ErrCreateExportOrderCommandIsNotConstructed = errors.New(
	"CreateExportOrderCommand must be created via NewCreateExportOrderCommand constructor",
)

// CreateExportOrderCommand represents a request to create a new export
// order. Customer and product references and a shipping address are
// required; both status dimensions default to Pending when omitted.
type CreateExportOrderCommand struct { //nolint:recvcheck //using for validation
	customerID      kernel.ID
	productID       kernel.ID
	quantity        int
	subtotal        kernel.Money
	totalAmount     kernel.Money
	shippingDate    *time.Time
	shippingAddress string
	shippingStatus  exportorder.ShippingStatus
	status          order.Status

	guard guard.ConstructorGuard
}

// NewCreateExportOrderCommand creates a command to register an export order.
// Both status dimensions are validated against their own closed sets.
func NewCreateExportOrderCommand(
	customerID, productID kernel.ID,
	quantity int,
	subtotal, totalAmount kernel.Money,
	shippingDate *time.Time,
	shippingAddress string,
	shippingStatus exportorder.ShippingStatus,
	status order.Status,
) (CreateExportOrderCommand, error) {
	cmd := CreateExportOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setProductID(productID),
		cmd.setQuantity(quantity),
		cmd.setAmounts(subtotal, totalAmount),
		cmd.setShipping(shippingDate, shippingAddress),
		cmd.setShippingStatus(shippingStatus),
		cmd.setStatus(status),
	); err != nil {
		return CreateExportOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateExportOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateExportOrderCommandIsNotConstructed)
}

// CustomerID returns the referenced customer's identity.
func (c CreateExportOrderCommand) CustomerID() kernel.ID { return c.customerID }

// ProductID returns the referenced product's identity.
func (c CreateExportOrderCommand) ProductID() kernel.ID { return c.productID }

// Quantity returns the ordered quantity.
func (c CreateExportOrderCommand) Quantity() int { return c.quantity }

// Subtotal returns the order subtotal.
func (c CreateExportOrderCommand) Subtotal() kernel.Money { return c.subtotal }

// TotalAmount returns the order total.
func (c CreateExportOrderCommand) TotalAmount() kernel.Money { return c.totalAmount }

// ShippingDate returns the planned shipping date, nil when not provided.
func (c CreateExportOrderCommand) ShippingDate() *time.Time { return c.shippingDate }

// ShippingAddress returns the delivery address.
func (c CreateExportOrderCommand) ShippingAddress() string { return c.shippingAddress }

// ShippingStatus returns the requested shipping status (Pending when defaulted).
func (c CreateExportOrderCommand) ShippingStatus() exportorder.ShippingStatus { return c.shippingStatus }

// Status returns the requested order status (Pending when defaulted).
func (c CreateExportOrderCommand) Status() order.Status { return c.status }

func (c *CreateExportOrderCommand) setCustomerID(customerID kernel.ID) error {
	if !customerID.IsAssigned() {
		return errs.NewValueIsRequiredError("customer_id")
	}
	c.customerID = customerID
	return nil
}

func (c *CreateExportOrderCommand) setProductID(productID kernel.ID) error {
	if !productID.IsAssigned() {
		return errs.NewValueIsRequiredError("product_id")
	}
	c.productID = productID
	return nil
}

func (c *CreateExportOrderCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}
	c.quantity = quantity
	return nil
}

func (c *CreateExportOrderCommand) setAmounts(subtotal, totalAmount kernel.Money) error {
	c.subtotal = subtotal
	c.totalAmount = totalAmount
	return nil
}

func (c *CreateExportOrderCommand) setShipping(shippingDate *time.Time, shippingAddress string) error {
	if strings.TrimSpace(shippingAddress) == "" {
		return errs.NewValueIsRequiredError("shipping_address")
	}
	c.shippingDate = shippingDate
	c.shippingAddress = shippingAddress
	return nil
}

func (c *CreateExportOrderCommand) setShippingStatus(shippingStatus exportorder.ShippingStatus) error {
	if err := shippingStatus.Validate(); err != nil {
		return err
	}
	c.shippingStatus = shippingStatus
	return nil
}

func (c *CreateExportOrderCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
