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

var ErrUpdateExportOrderCommandIsNotConstructed = errors.New(
	"UpdateExportOrderCommand must be created via NewUpdateExportOrderCommand constructor",
)

// UpdateExportOrderCommand represents a full-row update of an existing
// export order. All business fields are replaced; order date and store
// timestamps are untouched.
type UpdateExportOrderCommand struct { //nolint:recvcheck //using for validation
	id              kernel.ID
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

// NewUpdateExportOrderCommand creates a command to update an export order.
func NewUpdateExportOrderCommand(
	id, customerID, productID kernel.ID,
	quantity int,
	subtotal, totalAmount kernel.Money,
	shippingDate *time.Time,
	shippingAddress string,
	shippingStatus exportorder.ShippingStatus,
	status order.Status,
) (UpdateExportOrderCommand, error) {
	cmd := UpdateExportOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setID(id),
		cmd.setCustomerID(customerID),
		cmd.setProductID(productID),
		cmd.setQuantity(quantity),
		cmd.setAmounts(subtotal, totalAmount),
		cmd.setShipping(shippingDate, shippingAddress),
		cmd.setShippingStatus(shippingStatus),
		cmd.setStatus(status),
	); err != nil {
		return UpdateExportOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateExportOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateExportOrderCommandIsNotConstructed)
}

// ID returns the identity of the export order being updated.
func (c UpdateExportOrderCommand) ID() kernel.ID { return c.id }

// CustomerID returns the referenced customer's identity.
func (c UpdateExportOrderCommand) CustomerID() kernel.ID { return c.customerID }

// ProductID returns the referenced product's identity.
func (c UpdateExportOrderCommand) ProductID() kernel.ID { return c.productID }

// Quantity returns the ordered quantity.
func (c UpdateExportOrderCommand) Quantity() int { return c.quantity }

// Subtotal returns the order subtotal.
func (c UpdateExportOrderCommand) Subtotal() kernel.Money { return c.subtotal }

// TotalAmount returns the order total.
func (c UpdateExportOrderCommand) TotalAmount() kernel.Money { return c.totalAmount }

// ShippingDate returns the planned shipping date, nil when not provided.
func (c UpdateExportOrderCommand) ShippingDate() *time.Time { return c.shippingDate }

// ShippingAddress returns the delivery address.
func (c UpdateExportOrderCommand) ShippingAddress() string { return c.shippingAddress }

// ShippingStatus returns the requested shipping status.
func (c UpdateExportOrderCommand) ShippingStatus() exportorder.ShippingStatus { return c.shippingStatus }

// Status returns the requested order status.
func (c UpdateExportOrderCommand) Status() order.Status { return c.status }

func (c *UpdateExportOrderCommand) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *UpdateExportOrderCommand) setCustomerID(customerID kernel.ID) error {
	if !customerID.IsAssigned() {
		return errs.NewValueIsRequiredError("customer_id")
	}
	c.customerID = customerID
	return nil
}

func (c *UpdateExportOrderCommand) setProductID(productID kernel.ID) error {
	if !productID.IsAssigned() {
		return errs.NewValueIsRequiredError("product_id")
	}
	c.productID = productID
	return nil
}

func (c *UpdateExportOrderCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}
	c.quantity = quantity
	return nil
}

func (c *UpdateExportOrderCommand) setAmounts(subtotal, totalAmount kernel.Money) error {
	c.subtotal = subtotal
	c.totalAmount = totalAmount
	return nil
}

func (c *UpdateExportOrderCommand) setShipping(shippingDate *time.Time, shippingAddress string) error {
	if strings.TrimSpace(shippingAddress) == "" {
		return errs.NewValueIsRequiredError("shipping_address")
	}
	c.shippingDate = shippingDate
	c.shippingAddress = shippingAddress
	return nil
}

func (c *UpdateExportOrderCommand) setShippingStatus(shippingStatus exportorder.ShippingStatus) error {
	if err := shippingStatus.Validate(); err != nil {
		return err
	}
	c.shippingStatus = shippingStatus
	return nil
}

func (c *UpdateExportOrderCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
