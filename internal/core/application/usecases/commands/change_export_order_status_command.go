package commands

import (
	"errors"

	"inventory/internal/core/domain/model/exportorder"
	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/order"
	"inventory/internal/pkg/guard"
)

var ErrChangeExportOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeExportOrderStatusCommand must be created via NewChangeExportOrderStatusCommand constructor",
)

// ChangeExportOrderStatusCommand updates one or both status dimensions of an
// export order. A dimension left nil stays untouched; at least one must be
// present.
type ChangeExportOrderStatusCommand struct { //nolint:recvcheck //using for validation
	id             kernel.ID
	status         *order.Status
	shippingStatus *exportorder.ShippingStatus

	guard guard.ConstructorGuard
}

// NewChangeExportOrderStatusCommand creates a command to change export-order
// statuses. Each provided dimension is validated against its own closed set.
func NewChangeExportOrderStatusCommand(
	id kernel.ID,
	status *order.Status,
	shippingStatus *exportorder.ShippingStatus,
) (ChangeExportOrderStatusCommand, error) {
	cmd := ChangeExportOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setID(id); err != nil {
		return ChangeExportOrderStatusCommand{}, err
	}

	if status == nil && shippingStatus == nil {
		return ChangeExportOrderStatusCommand{}, ErrNoStatusProvided
	}

	if status != nil {
		if err := status.Validate(); err != nil {
			return ChangeExportOrderStatusCommand{}, err
		}
		cmd.status = status
	}

	if shippingStatus != nil {
		if err := shippingStatus.Validate(); err != nil {
			return ChangeExportOrderStatusCommand{}, err
		}
		cmd.shippingStatus = shippingStatus
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeExportOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeExportOrderStatusCommandIsNotConstructed)
}

// ID returns the identity of the export order being changed.
func (c ChangeExportOrderStatusCommand) ID() kernel.ID { return c.id }

// Status returns the new order status, nil when that dimension is untouched.
func (c ChangeExportOrderStatusCommand) Status() *order.Status { return c.status }

// ShippingStatus returns the new shipping status, nil when untouched.
func (c ChangeExportOrderStatusCommand) ShippingStatus() *exportorder.ShippingStatus {
	return c.shippingStatus
}

func (c *ChangeExportOrderStatusCommand) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}
