package commands

import (
	"context"

	"inventory/internal/core/domain/model/exportorder"
)

// ChangeExportOrderStatusCommandHandler applies status changes to an export
// order. Only the dimensions present on the command are touched, so a
// shipping-status change never resets the order status and vice versa.
type ChangeExportOrderStatusCommandHandler struct {
	uowFactory ExportOrderUoWFactory
}

// NewChangeExportOrderStatusCommandHandler creates a handler for export-order
// status changes.
func NewChangeExportOrderStatusCommandHandler(
	uowFactory ExportOrderUoWFactory,
) ChangeExportOrderStatusCommandHandler {
	return ChangeExportOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status-change command and returns the re-read row.
func (h *ChangeExportOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeExportOrderStatusCommand,
) (*exportorder.ExportOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	exportOrderRepo := uow.ExportOrderRepository()

	aggregate, err := exportOrderRepo.Get(ctx, cmd.ID())
	if err != nil {
		return nil, err
	}

	if status := cmd.Status(); status != nil {
		if err = aggregate.ChangeStatus(*status); err != nil {
			return nil, err
		}
	}

	if shippingStatus := cmd.ShippingStatus(); shippingStatus != nil {
		if err = aggregate.ChangeShippingStatus(*shippingStatus); err != nil {
			return nil, err
		}
	}

	if err = exportOrderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	updated, err := exportOrderRepo.Get(ctx, aggregate.ID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}
