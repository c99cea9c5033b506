package commands

import (
	"context"

	"inventory/internal/core/domain/model/exportorder"
)

// UpdateExportOrderCommandHandler handles full-row export-order updates.
// References are re-validated because the update may repoint them.
type UpdateExportOrderCommandHandler struct {
	uowFactory ExportOrderUoWFactory
}

// NewUpdateExportOrderCommandHandler creates a handler for export-order updates.
func NewUpdateExportOrderCommandHandler(uowFactory ExportOrderUoWFactory) UpdateExportOrderCommandHandler {
	return UpdateExportOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the export-order update command and returns the re-read row.
func (h *UpdateExportOrderCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateExportOrderCommand,
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

	customerExists, err := uow.CustomerRepository().Exists(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}
	if !customerExists {
		return nil, ErrCustomerDoesNotExist
	}

	productExists, err := uow.ProductRepository().Exists(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}
	if !productExists {
		return nil, ErrProductDoesNotExist
	}

	if err = aggregate.ChangeDetails(
		cmd.CustomerID(), cmd.ProductID(), cmd.Quantity(),
		cmd.Subtotal(), cmd.TotalAmount(),
		cmd.ShippingDate(), cmd.ShippingAddress(),
		cmd.ShippingStatus(), cmd.Status(),
	); err != nil {
		return nil, err
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
