package commands

import (
	"context"

	"inventory/internal/core/domain/model/exportorder"
)

// CreateExportOrderCommandHandler handles export-order creation: customer and
// product reference validation, insert, and the re-read that produces the
// canonical row, all inside one transaction.
type CreateExportOrderCommandHandler struct {
	uowFactory ExportOrderUoWFactory
}

// NewCreateExportOrderCommandHandler creates a handler for export-order creation.
func NewCreateExportOrderCommandHandler(uowFactory ExportOrderUoWFactory) CreateExportOrderCommandHandler {
	return CreateExportOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the export-order creation command and returns the row
// re-read by its assigned identity.
func (h *CreateExportOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateExportOrderCommand,
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

	aggregate, err := exportorder.NewExportOrder(
		cmd.CustomerID(), cmd.ProductID(), cmd.Quantity(),
		cmd.Subtotal(), cmd.TotalAmount(),
		cmd.ShippingDate(), cmd.ShippingAddress(),
		cmd.ShippingStatus(), cmd.Status(),
	)
	if err != nil {
		return nil, err
	}

	exportOrderRepo := uow.ExportOrderRepository()
	if err = exportOrderRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	created, err := exportOrderRepo.Get(ctx, aggregate.ID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
