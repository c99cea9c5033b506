package commands

import (
	"context"

	"inventory/internal/core/domain/model/order"
)

// UpdateOrderCommandHandler handles full updates of purchase orders: reads
// the existing row (NotFound when absent), re-validates both references,
// replaces the business fields, and re-reads the updated row, all inside one
// transaction.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order updates.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order update command and returns the re-read row.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	supplierExists, err := uow.SupplierRepository().Exists(ctx, cmd.SupplierID())
	if err != nil {
		return nil, err
	}
	if !supplierExists {
		return nil, ErrSupplierDoesNotExist
	}

	productExists, err := uow.ProductRepository().Exists(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}
	if !productExists {
		return nil, ErrProductDoesNotExist
	}

	if err = aggregate.ChangeDetails(
		cmd.SupplierID(), cmd.ProductID(), cmd.Quantity(),
		cmd.Subtotal(), cmd.TotalAmount(), cmd.Status(),
	); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	updated, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}
