package commands

import (
	"context"

	"inventory/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for purchase-order
// creation: reference validation, insert, and the re-read that produces the
// canonical row, all inside one transaction.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command. The supplier and product
// references are checked against the store before the insert; a dangling
// reference fails the command with a client-visible error. Returns the row
// re-read by its assigned identity.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	aggregate, err := order.NewOrder(
		cmd.SupplierID(), cmd.ProductID(), cmd.Quantity(),
		cmd.Subtotal(), cmd.TotalAmount(), cmd.Status(),
	)
	if err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	created, err := orderRepo.Get(ctx, aggregate.ID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
