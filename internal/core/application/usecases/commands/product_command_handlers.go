package commands

import (
	"context"

	"inventory/internal/core/domain/model/product"
)

// CreateProductCommandHandler handles product creation: category reference
// validation, insert, and the re-read of the stored row, in one transaction.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewCreateProductCommandHandler creates a handler for product creation.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product creation command.
func (h *CreateProductCommandHandler) Handle(
	ctx context.Context,
	cmd CreateProductCommand,
) (*product.Product, error) {
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

	categoryExists, err := uow.CategoryRepository().Exists(ctx, cmd.CategoryID())
	if err != nil {
		return nil, err
	}
	if !categoryExists {
		return nil, ErrCategoryDoesNotExist
	}

	aggregate, err := product.NewProduct(
		cmd.Name(), cmd.SKU(), cmd.CategoryID(),
		cmd.Description(), cmd.Quantity(), cmd.UnitPrice(),
	)
	if err != nil {
		return nil, err
	}

	productRepo := uow.ProductRepository()
	if err = productRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	created, err := productRepo.Get(ctx, aggregate.ID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}

// UpdateProductCommandHandler handles full-row product updates. The category
// reference is re-validated because the update may repoint it.
type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewUpdateProductCommandHandler creates a handler for product updates.
func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product update command.
func (h *UpdateProductCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateProductCommand,
) (*product.Product, error) {
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

	productRepo := uow.ProductRepository()

	aggregate, err := productRepo.Get(ctx, cmd.ID())
	if err != nil {
		return nil, err
	}

	categoryExists, err := uow.CategoryRepository().Exists(ctx, cmd.CategoryID())
	if err != nil {
		return nil, err
	}
	if !categoryExists {
		return nil, ErrCategoryDoesNotExist
	}

	if err = aggregate.ChangeDetails(
		cmd.Name(), cmd.SKU(), cmd.CategoryID(),
		cmd.Description(), cmd.Quantity(), cmd.UnitPrice(),
	); err != nil {
		return nil, err
	}

	if err = productRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	updated, err := productRepo.Get(ctx, aggregate.ID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}

// ChangeProductActivationCommandHandler flips the active flag on a product.
type ChangeProductActivationCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewChangeProductActivationCommandHandler creates a handler for product
// activation changes.
func NewChangeProductActivationCommandHandler(uowFactory ProductUoWFactory) ChangeProductActivationCommandHandler {
	return ChangeProductActivationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the activation-change command.
func (h *ChangeProductActivationCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeProductActivationCommand,
) (*product.Product, error) {
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

	productRepo := uow.ProductRepository()

	aggregate, err := productRepo.Get(ctx, cmd.ID())
	if err != nil {
		return nil, err
	}

	aggregate.SetActive(cmd.IsActive())

	if err = productRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	updated, err := productRepo.Get(ctx, aggregate.ID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}
