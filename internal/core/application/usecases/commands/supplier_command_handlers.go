package commands

import (
	"context"

	"inventory/internal/core/domain/model/supplier"
)

// CreateSupplierCommandHandler handles supplier creation.
type CreateSupplierCommandHandler struct {
	uowFactory SupplierUoWFactory
}

// NewCreateSupplierCommandHandler creates a handler for supplier creation.
func NewCreateSupplierCommandHandler(uowFactory SupplierUoWFactory) CreateSupplierCommandHandler {
	return CreateSupplierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the supplier creation command.
func (h *CreateSupplierCommandHandler) Handle(
	ctx context.Context,
	cmd CreateSupplierCommand,
) (*supplier.Supplier, error) {
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

	aggregate, err := supplier.NewSupplier(
		cmd.Name(), cmd.ContactName(), cmd.Phone(), cmd.Email(), cmd.Address(),
	)
	if err != nil {
		return nil, err
	}

	supplierRepo := uow.SupplierRepository()
	if err = supplierRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	created, err := supplierRepo.Get(ctx, aggregate.ID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}

// UpdateSupplierCommandHandler handles full-row supplier updates.
type UpdateSupplierCommandHandler struct {
	uowFactory SupplierUoWFactory
}

// NewUpdateSupplierCommandHandler creates a handler for supplier updates.
func NewUpdateSupplierCommandHandler(uowFactory SupplierUoWFactory) UpdateSupplierCommandHandler {
	return UpdateSupplierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the supplier update command.
func (h *UpdateSupplierCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateSupplierCommand,
) (*supplier.Supplier, error) {
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

	supplierRepo := uow.SupplierRepository()

	aggregate, err := supplierRepo.Get(ctx, cmd.ID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.ChangeDetails(
		cmd.Name(), cmd.ContactName(), cmd.Phone(), cmd.Email(), cmd.Address(),
	); err != nil {
		return nil, err
	}

	if err = supplierRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	updated, err := supplierRepo.Get(ctx, aggregate.ID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}

// ChangeSupplierActivationCommandHandler flips the active flag on a supplier.
// Existing orders referencing an inactive supplier are untouched.
type ChangeSupplierActivationCommandHandler struct {
	uowFactory SupplierUoWFactory
}

// NewChangeSupplierActivationCommandHandler creates a handler for supplier
// activation changes.
func NewChangeSupplierActivationCommandHandler(uowFactory SupplierUoWFactory) ChangeSupplierActivationCommandHandler {
	return ChangeSupplierActivationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the activation-change command.
func (h *ChangeSupplierActivationCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeSupplierActivationCommand,
) (*supplier.Supplier, error) {
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

	supplierRepo := uow.SupplierRepository()

	aggregate, err := supplierRepo.Get(ctx, cmd.ID())
	if err != nil {
		return nil, err
	}

	aggregate.SetActive(cmd.IsActive())

	if err = supplierRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	updated, err := supplierRepo.Get(ctx, aggregate.ID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}
