package commands

import (
	"context"

	"inventory/internal/core/domain/model/customer"
)

// CreateCustomerCommandHandler handles customer creation.
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewCreateCustomerCommandHandler creates a handler for customer creation.
func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the customer creation command.
func (h *CreateCustomerCommandHandler) Handle(
	ctx context.Context,
	cmd CreateCustomerCommand,
) (*customer.Customer, error) {
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

	aggregate, err := customer.NewCustomer(
		cmd.Name(), cmd.ContactName(), cmd.Phone(), cmd.Email(), cmd.Address(),
	)
	if err != nil {
		return nil, err
	}

	customerRepo := uow.CustomerRepository()
	if err = customerRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	created, err := customerRepo.Get(ctx, aggregate.ID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}

// UpdateCustomerCommandHandler handles full-row customer updates.
type UpdateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewUpdateCustomerCommandHandler creates a handler for customer updates.
func NewUpdateCustomerCommandHandler(uowFactory CustomerUoWFactory) UpdateCustomerCommandHandler {
	return UpdateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the customer update command.
func (h *UpdateCustomerCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateCustomerCommand,
) (*customer.Customer, error) {
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

	customerRepo := uow.CustomerRepository()

	aggregate, err := customerRepo.Get(ctx, cmd.ID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.ChangeDetails(
		cmd.Name(), cmd.ContactName(), cmd.Phone(), cmd.Email(), cmd.Address(),
	); err != nil {
		return nil, err
	}

	if err = customerRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	updated, err := customerRepo.Get(ctx, aggregate.ID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}

// ChangeCustomerActivationCommandHandler flips the active flag on a customer.
// Existing export orders referencing an inactive customer are untouched.
type ChangeCustomerActivationCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewChangeCustomerActivationCommandHandler creates a handler for customer
// activation changes.
func NewChangeCustomerActivationCommandHandler(uowFactory CustomerUoWFactory) ChangeCustomerActivationCommandHandler {
	return ChangeCustomerActivationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the activation-change command.
func (h *ChangeCustomerActivationCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeCustomerActivationCommand,
) (*customer.Customer, error) {
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

	customerRepo := uow.CustomerRepository()

	aggregate, err := customerRepo.Get(ctx, cmd.ID())
	if err != nil {
		return nil, err
	}

	aggregate.SetActive(cmd.IsActive())

	if err = customerRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	updated, err := customerRepo.Get(ctx, aggregate.ID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}
