package commands

import (
	"context"

	"inventory/internal/core/domain/model/category"
)

// CreateCategoryCommandHandler handles category creation.
type CreateCategoryCommandHandler struct {
	uowFactory CategoryUoWFactory
}

// NewCreateCategoryCommandHandler creates a handler for category creation.
func NewCreateCategoryCommandHandler(uowFactory CategoryUoWFactory) CreateCategoryCommandHandler {
	return CreateCategoryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the category creation command.
func (h *CreateCategoryCommandHandler) Handle(
	ctx context.Context,
	cmd CreateCategoryCommand,
) (*category.Category, error) {
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

	aggregate, err := category.NewCategory(cmd.Name(), cmd.Description())
	if err != nil {
		return nil, err
	}

	categoryRepo := uow.CategoryRepository()
	if err = categoryRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	created, err := categoryRepo.Get(ctx, aggregate.ID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}

// UpdateCategoryCommandHandler handles full-row category updates.
type UpdateCategoryCommandHandler struct {
	uowFactory CategoryUoWFactory
}

// NewUpdateCategoryCommandHandler creates a handler for category updates.
func NewUpdateCategoryCommandHandler(uowFactory CategoryUoWFactory) UpdateCategoryCommandHandler {
	return UpdateCategoryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the category update command.
func (h *UpdateCategoryCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateCategoryCommand,
) (*category.Category, error) {
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

	categoryRepo := uow.CategoryRepository()

	aggregate, err := categoryRepo.Get(ctx, cmd.ID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.ChangeDetails(cmd.Name(), cmd.Description()); err != nil {
		return nil, err
	}

	if err = categoryRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	updated, err := categoryRepo.Get(ctx, aggregate.ID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}

// ChangeCategoryActivationCommandHandler flips the active flag on a category.
// Products referencing an inactive category are untouched.
type ChangeCategoryActivationCommandHandler struct {
	uowFactory CategoryUoWFactory
}

// NewChangeCategoryActivationCommandHandler creates a handler for category
// activation changes.
func NewChangeCategoryActivationCommandHandler(uowFactory CategoryUoWFactory) ChangeCategoryActivationCommandHandler {
	return ChangeCategoryActivationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the activation-change command.
func (h *ChangeCategoryActivationCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeCategoryActivationCommand,
) (*category.Category, error) {
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

	categoryRepo := uow.CategoryRepository()

	aggregate, err := categoryRepo.Get(ctx, cmd.ID())
	if err != nil {
		return nil, err
	}

	aggregate.SetActive(cmd.IsActive())

	if err = categoryRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	updated, err := categoryRepo.Get(ctx, aggregate.ID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}
