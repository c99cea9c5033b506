package commands

import (
	"errors"
	"strings"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/errs"
	"inventory/internal/pkg/guard"
)

var (
	ErrCreateCategoryCommandIsNotConstructed = errors.New(
		"CreateCategoryCommand must be created via NewCreateCategoryCommand constructor",
	)
	ErrUpdateCategoryCommandIsNotConstructed = errors.New(
		"UpdateCategoryCommand must be created via NewUpdateCategoryCommand constructor",
	)
	ErrChangeCategoryActivationCommandIsNotConstructed = errors.New(
		"ChangeCategoryActivationCommand must be created via NewChangeCategoryActivationCommand constructor",
	)
)

// CreateCategoryCommand represents a request to register a new category.
type CreateCategoryCommand struct { //nolint:recvcheck //using for validation
	name        string
	description string

	guard guard.ConstructorGuard
}

// NewCreateCategoryCommand creates a command to register a category.
func NewCreateCategoryCommand(name, description string) (CreateCategoryCommand, error) {
	if strings.TrimSpace(name) == "" {
		return CreateCategoryCommand{}, errs.NewValueIsRequiredError("name")
	}

	return CreateCategoryCommand{
		name:        name,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCategoryCommand) Validate() error {
	return c.guard.Validate(ErrCreateCategoryCommandIsNotConstructed)
}

func (c CreateCategoryCommand) Name() string        { return c.name }
func (c CreateCategoryCommand) Description() string { return c.description }

// UpdateCategoryCommand represents a full-row update of an existing category.
type UpdateCategoryCommand struct { //nolint:recvcheck //using for validation
	id          kernel.ID
	name        string
	description string

	guard guard.ConstructorGuard
}

// NewUpdateCategoryCommand creates a command to update a category.
func NewUpdateCategoryCommand(id kernel.ID, name, description string) (UpdateCategoryCommand, error) {
	if err := id.Validate(); err != nil {
		return UpdateCategoryCommand{}, err
	}
	if strings.TrimSpace(name) == "" {
		return UpdateCategoryCommand{}, errs.NewValueIsRequiredError("name")
	}

	return UpdateCategoryCommand{
		id:          id,
		name:        name,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCategoryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCategoryCommandIsNotConstructed)
}

func (c UpdateCategoryCommand) ID() kernel.ID       { return c.id }
func (c UpdateCategoryCommand) Name() string        { return c.name }
func (c UpdateCategoryCommand) Description() string { return c.description }

// ChangeCategoryActivationCommand flips a category's active flag.
type ChangeCategoryActivationCommand struct { //nolint:recvcheck //using for validation
	id       kernel.ID
	isActive bool

	guard guard.ConstructorGuard
}

// NewChangeCategoryActivationCommand creates a command to activate or
// deactivate a category.
func NewChangeCategoryActivationCommand(id kernel.ID, isActive bool) (ChangeCategoryActivationCommand, error) {
	if err := id.Validate(); err != nil {
		return ChangeCategoryActivationCommand{}, err
	}

	return ChangeCategoryActivationCommand{
		id:       id,
		isActive: isActive,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeCategoryActivationCommand) Validate() error {
	return c.guard.Validate(ErrChangeCategoryActivationCommandIsNotConstructed)
}

func (c ChangeCategoryActivationCommand) ID() kernel.ID { return c.id }
func (c ChangeCategoryActivationCommand) IsActive() bool { return c.isActive }
