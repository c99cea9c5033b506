package commands

import (
	"errors"
	"math"
	"strings"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/errs"
	"inventory/internal/pkg/guard"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
	ErrUpdateProductCommandIsNotConstructed = errors.New(
		"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
	)
	ErrChangeProductActivationCommandIsNotConstructed = errors.New(
		"ChangeProductActivationCommand must be created via NewChangeProductActivationCommand constructor",
	)
)

// CreateProductCommand represents a request to register a new product.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	name        string
	sku         string
	categoryID  kernel.ID
	description string
	quantity    int
	unitPrice   kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to register a product.
// Quantity may be zero: a product can be listed before stock arrives.
func NewCreateProductCommand(
	name, sku string,
	categoryID kernel.ID,
	description string,
	quantity int,
	unitPrice kernel.Money,
) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setFields(name, sku, categoryID, description, quantity, unitPrice); err != nil {
		return CreateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) Name() string            { return c.name }
func (c CreateProductCommand) SKU() string             { return c.sku }
func (c CreateProductCommand) CategoryID() kernel.ID   { return c.categoryID }
func (c CreateProductCommand) Description() string     { return c.description }
func (c CreateProductCommand) Quantity() int           { return c.quantity }
func (c CreateProductCommand) UnitPrice() kernel.Money { return c.unitPrice }

func (c *CreateProductCommand) setFields(
	name, sku string,
	categoryID kernel.ID,
	description string,
	quantity int,
	unitPrice kernel.Money,
) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if strings.TrimSpace(sku) == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	if !categoryID.IsAssigned() {
		return errs.NewValueIsRequiredError("category_id")
	}
	if quantity < 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 0, math.MaxInt)
	}

	c.name = name
	c.sku = sku
	c.categoryID = categoryID
	c.description = description
	c.quantity = quantity
	c.unitPrice = unitPrice
	return nil
}

// UpdateProductCommand represents a full-row update of an existing product.
// The active flag is not part of the update surface; it changes only through
// ChangeProductActivationCommand.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	id          kernel.ID
	name        string
	sku         string
	categoryID  kernel.ID
	description string
	quantity    int
	unitPrice   kernel.Money

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a command to update a product.
func NewUpdateProductCommand(
	id kernel.ID,
	name, sku string,
	categoryID kernel.ID,
	description string,
	quantity int,
	unitPrice kernel.Money,
) (UpdateProductCommand, error) {
	cmd := UpdateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := id.Validate(); err != nil {
		return UpdateProductCommand{}, err
	}
	cmd.id = id

	if err := cmd.setFields(name, sku, categoryID, description, quantity, unitPrice); err != nil {
		return UpdateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

func (c UpdateProductCommand) ID() kernel.ID           { return c.id }
func (c UpdateProductCommand) Name() string            { return c.name }
func (c UpdateProductCommand) SKU() string             { return c.sku }
func (c UpdateProductCommand) CategoryID() kernel.ID   { return c.categoryID }
func (c UpdateProductCommand) Description() string     { return c.description }
func (c UpdateProductCommand) Quantity() int           { return c.quantity }
func (c UpdateProductCommand) UnitPrice() kernel.Money { return c.unitPrice }

func (c *UpdateProductCommand) setFields(
	name, sku string,
	categoryID kernel.ID,
	description string,
	quantity int,
	unitPrice kernel.Money,
) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if strings.TrimSpace(sku) == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	if !categoryID.IsAssigned() {
		return errs.NewValueIsRequiredError("category_id")
	}
	if quantity < 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 0, math.MaxInt)
	}

	c.name = name
	c.sku = sku
	c.categoryID = categoryID
	c.description = description
	c.quantity = quantity
	c.unitPrice = unitPrice
	return nil
}

// ChangeProductActivationCommand flips a product's active flag.
type ChangeProductActivationCommand struct { //nolint:recvcheck //using for validation
	id       kernel.ID
	isActive bool

	guard guard.ConstructorGuard
}

// NewChangeProductActivationCommand creates a command to activate or
// deactivate a product.
func NewChangeProductActivationCommand(id kernel.ID, isActive bool) (ChangeProductActivationCommand, error) {
	if err := id.Validate(); err != nil {
		return ChangeProductActivationCommand{}, err
	}

	return ChangeProductActivationCommand{
		id:       id,
		isActive: isActive,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeProductActivationCommand) Validate() error {
	return c.guard.Validate(ErrChangeProductActivationCommandIsNotConstructed)
}

func (c ChangeProductActivationCommand) ID() kernel.ID { return c.id }
func (c ChangeProductActivationCommand) IsActive() bool { return c.isActive }
