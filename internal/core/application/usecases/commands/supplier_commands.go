package commands

import (
	"errors"
	"strings"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/errs"
	"inventory/internal/pkg/guard"
)

var (
	ErrCreateSupplierCommandIsNotConstructed = errors.New(
		"CreateSupplierCommand must be created via NewCreateSupplierCommand constructor",
	)
	ErrUpdateSupplierCommandIsNotConstructed = errors.New(
		"UpdateSupplierCommand must be created via NewUpdateSupplierCommand constructor",
	)
	ErrChangeSupplierActivationCommandIsNotConstructed = errors.New(
		"ChangeSupplierActivationCommand must be created via NewChangeSupplierActivationCommand constructor",
	)
)

// CreateSupplierCommand represents a request to register a new supplier.
// Name and phone are required; the rest of the contact card is optional.
type CreateSupplierCommand struct { //nolint:recvcheck //using for validation
	name        string
	contactName string
	phone       string
	email       string
	address     string

	guard guard.ConstructorGuard
}

// NewCreateSupplierCommand creates a command to register a supplier.
func NewCreateSupplierCommand(name, contactName, phone, email, address string) (CreateSupplierCommand, error) {
	if strings.TrimSpace(name) == "" {
		return CreateSupplierCommand{}, errs.NewValueIsRequiredError("name")
	}
	if strings.TrimSpace(phone) == "" {
		return CreateSupplierCommand{}, errs.NewValueIsRequiredError("phone")
	}

	return CreateSupplierCommand{
		name:        name,
		contactName: contactName,
		phone:       phone,
		email:       email,
		address:     address,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateSupplierCommand) Validate() error {
	return c.guard.Validate(ErrCreateSupplierCommandIsNotConstructed)
}

func (c CreateSupplierCommand) Name() string        { return c.name }
func (c CreateSupplierCommand) ContactName() string { return c.contactName }
func (c CreateSupplierCommand) Phone() string       { return c.phone }
func (c CreateSupplierCommand) Email() string       { return c.email }
func (c CreateSupplierCommand) Address() string     { return c.address }

// UpdateSupplierCommand represents a full-row update of an existing supplier.
type UpdateSupplierCommand struct { //nolint:recvcheck //using for validation
	id          kernel.ID
	name        string
	contactName string
	phone       string
	email       string
	address     string

	guard guard.ConstructorGuard
}

// NewUpdateSupplierCommand creates a command to update a supplier.
func NewUpdateSupplierCommand(
	id kernel.ID,
	name, contactName, phone, email, address string,
) (UpdateSupplierCommand, error) {
	if err := id.Validate(); err != nil {
		return UpdateSupplierCommand{}, err
	}
	if strings.TrimSpace(name) == "" {
		return UpdateSupplierCommand{}, errs.NewValueIsRequiredError("name")
	}
	if strings.TrimSpace(phone) == "" {
		return UpdateSupplierCommand{}, errs.NewValueIsRequiredError("phone")
	}

	return UpdateSupplierCommand{
		id:          id,
		name:        name,
		contactName: contactName,
		phone:       phone,
		email:       email,
		address:     address,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateSupplierCommand) Validate() error {
	return c.guard.Validate(ErrUpdateSupplierCommandIsNotConstructed)
}

func (c UpdateSupplierCommand) ID() kernel.ID       { return c.id }
func (c UpdateSupplierCommand) Name() string        { return c.name }
func (c UpdateSupplierCommand) ContactName() string { return c.contactName }
func (c UpdateSupplierCommand) Phone() string       { return c.phone }
func (c UpdateSupplierCommand) Email() string       { return c.email }
func (c UpdateSupplierCommand) Address() string     { return c.address }

// ChangeSupplierActivationCommand flips a supplier's active flag.
type ChangeSupplierActivationCommand struct { //nolint:recvcheck //using for validation
	id       kernel.ID
	isActive bool

	guard guard.ConstructorGuard
}

// NewChangeSupplierActivationCommand creates a command to activate or
// deactivate a supplier.
func NewChangeSupplierActivationCommand(id kernel.ID, isActive bool) (ChangeSupplierActivationCommand, error) {
	if err := id.Validate(); err != nil {
		return ChangeSupplierActivationCommand{}, err
	}

	return ChangeSupplierActivationCommand{
		id:       id,
		isActive: isActive,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeSupplierActivationCommand) Validate() error {
	return c.guard.Validate(ErrChangeSupplierActivationCommandIsNotConstructed)
}

func (c ChangeSupplierActivationCommand) ID() kernel.ID { return c.id }
func (c ChangeSupplierActivationCommand) IsActive() bool { return c.isActive }
