package commands

import (
	"errors"
	"strings"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/errs"
	"inventory/internal/pkg/guard"
)

var (
	ErrCreateCustomerCommandIsNotConstructed = errors.New(
		"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
	)
	ErrUpdateCustomerCommandIsNotConstructed = errors.New(
		"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
	)
	ErrChangeCustomerActivationCommandIsNotConstructed = errors.New(
		"ChangeCustomerActivationCommand must be created via NewChangeCustomerActivationCommand constructor",
	)
)

// CreateCustomerCommand represents a request to register a new customer.
// Name and phone are required; the rest of the contact card is optional.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	name        string
	contactName string
	phone       string
	email       string
	address     string

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a command to register a customer.
func NewCreateCustomerCommand(name, contactName, phone, email, address string) (CreateCustomerCommand, error) {
	if strings.TrimSpace(name) == "" {
		return CreateCustomerCommand{}, errs.NewValueIsRequiredError("name")
	}
	if strings.TrimSpace(phone) == "" {
		return CreateCustomerCommand{}, errs.NewValueIsRequiredError("phone")
	}

	return CreateCustomerCommand{
		name:        name,
		contactName: contactName,
		phone:       phone,
		email:       email,
		address:     address,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

func (c CreateCustomerCommand) Name() string        { return c.name }
func (c CreateCustomerCommand) ContactName() string { return c.contactName }
func (c CreateCustomerCommand) Phone() string       { return c.phone }
func (c CreateCustomerCommand) Email() string       { return c.email }
func (c CreateCustomerCommand) Address() string     { return c.address }

// UpdateCustomerCommand represents a full-row update of an existing customer.
type UpdateCustomerCommand struct { //nolint:recvcheck //using for validation
	id          kernel.ID
	name        string
	contactName string
	phone       string
	email       string
	address     string

	guard guard.ConstructorGuard
}

// NewUpdateCustomerCommand creates a command to update a customer.
func NewUpdateCustomerCommand(
	id kernel.ID,
	name, contactName, phone, email, address string,
) (UpdateCustomerCommand, error) {
	if err := id.Validate(); err != nil {
		return UpdateCustomerCommand{}, err
	}
	if strings.TrimSpace(name) == "" {
		return UpdateCustomerCommand{}, errs.NewValueIsRequiredError("name")
	}
	if strings.TrimSpace(phone) == "" {
		return UpdateCustomerCommand{}, errs.NewValueIsRequiredError("phone")
	}

	return UpdateCustomerCommand{
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
func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

func (c UpdateCustomerCommand) ID() kernel.ID       { return c.id }
func (c UpdateCustomerCommand) Name() string        { return c.name }
func (c UpdateCustomerCommand) ContactName() string { return c.contactName }
func (c UpdateCustomerCommand) Phone() string       { return c.phone }
func (c UpdateCustomerCommand) Email() string       { return c.email }
func (c UpdateCustomerCommand) Address() string     { return c.address }

// ChangeCustomerActivationCommand flips a customer's active flag.
type ChangeCustomerActivationCommand struct { //nolint:recvcheck //using for validation
	id       kernel.ID
	isActive bool

	guard guard.ConstructorGuard
}

// NewChangeCustomerActivationCommand creates a command to activate or
// deactivate a customer.
func NewChangeCustomerActivationCommand(id kernel.ID, isActive bool) (ChangeCustomerActivationCommand, error) {
	if err := id.Validate(); err != nil {
		return ChangeCustomerActivationCommand{}, err
	}

	return ChangeCustomerActivationCommand{
		id:       id,
		isActive: isActive,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeCustomerActivationCommand) Validate() error {
	return c.guard.Validate(ErrChangeCustomerActivationCommandIsNotConstructed)
}

func (c ChangeCustomerActivationCommand) ID() kernel.ID { return c.id }
func (c ChangeCustomerActivationCommand) IsActive() bool { return c.isActive }
