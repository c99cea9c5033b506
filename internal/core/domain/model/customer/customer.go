// Package customer contains the customer aggregate (the party export orders
// are sold to).
package customer

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/errs"
	"inventory/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through NewCustomer or RestoreCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer")

// Customer is referenced by export orders. Name and phone are required and
// must be non-blank; contact details are free-form.
type Customer struct {
	id          kernel.ID
	name        string
	contactName string
	phone       string
	email       string
	address     string
	isActive    bool

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewCustomer creates a customer to be persisted. New customers start active.
func NewCustomer(name, contactName, phone, email, address string) (*Customer, error) {
	c := &Customer{
		isActive: true,
		guard:    guard.NewConstructorGuard(),
	}

	if err := c.setDetails(name, contactName, phone, email, address); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer reconstructs a customer from its persisted representation.
func RestoreCustomer(
	id kernel.ID,
	name, contactName, phone, email, address string,
	isActive bool,
	createdAt, updatedAt time.Time,
) (*Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	c := &Customer{
		id:        id,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := c.setDetails(name, contactName, phone, email, address); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Customer was constructed through a factory function.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c *Customer) ID() kernel.ID        { return c.id }
func (c *Customer) Name() string         { return c.name }
func (c *Customer) ContactName() string  { return c.contactName }
func (c *Customer) Phone() string        { return c.phone }
func (c *Customer) Email() string        { return c.email }
func (c *Customer) Address() string      { return c.address }
func (c *Customer) IsActive() bool       { return c.isActive }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time { return c.updatedAt }

// SetID records the identity assigned by the store on insert.
func (c *Customer) SetID(id kernel.ID) error {
	if c.id.IsAssigned() {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("customer already has identity %s", c.id))
	}
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

// ChangeDetails replaces the customer's business fields.
func (c *Customer) ChangeDetails(name, contactName, phone, email, address string) error {
	return c.setDetails(name, contactName, phone, email, address)
}

// SetActive flips the active flag.
func (c *Customer) SetActive(active bool) {
	c.isActive = active
}

func (c *Customer) setDetails(name, contactName, phone, email, address string) error {
	c.contactName = contactName
	c.email = email
	c.address = address

	return errors.Join(
		c.setName(name),
		c.setPhone(phone),
	)
}

func (c *Customer) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("customer_name")
	}
	c.name = name
	return nil
}

func (c *Customer) setPhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}
