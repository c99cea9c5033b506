// Package supplier contains the supplier aggregate (the party purchase
// orders are placed with).
package supplier

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/errs"
	"inventory/internal/pkg/guard"
)

// ErrSupplierIsNotConstructed is returned when a Supplier instance was not
// created through NewSupplier or RestoreSupplier.
var ErrSupplierIsNotConstructed = errors.New("Supplier must be created via NewSupplier or RestoreSupplier")

// Supplier is referenced by purchase orders. Name and phone are required and
// must be non-blank; contact details are free-form.
type Supplier struct {
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

// NewSupplier creates a supplier to be persisted. New suppliers start active.
func NewSupplier(name, contactName, phone, email, address string) (*Supplier, error) {
	s := &Supplier{
		isActive: true,
		guard:    guard.NewConstructorGuard(),
	}

	if err := s.setDetails(name, contactName, phone, email, address); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreSupplier reconstructs a supplier from its persisted representation.
func RestoreSupplier(
	id kernel.ID,
	name, contactName, phone, email, address string,
	isActive bool,
	createdAt, updatedAt time.Time,
) (*Supplier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	s := &Supplier{
		id:        id,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := s.setDetails(name, contactName, phone, email, address); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the Supplier was constructed through a factory function.
func (s *Supplier) Validate() error {
	if s == nil {
		return ErrSupplierIsNotConstructed
	}
	return s.guard.Validate(ErrSupplierIsNotConstructed)
}

func (s *Supplier) ID() kernel.ID        { return s.id }
func (s *Supplier) Name() string         { return s.name }
func (s *Supplier) ContactName() string  { return s.contactName }
func (s *Supplier) Phone() string        { return s.phone }
func (s *Supplier) Email() string        { return s.email }
func (s *Supplier) Address() string      { return s.address }
func (s *Supplier) IsActive() bool       { return s.isActive }
func (s *Supplier) CreatedAt() time.Time { return s.createdAt }
func (s *Supplier) UpdatedAt() time.Time { return s.updatedAt }

// SetID records the identity assigned by the store on insert.
func (s *Supplier) SetID(id kernel.ID) error {
	if s.id.IsAssigned() {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("supplier already has identity %s", s.id))
	}
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

// ChangeDetails replaces the supplier's business fields.
func (s *Supplier) ChangeDetails(name, contactName, phone, email, address string) error {
	return s.setDetails(name, contactName, phone, email, address)
}

// SetActive flips the active flag.
func (s *Supplier) SetActive(active bool) {
	s.isActive = active
}

func (s *Supplier) setDetails(name, contactName, phone, email, address string) error {
	s.contactName = contactName
	s.email = email
	s.address = address

	return errors.Join(
		s.setName(name),
		s.setPhone(phone),
	)
}

func (s *Supplier) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("supplier_name")
	}
	s.name = name
	return nil
}

func (s *Supplier) setPhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	s.phone = phone
	return nil
}
