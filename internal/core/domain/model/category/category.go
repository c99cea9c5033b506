// Package category contains the product-category aggregate.
package category

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/errs"
	"inventory/internal/pkg/guard"
)

// ErrCategoryIsNotConstructed is returned when a Category instance was not
// created through NewCategory or RestoreCategory.
var ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory or RestoreCategory")

// Category groups products. Only the name is required.
type Category struct {
	id          kernel.ID
	name        string
	description string
	isActive    bool

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewCategory creates a category to be persisted. New categories start active.
func NewCategory(name, description string) (*Category, error) {
	c := &Category{
		isActive: true,
		guard:    guard.NewConstructorGuard(),
	}

	if err := c.setDetails(name, description); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCategory reconstructs a category from its persisted representation.
func RestoreCategory(
	id kernel.ID,
	name, description string,
	isActive bool,
	createdAt, updatedAt time.Time,
) (*Category, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	c := &Category{
		id:        id,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := c.setDetails(name, description); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Category was constructed through a factory function.
func (c *Category) Validate() error {
	if c == nil {
		return ErrCategoryIsNotConstructed
	}
	return c.guard.Validate(ErrCategoryIsNotConstructed)
}

func (c *Category) ID() kernel.ID        { return c.id }
func (c *Category) Name() string         { return c.name }
func (c *Category) Description() string  { return c.description }
func (c *Category) IsActive() bool       { return c.isActive }
func (c *Category) CreatedAt() time.Time { return c.createdAt }
func (c *Category) UpdatedAt() time.Time { return c.updatedAt }

// SetID records the identity assigned by the store on insert.
func (c *Category) SetID(id kernel.ID) error {
	if c.id.IsAssigned() {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("category already has identity %s", c.id))
	}
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

// ChangeDetails replaces the category's business fields.
func (c *Category) ChangeDetails(name, description string) error {
	return c.setDetails(name, description)
}

// SetActive flips the active flag.
func (c *Category) SetActive(active bool) {
	c.isActive = active
}

func (c *Category) setDetails(name, description string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("category_name")
	}
	c.name = name
	c.description = description
	return nil
}
