package kernel

import (
	"fmt"
	"strconv"

	"inventory/internal/pkg/errs"
)

// ID is the identity assigned by the entity store on insert. Positive values
// reference an existing row; the zero value means the entity has not been
// persisted yet.
type ID int64

// NewID creates an ID from a store-assigned value. The value must be positive.
func NewID(value int64) (ID, error) {
	if value <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("%d is not a positive identifier", value))
	}
	return ID(value), nil
}

// ParseID parses an identifier from its request-path representation.
// Anything that is not a well-formed positive integer is rejected.
func ParseID(s string) (ID, error) {
	value, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return NewID(value)
}

// IsAssigned reports whether the ID carries a store-assigned identity.
func (id ID) IsAssigned() bool {
	return id > 0
}

// Validate returns an error unless the ID references a persisted row.
func (id ID) Validate() error {
	if !id.IsAssigned() {
		return errs.NewValueIsRequiredError("id")
	}
	return nil
}

// Int64 returns the raw identity value.
func (id ID) Int64() int64 {
	return int64(id)
}

// String implements fmt.Stringer.
func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// IsEqual compares two identities by value.
func (id ID) IsEqual(other ID) bool {
	return id == other
}
