package order

import (
	"fmt"

	"inventory/internal/pkg/errs"
)

// Status is the order-status dimension. It is a closed set of string values;
// anything outside the set is rejected and never persisted.
//
// There are no transition restrictions between values: any valid status may
// replace any other.
type Status string

const (
	// StatusPending is the default status for newly created orders.
	StatusPending Status = "Pending"

	// StatusCompleted marks an order as fulfilled.
	StatusCompleted Status = "Completed"

	// StatusCancelled marks an order as called off.
	StatusCancelled Status = "Cancelled"
)

// validStatuses returns the closed set of legal status values.
func validStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		StatusPending:   {},
		StatusCompleted: {},
		StatusCancelled: {},
	}
}

// ParseStatus validates a raw string against the closed set.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}

// Validate checks membership in the closed set.
func (s Status) Validate() error {
	if _, ok := validStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not one of Pending, Completed, Cancelled", string(s)))
	}
	return nil
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}
