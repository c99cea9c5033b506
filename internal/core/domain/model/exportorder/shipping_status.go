package exportorder

import (
	"fmt"

	"inventory/internal/pkg/errs"
)

// ShippingStatus is the shipping-status dimension of an export order.
// It is independent from the order-status dimension and has its own closed
// set; no transition restrictions apply between values.
type ShippingStatus string

const (
	// ShippingPending is the default shipping status for new export orders.
	ShippingPending ShippingStatus = "Pending"

	// ShippingInTransit marks a shipment as on its way.
	ShippingInTransit ShippingStatus = "In Transit"

	// ShippingDelivered marks a shipment as received by the customer.
	ShippingDelivered ShippingStatus = "Delivered"

	// ShippingReturned marks a shipment as sent back.
	ShippingReturned ShippingStatus = "Returned"

	// ShippingFailed marks a shipment as undeliverable.
	ShippingFailed ShippingStatus = "Failed"
)

func validShippingStatuses() map[ShippingStatus]struct{} {
	return map[ShippingStatus]struct{}{
		ShippingPending:   {},
		ShippingInTransit: {},
		ShippingDelivered: {},
		ShippingReturned:  {},
		ShippingFailed:    {},
	}
}

// ParseShippingStatus validates a raw string against the closed set.
func ParseShippingStatus(raw string) (ShippingStatus, error) {
	s := ShippingStatus(raw)
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}

// Validate checks membership in the closed set.
func (s ShippingStatus) Validate() error {
	if _, ok := validShippingStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("shipping_status",
			fmt.Errorf("%q is not one of Pending, In Transit, Delivered, Returned, Failed", string(s)))
	}
	return nil
}

// String implements fmt.Stringer.
func (s ShippingStatus) String() string {
	return string(s)
}
