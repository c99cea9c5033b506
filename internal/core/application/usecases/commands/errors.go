package commands

import "errors"

// Reference-check failures. The messages are client-facing and surface
// verbatim in 400 response bodies.
var (
	ErrSupplierDoesNotExist = errors.New("Invalid supplier_id. Supplier does not exist")
	ErrCustomerDoesNotExist = errors.New("Invalid customer_id. Customer does not exist")
	ErrProductDoesNotExist  = errors.New("Invalid product_id. Product does not exist")
	ErrCategoryDoesNotExist = errors.New("Invalid category_id. Category does not exist")
)

// ErrNoStatusProvided is returned when a status patch names none of the
// status dimensions.
var ErrNoStatusProvided = errors.New("No status provided to update")
