// Package kernel contains the shared value objects of the domain model.
//
// ID is the store-assigned integer identity used by every entity. Money is a
// non-negative decimal amount with two-fraction-digit rendering, used for
// unit prices, subtotals, and order totals.
//
// Both types are immutable value objects: they are created through factory
// functions that validate their invariants, and the zero value of ID has the
// defined meaning "not yet assigned by the store".
package kernel
