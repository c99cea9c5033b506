// Package order contains the purchase-order aggregate.
//
// An Order records the purchase of a product from a supplier: the referenced
// supplier and product, the ordered quantity, the monetary subtotal and total,
// the order date, and a status dimension with the closed set
// {Pending, Completed, Cancelled}.
//
// The status dimension is a pure membership check. The lifecycle imposes no
// ordering between values: Completed may go back to Pending. Terminal-looking
// values are a reporting concern, not a transition graph.
package order
