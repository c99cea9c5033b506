// Package exportorder contains the export-order (sales order) aggregate.
//
// An ExportOrder records the sale of a product to a customer. On top of the
// purchase-order shape it threads shipping fields: a shipping address, an
// optional shipping date, and a second, independent status dimension with the
// closed set {Pending, In Transit, Delivered, Returned, Failed}.
//
// The order-status and shipping-status dimensions are validated against their
// own closed sets and change independently: a partial status update touches
// only the dimensions present in the patch.
package exportorder
