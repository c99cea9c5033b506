package queries

import (
	"context"
	"errors"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/errs"
	"inventory/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetExportOrderQueryIsNotConstructed = errors.New(
	"GetExportOrderQuery must be created via NewGetExportOrderQuery constructor",
)

// GetExportOrderQuery retrieves a single export order by identity, joined to
// its customer and product names.
type GetExportOrderQuery struct {
	id kernel.ID

	guard guard.ConstructorGuard
}

// NewGetExportOrderQuery creates a query for one export order.
func NewGetExportOrderQuery(id kernel.ID) (GetExportOrderQuery, error) {
	if err := id.Validate(); err != nil {
		return GetExportOrderQuery{}, err
	}
	return GetExportOrderQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetExportOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetExportOrderQueryIsNotConstructed)
}

// ID returns the requested export-order identity.
func (q GetExportOrderQuery) ID() kernel.ID { return q.id }

// GetExportOrderQueryHandler reads one joined export-order row.
type GetExportOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetExportOrderQueryHandler creates a handler for single export-order queries.
func NewGetExportOrderQueryHandler(db *gorm.DB) GetExportOrderQueryHandler {
	return GetExportOrderQueryHandler{db: db}
}

// Handle executes the query. Returns an object-not-found error when no row
// matches.
func (h GetExportOrderQueryHandler) Handle(
	ctx context.Context,
	query GetExportOrderQuery,
) (*ExportOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			eo.export_order_id,
			eo.customer_id,
			c.customer_name,
			eo.product_id,
			p.product_name,
			eo.order_date,
			eo.shipping_date,
			eo.shipping_address,
			eo.shipping_status,
			eo.quantity,
			eo.subtotal,
			eo.total_amount,
			eo.status
		FROM export_orders eo
		JOIN customers c ON eo.customer_id = c.customer_id
		JOIN products p ON eo.product_id = p.product_id
		WHERE eo.export_order_id = ?
	`, query.ID().Int64()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}
		return nil, errs.NewObjectNotFoundError("export order", query.ID())
	}

	resp, err := scanExportOrderRow(rows)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}
