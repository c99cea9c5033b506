package queries

import (
	"context"
	"errors"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/errs"
	"inventory/internal/pkg/guard"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single purchase order by identity, joined to its
// supplier and product names.
type GetOrderQuery struct {
	id kernel.ID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order.
func NewGetOrderQuery(id kernel.ID) (GetOrderQuery, error) {
	if err := id.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// ID returns the requested order identity.
func (q GetOrderQuery) ID() kernel.ID { return q.id }

// GetOrderQueryHandler reads one joined order row from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns an object-not-found error when no row
// matches.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.order_id,
			o.supplier_id,
			s.supplier_name,
			o.product_id,
			p.product_name,
			o.order_date,
			o.quantity,
			o.subtotal,
			o.total_amount,
			o.status
		FROM orders o
		JOIN suppliers s ON o.supplier_id = s.supplier_id
		JOIN products p ON o.product_id = p.product_id
		WHERE o.order_id = ?
	`, query.ID().Int64()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}
		return nil, errs.NewObjectNotFoundError("order", query.ID())
	}

	var resp OrderResponse
	var subtotal, totalAmount decimal.Decimal

	err = rows.Scan(
		&resp.OrderID,
		&resp.SupplierID,
		&resp.SupplierName,
		&resp.ProductID,
		&resp.ProductName,
		&resp.OrderDate,
		&resp.Quantity,
		&subtotal,
		&totalAmount,
		&resp.Status,
	)
	if err != nil {
		return nil, err
	}

	resp.Subtotal = subtotal.StringFixed(2)
	resp.TotalAmount = totalAmount.StringFixed(2)

	return &resp, nil
}
