// Package queries contains read-side operations of the CQRS split. Query
// handlers bypass the domain model and read denormalized rows straight from
// the database with raw SQL, returning response structs shaped for the API.
package queries

import (
	"context"
	"errors"
	"time"

	"inventory/internal/pkg/guard"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery retrieves every purchase order joined to its supplier
// and product names.
//
// Example:
//
//	query := NewGetAllOrdersQuery()
//	handler := NewGetAllOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//	fmt.Printf("%d orders on file\n", len(orders))
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a parameterless query for the full order list.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// OrderResponse is the denormalized purchase-order read model: the order row
// plus the supplier and product names it references. Monetary fields are
// rendered as fixed two-decimal strings.
type OrderResponse struct {
	OrderID      int64     `json:"order_id"`
	SupplierID   int64     `json:"supplier_id"`
	SupplierName string    `json:"supplier_name"`
	ProductID    int64     `json:"product_id"`
	ProductName  string    `json:"product_name"`
	OrderDate    time.Time `json:"order_date"`
	Quantity     int       `json:"quantity"`
	Subtotal     string    `json:"subtotal"`
	TotalAmount  string    `json:"total_amount"`
	Status       string    `json:"status"`
}

// GetAllOrdersQueryHandler reads the joined order list from the database.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order list queries.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query. A dropped supplier or product row excludes the
// order from the result, matching inner-join semantics.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderResponse, 0)

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
		ORDER BY o.order_id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
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
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
