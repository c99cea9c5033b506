package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"inventory/internal/pkg/guard"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrGetAllExportOrdersQueryIsNotConstructed = errors.New(
	"GetAllExportOrdersQuery must be created via NewGetAllExportOrdersQuery constructor",
)

// GetAllExportOrdersQuery retrieves every export order joined to its
// customer and product names.
type GetAllExportOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllExportOrdersQuery creates a parameterless query for the full
// export-order list.
func NewGetAllExportOrdersQuery() GetAllExportOrdersQuery {
	return GetAllExportOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllExportOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllExportOrdersQueryIsNotConstructed)
}

// ExportOrderResponse is the denormalized export-order read model. Both
// status dimensions are carried; shipping date is null when not yet set.
type ExportOrderResponse struct {
	ExportOrderID   int64      `json:"export_order_id"`
	CustomerID      int64      `json:"customer_id"`
	CustomerName    string     `json:"customer_name"`
	ProductID       int64      `json:"product_id"`
	ProductName     string     `json:"product_name"`
	OrderDate       time.Time  `json:"order_date"`
	ShippingDate    *time.Time `json:"shipping_date"`
	ShippingAddress string     `json:"shipping_address"`
	ShippingStatus  string     `json:"shipping_status"`
	Quantity        int        `json:"quantity"`
	Subtotal        string     `json:"subtotal"`
	TotalAmount     string     `json:"total_amount"`
	Status          string     `json:"status"`
}

// GetAllExportOrdersQueryHandler reads the joined export-order list.
type GetAllExportOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllExportOrdersQueryHandler creates a handler for export-order list queries.
func NewGetAllExportOrdersQueryHandler(db *gorm.DB) GetAllExportOrdersQueryHandler {
	return GetAllExportOrdersQueryHandler{db: db}
}

// Handle executes the query.
func (h GetAllExportOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllExportOrdersQuery,
) ([]ExportOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	exportOrders := make([]ExportOrderResponse, 0)

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
		ORDER BY eo.export_order_id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		resp, scanErr := scanExportOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		exportOrders = append(exportOrders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return exportOrders, nil
}

func scanExportOrderRow(rows *sql.Rows) (ExportOrderResponse, error) {
	var resp ExportOrderResponse
	var shippingDate sql.NullTime
	var subtotal, totalAmount decimal.Decimal

	err := rows.Scan(
		&resp.ExportOrderID,
		&resp.CustomerID,
		&resp.CustomerName,
		&resp.ProductID,
		&resp.ProductName,
		&resp.OrderDate,
		&shippingDate,
		&resp.ShippingAddress,
		&resp.ShippingStatus,
		&resp.Quantity,
		&subtotal,
		&totalAmount,
		&resp.Status,
	)
	if err != nil {
		return ExportOrderResponse{}, err
	}

	if shippingDate.Valid {
		resp.ShippingDate = &shippingDate.Time
	}
	resp.Subtotal = subtotal.StringFixed(2)
	resp.TotalAmount = totalAmount.StringFixed(2)

	return resp, nil
}
