package queries

import (
	"context"
	"errors"

	"inventory/internal/core/domain/model/order"
	"inventory/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetOrderBacklogQueryIsNotConstructed = errors.New(
	"GetOrderBacklogQuery must be created via NewGetOrderBacklogQuery constructor",
)

// GetOrderBacklogQuery counts purchase orders and export orders still in
// Pending status. Used by the backlog report job.
type GetOrderBacklogQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderBacklogQuery creates a parameterless backlog-count query.
func NewGetOrderBacklogQuery() GetOrderBacklogQuery {
	return GetOrderBacklogQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderBacklogQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderBacklogQueryIsNotConstructed)
}

// OrderBacklogResponse carries pending-order counts per order kind.
type OrderBacklogResponse struct {
	PendingOrders       int64 `json:"pending_orders"`
	PendingExportOrders int64 `json:"pending_export_orders"`
}

// GetOrderBacklogQueryHandler counts pending rows in both order tables.
type GetOrderBacklogQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderBacklogQueryHandler creates a handler for backlog-count queries.
func NewGetOrderBacklogQueryHandler(db *gorm.DB) GetOrderBacklogQueryHandler {
	return GetOrderBacklogQueryHandler{db: db}
}

// Handle executes the query.
func (h GetOrderBacklogQueryHandler) Handle(
	ctx context.Context,
	query GetOrderBacklogQuery,
) (OrderBacklogResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderBacklogResponse{}, err
	}

	var resp OrderBacklogResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM orders WHERE status = ?),
			(SELECT COUNT(*) FROM export_orders WHERE status = ?)
	`, order.StatusPending, order.StatusPending).Row()
	if err := row.Scan(&resp.PendingOrders, &resp.PendingExportOrders); err != nil {
		return OrderBacklogResponse{}, err
	}

	return resp, nil
}
