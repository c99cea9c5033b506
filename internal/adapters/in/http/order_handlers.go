package http

import (
	"net/http"

	"inventory/internal/core/application/usecases/commands"
	"inventory/internal/core/application/usecases/queries"
	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// GetOrders handles GET /api/orders - lists purchase orders with supplier
// and product names.
//
// @Summary List purchase orders
// @Tags orders
// @Produce json
// @Success 200 {array} queries.OrderResponse
// @Router /orders [get]
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	orders, err := s.orders.GetAll.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetOrder handles GET /api/orders/:id.
//
// @Summary Get a purchase order
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} queries.OrderResponse
// @Router /orders/{id} [get]
func (s *Server) GetOrder(ctx echo.Context) error {
	id, ok := parseIDParam(ctx)
	if !ok {
		return badRequest(ctx, "Invalid ID format")
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return badRequest(ctx, "Invalid ID format")
	}

	response, err := s.orders.Get.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondUseCaseError(ctx, "Order", err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/orders. Status defaults to Pending when the
// body omits it.
//
// @Summary Create a purchase order
// @Tags orders
// @Accept json
// @Produce json
// @Success 201 {object} orderRow
// @Router /orders [post]
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request orderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, ok := s.buildCreateOrderCommand(ctx, request)
	if !ok {
		return nil
	}

	created, err := s.orders.Create.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondUseCaseError(ctx, "Order", err)
	}

	return ctx.JSON(http.StatusCreated, newOrderRow(created))
}

// UpdateOrder handles PUT /api/orders/:id.
//
// @Summary Update a purchase order
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} orderRow
// @Router /orders/{id} [put]
func (s *Server) UpdateOrder(ctx echo.Context) error {
	id, ok := parseIDParam(ctx)
	if !ok {
		return badRequest(ctx, "Invalid ID format")
	}

	var request orderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	fields, ok := s.parseOrderFields(ctx, request)
	if !ok {
		return nil
	}

	cmd, err := commands.NewUpdateOrderCommand(
		id, fields.supplierID, fields.productID, fields.quantity,
		fields.subtotal, fields.totalAmount, fields.status,
	)
	if err != nil {
		return respondCommandBuildError(ctx, err)
	}

	updated, err := s.orders.Update.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondUseCaseError(ctx, "Order", err)
	}

	return ctx.JSON(http.StatusOK, newOrderRow(updated))
}

// ChangeOrderStatus handles PATCH /api/orders/:id/status.
//
// @Summary Change purchase order status
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} map[string]interface{}
// @Router /orders/{id}/status [patch]
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	id, ok := parseIDParam(ctx)
	if !ok {
		return badRequest(ctx, "Invalid ID format")
	}

	var request orderStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.ParseStatus(request.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status value")
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, status)
	if err != nil {
		return respondCommandBuildError(ctx, err)
	}

	updated, err := s.orders.ChangeStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondUseCaseError(ctx, "Order", err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"message": "Order status updated successfully to " + updated.Status().String(),
		"order":   newOrderRow(updated),
	})
}

type orderFields struct {
	supplierID  kernel.ID
	productID   kernel.ID
	quantity    int
	subtotal    kernel.Money
	totalAmount kernel.Money
	status      order.Status
}

// parseOrderFields converts the raw request into domain values, writing the
// error response itself when a field is absent or does not parse.
func (s *Server) parseOrderFields(ctx echo.Context, request orderRequest) (orderFields, bool) {
	if request.Quantity == nil || request.Subtotal == nil || request.TotalAmount == nil {
		_ = badRequest(ctx, "Missing required fields")
		return orderFields{}, false
	}

	supplierID, err := kernel.NewID(request.SupplierID)
	if err != nil {
		_ = badRequest(ctx, "Missing required fields")
		return orderFields{}, false
	}

	productID, err := kernel.NewID(request.ProductID)
	if err != nil {
		_ = badRequest(ctx, "Missing required fields")
		return orderFields{}, false
	}

	subtotal, err := kernel.MoneyFromFloat(*request.Subtotal)
	if err != nil {
		_ = badRequest(ctx, err.Error())
		return orderFields{}, false
	}

	totalAmount, err := kernel.MoneyFromFloat(*request.TotalAmount)
	if err != nil {
		_ = badRequest(ctx, err.Error())
		return orderFields{}, false
	}

	status := order.StatusPending
	if request.Status != "" {
		status, err = order.ParseStatus(request.Status)
		if err != nil {
			_ = badRequest(ctx, "Invalid status value")
			return orderFields{}, false
		}
	}

	return orderFields{
		supplierID:  supplierID,
		productID:   productID,
		quantity:    *request.Quantity,
		subtotal:    subtotal,
		totalAmount: totalAmount,
		status:      status,
	}, true
}

func (s *Server) buildCreateOrderCommand(ctx echo.Context, request orderRequest) (commands.CreateOrderCommand, bool) {
	fields, ok := s.parseOrderFields(ctx, request)
	if !ok {
		return commands.CreateOrderCommand{}, false
	}

	cmd, err := commands.NewCreateOrderCommand(
		fields.supplierID, fields.productID, fields.quantity,
		fields.subtotal, fields.totalAmount, fields.status,
	)
	if err != nil {
		_ = respondCommandBuildError(ctx, err)
		return commands.CreateOrderCommand{}, false
	}

	return cmd, true
}
