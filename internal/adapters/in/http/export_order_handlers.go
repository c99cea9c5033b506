package http

import (
	"net/http"
	"time"

	"inventory/internal/core/application/usecases/commands"
	"inventory/internal/core/application/usecases/queries"
	"inventory/internal/core/domain/model/exportorder"
	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// GetExportOrders handles GET /api/export-orders - lists export orders with
// customer and product names.
//
// @Summary List export orders
// @Tags export-orders
// @Produce json
// @Success 200 {array} queries.ExportOrderResponse
// @Router /export-orders [get]
func (s *Server) GetExportOrders(ctx echo.Context) error {
	query := queries.NewGetAllExportOrdersQuery()

	orders, err := s.exportOrders.GetAll.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetExportOrder handles GET /api/export-orders/:id.
//
// @Summary Get an export order
// @Tags export-orders
// @Produce json
// @Param id path int true "Export order ID"
// @Success 200 {object} queries.ExportOrderResponse
// @Router /export-orders/{id} [get]
func (s *Server) GetExportOrder(ctx echo.Context) error {
	id, ok := parseIDParam(ctx)
	if !ok {
		return badRequest(ctx, "Invalid ID format")
	}

	query, err := queries.NewGetExportOrderQuery(id)
	if err != nil {
		return badRequest(ctx, "Invalid ID format")
	}

	response, err := s.exportOrders.Get.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondUseCaseError(ctx, "Export Order", err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateExportOrder handles POST /api/export-orders. Both status dimensions
// default to Pending when the body omits them.
//
// @Summary Create an export order
// @Tags export-orders
// @Accept json
// @Produce json
// @Success 201 {object} exportOrderRow
// @Router /export-orders [post]
func (s *Server) CreateExportOrder(ctx echo.Context) error {
	var request exportOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	fields, ok := s.parseExportOrderFields(ctx, request)
	if !ok {
		return nil
	}

	cmd, err := commands.NewCreateExportOrderCommand(
		fields.customerID, fields.productID, fields.quantity,
		fields.subtotal, fields.totalAmount,
		fields.shippingDate, request.ShippingAddress,
		fields.shippingStatus, fields.status,
	)
	if err != nil {
		return respondCommandBuildError(ctx, err)
	}

	created, err := s.exportOrders.Create.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondUseCaseError(ctx, "Export Order", err)
	}

	return ctx.JSON(http.StatusCreated, newExportOrderRow(created))
}

// UpdateExportOrder handles PUT /api/export-orders/:id.
//
// @Summary Update an export order
// @Tags export-orders
// @Accept json
// @Produce json
// @Param id path int true "Export order ID"
// @Success 200 {object} exportOrderRow
// @Router /export-orders/{id} [put]
func (s *Server) UpdateExportOrder(ctx echo.Context) error {
	id, ok := parseIDParam(ctx)
	if !ok {
		return badRequest(ctx, "Invalid ID format")
	}

	var request exportOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	fields, ok := s.parseExportOrderFields(ctx, request)
	if !ok {
		return nil
	}

	cmd, err := commands.NewUpdateExportOrderCommand(
		id, fields.customerID, fields.productID, fields.quantity,
		fields.subtotal, fields.totalAmount,
		fields.shippingDate, request.ShippingAddress,
		fields.shippingStatus, fields.status,
	)
	if err != nil {
		return respondCommandBuildError(ctx, err)
	}

	updated, err := s.exportOrders.Update.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondUseCaseError(ctx, "Export Order", err)
	}

	return ctx.JSON(http.StatusOK, newExportOrderRow(updated))
}

// ChangeExportOrderStatus handles PATCH /api/export-orders/:id/status.
// Either dimension may be patched alone; the other keeps its stored value.
//
// @Summary Change export order status
// @Tags export-orders
// @Accept json
// @Produce json
// @Param id path int true "Export order ID"
// @Success 200 {object} map[string]interface{}
// @Router /export-orders/{id}/status [patch]
func (s *Server) ChangeExportOrderStatus(ctx echo.Context) error {
	id, ok := parseIDParam(ctx)
	if !ok {
		return badRequest(ctx, "Invalid ID format")
	}

	var request exportOrderStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var status *order.Status
	if request.Status != nil {
		parsed, err := order.ParseStatus(*request.Status)
		if err != nil {
			return badRequest(ctx, "Invalid status value")
		}
		status = &parsed
	}

	var shippingStatus *exportorder.ShippingStatus
	if request.ShippingStatus != nil {
		parsed, err := exportorder.ParseShippingStatus(*request.ShippingStatus)
		if err != nil {
			return badRequest(ctx, "Invalid shipping_status value")
		}
		shippingStatus = &parsed
	}

	cmd, err := commands.NewChangeExportOrderStatusCommand(id, status, shippingStatus)
	if err != nil {
		return respondUseCaseError(ctx, "Export Order", err)
	}

	updated, err := s.exportOrders.ChangeStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondUseCaseError(ctx, "Export Order", err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"message":      "Export Order status updated successfully",
		"export_order": newExportOrderRow(updated),
	})
}

type exportOrderFields struct {
	customerID     kernel.ID
	productID      kernel.ID
	quantity       int
	subtotal       kernel.Money
	totalAmount    kernel.Money
	shippingDate   *time.Time
	shippingStatus exportorder.ShippingStatus
	status         order.Status
}

func (s *Server) parseExportOrderFields(ctx echo.Context, request exportOrderRequest) (exportOrderFields, bool) {
	if request.Quantity == nil || request.Subtotal == nil || request.TotalAmount == nil {
		_ = badRequest(ctx, "Missing required fields")
		return exportOrderFields{}, false
	}

	customerID, err := kernel.NewID(request.CustomerID)
	if err != nil {
		_ = badRequest(ctx, "Missing required fields")
		return exportOrderFields{}, false
	}

	productID, err := kernel.NewID(request.ProductID)
	if err != nil {
		_ = badRequest(ctx, "Missing required fields")
		return exportOrderFields{}, false
	}

	subtotal, err := kernel.MoneyFromFloat(*request.Subtotal)
	if err != nil {
		_ = badRequest(ctx, err.Error())
		return exportOrderFields{}, false
	}

	totalAmount, err := kernel.MoneyFromFloat(*request.TotalAmount)
	if err != nil {
		_ = badRequest(ctx, err.Error())
		return exportOrderFields{}, false
	}

	shippingDate, err := parseShippingDate(request.ShippingDate)
	if err != nil {
		_ = badRequest(ctx, "Invalid shipping_date value")
		return exportOrderFields{}, false
	}

	shippingStatus := exportorder.ShippingPending
	if request.ShippingStatus != "" {
		shippingStatus, err = exportorder.ParseShippingStatus(request.ShippingStatus)
		if err != nil {
			_ = badRequest(ctx, "Invalid shipping_status value")
			return exportOrderFields{}, false
		}
	}

	status := order.StatusPending
	if request.Status != "" {
		status, err = order.ParseStatus(request.Status)
		if err != nil {
			_ = badRequest(ctx, "Invalid status value")
			return exportOrderFields{}, false
		}
	}

	return exportOrderFields{
		customerID:     customerID,
		productID:      productID,
		quantity:       *request.Quantity,
		subtotal:       subtotal,
		totalAmount:    totalAmount,
		shippingDate:   shippingDate,
		shippingStatus: shippingStatus,
		status:         status,
	}, true
}
