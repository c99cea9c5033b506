package http

import (
	"errors"
	"net/http"

	"inventory/internal/core/application/usecases/commands"
	"inventory/internal/core/application/usecases/queries"
	"inventory/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// GetSuppliers handles GET /api/supplier.
//
// @Summary List suppliers
// @Tags suppliers
// @Produce json
// @Success 200 {array} queries.SupplierResponse
// @Router /supplier [get]
func (s *Server) GetSuppliers(ctx echo.Context) error {
	query := queries.NewGetAllSuppliersQuery()

	suppliers, err := s.suppliers.GetAll.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, suppliers)
}

// GetSupplier handles GET /api/supplier/:id.
//
// @Summary Get a supplier
// @Tags suppliers
// @Produce json
// @Param id path int true "Supplier ID"
// @Success 200 {object} queries.SupplierResponse
// @Router /supplier/{id} [get]
func (s *Server) GetSupplier(ctx echo.Context) error {
	id, ok := parseIDParam(ctx)
	if !ok {
		return badRequest(ctx, "Invalid ID format")
	}

	query, err := queries.NewGetSupplierQuery(id)
	if err != nil {
		return badRequest(ctx, "Invalid ID format")
	}

	response, err := s.suppliers.Get.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondUseCaseError(ctx, "Supplier", err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateSupplier handles POST /api/supplier.
//
// @Summary Create a supplier
// @Tags suppliers
// @Accept json
// @Produce json
// @Success 201 {object} supplierRow
// @Router /supplier [post]
func (s *Server) CreateSupplier(ctx echo.Context) error {
	var request supplierRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateSupplierCommand(
		request.SupplierName, request.ContactName,
		request.Phone, request.Email, request.Address,
	)
	if err != nil {
		return respondSupplierBuildError(ctx, err)
	}

	created, err := s.suppliers.Create.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondUseCaseError(ctx, "Supplier", err)
	}

	return ctx.JSON(http.StatusCreated, newSupplierRow(created))
}

// UpdateSupplier handles PUT /api/supplier/:id.
//
// @Summary Update a supplier
// @Tags suppliers
// @Accept json
// @Produce json
// @Param id path int true "Supplier ID"
// @Success 200 {object} map[string]interface{}
// @Router /supplier/{id} [put]
func (s *Server) UpdateSupplier(ctx echo.Context) error {
	id, ok := parseIDParam(ctx)
	if !ok {
		return badRequest(ctx, "Invalid ID format")
	}

	var request supplierRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateSupplierCommand(
		id, request.SupplierName, request.ContactName,
		request.Phone, request.Email, request.Address,
	)
	if err != nil {
		return respondSupplierBuildError(ctx, err)
	}

	updated, err := s.suppliers.Update.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondUseCaseError(ctx, "Supplier", err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"message":  "Supplier updated successfully",
		"supplier": newSupplierRow(updated),
	})
}

// ChangeSupplierStatus handles PATCH /api/supplier/:id/status.
//
// @Summary Activate or deactivate a supplier
// @Tags suppliers
// @Accept json
// @Produce json
// @Param id path int true "Supplier ID"
// @Success 200 {object} map[string]interface{}
// @Router /supplier/{id}/status [patch]
func (s *Server) ChangeSupplierStatus(ctx echo.Context) error {
	id, ok := parseIDParam(ctx)
	if !ok {
		return badRequest(ctx, "Invalid ID format")
	}

	var request activationRequest
	if err := ctx.Bind(&request); err != nil || request.IsActive == nil {
		return badRequest(ctx, "Invalid is_active value. Must be true or false")
	}

	cmd, err := commands.NewChangeSupplierActivationCommand(id, bool(*request.IsActive))
	if err != nil {
		return respondCommandBuildError(ctx, err)
	}

	updated, err := s.suppliers.ChangeActivation.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondUseCaseError(ctx, "Supplier", err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"message":  "Supplier status updated successfully to " + activationWord(updated.IsActive()),
		"supplier": newSupplierRow(updated),
	})
}

// respondSupplierBuildError keeps the supplier routes' own validation message.
func respondSupplierBuildError(ctx echo.Context, err error) error {
	if errors.Is(err, errs.ErrValueIsRequired) {
		return badRequest(ctx, "Missing or invalid required fields")
	}
	return badRequest(ctx, err.Error())
}
