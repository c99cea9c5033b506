package http

import (
	"net/http"

	"inventory/internal/core/application/usecases/commands"
	"inventory/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// GetCustomers handles GET /api/customers.
//
// @Summary List customers
// @Tags customers
// @Produce json
// @Success 200 {array} queries.CustomerResponse
// @Router /customers [get]
func (s *Server) GetCustomers(ctx echo.Context) error {
	query := queries.NewGetAllCustomersQuery()

	customers, err := s.customers.GetAll.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, customers)
}

// GetCustomer handles GET /api/customers/:id.
//
// @Summary Get a customer
// @Tags customers
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} queries.CustomerResponse
// @Router /customers/{id} [get]
func (s *Server) GetCustomer(ctx echo.Context) error {
	id, ok := parseIDParam(ctx)
	if !ok {
		return badRequest(ctx, "Invalid ID format")
	}

	query, err := queries.NewGetCustomerQuery(id)
	if err != nil {
		return badRequest(ctx, "Invalid ID format")
	}

	response, err := s.customers.Get.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondUseCaseError(ctx, "Customer", err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCustomer handles POST /api/customers.
//
// @Summary Create a customer
// @Tags customers
// @Accept json
// @Produce json
// @Success 201 {object} customerRow
// @Router /customers [post]
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var request customerRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateCustomerCommand(
		request.CustomerName, request.ContactName,
		request.Phone, request.Email, request.Address,
	)
	if err != nil {
		return respondCommandBuildError(ctx, err)
	}

	created, err := s.customers.Create.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondUseCaseError(ctx, "Customer", err)
	}

	return ctx.JSON(http.StatusCreated, newCustomerRow(created))
}

// UpdateCustomer handles PUT /api/customers/:id.
//
// @Summary Update a customer
// @Tags customers
// @Accept json
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} map[string]interface{}
// @Router /customers/{id} [put]
func (s *Server) UpdateCustomer(ctx echo.Context) error {
	id, ok := parseIDParam(ctx)
	if !ok {
		return badRequest(ctx, "Invalid ID format")
	}

	var request customerRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateCustomerCommand(
		id, request.CustomerName, request.ContactName,
		request.Phone, request.Email, request.Address,
	)
	if err != nil {
		return respondCommandBuildError(ctx, err)
	}

	updated, err := s.customers.Update.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondUseCaseError(ctx, "Customer", err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"message":  "Customer updated successfully",
		"customer": newCustomerRow(updated),
	})
}

// ChangeCustomerStatus handles PATCH /api/customers/:id/status.
//
// @Summary Activate or deactivate a customer
// @Tags customers
// @Accept json
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} map[string]interface{}
// @Router /customers/{id}/status [patch]
func (s *Server) ChangeCustomerStatus(ctx echo.Context) error {
	id, ok := parseIDParam(ctx)
	if !ok {
		return badRequest(ctx, "Invalid ID format")
	}

	var request activationRequest
	if err := ctx.Bind(&request); err != nil || request.IsActive == nil {
		return badRequest(ctx, "Invalid is_active value. Must be true or false")
	}

	cmd, err := commands.NewChangeCustomerActivationCommand(id, bool(*request.IsActive))
	if err != nil {
		return respondCommandBuildError(ctx, err)
	}

	updated, err := s.customers.ChangeActivation.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondUseCaseError(ctx, "Customer", err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"message":  "Customer status updated successfully to " + activationWord(updated.IsActive()),
		"customer": newCustomerRow(updated),
	})
}
