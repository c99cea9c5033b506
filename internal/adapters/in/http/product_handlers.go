package http

import (
	"errors"
	"net/http"

	"inventory/internal/core/application/usecases/commands"
	"inventory/internal/core/application/usecases/queries"
	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// GetProducts handles GET /api/products.
//
// @Summary List products
// @Tags products
// @Produce json
// @Success 200 {array} queries.ProductResponse
// @Router /products [get]
func (s *Server) GetProducts(ctx echo.Context) error {
	query := queries.NewGetAllProductsQuery()

	products, err := s.products.GetAll.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, products)
}

// GetProductsWithCategories handles GET /api/products/with-categories -
// lists products with the category name joined in place of its id.
//
// @Summary List products with category names
// @Tags products
// @Produce json
// @Success 200 {array} queries.ProductWithCategoryResponse
// @Router /products/with-categories [get]
func (s *Server) GetProductsWithCategories(ctx echo.Context) error {
	query := queries.NewGetProductsWithCategoriesQuery()

	products, err := s.products.GetWithCategories.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, products)
}

// GetProduct handles GET /api/products/:id.
//
// @Summary Get a product
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} queries.ProductResponse
// @Router /products/{id} [get]
func (s *Server) GetProduct(ctx echo.Context) error {
	id, ok := parseIDParam(ctx)
	if !ok {
		return badRequest(ctx, "Invalid ID format")
	}

	query, err := queries.NewGetProductQuery(id)
	if err != nil {
		return badRequest(ctx, "Invalid ID format")
	}

	response, err := s.products.Get.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondUseCaseError(ctx, "Product", err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateProduct handles POST /api/products.
//
// @Summary Create a product
// @Tags products
// @Accept json
// @Produce json
// @Success 201 {object} productRow
// @Router /products [post]
func (s *Server) CreateProduct(ctx echo.Context) error {
	var request productRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	categoryID, err := kernel.NewID(request.CategoryID)
	if err != nil {
		return badRequest(ctx, "Missing required fields")
	}

	unitPrice, err := kernel.MoneyFromFloat(request.UnitPrice)
	if err != nil {
		return badRequest(ctx, "Quantity and Unit Price must be positive numbers")
	}

	cmd, err := commands.NewCreateProductCommand(
		request.ProductName, request.SKU, categoryID,
		request.Description, request.Quantity, unitPrice,
	)
	if err != nil {
		return respondProductBuildError(ctx, err)
	}

	created, err := s.products.Create.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondUseCaseError(ctx, "Product", err)
	}

	return ctx.JSON(http.StatusCreated, newProductRow(created))
}

// UpdateProduct handles PUT /api/products/:id.
//
// @Summary Update a product
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} map[string]interface{}
// @Router /products/{id} [put]
func (s *Server) UpdateProduct(ctx echo.Context) error {
	id, ok := parseIDParam(ctx)
	if !ok {
		return badRequest(ctx, "Invalid ID format")
	}

	var request productRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	categoryID, err := kernel.NewID(request.CategoryID)
	if err != nil {
		return badRequest(ctx, "Missing required fields")
	}

	unitPrice, err := kernel.MoneyFromFloat(request.UnitPrice)
	if err != nil {
		return badRequest(ctx, "Quantity and Unit Price must be positive numbers")
	}

	cmd, err := commands.NewUpdateProductCommand(
		id, request.ProductName, request.SKU, categoryID,
		request.Description, request.Quantity, unitPrice,
	)
	if err != nil {
		return respondProductBuildError(ctx, err)
	}

	updated, err := s.products.Update.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondUseCaseError(ctx, "Product", err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"message": "Product updated successfully",
		"product": newProductRow(updated),
	})
}

// ChangeProductStatus handles PATCH /api/products/:id/status - toggles the
// active flag.
//
// @Summary Activate or deactivate a product
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} map[string]interface{}
// @Router /products/{id}/status [patch]
func (s *Server) ChangeProductStatus(ctx echo.Context) error {
	id, ok := parseIDParam(ctx)
	if !ok {
		return badRequest(ctx, "Invalid ID format")
	}

	var request activationRequest
	if err := ctx.Bind(&request); err != nil || request.IsActive == nil {
		return badRequest(ctx, "Invalid is_active value. Must be true or false")
	}

	cmd, err := commands.NewChangeProductActivationCommand(id, bool(*request.IsActive))
	if err != nil {
		return respondCommandBuildError(ctx, err)
	}

	updated, err := s.products.ChangeActivation.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondUseCaseError(ctx, "Product", err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"message": "Product status updated successfully to " + activationWord(updated.IsActive()),
		"product": newProductRow(updated),
	})
}

// respondProductBuildError keeps the product routes' distinction between
// missing text fields and non-positive numeric fields.
func respondProductBuildError(ctx echo.Context, err error) error {
	if errors.Is(err, errs.ErrValueIsRequired) {
		return badRequest(ctx, "Missing required fields")
	}
	if errors.Is(err, errs.ErrValueIsOutOfRange) {
		return badRequest(ctx, "Quantity and Unit Price must be positive numbers")
	}
	return badRequest(ctx, err.Error())
}
