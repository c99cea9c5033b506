package http

import (
	"net/http"

	"inventory/internal/core/application/usecases/commands"
	"inventory/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// GetCategories handles GET /api/categories.
//
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {array} queries.CategoryResponse
// @Router /categories [get]
func (s *Server) GetCategories(ctx echo.Context) error {
	query := queries.NewGetAllCategoriesQuery()

	categories, err := s.categories.GetAll.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, categories)
}

// GetCategory handles GET /api/categories/:id.
//
// @Summary Get a category
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} queries.CategoryResponse
// @Router /categories/{id} [get]
func (s *Server) GetCategory(ctx echo.Context) error {
	id, ok := parseIDParam(ctx)
	if !ok {
		return badRequest(ctx, "Invalid ID format")
	}

	query, err := queries.NewGetCategoryQuery(id)
	if err != nil {
		return badRequest(ctx, "Invalid ID format")
	}

	response, err := s.categories.Get.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondUseCaseError(ctx, "Category", err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCategory handles POST /api/categories.
//
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Success 201 {object} categoryRow
// @Router /categories [post]
func (s *Server) CreateCategory(ctx echo.Context) error {
	var request categoryRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateCategoryCommand(request.CategoryName, request.Description)
	if err != nil {
		return respondCommandBuildError(ctx, err)
	}

	created, err := s.categories.Create.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondUseCaseError(ctx, "Category", err)
	}

	return ctx.JSON(http.StatusCreated, newCategoryRow(created))
}

// UpdateCategory handles PUT /api/categories/:id.
//
// @Summary Update a category
// @Tags categories
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} map[string]interface{}
// @Router /categories/{id} [put]
func (s *Server) UpdateCategory(ctx echo.Context) error {
	id, ok := parseIDParam(ctx)
	if !ok {
		return badRequest(ctx, "Invalid ID format")
	}

	var request categoryRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateCategoryCommand(id, request.CategoryName, request.Description)
	if err != nil {
		return respondCommandBuildError(ctx, err)
	}

	updated, err := s.categories.Update.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondUseCaseError(ctx, "Category", err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"message":  "Category updated successfully",
		"category": newCategoryRow(updated),
	})
}

// ChangeCategoryStatus handles PATCH /api/categories/:id/status.
//
// @Summary Activate or deactivate a category
// @Tags categories
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} map[string]interface{}
// @Router /categories/{id}/status [patch]
func (s *Server) ChangeCategoryStatus(ctx echo.Context) error {
	id, ok := parseIDParam(ctx)
	if !ok {
		return badRequest(ctx, "Invalid ID format")
	}

	var request activationRequest
	if err := ctx.Bind(&request); err != nil || request.IsActive == nil {
		return badRequest(ctx, "Invalid is_active value. Must be true or false")
	}

	cmd, err := commands.NewChangeCategoryActivationCommand(id, bool(*request.IsActive))
	if err != nil {
		return respondCommandBuildError(ctx, err)
	}

	updated, err := s.categories.ChangeActivation.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondUseCaseError(ctx, "Category", err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"message":  "Category status updated successfully to " + activationWord(updated.IsActive()),
		"category": newCategoryRow(updated),
	})
}
