package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/errs"
	"inventory/internal/pkg/guard"

	"gorm.io/gorm"
)

var (
	ErrGetAllCategoriesQueryIsNotConstructed = errors.New(
		"GetAllCategoriesQuery must be created via NewGetAllCategoriesQuery constructor",
	)
	ErrGetCategoryQueryIsNotConstructed = errors.New(
		"GetCategoryQuery must be created via NewGetCategoryQuery constructor",
	)
)

// GetAllCategoriesQuery retrieves every category row.
type GetAllCategoriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllCategoriesQuery creates a parameterless query for the category list.
func NewGetAllCategoriesQuery() GetAllCategoriesQuery {
	return GetAllCategoriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllCategoriesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllCategoriesQueryIsNotConstructed)
}

// GetCategoryQuery retrieves a single category row by identity.
type GetCategoryQuery struct {
	id kernel.ID

	guard guard.ConstructorGuard
}

// NewGetCategoryQuery creates a query for one category.
func NewGetCategoryQuery(id kernel.ID) (GetCategoryQuery, error) {
	if err := id.Validate(); err != nil {
		return GetCategoryQuery{}, err
	}
	return GetCategoryQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCategoryQuery) Validate() error {
	return q.guard.Validate(ErrGetCategoryQueryIsNotConstructed)
}

// ID returns the requested category identity.
func (q GetCategoryQuery) ID() kernel.ID { return q.id }

// CategoryResponse is the raw category read model.
type CategoryResponse struct {
	CategoryID   int64     `json:"category_id"`
	CategoryName string    `json:"category_name"`
	Description  string    `json:"description"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// GetAllCategoriesQueryHandler reads the category list.
type GetAllCategoriesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllCategoriesQueryHandler creates a handler for category list queries.
func NewGetAllCategoriesQueryHandler(db *gorm.DB) GetAllCategoriesQueryHandler {
	return GetAllCategoriesQueryHandler{db: db}
}

// Handle executes the query.
func (h GetAllCategoriesQueryHandler) Handle(
	ctx context.Context,
	query GetAllCategoriesQuery,
) ([]CategoryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	categories := make([]CategoryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			category_id,
			category_name,
			description,
			is_active,
			created_at,
			updated_at
		FROM categories
		ORDER BY category_id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		resp, scanErr := scanCategoryRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		categories = append(categories, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}

// GetCategoryQueryHandler reads one category row.
type GetCategoryQueryHandler struct {
	db *gorm.DB
}

// NewGetCategoryQueryHandler creates a handler for single-category queries.
func NewGetCategoryQueryHandler(db *gorm.DB) GetCategoryQueryHandler {
	return GetCategoryQueryHandler{db: db}
}

// Handle executes the query. Returns an object-not-found error when no row
// matches.
func (h GetCategoryQueryHandler) Handle(ctx context.Context, query GetCategoryQuery) (*CategoryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			category_id,
			category_name,
			description,
			is_active,
			created_at,
			updated_at
		FROM categories
		WHERE category_id = ?
	`, query.ID().Int64()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}
		return nil, errs.NewObjectNotFoundError("category", query.ID())
	}

	resp, err := scanCategoryRow(rows)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

func scanCategoryRow(rows *sql.Rows) (CategoryResponse, error) {
	var resp CategoryResponse

	err := rows.Scan(
		&resp.CategoryID,
		&resp.CategoryName,
		&resp.Description,
		&resp.IsActive,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		return CategoryResponse{}, err
	}

	return resp, nil
}
