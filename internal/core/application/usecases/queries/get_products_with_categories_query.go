package queries

import (
	"context"
	"errors"
	"time"

	"inventory/internal/pkg/guard"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrGetProductsWithCategoriesQueryIsNotConstructed = errors.New(
	"GetProductsWithCategoriesQuery must be created via NewGetProductsWithCategoriesQuery constructor",
)

// GetProductsWithCategoriesQuery retrieves every product joined to its
// category name. The category identity is replaced by the name in this view.
type GetProductsWithCategoriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetProductsWithCategoriesQuery creates a parameterless query for the
// product-with-category view.
func NewGetProductsWithCategoriesQuery() GetProductsWithCategoriesQuery {
	return GetProductsWithCategoriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetProductsWithCategoriesQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsWithCategoriesQueryIsNotConstructed)
}

// ProductWithCategoryResponse is a product row carrying the category name
// instead of the category identity.
type ProductWithCategoryResponse struct {
	ProductID    int64     `json:"product_id"`
	ProductName  string    `json:"product_name"`
	SKU          string    `json:"sku"`
	CategoryName string    `json:"category_name"`
	Description  string    `json:"description"`
	Quantity     int       `json:"quantity"`
	UnitPrice    string    `json:"unit_price"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// GetProductsWithCategoriesQueryHandler reads the joined product list.
type GetProductsWithCategoriesQueryHandler struct {
	db *gorm.DB
}

// NewGetProductsWithCategoriesQueryHandler creates a handler for the
// product-with-category view.
func NewGetProductsWithCategoriesQueryHandler(db *gorm.DB) GetProductsWithCategoriesQueryHandler {
	return GetProductsWithCategoriesQueryHandler{db: db}
}

// Handle executes the query.
func (h GetProductsWithCategoriesQueryHandler) Handle(
	ctx context.Context,
	query GetProductsWithCategoriesQuery,
) ([]ProductWithCategoryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products := make([]ProductWithCategoryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.product_id,
			p.product_name,
			p.sku,
			c.category_name,
			p.description,
			p.quantity,
			CAST(p.unit_price AS DECIMAL(10,2)) AS unit_price,
			p.is_active,
			p.created_at,
			p.updated_at
		FROM products p
		JOIN categories c ON p.category_id = c.category_id
		ORDER BY p.product_id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ProductWithCategoryResponse
		var unitPrice decimal.Decimal

		err = rows.Scan(
			&resp.ProductID,
			&resp.ProductName,
			&resp.SKU,
			&resp.CategoryName,
			&resp.Description,
			&resp.Quantity,
			&unitPrice,
			&resp.IsActive,
			&resp.CreatedAt,
			&resp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		resp.UnitPrice = unitPrice.StringFixed(2)
		products = append(products, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
