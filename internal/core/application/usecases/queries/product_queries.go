package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/errs"
	"inventory/internal/pkg/guard"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrGetAllProductsQueryIsNotConstructed = errors.New(
		"GetAllProductsQuery must be created via NewGetAllProductsQuery constructor",
	)
	ErrGetProductQueryIsNotConstructed = errors.New(
		"GetProductQuery must be created via NewGetProductQuery constructor",
	)
)

// GetAllProductsQuery retrieves every product row, active or not.
type GetAllProductsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllProductsQuery creates a parameterless query for the product list.
func NewGetAllProductsQuery() GetAllProductsQuery {
	return GetAllProductsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllProductsQueryIsNotConstructed)
}

// GetProductQuery retrieves a single product row by identity.
type GetProductQuery struct {
	id kernel.ID

	guard guard.ConstructorGuard
}

// NewGetProductQuery creates a query for one product.
func NewGetProductQuery(id kernel.ID) (GetProductQuery, error) {
	if err := id.Validate(); err != nil {
		return GetProductQuery{}, err
	}
	return GetProductQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductQuery) Validate() error {
	return q.guard.Validate(ErrGetProductQueryIsNotConstructed)
}

// ID returns the requested product identity.
func (q GetProductQuery) ID() kernel.ID { return q.id }

// ProductResponse is the raw product read model.
type ProductResponse struct {
	ProductID   int64     `json:"product_id"`
	ProductName string    `json:"product_name"`
	SKU         string    `json:"sku"`
	CategoryID  int64     `json:"category_id"`
	Description string    `json:"description"`
	Quantity    int       `json:"quantity"`
	UnitPrice   string    `json:"unit_price"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GetAllProductsQueryHandler reads the raw product list.
type GetAllProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllProductsQueryHandler creates a handler for product list queries.
func NewGetAllProductsQueryHandler(db *gorm.DB) GetAllProductsQueryHandler {
	return GetAllProductsQueryHandler{db: db}
}

// Handle executes the query.
func (h GetAllProductsQueryHandler) Handle(
	ctx context.Context,
	query GetAllProductsQuery,
) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products := make([]ProductResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			product_name,
			sku,
			category_id,
			description,
			quantity,
			unit_price,
			is_active,
			created_at,
			updated_at
		FROM products
		ORDER BY product_id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		resp, scanErr := scanProductRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		products = append(products, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

// GetProductQueryHandler reads one raw product row.
type GetProductQueryHandler struct {
	db *gorm.DB
}

// NewGetProductQueryHandler creates a handler for single-product queries.
func NewGetProductQueryHandler(db *gorm.DB) GetProductQueryHandler {
	return GetProductQueryHandler{db: db}
}

// Handle executes the query. Returns an object-not-found error when no row
// matches.
func (h GetProductQueryHandler) Handle(ctx context.Context, query GetProductQuery) (*ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			product_name,
			sku,
			category_id,
			description,
			quantity,
			unit_price,
			is_active,
			created_at,
			updated_at
		FROM products
		WHERE product_id = ?
	`, query.ID().Int64()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}
		return nil, errs.NewObjectNotFoundError("product", query.ID())
	}

	resp, err := scanProductRow(rows)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

func scanProductRow(rows *sql.Rows) (ProductResponse, error) {
	var resp ProductResponse
	var unitPrice decimal.Decimal

	err := rows.Scan(
		&resp.ProductID,
		&resp.ProductName,
		&resp.SKU,
		&resp.CategoryID,
		&resp.Description,
		&resp.Quantity,
		&unitPrice,
		&resp.IsActive,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		return ProductResponse{}, err
	}

	resp.UnitPrice = unitPrice.StringFixed(2)
	return resp, nil
}
