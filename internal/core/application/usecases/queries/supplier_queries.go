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
	ErrGetAllSuppliersQueryIsNotConstructed = errors.New(
		"GetAllSuppliersQuery must be created via NewGetAllSuppliersQuery constructor",
	)
	ErrGetSupplierQueryIsNotConstructed = errors.New(
		"GetSupplierQuery must be created via NewGetSupplierQuery constructor",
	)
)

// GetAllSuppliersQuery retrieves every supplier row.
type GetAllSuppliersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllSuppliersQuery creates a parameterless query for the supplier list.
func NewGetAllSuppliersQuery() GetAllSuppliersQuery {
	return GetAllSuppliersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllSuppliersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllSuppliersQueryIsNotConstructed)
}

// GetSupplierQuery retrieves a single supplier row by identity.
type GetSupplierQuery struct {
	id kernel.ID

	guard guard.ConstructorGuard
}

// NewGetSupplierQuery creates a query for one supplier.
func NewGetSupplierQuery(id kernel.ID) (GetSupplierQuery, error) {
	if err := id.Validate(); err != nil {
		return GetSupplierQuery{}, err
	}
	return GetSupplierQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSupplierQuery) Validate() error {
	return q.guard.Validate(ErrGetSupplierQueryIsNotConstructed)
}

// ID returns the requested supplier identity.
func (q GetSupplierQuery) ID() kernel.ID { return q.id }

// SupplierResponse is the raw supplier read model.
type SupplierResponse struct {
	SupplierID   int64     `json:"supplier_id"`
	SupplierName string    `json:"supplier_name"`
	ContactName  string    `json:"contact_name"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	Address      string    `json:"address"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// GetAllSuppliersQueryHandler reads the supplier list.
type GetAllSuppliersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllSuppliersQueryHandler creates a handler for supplier list queries.
func NewGetAllSuppliersQueryHandler(db *gorm.DB) GetAllSuppliersQueryHandler {
	return GetAllSuppliersQueryHandler{db: db}
}

// Handle executes the query.
func (h GetAllSuppliersQueryHandler) Handle(
	ctx context.Context,
	query GetAllSuppliersQuery,
) ([]SupplierResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	suppliers := make([]SupplierResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			supplier_id,
			supplier_name,
			contact_name,
			phone,
			email,
			address,
			is_active,
			created_at,
			updated_at
		FROM suppliers
		ORDER BY supplier_id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		resp, scanErr := scanSupplierRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		suppliers = append(suppliers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return suppliers, nil
}

// GetSupplierQueryHandler reads one supplier row.
type GetSupplierQueryHandler struct {
	db *gorm.DB
}

// NewGetSupplierQueryHandler creates a handler for single-supplier queries.
func NewGetSupplierQueryHandler(db *gorm.DB) GetSupplierQueryHandler {
	return GetSupplierQueryHandler{db: db}
}

// Handle executes the query. Returns an object-not-found error when no row
// matches.
func (h GetSupplierQueryHandler) Handle(ctx context.Context, query GetSupplierQuery) (*SupplierResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			supplier_id,
			supplier_name,
			contact_name,
			phone,
			email,
			address,
			is_active,
			created_at,
			updated_at
		FROM suppliers
		WHERE supplier_id = ?
	`, query.ID().Int64()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}
		return nil, errs.NewObjectNotFoundError("supplier", query.ID())
	}

	resp, err := scanSupplierRow(rows)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

func scanSupplierRow(rows *sql.Rows) (SupplierResponse, error) {
	var resp SupplierResponse

	err := rows.Scan(
		&resp.SupplierID,
		&resp.SupplierName,
		&resp.ContactName,
		&resp.Phone,
		&resp.Email,
		&resp.Address,
		&resp.IsActive,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		return SupplierResponse{}, err
	}

	return resp, nil
}
