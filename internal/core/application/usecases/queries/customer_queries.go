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
	ErrGetAllCustomersQueryIsNotConstructed = errors.New(
		"GetAllCustomersQuery must be created via NewGetAllCustomersQuery constructor",
	)
	ErrGetCustomerQueryIsNotConstructed = errors.New(
		"GetCustomerQuery must be created via NewGetCustomerQuery constructor",
	)
)

// GetAllCustomersQuery retrieves every customer row.
type GetAllCustomersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllCustomersQuery creates a parameterless query for the customer list.
func NewGetAllCustomersQuery() GetAllCustomersQuery {
	return GetAllCustomersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllCustomersQueryIsNotConstructed)
}

// GetCustomerQuery retrieves a single customer row by identity.
type GetCustomerQuery struct {
	id kernel.ID

	guard guard.ConstructorGuard
}

// NewGetCustomerQuery creates a query for one customer.
func NewGetCustomerQuery(id kernel.ID) (GetCustomerQuery, error) {
	if err := id.Validate(); err != nil {
		return GetCustomerQuery{}, err
	}
	return GetCustomerQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerQueryIsNotConstructed)
}

// ID returns the requested customer identity.
func (q GetCustomerQuery) ID() kernel.ID { return q.id }

// CustomerResponse is the raw customer read model.
type CustomerResponse struct {
	CustomerID   int64     `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	ContactName  string    `json:"contact_name"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	Address      string    `json:"address"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// GetAllCustomersQueryHandler reads the customer list.
type GetAllCustomersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllCustomersQueryHandler creates a handler for customer list queries.
func NewGetAllCustomersQueryHandler(db *gorm.DB) GetAllCustomersQueryHandler {
	return GetAllCustomersQueryHandler{db: db}
}

// Handle executes the query.
func (h GetAllCustomersQueryHandler) Handle(
	ctx context.Context,
	query GetAllCustomersQuery,
) ([]CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	customers := make([]CustomerResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			customer_id,
			customer_name,
			contact_name,
			phone,
			email,
			address,
			is_active,
			created_at,
			updated_at
		FROM customers
		ORDER BY customer_id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		resp, scanErr := scanCustomerRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		customers = append(customers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}

// GetCustomerQueryHandler reads one customer row.
type GetCustomerQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerQueryHandler creates a handler for single-customer queries.
func NewGetCustomerQueryHandler(db *gorm.DB) GetCustomerQueryHandler {
	return GetCustomerQueryHandler{db: db}
}

// Handle executes the query. Returns an object-not-found error when no row
// matches.
func (h GetCustomerQueryHandler) Handle(ctx context.Context, query GetCustomerQuery) (*CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			customer_id,
			customer_name,
			contact_name,
			phone,
			email,
			address,
			is_active,
			created_at,
			updated_at
		FROM customers
		WHERE customer_id = ?
	`, query.ID().Int64()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}
		return nil, errs.NewObjectNotFoundError("customer", query.ID())
	}

	resp, err := scanCustomerRow(rows)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

func scanCustomerRow(rows *sql.Rows) (CustomerResponse, error) {
	var resp CustomerResponse

	err := rows.Scan(
		&resp.CustomerID,
		&resp.CustomerName,
		&resp.ContactName,
		&resp.Phone,
		&resp.Email,
		&resp.Address,
		&resp.IsActive,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		return CustomerResponse{}, err
	}

	return resp, nil
}
