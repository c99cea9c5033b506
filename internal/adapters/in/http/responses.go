package http

import (
	"errors"
	"net/http"
	"time"

	"inventory/internal/core/application/usecases/commands"
	"inventory/internal/core/domain/model/category"
	"inventory/internal/core/domain/model/customer"
	"inventory/internal/core/domain/model/exportorder"
	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/order"
	"inventory/internal/core/domain/model/product"
	"inventory/internal/core/domain/model/supplier"
	"inventory/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type errorResponse struct {
	Error string `json:"error"`
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{Error: message})
}

func notFound(ctx echo.Context, entity string) error {
	return ctx.JSON(http.StatusNotFound, errorResponse{Error: entity + " not found"})
}

// internalError surfaces the store failure message in the 500 body.
func internalError(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
}

// respondUseCaseError classifies an error coming out of a command or query
// handler. Dangling-reference errors carry their public message verbatim.
func respondUseCaseError(ctx echo.Context, entity string, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return notFound(ctx, entity)
	case errors.Is(err, commands.ErrSupplierDoesNotExist),
		errors.Is(err, commands.ErrProductDoesNotExist),
		errors.Is(err, commands.ErrCustomerDoesNotExist),
		errors.Is(err, commands.ErrCategoryDoesNotExist),
		errors.Is(err, commands.ErrNoStatusProvided):
		return badRequest(ctx, err.Error())
	default:
		return internalError(ctx, err)
	}
}

// respondCommandBuildError classifies a failed command construction.
func respondCommandBuildError(ctx echo.Context, err error) error {
	if errors.Is(err, errs.ErrValueIsRequired) {
		return badRequest(ctx, "Missing required fields")
	}
	return badRequest(ctx, err.Error())
}

// parseIDParam extracts and validates the :id path parameter.
func parseIDParam(ctx echo.Context) (kernel.ID, bool) {
	id, err := kernel.ParseID(ctx.Param("id"))
	if err != nil {
		return 0, false
	}
	return id, true
}

// Raw-row views of the aggregates, mirroring the table columns. Creates and
// updates return these; list and detail reads go through the query layer's
// denormalized responses instead.

type orderRow struct {
	OrderID     int64     `json:"order_id"`
	SupplierID  int64     `json:"supplier_id"`
	ProductID   int64     `json:"product_id"`
	Quantity    int       `json:"quantity"`
	Subtotal    string    `json:"subtotal"`
	TotalAmount string    `json:"total_amount"`
	OrderDate   time.Time `json:"order_date"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newOrderRow(aggregate *order.Order) orderRow {
	return orderRow{
		OrderID:     aggregate.ID().Int64(),
		SupplierID:  aggregate.SupplierID().Int64(),
		ProductID:   aggregate.ProductID().Int64(),
		Quantity:    aggregate.Quantity(),
		Subtotal:    aggregate.Subtotal().String(),
		TotalAmount: aggregate.TotalAmount().String(),
		OrderDate:   aggregate.OrderDate(),
		Status:      aggregate.Status().String(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}
}

type exportOrderRow struct {
	ExportOrderID   int64      `json:"export_order_id"`
	CustomerID      int64      `json:"customer_id"`
	ProductID       int64      `json:"product_id"`
	Quantity        int        `json:"quantity"`
	Subtotal        string     `json:"subtotal"`
	TotalAmount     string     `json:"total_amount"`
	OrderDate       time.Time  `json:"order_date"`
	ShippingDate    *time.Time `json:"shipping_date"`
	ShippingAddress string     `json:"shipping_address"`
	ShippingStatus  string     `json:"shipping_status"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func newExportOrderRow(aggregate *exportorder.ExportOrder) exportOrderRow {
	return exportOrderRow{
		ExportOrderID:   aggregate.ID().Int64(),
		CustomerID:      aggregate.CustomerID().Int64(),
		ProductID:       aggregate.ProductID().Int64(),
		Quantity:        aggregate.Quantity(),
		Subtotal:        aggregate.Subtotal().String(),
		TotalAmount:     aggregate.TotalAmount().String(),
		OrderDate:       aggregate.OrderDate(),
		ShippingDate:    aggregate.ShippingDate(),
		ShippingAddress: aggregate.ShippingAddress(),
		ShippingStatus:  aggregate.ShippingStatus().String(),
		Status:          aggregate.Status().String(),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
	}
}

type productRow struct {
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

func newProductRow(aggregate *product.Product) productRow {
	return productRow{
		ProductID:   aggregate.ID().Int64(),
		ProductName: aggregate.Name(),
		SKU:         aggregate.SKU(),
		CategoryID:  aggregate.CategoryID().Int64(),
		Description: aggregate.Description(),
		Quantity:    aggregate.Quantity(),
		UnitPrice:   aggregate.UnitPrice().String(),
		IsActive:    aggregate.IsActive(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}
}

type categoryRow struct {
	CategoryID   int64     `json:"category_id"`
	CategoryName string    `json:"category_name"`
	Description  string    `json:"description"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func newCategoryRow(aggregate *category.Category) categoryRow {
	return categoryRow{
		CategoryID:   aggregate.ID().Int64(),
		CategoryName: aggregate.Name(),
		Description:  aggregate.Description(),
		IsActive:     aggregate.IsActive(),
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
	}
}

type supplierRow struct {
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

func newSupplierRow(aggregate *supplier.Supplier) supplierRow {
	return supplierRow{
		SupplierID:   aggregate.ID().Int64(),
		SupplierName: aggregate.Name(),
		ContactName:  aggregate.ContactName(),
		Phone:        aggregate.Phone(),
		Email:        aggregate.Email(),
		Address:      aggregate.Address(),
		IsActive:     aggregate.IsActive(),
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
	}
}

type customerRow struct {
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

func newCustomerRow(aggregate *customer.Customer) customerRow {
	return customerRow{
		CustomerID:   aggregate.ID().Int64(),
		CustomerName: aggregate.Name(),
		ContactName:  aggregate.ContactName(),
		Phone:        aggregate.Phone(),
		Email:        aggregate.Email(),
		Address:      aggregate.Address(),
		IsActive:     aggregate.IsActive(),
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
	}
}

func activationWord(isActive bool) string {
	if isActive {
		return "active"
	}
	return "inactive"
}
