package http

import (
	"fmt"
	"time"
)

// strictBool accepts only the JSON literals true and false. Strings or
// numbers that would coerce under loose binding are rejected.
type strictBool bool

func (b *strictBool) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case "true":
		*b = true
	case "false":
		*b = false
	default:
		return fmt.Errorf("invalid boolean literal %q", string(data))
	}
	return nil
}

// parseShippingDate accepts RFC 3339 timestamps and plain dates.
func parseShippingDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid shipping date %q", raw)
}

// Quantity and the monetary fields are pointers so an absent field can be
// told apart from an explicit zero.
type orderRequest struct {
	SupplierID  int64    `json:"supplier_id"`
	ProductID   int64    `json:"product_id"`
	Quantity    *int     `json:"quantity"`
	Subtotal    *float64 `json:"subtotal"`
	TotalAmount *float64 `json:"total_amount"`
	Status      string   `json:"status"`
}

type orderStatusRequest struct {
	Status string `json:"status"`
}

type exportOrderRequest struct {
	CustomerID      int64    `json:"customer_id"`
	ProductID       int64    `json:"product_id"`
	Quantity        *int     `json:"quantity"`
	Subtotal        *float64 `json:"subtotal"`
	TotalAmount     *float64 `json:"total_amount"`
	ShippingDate    string   `json:"shipping_date"`
	ShippingAddress string   `json:"shipping_address"`
	ShippingStatus  string   `json:"shipping_status"`
	Status          string   `json:"status"`
}

// exportOrderStatusRequest patches either status dimension independently.
type exportOrderStatusRequest struct {
	Status         *string `json:"status"`
	ShippingStatus *string `json:"shipping_status"`
}

type productRequest struct {
	ProductName string  `json:"product_name"`
	SKU         string  `json:"sku"`
	CategoryID  int64   `json:"category_id"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

type categoryRequest struct {
	CategoryName string `json:"category_name"`
	Description  string `json:"description"`
}

type supplierRequest struct {
	SupplierName string `json:"supplier_name"`
	ContactName  string `json:"contact_name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
}

type customerRequest struct {
	CustomerName string `json:"customer_name"`
	ContactName  string `json:"contact_name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
}

type activationRequest struct {
	IsActive *strictBool `json:"is_active"`
}
