package commands_test

import (
	"testing"
	"time"

	"inventory/internal/core/domain/model/exportorder"
	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/order"
	"inventory/internal/core/domain/model/product"

	"github.com/stretchr/testify/require"
)

func mustID(t *testing.T, value int64) kernel.ID {
	t.Helper()
	id, err := kernel.NewID(value)
	require.NoError(t, err)
	return id
}

func mustMoney(t *testing.T, value float64) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromFloat(value)
	require.NoError(t, err)
	return m
}

func restoredOrder(t *testing.T, id kernel.ID, status order.Status) *order.Order {
	t.Helper()
	now := time.Now().UTC()
	o, err := order.RestoreOrder(
		id, mustID(t, 1), mustID(t, 2), 5,
		mustMoney(t, 49.95), mustMoney(t, 54.95),
		now, status, now, now,
	)
	require.NoError(t, err)
	return o
}

func restoredExportOrder(
	t *testing.T,
	id kernel.ID,
	status order.Status,
	shippingStatus exportorder.ShippingStatus,
) *exportorder.ExportOrder {
	t.Helper()
	now := time.Now().UTC()
	eo, err := exportorder.RestoreExportOrder(
		id, mustID(t, 1), mustID(t, 2), 5,
		mustMoney(t, 49.95), mustMoney(t, 54.95),
		now, nil, "12 Harbour Rd",
		shippingStatus, status, now, now,
	)
	require.NoError(t, err)
	return eo
}

func restoredProduct(t *testing.T, id kernel.ID, active bool) *product.Product {
	t.Helper()
	now := time.Now().UTC()
	p, err := product.RestoreProduct(
		id, "Widget", "WGT-001", mustID(t, 1),
		"", 10, mustMoney(t, 9.99), active, now, now,
	)
	require.NoError(t, err)
	return p
}
