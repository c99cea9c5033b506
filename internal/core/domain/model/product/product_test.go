package product_test

import (
	"testing"
	"time"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/product"
	"inventory/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustID(t *testing.T, v int64) kernel.ID {
	t.Helper()
	id, err := kernel.NewID(v)
	require.NoError(t, err)
	return id
}

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func TestNewProduct(t *testing.T) {
	t.Run("valid_product_starts_active", func(t *testing.T) {
		p, err := product.NewProduct("Laptop", "SKU-001", mustID(t, 1), "14 inch", 10, mustMoney(t, "9.99"))

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.IsActive())
		assert.False(t, p.ID().IsAssigned())
		assert.Equal(t, "Laptop", p.Name())
		assert.Equal(t, "SKU-001", p.SKU())
		assert.Equal(t, 10, p.Quantity())
		assert.Equal(t, "9.99", p.UnitPrice().String())
	})

	t.Run("required_fields", func(t *testing.T) {
		cases := []struct {
			name string
			run  func() error
		}{
			{"blank name", func() error {
				_, err := product.NewProduct("", "SKU-001", mustID(t, 1), "", 1, mustMoney(t, "1"))
				return err
			}},
			{"blank sku", func() error {
				_, err := product.NewProduct("Laptop", "  ", mustID(t, 1), "", 1, mustMoney(t, "1"))
				return err
			}},
			{"missing category reference", func() error {
				_, err := product.NewProduct("Laptop", "SKU-001", kernel.ID(0), "", 1, mustMoney(t, "1"))
				return err
			}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				err := tc.run()
				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsRequired)
			})
		}
	})

	t.Run("negative_quantity_is_rejected", func(t *testing.T) {
		_, err := product.NewProduct("Laptop", "SKU-001", mustID(t, 1), "", -1, mustMoney(t, "1"))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("zero_quantity_is_allowed", func(t *testing.T) {
		p, err := product.NewProduct("Laptop", "SKU-001", mustID(t, 1), "", 0, mustMoney(t, "1"))

		require.NoError(t, err)
		assert.Equal(t, 0, p.Quantity())
	})
}

func TestProduct_ChangeDetails(t *testing.T) {
	p, err := product.NewProduct("Laptop", "SKU-001", mustID(t, 1), "", 10, mustMoney(t, "9.99"))
	require.NoError(t, err)

	t.Run("full_replacement", func(t *testing.T) {
		require.NoError(t, p.ChangeDetails("Desktop", "SKU-002", mustID(t, 2), "tower", 4, mustMoney(t, "499")))

		assert.Equal(t, "Desktop", p.Name())
		assert.Equal(t, "SKU-002", p.SKU())
		assert.Equal(t, int64(2), p.CategoryID().Int64())
		assert.Equal(t, 4, p.Quantity())
	})

	t.Run("negative_quantity_is_rejected", func(t *testing.T) {
		err := p.ChangeDetails("Desktop", "SKU-002", mustID(t, 2), "tower", -1, mustMoney(t, "499"))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Equal(t, 4, p.Quantity())
	})
}

func TestProduct_SetActive(t *testing.T) {
	p, err := product.NewProduct("Laptop", "SKU-001", mustID(t, 1), "", 10, mustMoney(t, "9.99"))
	require.NoError(t, err)

	p.SetActive(false)
	assert.False(t, p.IsActive())

	p.SetActive(true)
	assert.True(t, p.IsActive())
}

func TestRestoreProduct(t *testing.T) {
	now := time.Now().UTC()

	p, err := product.RestoreProduct(
		mustID(t, 5), "Laptop", "SKU-001", mustID(t, 1), "14 inch",
		10, mustMoney(t, "9.99"), false, now, now,
	)

	require.NoError(t, err)
	assert.Equal(t, int64(5), p.ID().Int64())
	assert.False(t, p.IsActive())
	assert.Equal(t, now, p.CreatedAt())
}

func TestProduct_Validate(t *testing.T) {
	var zero product.Product
	require.ErrorIs(t, zero.Validate(), product.ErrProductIsNotConstructed)
}
