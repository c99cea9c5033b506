package kernel_test

import (
	"testing"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("non_negative_amounts_are_accepted", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.NewFromFloat(9.99))

		require.NoError(t, err)
		assert.Equal(t, "9.99", m.String())
	})

	t.Run("negative_amounts_are_rejected", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromFloat(-0.01))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoneyFromFloat(t *testing.T) {
	m, err := kernel.MoneyFromFloat(50)

	require.NoError(t, err)
	assert.Equal(t, "50.00", m.String())
}

func TestMoneyFromString(t *testing.T) {
	t.Run("decimal_string", func(t *testing.T) {
		m, err := kernel.MoneyFromString("129.90")

		require.NoError(t, err)
		assert.Equal(t, "129.90", m.String())
	})

	t.Run("malformed_string_is_rejected", func(t *testing.T) {
		_, err := kernel.MoneyFromString("not-a-number")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("negative_string_is_rejected", func(t *testing.T) {
		_, err := kernel.MoneyFromString("-5")

		require.Error(t, err)
	})
}

func TestMoney_Rendering(t *testing.T) {
	// Rendering always carries two fraction digits, the way the store's
	// DECIMAL(10,2) columns come back.
	cases := map[string]string{
		"0":      "0.00",
		"10":     "10.00",
		"9.9":    "9.90",
		"123.45": "123.45",
	}
	for in, want := range cases {
		m, err := kernel.MoneyFromString(in)
		require.NoError(t, err)
		assert.Equal(t, want, m.String())
	}
}

func TestMoney_IsEqual(t *testing.T) {
	a, _ := kernel.MoneyFromString("10")
	b, _ := kernel.MoneyFromString("10.00")
	c, _ := kernel.MoneyFromString("10.01")

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.True(t, kernel.ZeroMoney().IsZero())
}
