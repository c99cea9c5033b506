package customer_test

import (
	"testing"
	"time"

	"inventory/internal/core/domain/model/customer"
	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("valid_customer_starts_active", func(t *testing.T) {
		c, err := customer.NewCustomer("Globex", "Kim Park", "555-0300", "kim@globex.test", "9 Trade St")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.IsActive())
		assert.Equal(t, "Globex", c.Name())
	})

	t.Run("name_and_phone_are_required", func(t *testing.T) {
		_, err := customer.NewCustomer("", "", "555-0300", "", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = customer.NewCustomer("Globex", "", "", "", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestCustomer_ChangeDetailsAndActivation(t *testing.T) {
	c, err := customer.NewCustomer("Globex", "Kim Park", "555-0300", "kim@globex.test", "9 Trade St")
	require.NoError(t, err)

	require.NoError(t, c.ChangeDetails("Globex Intl", "Ana Diaz", "555-0400", "ana@globex.test", "10 Trade St"))
	assert.Equal(t, "Globex Intl", c.Name())

	require.Error(t, c.ChangeDetails("", "", "555-0400", "", ""))

	c.SetActive(false)
	assert.False(t, c.IsActive())
}

func TestRestoreCustomer(t *testing.T) {
	now := time.Now().UTC()
	id, err := kernel.NewID(8)
	require.NoError(t, err)

	c, err := customer.RestoreCustomer(id, "Globex", "Kim", "555-0300", "", "", true, now, now)

	require.NoError(t, err)
	assert.Equal(t, int64(8), c.ID().Int64())
	assert.True(t, c.IsActive())
}
