package category_test

import (
	"testing"
	"time"

	"inventory/internal/core/domain/model/category"
	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategory(t *testing.T) {
	t.Run("valid_category_starts_active", func(t *testing.T) {
		c, err := category.NewCategory("Electronics", "gadgets")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.IsActive())
		assert.Equal(t, "Electronics", c.Name())
	})

	t.Run("blank_name_is_rejected", func(t *testing.T) {
		_, err := category.NewCategory("  ", "gadgets")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("description_is_optional", func(t *testing.T) {
		_, err := category.NewCategory("Electronics", "")
		require.NoError(t, err)
	})
}

func TestCategory_ChangeDetailsAndActivation(t *testing.T) {
	c, err := category.NewCategory("Electronics", "gadgets")
	require.NoError(t, err)

	require.NoError(t, c.ChangeDetails("Appliances", "household"))
	assert.Equal(t, "Appliances", c.Name())

	require.Error(t, c.ChangeDetails("", "household"))

	c.SetActive(false)
	assert.False(t, c.IsActive())
}

func TestRestoreCategory(t *testing.T) {
	now := time.Now().UTC()
	id, err := kernel.NewID(3)
	require.NoError(t, err)

	c, err := category.RestoreCategory(id, "Electronics", "gadgets", true, now, now)

	require.NoError(t, err)
	assert.Equal(t, int64(3), c.ID().Int64())

	_, err = category.RestoreCategory(kernel.ID(0), "Electronics", "gadgets", true, now, now)
	require.Error(t, err)
}
