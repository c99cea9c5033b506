package supplier_test

import (
	"testing"
	"time"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/supplier"
	"inventory/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSupplier(t *testing.T) {
	t.Run("valid_supplier_starts_active", func(t *testing.T) {
		s, err := supplier.NewSupplier("Acme Parts", "Jo Smith", "555-0100", "jo@acme.test", "1 Factory Ln")

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.True(t, s.IsActive())
		assert.Equal(t, "Acme Parts", s.Name())
		assert.Equal(t, "555-0100", s.Phone())
	})

	t.Run("name_and_phone_are_required", func(t *testing.T) {
		_, err := supplier.NewSupplier(" ", "", "555-0100", "", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = supplier.NewSupplier("Acme Parts", "", "  ", "", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("contact_details_are_optional", func(t *testing.T) {
		_, err := supplier.NewSupplier("Acme Parts", "", "555-0100", "", "")
		require.NoError(t, err)
	})
}

func TestSupplier_ChangeDetailsAndActivation(t *testing.T) {
	s, err := supplier.NewSupplier("Acme Parts", "Jo Smith", "555-0100", "jo@acme.test", "1 Factory Ln")
	require.NoError(t, err)

	require.NoError(t, s.ChangeDetails("Acme Industrial", "Sam Lee", "555-0200", "sam@acme.test", "2 Plant Rd"))
	assert.Equal(t, "Acme Industrial", s.Name())
	assert.Equal(t, "555-0200", s.Phone())

	require.Error(t, s.ChangeDetails("Acme Industrial", "", "", "", ""))

	s.SetActive(false)
	assert.False(t, s.IsActive())
}

func TestRestoreSupplier(t *testing.T) {
	now := time.Now().UTC()
	id, err := kernel.NewID(4)
	require.NoError(t, err)

	s, err := supplier.RestoreSupplier(id, "Acme Parts", "Jo", "555-0100", "", "", false, now, now)

	require.NoError(t, err)
	assert.Equal(t, int64(4), s.ID().Int64())
	assert.False(t, s.IsActive())
}
