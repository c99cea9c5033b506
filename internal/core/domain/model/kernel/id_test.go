package kernel_test

import (
	"testing"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	t.Run("positive_value_is_accepted", func(t *testing.T) {
		id, err := kernel.NewID(42)

		require.NoError(t, err)
		assert.Equal(t, int64(42), id.Int64())
		assert.True(t, id.IsAssigned())
		require.NoError(t, id.Validate())
	})

	t.Run("zero_and_negative_values_are_rejected", func(t *testing.T) {
		for _, value := range []int64{0, -1, -42} {
			_, err := kernel.NewID(value)
			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestParseID(t *testing.T) {
	t.Run("well_formed_positive_integer", func(t *testing.T) {
		id, err := kernel.ParseID("7")

		require.NoError(t, err)
		assert.Equal(t, int64(7), id.Int64())
	})

	t.Run("malformed_values_are_rejected", func(t *testing.T) {
		for _, s := range []string{"", "abc", "1.5", "-3", "0", "1e3"} {
			_, err := kernel.ParseID(s)
			require.Error(t, err, "expected %q to be rejected", s)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestID_ZeroValue(t *testing.T) {
	var id kernel.ID

	assert.False(t, id.IsAssigned())
	require.Error(t, id.Validate())
	require.ErrorIs(t, id.Validate(), errs.ErrValueIsRequired)
}

func TestID_String(t *testing.T) {
	id, err := kernel.NewID(123)
	require.NoError(t, err)
	assert.Equal(t, "123", id.String())
}

func TestID_IsEqual(t *testing.T) {
	a, _ := kernel.NewID(1)
	b, _ := kernel.NewID(1)
	c, _ := kernel.NewID(2)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
