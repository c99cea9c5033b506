package exportorder_test

import (
	"testing"

	"inventory/internal/core/domain/model/exportorder"
	"inventory/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseShippingStatus(t *testing.T) {
	t.Run("closed_set_members_are_accepted", func(t *testing.T) {
		for _, raw := range []string{"Pending", "In Transit", "Delivered", "Returned", "Failed"} {
			s, err := exportorder.ParseShippingStatus(raw)
			require.NoError(t, err)
			assert.Equal(t, raw, s.String())
		}
	})

	t.Run("values_outside_the_closed_set_are_rejected", func(t *testing.T) {
		for _, raw := range []string{"", "Shipped", "InTransit", "delivered", "Completed"} {
			_, err := exportorder.ParseShippingStatus(raw)
			require.Error(t, err, "expected %q to be rejected", raw)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}
