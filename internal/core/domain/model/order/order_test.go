package order_test

import (
	"testing"
	"time"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/order"
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

func TestNewOrder(t *testing.T) {
	t.Run("valid_order", func(t *testing.T) {
		o, err := order.NewOrder(
			mustID(t, 1), mustID(t, 2), 5,
			mustMoney(t, "50"), mustMoney(t, "50"),
			order.StatusPending,
		)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.False(t, o.ID().IsAssigned())
		assert.Equal(t, int64(1), o.SupplierID().Int64())
		assert.Equal(t, int64(2), o.ProductID().Int64())
		assert.Equal(t, 5, o.Quantity())
		assert.Equal(t, "50.00", o.Subtotal().String())
		assert.Equal(t, order.StatusPending, o.Status())
		assert.WithinDuration(t, time.Now().UTC(), o.OrderDate(), time.Minute)
	})

	t.Run("missing_supplier_reference", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.ID(0), mustID(t, 2), 5,
			mustMoney(t, "50"), mustMoney(t, "50"),
			order.StatusPending,
		)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("non_positive_quantity", func(t *testing.T) {
		for _, quantity := range []int{0, -1} {
			_, err := order.NewOrder(
				mustID(t, 1), mustID(t, 2), quantity,
				mustMoney(t, "50"), mustMoney(t, "50"),
				order.StatusPending,
			)
			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("status_outside_closed_set", func(t *testing.T) {
		_, err := order.NewOrder(
			mustID(t, 1), mustID(t, 2), 5,
			mustMoney(t, "50"), mustMoney(t, "50"),
			order.Status("Shipped"),
		)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreOrder(t *testing.T) {
	now := time.Now().UTC()

	t.Run("round_trip", func(t *testing.T) {
		o, err := order.RestoreOrder(
			mustID(t, 10), mustID(t, 1), mustID(t, 2), 3,
			mustMoney(t, "30"), mustMoney(t, "33"),
			now, order.StatusCompleted, now, now,
		)

		require.NoError(t, err)
		assert.Equal(t, int64(10), o.ID().Int64())
		assert.Equal(t, order.StatusCompleted, o.Status())
		assert.Equal(t, now, o.CreatedAt())
	})

	t.Run("unassigned_identity_is_rejected", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.ID(0), mustID(t, 1), mustID(t, 2), 3,
			mustMoney(t, "30"), mustMoney(t, "33"),
			now, order.StatusPending, now, now,
		)

		require.Error(t, err)
	})

	t.Run("corrupt_status_is_rejected", func(t *testing.T) {
		_, err := order.RestoreOrder(
			mustID(t, 10), mustID(t, 1), mustID(t, 2), 3,
			mustMoney(t, "30"), mustMoney(t, "33"),
			now, order.Status("Broken"), now, now,
		)

		require.Error(t, err)
	})
}

func TestOrder_SetID(t *testing.T) {
	newOrder := func(t *testing.T) *order.Order {
		o, err := order.NewOrder(
			mustID(t, 1), mustID(t, 2), 5,
			mustMoney(t, "50"), mustMoney(t, "50"),
			order.StatusPending,
		)
		require.NoError(t, err)
		return o
	}

	t.Run("assigns_store_identity_once", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.SetID(mustID(t, 7)))
		assert.Equal(t, int64(7), o.ID().Int64())

		require.Error(t, o.SetID(mustID(t, 8)))
		assert.Equal(t, int64(7), o.ID().Int64())
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	o, err := order.NewOrder(
		mustID(t, 1), mustID(t, 2), 5,
		mustMoney(t, "50"), mustMoney(t, "50"),
		order.StatusPending,
	)
	require.NoError(t, err)

	t.Run("any_member_may_replace_any_other", func(t *testing.T) {
		require.NoError(t, o.ChangeStatus(order.StatusCompleted))
		require.NoError(t, o.ChangeStatus(order.StatusPending))
		require.NoError(t, o.ChangeStatus(order.StatusCancelled))
	})

	t.Run("invalid_value_leaves_status_unchanged", func(t *testing.T) {
		require.NoError(t, o.ChangeStatus(order.StatusCompleted))
		require.Error(t, o.ChangeStatus(order.Status("Shipped")))
		assert.Equal(t, order.StatusCompleted, o.Status())
	})
}

func TestOrder_ChangeDetails(t *testing.T) {
	o, err := order.NewOrder(
		mustID(t, 1), mustID(t, 2), 5,
		mustMoney(t, "50"), mustMoney(t, "50"),
		order.StatusPending,
	)
	require.NoError(t, err)
	orderDate := o.OrderDate()

	require.NoError(t, o.ChangeDetails(
		mustID(t, 3), mustID(t, 4), 10,
		mustMoney(t, "100"), mustMoney(t, "110"),
		order.StatusCompleted,
	))

	assert.Equal(t, int64(3), o.SupplierID().Int64())
	assert.Equal(t, int64(4), o.ProductID().Int64())
	assert.Equal(t, 10, o.Quantity())
	assert.Equal(t, "110.00", o.TotalAmount().String())
	assert.Equal(t, order.StatusCompleted, o.Status())
	// Full update replaces business fields only.
	assert.Equal(t, orderDate, o.OrderDate())
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero_value_is_rejected", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil_is_rejected", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}
