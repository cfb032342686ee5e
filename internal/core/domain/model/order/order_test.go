package order_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, cents int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromCents(cents)
	require.NoError(t, err)
	return m
}

func mustLineItems(t *testing.T, quantities ...int) []order.LineItem {
	t.Helper()
	items := make([]order.LineItem, 0, len(quantities))
	for _, q := range quantities {
		li, err := order.NewLineItem(kernel.NewUUID(), q)
		require.NoError(t, err)
		items = append(items, li)
	}
	return items
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		mustLineItems(t, 2), mustMoney(t, 2000), 18,
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("creates pending order with derived totals", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			mustLineItems(t, 2, 1), mustMoney(t, 2000), 18,
		)

		require.NoError(t, err)
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.Courier())
		assert.Equal(t, int64(2000), o.Subtotal().Cents())
		assert.Equal(t, int64(360), o.TaxAmount().Cents())
		assert.Equal(t, int64(2360), o.Total().Cents())
		assert.InEpsilon(t, 18.0, o.TaxRate(), 1e-9)
		assert.Len(t, o.LineItems(), 2)
		assert.False(t, o.CreatedAt().IsZero())
		require.NoError(t, o.Validate())
	})

	t.Run("total invariant holds across tax rates", func(t *testing.T) {
		for _, rate := range []float64{0, 1, 7.5, 18, 33.3, 50} {
			o, err := order.NewOrder(
				kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
				mustLineItems(t, 1), mustMoney(t, 999), rate,
			)
			require.NoError(t, err)
			assert.Equal(t, o.Subtotal().Add(o.Subtotal().PercentHalfUp(rate)).Cents(),
				o.Total().Cents(), "rate %v", rate)
		}
	})

	t.Run("rejects tax rate outside bounds", func(t *testing.T) {
		for _, rate := range []float64{-5, -0.01, 50.01, 100} {
			_, err := order.NewOrder(
				kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
				mustLineItems(t, 1), mustMoney(t, 1000), rate,
			)
			require.Error(t, err, "rate %v", rate)
			assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange, "rate %v", rate)
		}
	})

	t.Run("rejects empty line items", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			nil, mustMoney(t, 1000), 18,
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects invalid references", func(t *testing.T) {
		var zero kernel.UUID
		_, err := order.NewOrder(
			zero, kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			mustLineItems(t, 1), mustMoney(t, 1000), 18,
		)
		require.Error(t, err)
	})
}

func TestNewLineItem(t *testing.T) {
	t.Run("valid line item", func(t *testing.T) {
		id := kernel.NewUUID()
		li, err := order.NewLineItem(id, 3)

		require.NoError(t, err)
		assert.True(t, li.ProductID().IsEqual(id))
		assert.Equal(t, 3, li.Quantity())
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		for _, q := range []int{0, -1} {
			_, err := order.NewLineItem(kernel.NewUUID(), q)
			require.Error(t, err, "quantity %d", q)
		}
	})
}

func TestOrder_Assign(t *testing.T) {
	t.Run("assigns courier to pending order", func(t *testing.T) {
		o := newTestOrder(t)
		courierID := kernel.NewUUID()

		require.NoError(t, o.Assign(courierID))
		assert.Equal(t, order.InProgress, o.Status())
		require.NotNil(t, o.Courier())
		assert.True(t, o.Courier().IsEqual(courierID))
	})

	t.Run("second claim conflicts and leaves order unchanged", func(t *testing.T) {
		o := newTestOrder(t)
		first := kernel.NewUUID()
		second := kernel.NewUUID()

		require.NoError(t, o.Assign(first))
		err := o.Assign(second)

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, order.InProgress, o.Status())
		assert.True(t, o.Courier().IsEqual(first))
	})

	t.Run("cannot assign completed order", func(t *testing.T) {
		o := newTestOrder(t)
		courierID := kernel.NewUUID()
		require.NoError(t, o.Assign(courierID))
		require.NoError(t, o.Complete(courierID))

		err := o.Assign(kernel.NewUUID())
		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("rejects invalid courier id", func(t *testing.T) {
		o := newTestOrder(t)
		var zero kernel.UUID
		require.Error(t, o.Assign(zero))
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestOrder_Complete(t *testing.T) {
	t.Run("claiming courier completes the order", func(t *testing.T) {
		o := newTestOrder(t)
		courierID := kernel.NewUUID()
		require.NoError(t, o.Assign(courierID))

		require.NoError(t, o.Complete(courierID))
		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("another courier cannot complete the order", func(t *testing.T) {
		o := newTestOrder(t)
		owner := kernel.NewUUID()
		require.NoError(t, o.Assign(owner))

		err := o.Complete(kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, order.InProgress, o.Status())
	})

	t.Run("pending order cannot be completed", func(t *testing.T) {
		o := newTestOrder(t)
		err := o.Complete(kernel.NewUUID())
		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores a persisted in-progress order", func(t *testing.T) {
		courierID := kernel.NewUUID()
		createdAt := time.Now().UTC().Add(-time.Hour)

		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			mustLineItems(t, 1), mustMoney(t, 500), 18, mustMoney(t, 90), mustMoney(t, 590),
			order.InProgress, &courierID, createdAt,
		)

		require.NoError(t, err)
		assert.Equal(t, order.InProgress, o.Status())
		assert.True(t, o.Courier().IsEqual(courierID))
		assert.Equal(t, createdAt, o.CreatedAt())
		require.NoError(t, o.Validate())
	})

	t.Run("rejects inconsistent status and courier", func(t *testing.T) {
		courierID := kernel.NewUUID()

		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			mustLineItems(t, 1), mustMoney(t, 500), 18, mustMoney(t, 90), mustMoney(t, 590),
			order.Pending, &courierID, time.Now().UTC(),
		)
		require.Error(t, err)

		_, err = order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			mustLineItems(t, 1), mustMoney(t, 500), 18, mustMoney(t, 90), mustMoney(t, 590),
			order.InProgress, nil, time.Now().UTC(),
		)
		require.Error(t, err)
	})

	t.Run("rejects broken total invariant", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			mustLineItems(t, 1), mustMoney(t, 500), 18, mustMoney(t, 90), mustMoney(t, 600),
			order.Pending, nil, time.Now().UTC(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("constructed order validates", func(t *testing.T) {
		require.NoError(t, newTestOrder(t).Validate())
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil order fails validation", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_IsEqual(t *testing.T) {
	a := newTestOrder(t)
	b := newTestOrder(t)

	assert.True(t, a.IsEqual(a))
	assert.False(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(nil))
}
