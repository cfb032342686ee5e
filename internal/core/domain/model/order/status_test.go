package order_test

import (
	"testing"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	tests := []struct {
		name    string
		status  order.Status
		wantErr bool
	}{
		{"pending is valid", order.Pending, false},
		{"in progress is valid", order.InProgress, false},
		{"completed is valid", order.Completed, false},
		{"unknown is invalid", order.Unknown, true},
		{"out of range is invalid", order.Status(42), true},
		{"negative is invalid", order.Status(-1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.status.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Pending", order.Pending.String())
	assert.Equal(t, "InProgress", order.InProgress.String())
	assert.Equal(t, "Completed", order.Completed.String())
	assert.Equal(t, "Unknown", order.Unknown.String())
	assert.Equal(t, "Unknown", order.Status(99).String())
}

func TestStatus_Take(t *testing.T) {
	t.Run("pending can be taken", func(t *testing.T) {
		newStatus, err := order.Pending.Take()

		require.NoError(t, err)
		assert.Equal(t, order.InProgress, newStatus)
	})

	t.Run("taking a non-pending order conflicts", func(t *testing.T) {
		for _, s := range []order.Status{order.InProgress, order.Completed, order.Unknown} {
			_, err := s.Take()
			require.Error(t, err, s.String())
			assert.ErrorIs(t, err, errs.ErrConflict, s.String())
		}
	})
}

func TestStatus_Complete(t *testing.T) {
	t.Run("in progress can be completed", func(t *testing.T) {
		newStatus, err := order.InProgress.Complete()

		require.NoError(t, err)
		assert.Equal(t, order.Completed, newStatus)
	})

	t.Run("completing a non-in-progress order conflicts", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.Completed, order.Unknown} {
			_, err := s.Complete()
			require.Error(t, err, s.String())
			assert.ErrorIs(t, err, errs.ErrConflict, s.String())
		}
	})
}

func TestStatus_ValidateCanHaveCourier(t *testing.T) {
	tests := []struct {
		name       string
		status     order.Status
		hasCourier bool
		wantErr    bool
	}{
		{"pending without courier", order.Pending, false, false},
		{"pending with courier", order.Pending, true, true},
		{"in progress with courier", order.InProgress, true, false},
		{"in progress without courier", order.InProgress, false, true},
		{"completed with courier", order.Completed, true, false},
		{"completed without courier", order.Completed, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.status.ValidateCanHaveCourier(tt.hasCourier)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
