package settings_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/settings"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSettings(t *testing.T) {
	t.Run("valid settings", func(t *testing.T) {
		fee, err := kernel.NewMoneyFromCents(5000)
		require.NoError(t, err)

		s, err := settings.NewSettings(18, fee, 45)

		require.NoError(t, err)
		assert.InDelta(t, 18.0, s.TaxRate(), 0.0001)
		assert.True(t, s.DeliveryFee().IsEqual(fee))
		assert.Equal(t, 45, s.DeliveryTimeMinutes())
		require.NoError(t, s.Validate())
	})

	t.Run("boundary tax rates are valid", func(t *testing.T) {
		_, err := settings.NewSettings(0, kernel.Money{}, 30)
		require.NoError(t, err)
		_, err = settings.NewSettings(50, kernel.Money{}, 30)
		require.NoError(t, err)
	})

	t.Run("tax rate out of range", func(t *testing.T) {
		_, err := settings.NewSettings(50.1, kernel.Money{}, 30)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = settings.NewSettings(-1, kernel.Money{}, 30)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("delivery time must be positive", func(t *testing.T) {
		_, err := settings.NewSettings(18, kernel.Money{}, 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("all violations reported together", func(t *testing.T) {
		_, err := settings.NewSettings(99, kernel.Money{}, -5)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestDefaultSettings(t *testing.T) {
	s := settings.DefaultSettings()

	assert.InDelta(t, settings.DefaultTaxRate, s.TaxRate(), 0.0001)
	assert.True(t, s.DeliveryFee().IsZero())
	assert.Equal(t, settings.DefaultDeliveryTimeMinutes, s.DeliveryTimeMinutes())
	require.NoError(t, s.Validate())
}

func TestSettings_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var s settings.Settings
		require.ErrorIs(t, s.Validate(), settings.ErrSettingsAreNotConstructed)
	})

	t.Run("nil settings fail validation", func(t *testing.T) {
		var s *settings.Settings
		require.ErrorIs(t, s.Validate(), settings.ErrSettingsAreNotConstructed)
	})
}
