package settings

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

const (
	TaxRateMin = 0.0
	TaxRateMax = 50.0

	DefaultTaxRate             = 18.0
	DefaultDeliveryTimeMinutes = 30
)

var ErrSettingsAreNotConstructed = errs.NewValueIsRequiredError("settings")

// Settings is the marketplace-wide configuration managed by admins.
// There is exactly one instance; repositories upsert it.
type Settings struct {
	taxRate             float64
	deliveryFee         kernel.Money
	deliveryTimeMinutes int

	guard guard.ConstructorGuard
}

// NewSettings validates every field and reports all violations at once,
// joined into a single error, so an admin form can show the full list.
func NewSettings(taxRate float64, deliveryFee kernel.Money, deliveryTimeMinutes int) (*Settings, error) {
	var problems []error
	if taxRate < TaxRateMin || taxRate > TaxRateMax {
		problems = append(problems, errs.NewValueIsOutOfRangeError(
			"taxRate", taxRate, TaxRateMin, TaxRateMax))
	}
	if deliveryFee.Cents() < 0 {
		problems = append(problems, errs.NewValueIsInvalidError(
			fmt.Sprintf("deliveryFee: must not be negative, got %s", deliveryFee)))
	}
	if deliveryTimeMinutes <= 0 {
		problems = append(problems, errs.NewValueIsInvalidError(
			fmt.Sprintf("deliveryTimeMinutes: must be positive, got %d", deliveryTimeMinutes)))
	}
	if len(problems) > 0 {
		return nil, errors.Join(problems...)
	}

	return &Settings{
		taxRate:             taxRate,
		deliveryFee:         deliveryFee,
		deliveryTimeMinutes: deliveryTimeMinutes,
		guard:               guard.NewConstructorGuard(),
	}, nil
}

// DefaultSettings returns the configuration used until an admin saves one.
func DefaultSettings() *Settings {
	s, err := NewSettings(DefaultTaxRate, kernel.Money{}, DefaultDeliveryTimeMinutes)
	if err != nil {
		panic(fmt.Sprintf("default settings must be valid: %v", err))
	}
	return s
}

func (s *Settings) TaxRate() float64 {
	return s.taxRate
}

func (s *Settings) DeliveryFee() kernel.Money {
	return s.deliveryFee
}

func (s *Settings) DeliveryTimeMinutes() int {
	return s.deliveryTimeMinutes
}

func (s *Settings) Validate() error {
	if s == nil {
		return ErrSettingsAreNotConstructed
	}
	return s.guard.Validate(ErrSettingsAreNotConstructed)
}
