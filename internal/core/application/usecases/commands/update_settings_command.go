package commands

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var ErrUpdateSettingsCommandIsNotConstructed = errors.New(
	"UpdateSettingsCommand must be created via NewUpdateSettingsCommand constructor",
)

// UpdateSettingsCommand carries the raw values an admin submitted for the
// marketplace configuration. The values are deliberately unvalidated here:
// the settings aggregate validates them all at once so the admin sees the
// complete list of problems, not just the first.
type UpdateSettingsCommand struct { //nolint:recvcheck //using for validation
	taxRate             float64
	deliveryFee         float64
	deliveryTimeMinutes int

	guard guard.ConstructorGuard
}

// NewUpdateSettingsCommand creates a command with the submitted values.
func NewUpdateSettingsCommand(taxRate float64, deliveryFee float64, deliveryTimeMinutes int) UpdateSettingsCommand {
	return UpdateSettingsCommand{
		taxRate:             taxRate,
		deliveryFee:         deliveryFee,
		deliveryTimeMinutes: deliveryTimeMinutes,
		guard:               guard.NewConstructorGuard(),
	}
}

// TaxRate returns the submitted tax percentage.
func (c *UpdateSettingsCommand) TaxRate() float64 {
	return c.taxRate
}

// DeliveryFee returns the submitted delivery fee in currency units.
func (c *UpdateSettingsCommand) DeliveryFee() float64 {
	return c.deliveryFee
}

// DeliveryTimeMinutes returns the submitted estimated delivery time.
func (c *UpdateSettingsCommand) DeliveryTimeMinutes() int {
	return c.deliveryTimeMinutes
}

// Validate ensures the command was created through the constructor.
func (c *UpdateSettingsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateSettingsCommandIsNotConstructed)
}
