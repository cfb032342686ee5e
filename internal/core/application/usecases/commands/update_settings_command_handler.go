package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/settings"
	"marketplace/internal/core/ports"
)

// UpdateSettingsCommandHandler replaces the marketplace configuration.
// Validation is all-or-nothing: if any submitted value is out of range
// nothing is saved and the previous settings stay in effect.
type UpdateSettingsCommandHandler struct {
	settingsRepo ports.SettingsRepository
}

// NewUpdateSettingsCommandHandler creates a handler for settings updates.
func NewUpdateSettingsCommandHandler(settingsRepo ports.SettingsRepository) UpdateSettingsCommandHandler {
	return UpdateSettingsCommandHandler{
		settingsRepo: settingsRepo,
	}
}

// Handle validates the submitted values and upserts the configuration.
// The returned error joins every violation so the caller can show all of
// them at once.
func (h UpdateSettingsCommandHandler) Handle(ctx context.Context, command UpdateSettingsCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	fee, feeErr := kernel.NewMoneyFromFloat(command.DeliveryFee())
	cfg, cfgErr := settings.NewSettings(command.TaxRate(), fee, command.DeliveryTimeMinutes())
	if err := errors.Join(feeErr, cfgErr); err != nil {
		return err
	}

	return h.settingsRepo.Save(ctx, cfg)
}
