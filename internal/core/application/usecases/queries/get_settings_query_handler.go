package queries

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/settings"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// GetSettingsQueryHandler reads the marketplace configuration. Unlike the
// other query handlers it goes through the repository port rather than raw
// SQL: the defaults fallback is business behavior, not presentation, and
// the repository already encodes it next to Save.
type GetSettingsQueryHandler struct {
	settingsRepo ports.SettingsRepository
}

// NewGetSettingsQueryHandler creates a handler for settings reads.
func NewGetSettingsQueryHandler(settingsRepo ports.SettingsRepository) GetSettingsQueryHandler {
	return GetSettingsQueryHandler{settingsRepo: settingsRepo}
}

// Handle returns the saved configuration, or the defaults when no admin
// has saved one yet.
func (h GetSettingsQueryHandler) Handle(ctx context.Context, query GetSettingsQuery) (GetSettingsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSettingsQueryResponse{}, err
	}

	cfg, err := h.settingsRepo.Get(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		cfg = settings.DefaultSettings()
	} else if err != nil {
		return GetSettingsQueryResponse{}, err
	}

	return GetSettingsQueryResponse{
		TaxRate:             cfg.TaxRate(),
		DeliveryFee:         cfg.DeliveryFee().Cents(),
		DeliveryTimeMinutes: cfg.DeliveryTimeMinutes(),
	}, nil
}
