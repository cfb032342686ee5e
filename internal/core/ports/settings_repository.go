package ports

import (
	"context"

	"marketplace/internal/core/domain/model/settings"
)

// SettingsRepository persists the single marketplace configuration row.
type SettingsRepository interface {
	// Get retrieves the current settings.
	// Returns errs.ErrObjectNotFound when no admin has saved settings yet;
	// callers fall back to settings.DefaultSettings.
	Get(ctx context.Context) (*settings.Settings, error)

	// Save upserts the settings. There is never more than one row.
	Save(ctx context.Context, aggregate *settings.Settings) error
}
