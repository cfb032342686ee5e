// Package settingsrepo persists the single marketplace configuration row.
package settingsrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/settings"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// singletonID is the fixed primary key of the only settings row.
const singletonID = 1

// SettingsDTO represents the database structure for the marketplace
// configuration. The fixed primary key plus the upsert in Save guarantee
// the table never holds more than one row.
type SettingsDTO struct {
	ID                  int `gorm:"primaryKey"`
	TaxRate             float64
	DeliveryFee         int64
	DeliveryTimeMinutes int
}

// TableName specifies the database table name for the configuration row.
func (SettingsDTO) TableName() string {
	return "settings"
}

// GormSettingsRepository implements SettingsRepository using GORM.
type GormSettingsRepository struct {
	db *gorm.DB
}

// NewGormSettingsRepository creates a new GORM settings repository.
func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// Get retrieves the current settings. Returns a not-found error until an
// admin has saved settings for the first time; callers fall back to the
// defaults.
func (r *GormSettingsRepository) Get(ctx context.Context) (*settings.Settings, error) {
	var dto SettingsDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", singletonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("settings", singletonID)
		}
		return nil, err
	}

	deliveryFee, err := kernel.NewMoneyFromCents(dto.DeliveryFee)
	if err != nil {
		return nil, err
	}

	return settings.NewSettings(dto.TaxRate, deliveryFee, dto.DeliveryTimeMinutes)
}

// Save upserts the settings row.
func (r *GormSettingsRepository) Save(ctx context.Context, aggregate *settings.Settings) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := SettingsDTO{
		ID:                  singletonID,
		TaxRate:             aggregate.TaxRate(),
		DeliveryFee:         aggregate.DeliveryFee().Cents(),
		DeliveryTimeMinutes: aggregate.DeliveryTimeMinutes(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&dto).Error
}
