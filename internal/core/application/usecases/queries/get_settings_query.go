package queries

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var ErrGetSettingsQueryIsNotConstructed = errors.New(
	"GetSettingsQuery must be created via NewGetSettingsQuery constructor",
)

// GetSettingsQuery retrieves the marketplace configuration for the admin
// panel and for client-facing fee display.
type GetSettingsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetSettingsQuery creates a parameterless settings query.
func NewGetSettingsQuery() GetSettingsQuery {
	return GetSettingsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetSettingsQuery) Validate() error {
	return q.guard.Validate(ErrGetSettingsQueryIsNotConstructed)
}

// GetSettingsQueryResponse is the current configuration. DeliveryFee is
// integer cents.
type GetSettingsQueryResponse struct {
	TaxRate             float64
	DeliveryFee         int64
	DeliveryTimeMinutes int
}
