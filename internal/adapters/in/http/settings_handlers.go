package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

type settingsResponse struct {
	TaxRate             float64 `json:"taxRate"`
	DeliveryFee         float64 `json:"deliveryFee"`
	DeliveryTimeMinutes int     `json:"deliveryTimeMinutes"`
}

// GetSettings handles GET /api/v1/admin/settings. The defaults come back
// until an admin has saved anything.
func (s *Server) GetSettings(ctx echo.Context) error {
	result, err := s.getSettingsHandler.Handle(ctx.Request().Context(), queries.NewGetSettingsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, settingsResponse{
		TaxRate:             result.TaxRate,
		DeliveryFee:         float64(result.DeliveryFee) / 100,
		DeliveryTimeMinutes: result.DeliveryTimeMinutes,
	})
}

type updateSettingsRequest struct {
	TaxRate             float64 `json:"taxRate"`
	DeliveryFee         float64 `json:"deliveryFee"`
	DeliveryTimeMinutes int     `json:"deliveryTimeMinutes"`
}

// UpdateSettings handles PUT /api/v1/admin/settings. An invalid submission
// answers 400 with every violated rule and changes nothing.
func (s *Server) UpdateSettings(ctx echo.Context) error {
	var req updateSettingsRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd := commands.NewUpdateSettingsCommand(req.TaxRate, req.DeliveryFee, req.DeliveryTimeMinutes)
	if err := s.updateSettingsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]any{"success": true})
}
