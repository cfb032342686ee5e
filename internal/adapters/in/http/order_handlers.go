package http

import (
	"net/http"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type checkoutRequest struct {
	AddressID string `json:"addressId"`
}

// Checkout handles POST /api/v1/orders: the session cart becomes one order
// per commerce and the cart is cleared.
func (s *Server) Checkout(ctx echo.Context) error {
	var req checkoutRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	addressID, err := kernel.UUIDFromString(req.AddressID)
	if err != nil {
		return respondBadRequest(ctx, "invalid address id")
	}

	cmd, err := commands.NewCheckoutCommand(sessionID(ctx), currentSession(ctx).UserID, addressID)
	if err != nil {
		return respondError(ctx, err)
	}

	orderIDs, err := s.checkoutHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	ids := make([]string, 0, len(orderIDs))
	for _, id := range orderIDs {
		ids = append(ids, id.String())
	}

	return ctx.JSON(http.StatusCreated, map[string]any{
		"success":  true,
		"redirect": "/orders",
		"orders":   ids,
	})
}

type clientOrderResponse struct {
	ID           string    `json:"id"`
	CommerceName string    `json:"commerceName"`
	Status       string    `json:"status"`
	Subtotal     float64   `json:"subtotal"`
	TaxAmount    float64   `json:"taxAmount"`
	Total        float64   `json:"total"`
	CreatedAt    time.Time `json:"createdAt"`
}

// GetClientOrders handles GET /api/v1/orders.
func (s *Server) GetClientOrders(ctx echo.Context) error {
	query, err := queries.NewGetClientOrdersQuery(currentSession(ctx).UserID)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getClientOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]clientOrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, clientOrderResponse{
			ID:           o.ID.String(),
			CommerceName: o.CommerceName,
			Status:       o.Status,
			Subtotal:     float64(o.Subtotal) / 100,
			TaxAmount:    float64(o.TaxAmount) / 100,
			Total:        float64(o.Total) / 100,
			CreatedAt:    o.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

type availableOrderResponse struct {
	ID           string    `json:"id"`
	CommerceName string    `json:"commerceName"`
	AddressName  string    `json:"addressName"`
	Total        float64   `json:"total"`
	CreatedAt    time.Time `json:"createdAt"`
}

// GetAvailableOrders handles GET /api/v1/orders/available.
func (s *Server) GetAvailableOrders(ctx echo.Context) error {
	query := queries.NewGetAvailableOrdersQuery()

	orders, err := s.getAvailableOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]availableOrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, availableOrderResponse{
			ID:           o.ID.String(),
			CommerceName: o.CommerceName,
			AddressName:  o.AddressName,
			Total:        float64(o.Total) / 100,
			CreatedAt:    o.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// TakeOrder handles POST /api/v1/orders/:id/take. The courier is the
// session user; a lost race answers 409 with no state change.
func (s *Server) TakeOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewTakeOrderCommand(orderID, currentSession(ctx).UserID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.takeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]any{"success": true})
}

// CompleteOrder handles POST /api/v1/orders/:id/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID, currentSession(ctx).UserID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]any{"success": true})
}
