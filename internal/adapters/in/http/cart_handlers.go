package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type updateCartRequest struct {
	Action    string `json:"action"`
	ProductID string `json:"productId"`
}

type cartItemResponse struct {
	ProductID  string  `json:"productId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Photo      string  `json:"photo"`
	Category   string  `json:"category"`
	CommerceID string  `json:"commerceId"`
	Quantity   int     `json:"quantity"`
	LineTotal  float64 `json:"lineTotal"`
}

type cartResponse struct {
	Success    bool               `json:"success"`
	Cart       []cartItemResponse `json:"cart"`
	Subtotal   float64            `json:"subtotal"`
	TotalItems int                `json:"totalItems"`
}

// UpdateCart handles POST /api/v1/cart. Every mutation answers with the
// full cart so the client never has to track state itself.
func (s *Server) UpdateCart(ctx echo.Context) error {
	var req updateCartRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	action, err := commands.CartActionFromString(req.Action)
	if err != nil {
		return respondError(ctx, err)
	}

	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return respondBadRequest(ctx, "invalid product id")
	}

	cmd, err := commands.NewUpdateCartCommand(sessionID(ctx), productID, action)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.updateCartHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCartResponse(updated))
}

func toCartResponse(c *cart.Cart) cartResponse {
	items := c.Items()
	responses := make([]cartItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, cartItemResponse{
			ProductID:  item.ProductID().String(),
			Name:       item.Name(),
			Price:      item.Price().Float64(),
			Photo:      item.Photo(),
			Category:   item.Category(),
			CommerceID: item.CommerceID().String(),
			Quantity:   item.Quantity(),
			LineTotal:  item.LineTotal().Float64(),
		})
	}

	return cartResponse{
		Success:    true,
		Cart:       responses,
		Subtotal:   c.Subtotal().Float64(),
		TotalItems: c.TotalItems(),
	}
}
