package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

type addressResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// GetAddresses handles GET /api/v1/addresses.
func (s *Server) GetAddresses(ctx echo.Context) error {
	query, err := queries.NewGetClientAddressesQuery(currentSession(ctx).UserID)
	if err != nil {
		return respondError(ctx, err)
	}

	addresses, err := s.getClientAddressesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]addressResponse, 0, len(addresses))
	for _, a := range addresses {
		response = append(response, addressResponse{
			ID:          a.ID.String(),
			Name:        a.Name,
			Description: a.Description,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

type addAddressRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// AddAddress handles POST /api/v1/addresses.
func (s *Server) AddAddress(ctx echo.Context) error {
	var req addAddressRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewAddAddressCommand(currentSession(ctx).UserID, req.Name, req.Description)
	if err != nil {
		return respondError(ctx, err)
	}

	addressID, err := s.addAddressHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]any{
		"success":   true,
		"addressId": addressID.String(),
	})
}
