package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type commerceResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Logo      string `json:"logo"`
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
	Favorite  bool   `json:"favorite"`
}

// GetCommerces handles GET /api/v1/commerces?type=. Favorites of the
// session client sort first.
func (s *Server) GetCommerces(ctx echo.Context) error {
	query, err := queries.NewGetCommercesQuery(ctx.QueryParam("type"), currentSession(ctx).UserID)
	if err != nil {
		return respondError(ctx, err)
	}

	commerces, err := s.getCommercesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]commerceResponse, 0, len(commerces))
	for _, c := range commerces {
		response = append(response, commerceResponse{
			ID:        c.ID.String(),
			Name:      c.Name,
			Logo:      c.Logo,
			OpenTime:  c.OpenTime,
			CloseTime: c.CloseTime,
			Favorite:  c.Favorite,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

type catalogProductResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Photo       string  `json:"photo"`
}

type catalogCategoryResponse struct {
	Name     string                   `json:"name"`
	Products []catalogProductResponse `json:"products"`
}

// GetCommerceCatalog handles GET /api/v1/commerces/:id/catalog.
func (s *Server) GetCommerceCatalog(ctx echo.Context) error {
	commerceID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid commerce id")
	}

	query, err := queries.NewGetCommerceCatalogQuery(commerceID)
	if err != nil {
		return respondError(ctx, err)
	}

	categories, err := s.getCommerceCatalogHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]catalogCategoryResponse, 0, len(categories))
	for _, category := range categories {
		products := make([]catalogProductResponse, 0, len(category.Products))
		for _, p := range category.Products {
			products = append(products, catalogProductResponse{
				ID:          p.ID.String(),
				Name:        p.Name,
				Description: p.Description,
				Price:       float64(p.Price) / 100,
				Photo:       p.Photo,
			})
		}
		response = append(response, catalogCategoryResponse{
			Name:     category.Name,
			Products: products,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

type setFavoriteRequest struct {
	CommerceID string `json:"commerceId"`
	Action     string `json:"action"`
}

// SetFavorite handles POST /api/v1/favorites with {commerceId, action
// add|remove}. Both directions are idempotent.
func (s *Server) SetFavorite(ctx echo.Context) error {
	var req setFavoriteRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	var favorite bool
	switch req.Action {
	case "add":
		favorite = true
	case "remove":
		favorite = false
	default:
		return respondBadRequest(ctx, "action must be add or remove")
	}

	commerceID, err := kernel.UUIDFromString(req.CommerceID)
	if err != nil {
		return respondBadRequest(ctx, "invalid commerce id")
	}

	cmd, err := commands.NewSetFavoriteCommand(currentSession(ctx).UserID, commerceID, favorite)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.setFavoriteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]any{"success": true})
}

type createCommerceRequest struct {
	Name      string `json:"name"`
	Logo      string `json:"logo"`
	Type      string `json:"type"`
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
}

// CreateCommerce handles POST /api/v1/commerces. The session user becomes
// the owner.
func (s *Server) CreateCommerce(ctx echo.Context) error {
	var req createCommerceRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateCommerceCommand(
		currentSession(ctx).UserID, req.Name, req.Logo, req.Type, req.OpenTime, req.CloseTime)
	if err != nil {
		return respondError(ctx, err)
	}

	commerceID, err := s.createCommerceHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]any{
		"success":    true,
		"commerceId": commerceID.String(),
	})
}

type createProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Photo       string  `json:"photo"`
	Category    string  `json:"category"`
}

// CreateProduct handles POST /api/v1/commerces/:id/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	commerceID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid commerce id")
	}

	var req createProductRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateProductCommand(
		commerceID, currentSession(ctx).UserID, req.Name, req.Description, req.Price, req.Photo, req.Category)
	if err != nil {
		return respondError(ctx, err)
	}

	productID, err := s.createProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]any{
		"success":   true,
		"productId": productID.String(),
	})
}
