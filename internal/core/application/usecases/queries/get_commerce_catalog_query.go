package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetCommerceCatalogQueryIsNotConstructed = errors.New(
	"GetCommerceCatalogQuery must be created via NewGetCommerceCatalogQuery constructor",
)

// GetCommerceCatalogQuery retrieves one commerce's products grouped by
// category, the shape a storefront page renders directly.
type GetCommerceCatalogQuery struct {
	commerceID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCommerceCatalogQuery creates a query for one commerce's catalog.
func NewGetCommerceCatalogQuery(commerceID kernel.UUID) (GetCommerceCatalogQuery, error) {
	if err := commerceID.Validate(); err != nil {
		return GetCommerceCatalogQuery{}, err
	}
	return GetCommerceCatalogQuery{
		commerceID: commerceID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// CommerceID returns the commerce being browsed.
func (q GetCommerceCatalogQuery) CommerceID() kernel.UUID {
	return q.commerceID
}

// Validate ensures the query was created through the constructor.
func (q GetCommerceCatalogQuery) Validate() error {
	return q.guard.Validate(ErrGetCommerceCatalogQueryIsNotConstructed)
}

// CatalogProductResponse is one product inside a category group.
// Price is integer cents.
type CatalogProductResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	Price       int64
	Photo       string
}

// CatalogCategoryResponse is one category with its products.
type CatalogCategoryResponse struct {
	Name     string
	Products []CatalogProductResponse
}
