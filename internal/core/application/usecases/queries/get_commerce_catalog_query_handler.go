package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCommerceCatalogQueryHandler reads one commerce's products and groups
// them by category name. Grouping happens in Go over a single ordered
// scan; category order follows the alphabet, product order within a
// category too.
type GetCommerceCatalogQueryHandler struct {
	db *gorm.DB
}

// NewGetCommerceCatalogQueryHandler creates a handler for catalog reads.
func NewGetCommerceCatalogQueryHandler(db *gorm.DB) GetCommerceCatalogQueryHandler {
	return GetCommerceCatalogQueryHandler{db: db}
}

// Handle returns the commerce's catalog grouped by category. A commerce
// with no products yields an empty slice, not an error.
func (h GetCommerceCatalogQueryHandler) Handle(
	ctx context.Context,
	query GetCommerceCatalogQuery,
) ([]CatalogCategoryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			price,
			photo,
			category_name
		FROM products
		WHERE commerce_id = ?
		ORDER BY category_name, name
	`, query.CommerceID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]CatalogCategoryResponse, 0)

	for rows.Next() {
		var (
			id           uuid.UUID
			name         string
			description  string
			price        int64
			photo        string
			categoryName string
		)

		if err := rows.Scan(&id, &name, &description, &price, &photo, &categoryName); err != nil {
			return nil, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		p := CatalogProductResponse{
			ID:          productID,
			Name:        name,
			Description: description,
			Price:       price,
			Photo:       photo,
		}

		if n := len(categories); n > 0 && categories[n-1].Name == categoryName {
			categories[n-1].Products = append(categories[n-1].Products, p)
			continue
		}
		categories = append(categories, CatalogCategoryResponse{
			Name:     categoryName,
			Products: []CatalogProductResponse{p},
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}
