package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCommercesQueryHandler reads the commerce listing for one catalog
// type, with the browsing client's favorite flag resolved in the same
// query via a left join.
type GetCommercesQueryHandler struct {
	db *gorm.DB
}

// NewGetCommercesQueryHandler creates a handler for commerce listings.
func NewGetCommercesQueryHandler(db *gorm.DB) GetCommercesQueryHandler {
	return GetCommercesQueryHandler{db: db}
}

// Handle returns the active commerces of the requested type, favorites
// first. Deactivated commerces stay out of the listing entirely.
func (h GetCommercesQueryHandler) Handle(
	ctx context.Context,
	query GetCommercesQuery,
) ([]GetCommercesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	commerces := make([]GetCommercesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.name,
			c.logo,
			c.open_time,
			c.close_time,
			f.client_id IS NOT NULL AS favorite
		FROM commerces c
		LEFT JOIN favorites f ON f.commerce_id = c.id AND f.client_id = ?
		WHERE c.type_name = ? AND c.active
		ORDER BY favorite DESC, c.name
	`, query.ClientID().Bytes(), query.TypeName()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id        uuid.UUID
			name      string
			logo      string
			openTime  string
			closeTime string
			favorite  bool
		)

		if err := rows.Scan(&id, &name, &logo, &openTime, &closeTime, &favorite); err != nil {
			return nil, err
		}

		commerceID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		commerces = append(commerces, GetCommercesQueryResponse{
			ID:        commerceID,
			Name:      name,
			Logo:      logo,
			OpenTime:  openTime,
			CloseTime: closeTime,
			Favorite:  favorite,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return commerces, nil
}
