package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetClientAddressesQueryHandler reads a client's saved addresses.
type GetClientAddressesQueryHandler struct {
	db *gorm.DB
}

// NewGetClientAddressesQueryHandler creates a handler for address reads.
func NewGetClientAddressesQueryHandler(db *gorm.DB) GetClientAddressesQueryHandler {
	return GetClientAddressesQueryHandler{db: db}
}

// Handle returns the client's addresses ordered by name.
func (h GetClientAddressesQueryHandler) Handle(
	ctx context.Context,
	query GetClientAddressesQuery,
) ([]GetClientAddressesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	addresses := make([]GetClientAddressesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description
		FROM addresses
		WHERE client_id = ?
		ORDER BY name
	`, query.ClientID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id          uuid.UUID
			name        string
			description string
		)

		if err := rows.Scan(&id, &name, &description); err != nil {
			return nil, err
		}

		addressID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		addresses = append(addresses, GetClientAddressesQueryResponse{
			ID:          addressID,
			Name:        name,
			Description: description,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return addresses, nil
}
