package queries

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableOrdersQueryHandler reads the courier order board: pending
// orders nobody has claimed yet.
type GetAvailableOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableOrdersQueryHandler creates a handler for the order board.
func NewGetAvailableOrdersQueryHandler(db *gorm.DB) GetAvailableOrdersQueryHandler {
	return GetAvailableOrdersQueryHandler{db: db}
}

// Handle returns claimable orders, oldest first. The claim itself can
// still lose a race after this read; the conditional update on take
// settles it.
func (h GetAvailableOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableOrdersQuery,
) ([]GetAvailableOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetAvailableOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			c.name,
			a.name,
			o.total,
			o.created_at
		FROM orders o
		JOIN commerces c ON c.id = o.commerce_id
		JOIN addresses a ON a.id = o.address_id
		WHERE o.status = ? AND o.courier_id IS NULL
		ORDER BY o.created_at
	`, order.Pending).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id           uuid.UUID
			commerceName string
			addressName  string
			total        int64
			createdAt    time.Time
		)

		if err := rows.Scan(&id, &commerceName, &addressName, &total, &createdAt); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		orders = append(orders, GetAvailableOrdersQueryResponse{
			ID:           orderID,
			CommerceName: commerceName,
			AddressName:  addressName,
			Total:        total,
			CreatedAt:    createdAt,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
