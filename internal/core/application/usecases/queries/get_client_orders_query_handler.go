package queries

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetClientOrdersQueryHandler reads a client's order history from the
// database, joining the commerce name for display.
type GetClientOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetClientOrdersQueryHandler creates a handler for order history reads.
func NewGetClientOrdersQueryHandler(db *gorm.DB) GetClientOrdersQueryHandler {
	return GetClientOrdersQueryHandler{db: db}
}

// Handle returns the client's orders, newest first.
func (h GetClientOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetClientOrdersQuery,
) ([]GetClientOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetClientOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			c.name,
			o.status,
			o.subtotal,
			o.tax_amount,
			o.total,
			o.created_at
		FROM orders o
		JOIN commerces c ON c.id = o.commerce_id
		WHERE o.client_id = ?
		ORDER BY o.created_at DESC
	`, query.ClientID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id        uuid.UUID
			name      string
			status    int
			subtotal  int64
			taxAmount int64
			total     int64
			createdAt time.Time
		)

		if err := rows.Scan(&id, &name, &status, &subtotal, &taxAmount, &total, &createdAt); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		orders = append(orders, GetClientOrdersQueryResponse{
			ID:           orderID,
			CommerceName: name,
			Status:       order.Status(status).String(),
			Subtotal:     subtotal,
			TaxAmount:    taxAmount,
			Total:        total,
			CreatedAt:    createdAt,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
