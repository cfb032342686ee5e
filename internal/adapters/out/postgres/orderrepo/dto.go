// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// domain aggregate, handling the conversion between domain entities and
// database representations.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Monetary columns carry integer cents; the status and courier
// columns are indexed because couriers poll for pending rows and the
// reconciliation job looks up active orders by courier.
//
// The partial unique index on courier_id admits at most one in-progress
// order per courier, so two claims by the same courier cannot both commit.
// The where clause must track the integer value of order.InProgress.
type OrderDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ClientID   uuid.UUID  `gorm:"type:uuid;index"`
	CommerceID uuid.UUID  `gorm:"type:uuid"`
	AddressID  uuid.UUID  `gorm:"type:uuid"`
	Subtotal   int64
	TaxRate    float64
	TaxAmount  int64
	Total      int64
	Status     int        `gorm:"index"`
	CourierID  *uuid.UUID `gorm:"type:uuid;uniqueIndex:uidx_orders_active_courier,where:status = 2"`
	CreatedAt  time.Time
	Items      []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one product position of an order. Rows are
// written once at checkout and never updated afterwards.
type OrderItemDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity  int
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database
// representation, including the line item rows.
func fromDomain(o *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := o.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	lineItems := o.LineItems()
	items := make([]OrderItemDTO, 0, len(lineItems))
	for _, li := range lineItems {
		items = append(items, OrderItemDTO{
			OrderID:   o.ID().Bytes(),
			ProductID: li.ProductID().Bytes(),
			Quantity:  li.Quantity(),
		})
	}

	return OrderDTO{
		ID:         o.ID().Bytes(),
		ClientID:   o.ClientID().Bytes(),
		CommerceID: o.CommerceID().Bytes(),
		AddressID:  o.AddressID().Bytes(),
		Subtotal:   o.Subtotal().Cents(),
		TaxRate:    o.TaxRate(),
		TaxAmount:  o.TaxAmount().Cents(),
		Total:      o.Total().Cents(),
		Status:     int(o.Status()),
		CourierID:  courierID,
		CreatedAt:  o.CreatedAt(),
		Items:      items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including line items, status and
// courier assignment using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	commerceID, err := kernel.UUIDFromBytes(dto.CommerceID[:])
	if err != nil {
		return nil, err
	}

	addressID, err := kernel.UUIDFromBytes(dto.AddressID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}

		courierID = &cID
	}

	lineItems := make([]order.LineItem, 0, len(dto.Items))
	for _, item := range dto.Items {
		productID, itemErr := kernel.UUIDFromBytes(item.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		li, itemErr := order.NewLineItem(productID, item.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}

		lineItems = append(lineItems, li)
	}

	subtotal, err := kernel.NewMoneyFromCents(dto.Subtotal)
	if err != nil {
		return nil, err
	}

	taxAmount, err := kernel.NewMoneyFromCents(dto.TaxAmount)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoneyFromCents(dto.Total)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		clientID,
		commerceID,
		addressID,
		lineItems,
		subtotal,
		dto.TaxRate,
		taxAmount,
		total,
		order.Status(dto.Status),
		courierID,
		dto.CreatedAt,
	)
}
