// Package cartstore keeps session carts in Redis. A cart is serialized as
// a JSON array of item snapshots under one key per session; the TTL resets
// on every save so an active session never loses its cart, while abandoned
// carts expire on their own.
package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL is how long an untouched cart survives.
const DefaultTTL = 24 * time.Hour

type itemDTO struct {
	ProductID  string `json:"product_id"`
	Name       string `json:"name"`
	Price      int64  `json:"price"`
	Photo      string `json:"photo"`
	Category   string `json:"category"`
	CommerceID string `json:"commerce_id"`
	Quantity   int    `json:"quantity"`
}

// RedisCartStore implements CartStore on top of go-redis.
type RedisCartStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCartStore creates a cart store. A non-positive ttl falls back to
// DefaultTTL.
func NewRedisCartStore(client *redis.Client, ttl time.Duration) *RedisCartStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisCartStore{
		client: client,
		ttl:    ttl,
	}
}

// Get retrieves the cart for a session. A session with no saved cart
// yields a new empty cart.
func (s *RedisCartStore) Get(ctx context.Context, sessionID string) (*cart.Cart, error) {
	data, err := s.client.Get(ctx, cartKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return cart.NewCart(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var dtos []itemDTO
	if err = json.Unmarshal(data, &dtos); err != nil {
		return nil, fmt.Errorf("unmarshal cart failed: %w", err)
	}

	items := make([]*cart.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, itemErr := toDomain(dto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return cart.RestoreCart(items)
}

// Save persists the cart for a session, resetting its TTL.
func (s *RedisCartStore) Save(ctx context.Context, sessionID string, c *cart.Cart) error {
	items := c.Items()
	dtos := make([]itemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, fromDomain(item))
	}

	data, err := json.Marshal(dtos)
	if err != nil {
		return fmt.Errorf("marshal cart failed: %w", err)
	}

	if err = s.client.Set(ctx, cartKey(sessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

// Delete discards the session's cart. Deleting an absent cart is a no-op.
func (s *RedisCartStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func fromDomain(item *cart.Item) itemDTO {
	return itemDTO{
		ProductID:  item.ProductID().String(),
		Name:       item.Name(),
		Price:      item.Price().Cents(),
		Photo:      item.Photo(),
		Category:   item.Category(),
		CommerceID: item.CommerceID().String(),
		Quantity:   item.Quantity(),
	}
}

func toDomain(dto itemDTO) (*cart.Item, error) {
	productID, err := kernel.UUIDFromString(dto.ProductID)
	if err != nil {
		return nil, err
	}

	commerceID, err := kernel.UUIDFromString(dto.CommerceID)
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoneyFromCents(dto.Price)
	if err != nil {
		return nil, err
	}

	return cart.RestoreItem(productID, dto.Name, price, dto.Photo, dto.Category, commerceID, dto.Quantity)
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:%s", sessionID)
}
