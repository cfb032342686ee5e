package cartstore

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) (*RedisCartStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() {
		_ = client.Close()
	})

	return NewRedisCartStore(client, time.Hour), mr
}

func testProduct(t *testing.T, priceCents int64) *product.Product {
	t.Helper()

	price, err := kernel.NewMoneyFromCents(priceCents)
	require.NoError(t, err)

	p, err := product.NewProduct(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"Margherita",
		"Tomato and mozzarella",
		price,
		"margherita.jpg",
		"Pizza",
	)
	require.NoError(t, err)
	return p
}

func TestGet_NoSavedCart_ReturnsEmptyCart(t *testing.T) {
	store, _ := setupTestStore(t)

	c, err := store.Get(context.Background(), "session-1")
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
}

func TestSaveAndGet_RoundTripsItems(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	p1 := testProduct(t, 850)
	p2 := testProduct(t, 1200)

	c := cart.NewCart()
	require.NoError(t, c.Add(p1))
	require.NoError(t, c.Add(p1))
	require.NoError(t, c.Add(p2))

	require.NoError(t, store.Save(ctx, "session-1", c))

	restored, err := store.Get(ctx, "session-1")
	require.NoError(t, err)

	items := restored.Items()
	require.Len(t, items, 2)
	assert.True(t, items[0].ProductID().IsEqual(p1.ID()))
	assert.Equal(t, 2, items[0].Quantity())
	assert.Equal(t, "Margherita", items[0].Name())
	assert.True(t, items[0].Price().IsEqual(p1.Price()))
	assert.True(t, items[0].CommerceID().IsEqual(p1.CommerceID()))
	assert.True(t, items[1].ProductID().IsEqual(p2.ID()))
	assert.Equal(t, int64(2900), restored.Subtotal().Cents())
}

func TestSave_ResetsTTL(t *testing.T) {
	store, mr := setupTestStore(t)
	ctx := context.Background()

	c := cart.NewCart()
	require.NoError(t, c.Add(testProduct(t, 500)))
	require.NoError(t, store.Save(ctx, "session-1", c))

	mr.FastForward(30 * time.Minute)
	require.NoError(t, store.Save(ctx, "session-1", c))
	mr.FastForward(45 * time.Minute)

	restored, err := store.Get(ctx, "session-1")
	require.NoError(t, err)
	assert.False(t, restored.IsEmpty())
}

func TestGet_ExpiredCart_ReturnsEmptyCart(t *testing.T) {
	store, mr := setupTestStore(t)
	ctx := context.Background()

	c := cart.NewCart()
	require.NoError(t, c.Add(testProduct(t, 500)))
	require.NoError(t, store.Save(ctx, "session-1", c))

	mr.FastForward(2 * time.Hour)

	restored, err := store.Get(ctx, "session-1")
	require.NoError(t, err)
	assert.True(t, restored.IsEmpty())
}

func TestGet_CorruptedPayload_ReturnsError(t *testing.T) {
	store, mr := setupTestStore(t)

	require.NoError(t, mr.Set(cartKey("session-1"), "not json"))

	c, err := store.Get(context.Background(), "session-1")
	assert.Error(t, err)
	assert.Nil(t, c)
}

func TestDelete_RemovesCart(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	c := cart.NewCart()
	require.NoError(t, c.Add(testProduct(t, 500)))
	require.NoError(t, store.Save(ctx, "session-1", c))
	require.NoError(t, store.Delete(ctx, "session-1"))

	restored, err := store.Get(ctx, "session-1")
	require.NoError(t, err)
	assert.True(t, restored.IsEmpty())
}

func TestDelete_AbsentCart_IsNoOp(t *testing.T) {
	store, _ := setupTestStore(t)

	assert.NoError(t, store.Delete(context.Background(), "nonexistent"))
}
