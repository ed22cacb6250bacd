//go:build unit

package cart_test

import (
	"testing"

	"multimart/internal/domain/cart"
	"multimart/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartition(t *testing.T) {
	shopA := uuid.New()
	shopB := uuid.New()

	t.Run("groups items by shop in first-seen order", func(t *testing.T) {
		snapshot := builder.NewCartBuilder().
			AddItem(shopA, "Shop A", 1000, 2).
			AddItem(shopB, "Shop B", 500, 1).
			AddItem(shopA, "Shop A", 300, 3).
			BuildSnapshot()

		groups, err := cart.Partition(snapshot)
		require.NoError(t, err)
		require.Len(t, groups, 2)

		assert.Equal(t, shopA, groups[0].ShopID)
		assert.Equal(t, "Shop A", groups[0].ShopName)
		assert.Len(t, groups[0].Items, 2)
		assert.Equal(t, int64(2900), groups[0].Subtotal)

		assert.Equal(t, shopB, groups[1].ShopID)
		assert.Len(t, groups[1].Items, 1)
		assert.Equal(t, int64(500), groups[1].Subtotal)
	})

	t.Run("single-shop cart yields one group", func(t *testing.T) {
		snapshot := builder.NewCartBuilder().
			AddItem(shopA, "Shop A", 1000, 1).
			BuildSnapshot()

		groups, err := cart.Partition(snapshot)
		require.NoError(t, err)
		require.Len(t, groups, 1)
		assert.Equal(t, int64(1000), groups[0].Subtotal)
	})

	t.Run("repeated calls are deterministic", func(t *testing.T) {
		snapshot := builder.NewCartBuilder().
			AddItem(shopB, "Shop B", 500, 1).
			AddItem(shopA, "Shop A", 1000, 2).
			BuildSnapshot()

		first, err := cart.Partition(snapshot)
		require.NoError(t, err)
		second, err := cart.Partition(snapshot)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, shopB, first[0].ShopID)
	})

	t.Run("empty cart", func(t *testing.T) {
		snapshot := builder.NewCartBuilder().BuildSnapshot()

		groups, err := cart.Partition(snapshot)
		require.ErrorIs(t, err, cart.ErrEmptyCart)
		assert.Nil(t, groups)
	})

	t.Run("nil snapshot", func(t *testing.T) {
		groups, err := cart.Partition(nil)
		require.ErrorIs(t, err, cart.ErrEmptyCart)
		assert.Nil(t, groups)
	})

	t.Run("group sku ids are deduplicated", func(t *testing.T) {
		skuID := uuid.New()
		snapshot := builder.NewCartBuilder().
			AddItemWithSku(skuID, shopA, "Shop A", 1000, 1).
			AddItemWithSku(skuID, shopA, "Shop A", 1000, 2).
			BuildSnapshot()

		groups, err := cart.Partition(snapshot)
		require.NoError(t, err)
		require.Len(t, groups, 1)
		assert.Equal(t, []uuid.UUID{skuID}, groups[0].SkuIDs())
	})
}

func TestSnapshot(t *testing.T) {
	t.Run("subtotal sums unit price times quantity", func(t *testing.T) {
		shopID := uuid.New()
		snapshot := builder.NewCartBuilder().
			AddItem(shopID, "Shop", 1500, 2).
			AddItem(shopID, "Shop", 700, 3).
			BuildSnapshot()

		assert.Equal(t, int64(5100), snapshot.Subtotal())
		assert.False(t, snapshot.IsEmpty())
	})

	t.Run("line item subtotal", func(t *testing.T) {
		item := cart.LineItem{UnitPrice: 250, Quantity: 4}
		assert.Equal(t, int64(1000), item.Subtotal())
	})
}
