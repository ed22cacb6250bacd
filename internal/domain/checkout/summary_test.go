//go:build unit

package checkout_test

import (
	"testing"

	"multimart/internal/domain/checkout"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertInvariants(t *testing.T, s *checkout.Summary) {
	t.Helper()

	var shopDiscounts int64
	for _, shop := range s.Shops {
		assert.Equal(t, shop.Subtotal+shop.ShippingFee-shop.DiscountAmount, shop.Total)
		shopDiscounts += shop.DiscountAmount
	}
	assert.Equal(t, shopDiscounts+s.PlatformDiscountAmount, s.TotalDiscount)
	assert.Equal(t, s.SubtotalAllShops+s.TotalShippingFee-s.TotalDiscount, s.GrandTotal)
	assert.GreaterOrEqual(t, s.GrandTotal, int64(0))
}

func TestAssemble(t *testing.T) {
	userID := uuid.New()

	t.Run("two shops with shop and platform discounts", func(t *testing.T) {
		shops := []checkout.ShopSummary{
			{ShopID: uuid.New(), ShopName: "A", Subtotal: 100000, ShippingFee: 3000, DiscountAmount: 10000, DiscountCode: "TENOFF1"},
			{ShopID: uuid.New(), ShopName: "B", Subtotal: 50000, ShippingFee: 2000},
		}

		summary := checkout.Assemble(userID, shops, 5000, "PLAT5000")
		require.NotNil(t, summary)

		assert.Equal(t, userID, summary.UserID)
		assert.Equal(t, int64(150000), summary.SubtotalAllShops)
		assert.Equal(t, int64(5000), summary.TotalShippingFee)
		assert.Equal(t, int64(15000), summary.TotalDiscount)
		assert.Equal(t, int64(140000), summary.GrandTotal)
		assert.Equal(t, int64(93000), summary.Shops[0].Total)
		assert.Equal(t, int64(52000), summary.Shops[1].Total)
		assertInvariants(t, summary)
	})

	t.Run("no discounts", func(t *testing.T) {
		shopID := uuid.New()
		shops := []checkout.ShopSummary{
			{ShopID: shopID, Subtotal: 20000, ShippingFee: 1000},
		}

		summary := checkout.Assemble(userID, shops, 0, "")
		expected := &checkout.Summary{
			UserID: userID,
			Shops: []checkout.ShopSummary{
				{ShopID: shopID, Subtotal: 20000, ShippingFee: 1000, Total: 21000},
			},
			SubtotalAllShops: 20000,
			TotalShippingFee: 1000,
			GrandTotal:       21000,
		}
		if diff := cmp.Diff(expected, summary); diff != "" {
			t.Errorf("summary mismatch (-want +got):\n%s", diff)
		}
		assertInvariants(t, summary)
	})

	t.Run("platform discount is capped at remaining subtotal", func(t *testing.T) {
		// shop discount already consumes 8000 of the 10000 subtotal; a 5000
		// platform discount can only take the remaining 2000
		shops := []checkout.ShopSummary{
			{ShopID: uuid.New(), Subtotal: 10000, ShippingFee: 3000, DiscountAmount: 8000},
		}

		summary := checkout.Assemble(userID, shops, 5000, "BIGPLAT")
		assert.Equal(t, int64(2000), summary.PlatformDiscountAmount)
		assert.Equal(t, int64(10000), summary.TotalDiscount)
		assert.Equal(t, int64(3000), summary.GrandTotal)
		assertInvariants(t, summary)
	})

	t.Run("discounts never touch shipping fees", func(t *testing.T) {
		shops := []checkout.ShopSummary{
			{ShopID: uuid.New(), Subtotal: 10000, ShippingFee: 3000, DiscountAmount: 10000},
		}

		summary := checkout.Assemble(userID, shops, 0, "")
		assert.Equal(t, int64(3000), summary.GrandTotal)
		assertInvariants(t, summary)
	})

	t.Run("empty shop list", func(t *testing.T) {
		summary := checkout.Assemble(userID, nil, 0, "")
		assert.Equal(t, int64(0), summary.GrandTotal)
		assertInvariants(t, summary)
	})
}
