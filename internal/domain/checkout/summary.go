package checkout

import (
	"multimart/internal/domain/cart"

	"github.com/google/uuid"
)

// ShopSummary is one shop's computed slice of a checkout:
// Total = Subtotal + ShippingFee - DiscountAmount.
type ShopSummary struct {
	ShopID         uuid.UUID
	ShopName       string
	Items          []cart.LineItem
	ShippingFee    int64
	Subtotal       int64
	DiscountAmount int64
	DiscountCode   string
	Total          int64
}

// Summary is the user-facing checkout result. It is derived transiently from
// a snapshot plus discount selections and is never persisted as mutable
// state; order creation consumes it downstream.
//
// Invariants, all in exact integer arithmetic:
//
//	TotalDiscount = Σ Shops[i].DiscountAmount + PlatformDiscountAmount
//	GrandTotal    = SubtotalAllShops + TotalShippingFee - TotalDiscount
//	GrandTotal   >= 0
type Summary struct {
	UserID                 uuid.UUID
	Shops                  []ShopSummary
	SubtotalAllShops       int64
	TotalShippingFee       int64
	PlatformDiscountAmount int64
	PlatformDiscountCode   string
	TotalDiscount          int64
	GrandTotal             int64
}

// Assemble folds per-shop summaries and the platform discount into a Summary,
// establishing the invariants above. Inputs arrive already rounded (the
// evaluator rounds exactly once); nothing here re-rounds.
//
// When shop and platform discounts stack, the platform amount is capped at
// the subtotal left after shop discounts, so TotalDiscount never exceeds
// SubtotalAllShops and GrandTotal stays non-negative without breaking the
// exact sum.
func Assemble(userID uuid.UUID, shops []ShopSummary, platformDiscountAmount int64, platformDiscountCode string) *Summary {
	summary := &Summary{
		UserID:               userID,
		Shops:                shops,
		PlatformDiscountCode: platformDiscountCode,
	}

	var shopDiscounts int64
	for i := range shops {
		shops[i].Total = shops[i].Subtotal + shops[i].ShippingFee - shops[i].DiscountAmount
		summary.SubtotalAllShops += shops[i].Subtotal
		summary.TotalShippingFee += shops[i].ShippingFee
		shopDiscounts += shops[i].DiscountAmount
	}

	if remaining := summary.SubtotalAllShops - shopDiscounts; platformDiscountAmount > remaining {
		platformDiscountAmount = remaining
	}
	summary.PlatformDiscountAmount = platformDiscountAmount
	summary.TotalDiscount = shopDiscounts + platformDiscountAmount
	summary.GrandTotal = summary.SubtotalAllShops + summary.TotalShippingFee - summary.TotalDiscount

	return summary
}
