package request

import (
	"strings"

	"multimart/internal/usecase"

	"github.com/google/uuid"
)

type ShopDiscountSelection struct {
	ShopID uuid.UUID `json:"shop_id" binding:"required"`
	Code   string    `json:"code" binding:"required"`
}

type CheckoutRequest struct {
	PlatformCode  *string                 `json:"platform_code,omitempty"`
	ShopDiscounts []ShopDiscountSelection `json:"shop_discounts,omitempty"`
}

// ToSelection normalizes the request into the usecase selection shape. Blank
// codes are treated as absent; a duplicate shop entry keeps the last code.
func (r CheckoutRequest) ToSelection() usecase.CheckoutSelection {
	selection := usecase.CheckoutSelection{
		ShopCodes: make(map[uuid.UUID]string, len(r.ShopDiscounts)),
	}

	if r.PlatformCode != nil {
		trimmed := strings.TrimSpace(*r.PlatformCode)
		if trimmed != "" {
			selection.PlatformCode = &trimmed
		}
	}

	for _, sd := range r.ShopDiscounts {
		code := strings.TrimSpace(sd.Code)
		if code == "" {
			continue
		}
		selection.ShopCodes[sd.ShopID] = code
	}

	return selection
}

type ConfirmCheckoutRequest struct {
	DiscountIDs []uuid.UUID `json:"discount_ids" binding:"required"`
}
