package response

import (
	"time"

	"multimart/internal/domain/discount"

	"github.com/google/uuid"
)

type DiscountResponse struct {
	ID                   uuid.UUID   `json:"id"`
	Code                 string      `json:"code"`
	ShopID               *uuid.UUID  `json:"shopId,omitempty"`
	Kind                 string      `json:"kind"`
	Value                int64       `json:"value"`
	MaxValue             *int64      `json:"maxValue,omitempty"`
	AppliesToAllProducts bool        `json:"appliesToAllProducts"`
	SkuIDs               []uuid.UUID `json:"skuIds,omitempty"`
	MinOrderCost         int64       `json:"minOrderCost"`
	TotalUseCount        int         `json:"totalUseCount"`
	UsedCount            int         `json:"usedCount"`
	RemainingUses        int         `json:"remainingUses"`
	PerUserMaxUse        int         `json:"perUserMaxUse"`
	StartAt              time.Time   `json:"startAt"`
	EndAt                time.Time   `json:"endAt"`
	IsAvailable          bool        `json:"isAvailable"`
	IsPublished          bool        `json:"isPublished"`
	CreatedAt            time.Time   `json:"createdAt"`
	UpdatedAt            time.Time   `json:"updatedAt"`
}

func FromDiscount(d *discount.Discount) *DiscountResponse {
	effect := d.Effect()
	return &DiscountResponse{
		ID:                   d.ID(),
		Code:                 d.Code().String(),
		ShopID:               d.ShopID(),
		Kind:                 effect.Kind().String(),
		Value:                effect.Value(),
		MaxValue:             effect.MaxValue(),
		AppliesToAllProducts: d.AppliesToAllProducts(),
		SkuIDs:               d.SkuIDs(),
		MinOrderCost:         d.MinOrderCost(),
		TotalUseCount:        d.TotalUseCount(),
		UsedCount:            d.UsedCount(),
		RemainingUses:        d.RemainingUses(),
		PerUserMaxUse:        d.PerUserMaxUse(),
		StartAt:              d.StartAt(),
		EndAt:                d.EndAt(),
		IsAvailable:          d.IsAvailable(),
		IsPublished:          d.IsPublished(),
		CreatedAt:            d.CreatedAt(),
		UpdatedAt:            d.UpdatedAt(),
	}
}

func FromDiscounts(ds []*discount.Discount) []*DiscountResponse {
	out := make([]*DiscountResponse, len(ds))
	for i, d := range ds {
		out[i] = FromDiscount(d)
	}
	return out
}
