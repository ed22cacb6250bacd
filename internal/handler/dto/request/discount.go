package request

import (
	"time"

	"multimart/internal/domain/discount"
	"multimart/internal/usecase"

	"github.com/google/uuid"
)

type CreateDiscountRequest struct {
	Code                 string      `json:"code" binding:"required"`
	Kind                 string      `json:"kind" binding:"required,oneof=percentage fixed"`
	Value                int64       `json:"value" binding:"required"`
	MaxValue             *int64      `json:"max_value,omitempty"`
	AppliesToAllProducts bool        `json:"applies_to_all_products"`
	SkuIDs               []uuid.UUID `json:"sku_ids,omitempty"`
	MinOrderCost         int64       `json:"min_order_cost" binding:"required"`
	TotalUseCount        int         `json:"total_use_count" binding:"required"`
	PerUserMaxUse        int         `json:"per_user_max_use" binding:"required"`
	StartAt              time.Time   `json:"start_at" binding:"required"`
	EndAt                time.Time   `json:"end_at" binding:"required"`
}

func (r CreateDiscountRequest) ToInput() usecase.CreateDiscountInput {
	return usecase.CreateDiscountInput{
		Code:                 r.Code,
		Kind:                 discount.Kind(r.Kind),
		Value:                r.Value,
		MaxValue:             r.MaxValue,
		AppliesToAllProducts: r.AppliesToAllProducts,
		SkuIDs:               r.SkuIDs,
		MinOrderCost:         r.MinOrderCost,
		TotalUseCount:        r.TotalUseCount,
		PerUserMaxUse:        r.PerUserMaxUse,
		StartAt:              r.StartAt,
		EndAt:                r.EndAt,
	}
}

type UpdateDiscountRequest struct {
	Code                 *string     `json:"code,omitempty"`
	Kind                 *string     `json:"kind,omitempty" binding:"omitempty,oneof=percentage fixed"`
	Value                *int64      `json:"value,omitempty"`
	MaxValue             *int64      `json:"max_value,omitempty"`
	ClearMaxValue        bool        `json:"clear_max_value,omitempty"`
	AppliesToAllProducts *bool       `json:"applies_to_all_products,omitempty"`
	SkuIDs               []uuid.UUID `json:"sku_ids,omitempty"`
	MinOrderCost         *int64      `json:"min_order_cost,omitempty"`
	TotalUseCount        *int        `json:"total_use_count,omitempty"`
	PerUserMaxUse        *int        `json:"per_user_max_use,omitempty"`
	StartAt              *time.Time  `json:"start_at,omitempty"`
	EndAt                *time.Time  `json:"end_at,omitempty"`
}

func (r UpdateDiscountRequest) ToInput() usecase.UpdateDiscountInput {
	input := usecase.UpdateDiscountInput{
		Code:                 r.Code,
		Value:                r.Value,
		MaxValue:             r.MaxValue,
		ClearMaxValue:        r.ClearMaxValue,
		AppliesToAllProducts: r.AppliesToAllProducts,
		SkuIDs:               r.SkuIDs,
		MinOrderCost:         r.MinOrderCost,
		TotalUseCount:        r.TotalUseCount,
		PerUserMaxUse:        r.PerUserMaxUse,
		StartAt:              r.StartAt,
		EndAt:                r.EndAt,
	}
	if r.Kind != nil {
		kind := discount.Kind(*r.Kind)
		input.Kind = &kind
	}
	return input
}

type DiscountAvailabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
}
