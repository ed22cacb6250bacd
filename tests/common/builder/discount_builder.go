//go:build unit || integration

package builder

import (
	"time"

	"multimart/internal/domain/discount"
	reqdto "multimart/internal/handler/dto/request"

	"github.com/google/uuid"
)

type DiscountBuilder struct {
	Code                 string
	ShopID               *uuid.UUID
	Kind                 discount.Kind
	Value                int64
	MaxValue             *int64
	AppliesToAllProducts bool
	SkuIDs               []uuid.UUID
	MinOrderCost         int64
	TotalUseCount        int
	PerUserMaxUse        int
	StartAt              time.Time
	EndAt                time.Time
	Now                  time.Time
}

func NewDiscountBuilder() *DiscountBuilder {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	shopID := uuid.New()
	return &DiscountBuilder{
		Code:                 "SUMMER2026",
		ShopID:               &shopID,
		Kind:                 discount.KindPercentage,
		Value:                10,
		AppliesToAllProducts: true,
		MinOrderCost:         1,
		TotalUseCount:        100,
		PerUserMaxUse:        1,
		StartAt:              now,
		EndAt:                now.AddDate(0, 1, 0),
		Now:                  now,
	}
}

func (b *DiscountBuilder) With(mutate func(*DiscountBuilder)) *DiscountBuilder {
	mutate(b)
	return b
}

func (b *DiscountBuilder) BuildDomain() (*discount.Discount, error) {
	return discount.NewDiscount(discount.NewDiscountParams{
		Code:                 b.Code,
		ShopID:               b.ShopID,
		Kind:                 b.Kind,
		Value:                b.Value,
		MaxValue:             b.MaxValue,
		AppliesToAllProducts: b.AppliesToAllProducts,
		SkuIDs:               b.SkuIDs,
		MinOrderCost:         b.MinOrderCost,
		TotalUseCount:        b.TotalUseCount,
		PerUserMaxUse:        b.PerUserMaxUse,
		StartAt:              b.StartAt,
		EndAt:                b.EndAt,
	}, b.Now)
}

// BuildPublished builds a discount already published and available, the state
// eligibility checks start from.
func (b *DiscountBuilder) BuildPublished() (*discount.Discount, error) {
	d, err := b.BuildDomain()
	if err != nil {
		return nil, err
	}
	d.Publish(b.Now)
	return d, nil
}

func (b *DiscountBuilder) BuildCreateRequestDTO() reqdto.CreateDiscountRequest {
	return reqdto.CreateDiscountRequest{
		Code:                 b.Code,
		Kind:                 b.Kind.String(),
		Value:                b.Value,
		MaxValue:             b.MaxValue,
		AppliesToAllProducts: b.AppliesToAllProducts,
		SkuIDs:               b.SkuIDs,
		MinOrderCost:         b.MinOrderCost,
		TotalUseCount:        b.TotalUseCount,
		PerUserMaxUse:        b.PerUserMaxUse,
		StartAt:              b.StartAt,
		EndAt:                b.EndAt,
	}
}

// Fluent builder methods
func (b *DiscountBuilder) WithCode(code string) *DiscountBuilder {
	b.Code = code
	return b
}

func (b *DiscountBuilder) WithShopID(shopID *uuid.UUID) *DiscountBuilder {
	b.ShopID = shopID
	return b
}

func (b *DiscountBuilder) AsPlatformWide() *DiscountBuilder {
	b.ShopID = nil
	return b
}

func (b *DiscountBuilder) WithPercentage(value int64, maxValue *int64) *DiscountBuilder {
	b.Kind = discount.KindPercentage
	b.Value = value
	b.MaxValue = maxValue
	return b
}

func (b *DiscountBuilder) WithFixed(value int64) *DiscountBuilder {
	b.Kind = discount.KindFixed
	b.Value = value
	b.MaxValue = nil
	return b
}

func (b *DiscountBuilder) WithSkuScope(skuIDs ...uuid.UUID) *DiscountBuilder {
	b.AppliesToAllProducts = false
	b.SkuIDs = skuIDs
	return b
}

func (b *DiscountBuilder) WithMinOrderCost(cost int64) *DiscountBuilder {
	b.MinOrderCost = cost
	return b
}

func (b *DiscountBuilder) WithUsageLimits(total, perUser int) *DiscountBuilder {
	b.TotalUseCount = total
	b.PerUserMaxUse = perUser
	return b
}

func (b *DiscountBuilder) WithSchedule(startAt, endAt time.Time) *DiscountBuilder {
	b.StartAt = startAt
	b.EndAt = endAt
	return b
}

func (b *DiscountBuilder) WithNow(now time.Time) *DiscountBuilder {
	b.Now = now
	return b
}
