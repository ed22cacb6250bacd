//go:build unit

package discount_test

import (
	"testing"
	"time"

	"multimart/internal/domain/discount"
	"multimart/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.DiscountBuilder)
	errIs  error
}

func TestNewDiscount(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewDiscountBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "SUMMER2026", actual.Code().String())
		assert.Equal(t, 0, actual.UsedCount())
		assert.True(t, actual.IsAvailable())
		assert.False(t, actual.IsPublished())
		assert.False(t, actual.IsPlatformWide())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	t.Run("code validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "minimum length code",
				mutate: func(b *builder.DiscountBuilder) { b.WithCode("ABC123") },
			},
			{
				name:   "maximum length code",
				mutate: func(b *builder.DiscountBuilder) { b.WithCode("ABCDE12345") },
			},
			{
				name:   "lowercase input is normalized",
				mutate: func(b *builder.DiscountBuilder) { b.WithCode("summer2026") },
			},
			{
				name:   "too short",
				mutate: func(b *builder.DiscountBuilder) { b.WithCode("AB123") },
				errIs:  discount.ErrInvalidCode,
			},
			{
				name:   "too long",
				mutate: func(b *builder.DiscountBuilder) { b.WithCode("ABCDE123456") },
				errIs:  discount.ErrInvalidCode,
			},
			{
				name:   "invalid characters",
				mutate: func(b *builder.DiscountBuilder) { b.WithCode("SUM-2026") },
				errIs:  discount.ErrInvalidCode,
			},
			{
				name:   "empty code",
				mutate: func(b *builder.DiscountBuilder) { b.WithCode("") },
				errIs:  discount.ErrInvalidCode,
			},
		})
	})

	t.Run("effect validation", func(t *testing.T) {
		cap := int64(5000)
		badCap := int64(0)
		runCases(t, []testCase{
			{
				name:   "minimum percentage",
				mutate: func(b *builder.DiscountBuilder) { b.WithPercentage(1, nil) },
			},
			{
				name:   "maximum percentage",
				mutate: func(b *builder.DiscountBuilder) { b.WithPercentage(100, nil) },
			},
			{
				name:   "percentage with cap",
				mutate: func(b *builder.DiscountBuilder) { b.WithPercentage(20, &cap) },
			},
			{
				name:   "zero percentage",
				mutate: func(b *builder.DiscountBuilder) { b.WithPercentage(0, nil) },
				errIs:  discount.ErrInvalidPercentage,
			},
			{
				name:   "percentage above 100",
				mutate: func(b *builder.DiscountBuilder) { b.WithPercentage(101, nil) },
				errIs:  discount.ErrInvalidPercentage,
			},
			{
				name:   "percentage cap below 1",
				mutate: func(b *builder.DiscountBuilder) { b.WithPercentage(20, &badCap) },
				errIs:  discount.ErrInvalidMaxValue,
			},
			{
				name:   "minimum fixed value",
				mutate: func(b *builder.DiscountBuilder) { b.WithFixed(1) },
			},
			{
				name:   "zero fixed value",
				mutate: func(b *builder.DiscountBuilder) { b.WithFixed(0) },
				errIs:  discount.ErrInvalidFixedValue,
			},
			{
				name: "fixed with cap",
				mutate: func(b *builder.DiscountBuilder) {
					b.WithFixed(1000)
					b.MaxValue = &cap
				},
				errIs: discount.ErrMaxValueOnFixed,
			},
		})
	})

	t.Run("schedule validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name: "start equals end",
				mutate: func(b *builder.DiscountBuilder) {
					b.WithSchedule(b.Now, b.Now)
				},
			},
			{
				name: "end before start",
				mutate: func(b *builder.DiscountBuilder) {
					b.WithSchedule(b.Now.Add(time.Hour), b.Now)
				},
				errIs: discount.ErrEndBeforeStart,
			},
			{
				name: "start in the past",
				mutate: func(b *builder.DiscountBuilder) {
					b.WithSchedule(b.Now.Add(-time.Minute), b.Now.Add(time.Hour))
				},
				errIs: discount.ErrStartInPast,
			},
		})
	})

	t.Run("scope validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "sku-scoped with skus",
				mutate: func(b *builder.DiscountBuilder) { b.WithSkuScope(uuid.New()) },
			},
			{
				name:   "sku-scoped without skus",
				mutate: func(b *builder.DiscountBuilder) { b.WithSkuScope() },
				errIs:  discount.ErrEmptySkuScope,
			},
			{
				name: "all-products with sku list",
				mutate: func(b *builder.DiscountBuilder) {
					b.AppliesToAllProducts = true
					b.SkuIDs = []uuid.UUID{uuid.New()}
				},
				errIs: discount.ErrSkuScopeOnAll,
			},
		})
	})

	t.Run("limit validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero min order cost",
				mutate: func(b *builder.DiscountBuilder) { b.WithMinOrderCost(0) },
				errIs:  discount.ErrInvalidMinOrderCost,
			},
			{
				name:   "zero total use count",
				mutate: func(b *builder.DiscountBuilder) { b.WithUsageLimits(0, 1) },
				errIs:  discount.ErrInvalidTotalUse,
			},
			{
				name:   "zero per-user max use",
				mutate: func(b *builder.DiscountBuilder) { b.WithUsageLimits(10, 0) },
				errIs:  discount.ErrInvalidPerUserUse,
			},
		})
	})

	t.Run("all violations are reported together", func(t *testing.T) {
		_, err := builder.NewDiscountBuilder().
			WithCode("x").
			WithMinOrderCost(0).
			WithUsageLimits(0, 0).
			BuildDomain()
		require.Error(t, err)

		var verr *discount.ValidationErrors
		require.ErrorAs(t, err, &verr)
		assert.Len(t, verr.Errors, 4)
		assert.ErrorIs(t, err, discount.ErrInvalidCode)
		assert.ErrorIs(t, err, discount.ErrInvalidMinOrderCost)
		assert.ErrorIs(t, err, discount.ErrInvalidTotalUse)
		assert.ErrorIs(t, err, discount.ErrInvalidPerUserUse)
	})

	t.Run("duplicate sku ids are collapsed", func(t *testing.T) {
		skuID := uuid.New()
		d, err := builder.NewDiscountBuilder().WithSkuScope(skuID, skuID).BuildDomain()
		require.NoError(t, err)
		assert.Len(t, d.SkuIDs(), 1)
	})
}

func TestDiscount_Update(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	newDiscount := func(t *testing.T) *discount.Discount {
		t.Helper()
		d, err := builder.NewDiscountBuilder().WithNow(now).BuildDomain()
		require.NoError(t, err)
		return d
	}

	t.Run("partial update leaves omitted fields alone", func(t *testing.T) {
		d := newDiscount(t)
		code := "WINTER2026"
		later := now.Add(time.Hour)

		err := d.Update(discount.UpdateParams{Code: &code}, later)
		require.NoError(t, err)

		assert.Equal(t, "WINTER2026", d.Code().String())
		assert.Equal(t, int64(10), d.Effect().Value())
		assert.Equal(t, later, d.UpdatedAt())
	})

	t.Run("invalid update leaves entity unchanged", func(t *testing.T) {
		d := newDiscount(t)
		badCode := "x"

		err := d.Update(discount.UpdateParams{Code: &badCode}, now.Add(time.Hour))
		require.ErrorIs(t, err, discount.ErrInvalidCode)

		assert.Equal(t, "SUMMER2026", d.Code().String())
		assert.Equal(t, now, d.UpdatedAt())
	})

	t.Run("moved start must not point into the past", func(t *testing.T) {
		d := newDiscount(t)
		past := now.Add(-time.Hour)

		err := d.Update(discount.UpdateParams{StartAt: &past}, now)
		require.ErrorIs(t, err, discount.ErrStartInPast)
	})

	t.Run("unchanged start survives even when it is now in the past", func(t *testing.T) {
		d := newDiscount(t)
		cost := int64(500)

		err := d.Update(discount.UpdateParams{MinOrderCost: &cost}, now.AddDate(0, 0, 7))
		require.NoError(t, err)
		assert.Equal(t, int64(500), d.MinOrderCost())
	})

	t.Run("switching to fixed drops the percentage cap", func(t *testing.T) {
		cap := int64(5000)
		d, err := builder.NewDiscountBuilder().WithNow(now).WithPercentage(20, &cap).BuildDomain()
		require.NoError(t, err)

		kind := discount.KindFixed
		value := int64(2000)
		err = d.Update(discount.UpdateParams{Kind: &kind, Value: &value}, now)
		require.NoError(t, err)

		assert.Equal(t, discount.KindFixed, d.Effect().Kind())
		assert.Nil(t, d.Effect().MaxValue())
	})

	t.Run("clear max value", func(t *testing.T) {
		cap := int64(5000)
		d, err := builder.NewDiscountBuilder().WithNow(now).WithPercentage(20, &cap).BuildDomain()
		require.NoError(t, err)

		err = d.Update(discount.UpdateParams{ClearMaxValue: true}, now)
		require.NoError(t, err)
		assert.Nil(t, d.Effect().MaxValue())
	})
}

func TestDiscount_Lifecycle(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	d, err := builder.NewDiscountBuilder().WithNow(now).BuildDomain()
	require.NoError(t, err)

	assert.False(t, d.IsPublished())

	d.Publish(now.Add(time.Minute))
	assert.True(t, d.IsPublished())
	assert.Equal(t, now.Add(time.Minute), d.UpdatedAt())

	d.SetAvailability(false, now.Add(2*time.Minute))
	assert.False(t, d.IsAvailable())

	d.Unpublish(now.Add(3*time.Minute))
	assert.False(t, d.IsPublished())
}

func TestReconstruct(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	params := discount.ReconstructParams{
		ID:                   uuid.New(),
		Code:                 "LOYAL10",
		Kind:                 discount.KindPercentage,
		Value:                10,
		AppliesToAllProducts: true,
		MinOrderCost:         1,
		TotalUseCount:        5,
		UsedCount:            5,
		PerUserMaxUse:        1,
		StartAt:              now.AddDate(0, -1, 0),
		EndAt:                now.AddDate(0, 1, 0),
		IsAvailable:          true,
		IsPublished:          true,
		CreatedAt:            now.AddDate(0, -1, 0),
		UpdatedAt:            now,
	}

	t.Run("a stored past start is accepted", func(t *testing.T) {
		d, err := discount.Reconstruct(params)
		require.NoError(t, err)
		assert.Equal(t, 0, d.RemainingUses())
	})

	t.Run("used count above total is rejected", func(t *testing.T) {
		bad := params
		bad.UsedCount = 6
		_, err := discount.Reconstruct(bad)
		require.ErrorIs(t, err, discount.ErrUsedCountOutOfRange)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewDiscountBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
