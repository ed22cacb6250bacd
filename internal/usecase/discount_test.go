//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"multimart/internal/domain/discount"
	"multimart/internal/domain/user"
	"multimart/internal/infra"
	"multimart/internal/pkg/clock"
	"multimart/internal/usecase"
	"multimart/tests/common/builder"
	usecasemock "multimart/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newDiscountUseCase(t *testing.T) (usecase.DiscountUseCase, *usecasemock.MockDiscountRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := usecasemock.NewMockDiscountRepository(ctrl)
	clk := clock.NewFixedClock(time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC))
	return usecase.NewDiscountUseCase(repo, nil, clk), repo
}

func shopOwnerActor(shopID uuid.UUID) usecase.Actor {
	return usecase.Actor{UserID: uuid.New(), Role: user.RoleShopOwner, ShopID: &shopID}
}

func TestDiscountUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("error: customer cannot create discounts", func(t *testing.T) {
		uc, _ := newDiscountUseCase(t)

		_, err := uc.Create(ctx, usecase.Actor{UserID: uuid.New(), Role: user.RoleCustomer}, usecase.CreateDiscountInput{})
		require.ErrorIs(t, err, usecase.ErrForbidden)
	})

	t.Run("error: shop owner without shop claim", func(t *testing.T) {
		uc, _ := newDiscountUseCase(t)

		_, err := uc.Create(ctx, usecase.Actor{UserID: uuid.New(), Role: user.RoleShopOwner}, usecase.CreateDiscountInput{})
		require.ErrorIs(t, err, usecase.ErrForbidden)
	})

	t.Run("error: invalid input surfaces every violation", func(t *testing.T) {
		uc, _ := newDiscountUseCase(t)
		now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

		_, err := uc.Create(ctx, shopOwnerActor(uuid.New()), usecase.CreateDiscountInput{
			Code:                 "x",
			Kind:                 discount.KindPercentage,
			Value:                0,
			AppliesToAllProducts: true,
			MinOrderCost:         0,
			TotalUseCount:        0,
			PerUserMaxUse:        0,
			StartAt:              now,
			EndAt:                now.Add(time.Hour),
		})
		require.ErrorIs(t, err, usecase.ErrDiscountValidation)

		var verr *discount.ValidationErrors
		require.ErrorAs(t, err, &verr)
		assert.Len(t, verr.Errors, 5)
	})
}

func TestDiscountUseCase_Authorization(t *testing.T) {
	ctx := context.Background()
	shopID := uuid.New()
	otherShop := uuid.New()

	ownedDiscount := func(t *testing.T) *discount.Discount {
		t.Helper()
		d, err := builder.NewDiscountBuilder().WithShopID(&shopID).BuildDomain()
		require.NoError(t, err)
		return d
	}

	t.Run("error: owner of another shop cannot read the discount", func(t *testing.T) {
		uc, repo := newDiscountUseCase(t)
		d := ownedDiscount(t)

		repo.EXPECT().FindByID(ctx, d.ID()).Return(d, nil)

		_, err := uc.GetByID(ctx, shopOwnerActor(otherShop), d.ID())
		require.ErrorIs(t, err, usecase.ErrForbidden)
	})

	t.Run("error: shop owner cannot touch platform discounts", func(t *testing.T) {
		uc, repo := newDiscountUseCase(t)
		d, err := builder.NewDiscountBuilder().AsPlatformWide().BuildDomain()
		require.NoError(t, err)

		repo.EXPECT().FindByID(ctx, d.ID()).Return(d, nil)

		_, err = uc.GetByID(ctx, shopOwnerActor(shopID), d.ID())
		require.ErrorIs(t, err, usecase.ErrForbidden)
	})

	t.Run("success: admin can read any discount", func(t *testing.T) {
		uc, repo := newDiscountUseCase(t)
		d := ownedDiscount(t)

		repo.EXPECT().FindByID(ctx, d.ID()).Return(d, nil)

		got, err := uc.GetByID(ctx, usecase.Actor{UserID: uuid.New(), Role: user.RoleAdmin}, d.ID())
		require.NoError(t, err)
		assert.Equal(t, d.ID(), got.ID())
	})

	t.Run("error: missing discount maps to not found", func(t *testing.T) {
		uc, repo := newDiscountUseCase(t)
		id := uuid.New()

		repo.EXPECT().FindByID(ctx, id).
			Return(nil, infra.WrapRepoErr("discount not found", errors.New("no rows"), infra.KindNotFound))

		_, err := uc.GetByID(ctx, shopOwnerActor(shopID), id)
		require.ErrorIs(t, err, usecase.ErrDiscountNotFound)
	})

	t.Run("error: listing another shop's discounts", func(t *testing.T) {
		uc, _ := newDiscountUseCase(t)

		_, err := uc.ListByShop(ctx, shopOwnerActor(shopID), otherShop)
		require.ErrorIs(t, err, usecase.ErrForbidden)
	})

	t.Run("success: owner lists own shop", func(t *testing.T) {
		uc, repo := newDiscountUseCase(t)
		d := ownedDiscount(t)

		repo.EXPECT().ListByShop(ctx, shopID).Return([]*discount.Discount{d}, nil)

		got, err := uc.ListByShop(ctx, shopOwnerActor(shopID), shopID)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})
}

func TestDiscountUseCase_ListPublished(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		uc, repo := newDiscountUseCase(t)
		d, err := builder.NewDiscountBuilder().BuildPublished()
		require.NoError(t, err)

		repo.EXPECT().ListPublished(ctx).Return([]*discount.Discount{d}, nil)

		got, err := uc.ListPublished(ctx)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("error: repository failure", func(t *testing.T) {
		uc, repo := newDiscountUseCase(t)

		repo.EXPECT().ListPublished(ctx).
			Return(nil, infra.WrapRepoErr("failed to list published discounts", errors.New("timeout")))

		_, err := uc.ListPublished(ctx)
		require.ErrorIs(t, err, usecase.ErrDependencyFailure)
	})
}
