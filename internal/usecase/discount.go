package usecase

import (
	"context"
	"time"

	"multimart/internal/domain/discount"
	"multimart/internal/domain/user"
	"multimart/internal/infra"
	"multimart/internal/infra/db"
	"multimart/internal/pkg/clock"
	"multimart/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrDiscountNotFound   = errs.New("discount not found")
	ErrDiscountValidation = errs.New("discount validation failed")
	ErrDuplicateCode      = errs.New("discount code already in use")
	ErrForbidden          = errs.New("operation not permitted for this actor")
)

// DiscountRepository is the persistence port for discounts. Mutating methods
// take the transaction they must run in; reads go through the pool directly.
type DiscountRepository interface {
	Create(ctx context.Context, tx db.DBTX, d *discount.Discount) error
	Save(ctx context.Context, tx db.DBTX, d *discount.Discount) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*discount.Discount, error)
	FindByCode(ctx context.Context, code string, shopID *uuid.UUID) (*discount.Discount, error)
	ListByShop(ctx context.Context, shopID uuid.UUID) ([]*discount.Discount, error)
	ListPublished(ctx context.Context) ([]*discount.Discount, error)
	CountRedemptions(ctx context.Context, discountID, userID uuid.UUID) (int, error)
	IncrementUsage(ctx context.Context, tx db.DBTX, discountID, userID uuid.UUID) error
}

// Actor identifies who is performing a lifecycle operation. Shop owners act
// on their own shop's discounts; admins act on platform-wide ones.
type Actor struct {
	UserID uuid.UUID
	Role   user.Role
	ShopID *uuid.UUID
}

type CreateDiscountInput struct {
	Code                 string
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
}

type UpdateDiscountInput struct {
	Code                 *string
	Kind                 *discount.Kind
	Value                *int64
	MaxValue             *int64
	ClearMaxValue        bool
	AppliesToAllProducts *bool
	SkuIDs               []uuid.UUID
	MinOrderCost         *int64
	TotalUseCount        *int
	PerUserMaxUse        *int
	StartAt              *time.Time
	EndAt                *time.Time
}

type DiscountUseCase interface {
	Create(ctx context.Context, actor Actor, input CreateDiscountInput) (*discount.Discount, error)
	Update(ctx context.Context, actor Actor, id uuid.UUID, input UpdateDiscountInput) (*discount.Discount, error)
	Publish(ctx context.Context, actor Actor, id uuid.UUID) (*discount.Discount, error)
	Unpublish(ctx context.Context, actor Actor, id uuid.UUID) (*discount.Discount, error)
	SetAvailability(ctx context.Context, actor Actor, id uuid.UUID, available bool) (*discount.Discount, error)
	Delete(ctx context.Context, actor Actor, id uuid.UUID) error
	GetByID(ctx context.Context, actor Actor, id uuid.UUID) (*discount.Discount, error)
	ListByShop(ctx context.Context, actor Actor, shopID uuid.UUID) ([]*discount.Discount, error)
	ListPublished(ctx context.Context) ([]*discount.Discount, error)
}

type discountUseCaseImpl struct {
	repo  DiscountRepository
	pool  *pgxpool.Pool
	clock clock.Clock
}

func NewDiscountUseCase(repo DiscountRepository, pool *pgxpool.Pool, clk clock.Clock) DiscountUseCase {
	return &discountUseCaseImpl{repo: repo, pool: pool, clock: clk}
}

func (u *discountUseCaseImpl) Create(ctx context.Context, actor Actor, input CreateDiscountInput) (*discount.Discount, error) {
	ownerShop, err := ownershipScope(actor)
	if err != nil {
		return nil, err
	}

	d, err := discount.NewDiscount(discount.NewDiscountParams{
		Code:                 input.Code,
		ShopID:               ownerShop,
		Kind:                 input.Kind,
		Value:                input.Value,
		MaxValue:             input.MaxValue,
		AppliesToAllProducts: input.AppliesToAllProducts,
		SkuIDs:               input.SkuIDs,
		MinOrderCost:         input.MinOrderCost,
		TotalUseCount:        input.TotalUseCount,
		PerUserMaxUse:        input.PerUserMaxUse,
		StartAt:              input.StartAt,
		EndAt:                input.EndAt,
	}, u.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrDiscountValidation)
	}

	_, err = db.RunInTx(ctx, u.pool, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, u.repo.Create(ctx, tx, d)
	})
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return d, nil
}

func (u *discountUseCaseImpl) Update(ctx context.Context, actor Actor, id uuid.UUID, input UpdateDiscountInput) (*discount.Discount, error) {
	return u.mutate(ctx, actor, id, func(d *discount.Discount) error {
		err := d.Update(discount.UpdateParams{
			Code:                 input.Code,
			Kind:                 input.Kind,
			Value:                input.Value,
			MaxValue:             input.MaxValue,
			ClearMaxValue:        input.ClearMaxValue,
			AppliesToAllProducts: input.AppliesToAllProducts,
			SkuIDs:               input.SkuIDs,
			MinOrderCost:         input.MinOrderCost,
			TotalUseCount:        input.TotalUseCount,
			PerUserMaxUse:        input.PerUserMaxUse,
			StartAt:              input.StartAt,
			EndAt:                input.EndAt,
		}, u.clock.Now())
		if err != nil {
			return errs.Mark(err, ErrDiscountValidation)
		}
		return nil
	})
}

func (u *discountUseCaseImpl) Publish(ctx context.Context, actor Actor, id uuid.UUID) (*discount.Discount, error) {
	return u.mutate(ctx, actor, id, func(d *discount.Discount) error {
		d.Publish(u.clock.Now())
		return nil
	})
}

func (u *discountUseCaseImpl) Unpublish(ctx context.Context, actor Actor, id uuid.UUID) (*discount.Discount, error) {
	return u.mutate(ctx, actor, id, func(d *discount.Discount) error {
		d.Unpublish(u.clock.Now())
		return nil
	})
}

func (u *discountUseCaseImpl) SetAvailability(ctx context.Context, actor Actor, id uuid.UUID, available bool) (*discount.Discount, error) {
	return u.mutate(ctx, actor, id, func(d *discount.Discount) error {
		d.SetAvailability(available, u.clock.Now())
		return nil
	})
}

func (u *discountUseCaseImpl) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	d, err := u.loadOwned(ctx, actor, id)
	if err != nil {
		return err
	}

	_, err = db.RunInTx(ctx, u.pool, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, u.repo.Delete(ctx, tx, d.ID())
	})
	if err != nil {
		return mapRepoErr(err)
	}
	return nil
}

func (u *discountUseCaseImpl) GetByID(ctx context.Context, actor Actor, id uuid.UUID) (*discount.Discount, error) {
	return u.loadOwned(ctx, actor, id)
}

func (u *discountUseCaseImpl) ListByShop(ctx context.Context, actor Actor, shopID uuid.UUID) ([]*discount.Discount, error) {
	if actor.Role != user.RoleAdmin {
		if actor.ShopID == nil || *actor.ShopID != shopID {
			return nil, ErrForbidden
		}
	}

	discounts, err := u.repo.ListByShop(ctx, shopID)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return discounts, nil
}

func (u *discountUseCaseImpl) ListPublished(ctx context.Context) ([]*discount.Discount, error) {
	discounts, err := u.repo.ListPublished(ctx)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return discounts, nil
}

// mutate loads an owned discount, applies fn and persists the result in one
// transaction.
func (u *discountUseCaseImpl) mutate(
	ctx context.Context,
	actor Actor,
	id uuid.UUID,
	fn func(d *discount.Discount) error,
) (*discount.Discount, error) {
	d, err := u.loadOwned(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if err := fn(d); err != nil {
		return nil, err
	}

	_, err = db.RunInTx(ctx, u.pool, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, u.repo.Save(ctx, tx, d)
	})
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return d, nil
}

func (u *discountUseCaseImpl) loadOwned(ctx context.Context, actor Actor, id uuid.UUID) (*discount.Discount, error) {
	d, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}

	if err := authorize(actor, d); err != nil {
		return nil, err
	}
	return d, nil
}

// ownershipScope decides which scope a new discount belongs to. Admins create
// platform-wide discounts; shop owners create discounts for their own shop.
func ownershipScope(actor Actor) (*uuid.UUID, error) {
	switch actor.Role {
	case user.RoleAdmin:
		return nil, nil
	case user.RoleShopOwner:
		if actor.ShopID == nil {
			return nil, ErrForbidden
		}
		return actor.ShopID, nil
	default:
		return nil, ErrForbidden
	}
}

func authorize(actor Actor, d *discount.Discount) error {
	if actor.Role == user.RoleAdmin {
		return nil
	}
	if actor.Role == user.RoleShopOwner && !d.IsPlatformWide() &&
		actor.ShopID != nil && *actor.ShopID == *d.ShopID() {
		return nil
	}
	return ErrForbidden
}

func mapRepoErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, ErrDiscountNotFound)
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Mark(err, ErrDuplicateCode)
	default:
		return errs.Mark(err, ErrDependencyFailure)
	}
}
