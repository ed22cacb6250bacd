package usecase

import (
	"context"
	"fmt"

	"multimart/internal/domain/cart"
	"multimart/internal/domain/checkout"
	"multimart/internal/domain/discount"
	"multimart/internal/infra"
	"multimart/internal/infra/db"
	"multimart/internal/pkg/clock"
	"multimart/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrEmptyCart               = errs.New("cart is empty")
	ErrInvalidDiscount         = errs.New("invalid discount code")
	ErrDiscountNotApplicable   = errs.New("discount not applicable")
	ErrConcurrentLimitExceeded = errs.New("discount usage limit reached")
	ErrDependencyFailure       = errs.New("dependency failure")
)

// InvalidDiscountError carries which code failed to resolve and for which
// scope (nil ShopID means the platform scope).
type InvalidDiscountError struct {
	Code   string
	ShopID *uuid.UUID
}

func (e *InvalidDiscountError) Error() string {
	if e.ShopID == nil {
		return fmt.Sprintf("platform discount code %q not found", e.Code)
	}
	return fmt.Sprintf("discount code %q not found for shop %s", e.Code, e.ShopID)
}

// NotApplicableError carries the first eligibility rule the code failed, so
// the UI can say exactly why ("expired", "minimum order not met", ...).
type NotApplicableError struct {
	Code   string
	Reason discount.Reason
}

func (e *NotApplicableError) Error() string {
	return fmt.Sprintf("discount code %q not applicable: %s", e.Code, e.Reason)
}

// CheckoutSelection is the user's chosen codes for one checkout attempt: at
// most one code per shop plus at most one platform-wide code.
type CheckoutSelection struct {
	PlatformCode *string
	ShopCodes    map[uuid.UUID]string
}

type CartReadStore interface {
	GetCartSnapshot(ctx context.Context, userID uuid.UUID) (*cart.Snapshot, error)
}

type ShippingFeeProvider interface {
	FeeForShop(ctx context.Context, shopID uuid.UUID) (int64, error)
}

type CheckoutUseCase interface {
	// ComputeCheckout is a read-only preview: it commits nothing and can be
	// re-run freely until the user confirms.
	ComputeCheckout(ctx context.Context, userID uuid.UUID, selection CheckoutSelection) (*checkout.Summary, error)
	// ConfirmCheckout burns usage for the applied discounts after payment is
	// confirmed. All increments land in one transaction or none do.
	ConfirmCheckout(ctx context.Context, userID uuid.UUID, discountIDs []uuid.UUID) error
}

type checkoutUseCaseImpl struct {
	cartStore    CartReadStore
	discountRepo DiscountRepository
	shippingFees ShippingFeeProvider
	pool         *pgxpool.Pool
	clock        clock.Clock
}

func NewCheckoutUseCase(
	cartStore CartReadStore,
	discountRepo DiscountRepository,
	shippingFees ShippingFeeProvider,
	pool *pgxpool.Pool,
	clk clock.Clock,
) CheckoutUseCase {
	return &checkoutUseCaseImpl{
		cartStore:    cartStore,
		discountRepo: discountRepo,
		shippingFees: shippingFees,
		pool:         pool,
		clock:        clk,
	}
}

func (u *checkoutUseCaseImpl) ComputeCheckout(
	ctx context.Context,
	userID uuid.UUID,
	selection CheckoutSelection,
) (*checkout.Summary, error) {
	snapshot, err := u.cartStore.GetCartSnapshot(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrDependencyFailure)
	}

	groups, err := cart.Partition(snapshot)
	if err != nil {
		return nil, errs.Mark(err, ErrEmptyCart)
	}

	// every selected shop code must belong to a shop actually in the cart
	groupIndex := make(map[uuid.UUID]*cart.ShopGroup, len(groups))
	for i := range groups {
		groupIndex[groups[i].ShopID] = &groups[i]
	}
	for shopID := range selection.ShopCodes {
		if _, ok := groupIndex[shopID]; !ok {
			shopID := shopID
			return nil, errs.Mark(
				&InvalidDiscountError{Code: selection.ShopCodes[shopID], ShopID: &shopID},
				ErrInvalidDiscount,
			)
		}
	}

	now := u.clock.Now()
	shopSummaries := make([]checkout.ShopSummary, 0, len(groups))

	for i := range groups {
		group := &groups[i]

		summary := checkout.ShopSummary{
			ShopID:   group.ShopID,
			ShopName: group.ShopName,
			Items:    group.Items,
			Subtotal: group.Subtotal,
		}

		if code, ok := selection.ShopCodes[group.ShopID]; ok {
			amount, err := u.resolveAndEvaluate(ctx, code, &group.ShopID, discount.Context{
				OrderSubtotal: group.Subtotal,
				SkuIDs:        group.SkuIDs(),
				UserID:        userID,
				Now:           now,
			})
			if err != nil {
				return nil, err
			}
			summary.DiscountAmount = amount
			summary.DiscountCode = code
		}

		fee, err := u.shippingFees.FeeForShop(ctx, group.ShopID)
		if err != nil {
			return nil, errs.Mark(err, ErrDependencyFailure)
		}
		summary.ShippingFee = fee

		shopSummaries = append(shopSummaries, summary)
	}

	var platformAmount int64
	var platformCode string
	if selection.PlatformCode != nil {
		platformCode = *selection.PlatformCode
		platformAmount, err = u.resolveAndEvaluate(ctx, platformCode, nil, discount.Context{
			OrderSubtotal: snapshot.Subtotal(),
			SkuIDs:        snapshot.SkuIDs(),
			UserID:        userID,
			Now:           now,
		})
		if err != nil {
			return nil, err
		}
	}

	return checkout.Assemble(userID, shopSummaries, platformAmount, platformCode), nil
}

// resolveAndEvaluate looks the code up in its ownership scope, evaluates
// eligibility and returns the discount amount. An unknown code or an
// ineligible discount fails the whole checkout; silently dropping a selected
// discount would charge the user more than they expected.
func (u *checkoutUseCaseImpl) resolveAndEvaluate(
	ctx context.Context,
	code string,
	shopID *uuid.UUID,
	evalCtx discount.Context,
) (int64, error) {
	d, err := u.discountRepo.FindByCode(ctx, code, shopID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return 0, errs.Mark(&InvalidDiscountError{Code: code, ShopID: shopID}, ErrInvalidDiscount)
		}
		return 0, errs.Mark(err, ErrDependencyFailure)
	}

	prior, err := u.discountRepo.CountRedemptions(ctx, d.ID(), evalCtx.UserID)
	if err != nil {
		return 0, errs.Mark(err, ErrDependencyFailure)
	}
	evalCtx.UserPriorRedemptions = prior

	result := discount.Evaluate(d, evalCtx)
	if !result.IsEligible() {
		return 0, errs.Mark(&NotApplicableError{Code: code, Reason: result.Reason()}, ErrDiscountNotApplicable)
	}
	return result.Amount(), nil
}

func (u *checkoutUseCaseImpl) ConfirmCheckout(ctx context.Context, userID uuid.UUID, discountIDs []uuid.UUID) error {
	if len(discountIDs) == 0 {
		return nil
	}

	_, err := db.RunInTx(ctx, u.pool, func(tx db.DBTX) (struct{}, error) {
		for _, id := range discountIDs {
			if err := u.discountRepo.IncrementUsage(ctx, tx, id, userID); err != nil {
				return struct{}{}, err
			}
		}
		return struct{}{}, nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindLimitExceeded) {
			return errs.Mark(err, ErrConcurrentLimitExceeded)
		}
		return errs.Mark(err, ErrDependencyFailure)
	}
	return nil
}
