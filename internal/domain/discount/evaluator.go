package discount

import (
	"time"

	"github.com/google/uuid"
)

// Reason enumerates why a discount is ineligible, in rule order. The first
// failing rule wins; later rules are never consulted.
type Reason string

const (
	ReasonUnavailable      Reason = "unavailable"
	ReasonNotStarted       Reason = "not_started"
	ReasonExpired          Reason = "expired"
	ReasonExhausted        Reason = "exhausted"
	ReasonUserLimitReached Reason = "user_limit_reached"
	ReasonBelowMinimum     Reason = "below_minimum"
	ReasonNoEligibleSku    Reason = "no_eligible_sku"
)

func (r Reason) String() string {
	return string(r)
}

// Context is everything Evaluate needs to decide eligibility for one
// candidate order: the subtotal the discount would apply to, the SKUs in that
// order, the acting user and their prior redemptions, and the current time.
type Context struct {
	OrderSubtotal        int64
	SkuIDs               []uuid.UUID
	UserID               uuid.UUID
	Now                  time.Time
	UserPriorRedemptions int
}

type Result struct {
	eligible bool
	amount   int64
	reason   Reason
}

func Eligible(amount int64) Result {
	return Result{eligible: true, amount: amount}
}

func Ineligible(reason Reason) Result {
	return Result{reason: reason}
}

func (r Result) IsEligible() bool { return r.eligible }
func (r Result) Amount() int64    { return r.amount }
func (r Result) Reason() Reason   { return r.reason }

// Evaluate decides whether d applies to the order described by evalCtx and,
// if so, its monetary effect. Pure function: never mutates d, no I/O, and
// identical inputs always produce identical results. Persisting the usage
// increment after a committed checkout is the caller's responsibility.
func Evaluate(d *Discount, evalCtx Context) Result {
	if !d.isAvailable || !d.isPublished {
		return Ineligible(ReasonUnavailable)
	}

	if evalCtx.Now.Before(d.startAt) {
		return Ineligible(ReasonNotStarted)
	}
	if evalCtx.Now.After(d.endAt) {
		return Ineligible(ReasonExpired)
	}

	if d.RemainingUses() <= 0 {
		return Ineligible(ReasonExhausted)
	}

	if evalCtx.UserPriorRedemptions >= d.perUserMaxUse {
		return Ineligible(ReasonUserLimitReached)
	}

	if evalCtx.OrderSubtotal < d.minOrderCost {
		return Ineligible(ReasonBelowMinimum)
	}

	if !d.appliesToAllProducts && !intersects(d.skuIDs, evalCtx.SkuIDs) {
		return Ineligible(ReasonNoEligibleSku)
	}

	return Eligible(d.effect.AmountFor(evalCtx.OrderSubtotal))
}

func intersects(scope, order []uuid.UUID) bool {
	if len(scope) == 0 || len(order) == 0 {
		return false
	}
	set := make(map[uuid.UUID]struct{}, len(scope))
	for _, id := range scope {
		set[id] = struct{}{}
	}
	for _, id := range order {
		if _, ok := set[id]; ok {
			return true
		}
	}
	return false
}
