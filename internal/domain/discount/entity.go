package discount

import (
	"errors"
	"strings"
	"time"

	"multimart/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrStartInPast         = errors.New("start time cannot be in the past")
	ErrEndBeforeStart      = errors.New("end time must not be before start time")
	ErrInvalidTotalUse     = errors.New("total use count must be at least 1")
	ErrInvalidPerUserUse   = errors.New("per-user max use must be at least 1")
	ErrEmptySkuScope       = errors.New("scoped discounts require at least one sku")
	ErrSkuScopeOnAll       = errors.New("all-product discounts must not carry a sku scope")
	ErrUsedCountOutOfRange = errors.New("used count cannot exceed total use count")
)

// ValidationErrors collects every rule violation found while constructing or
// updating a Discount, so callers can surface all of them at once.
type ValidationErrors struct {
	Errors []error
}

func (v *ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v.Errors))
	for _, err := range v.Errors {
		msgs = append(msgs, err.Error())
	}
	return "discount validation failed: " + strings.Join(msgs, "; ")
}

func (v *ValidationErrors) Is(target error) bool {
	for _, err := range v.Errors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func (v *ValidationErrors) add(err error) {
	if err != nil {
		v.Errors = append(v.Errors, err)
	}
}

func (v *ValidationErrors) orNil() error {
	if len(v.Errors) == 0 {
		return nil
	}
	return v
}

// Discount is a promotional rule owned by one shop, or platform-wide when
// shopID is nil. All monetary fields are minor currency units.
type Discount struct {
	id                   uuid.UUID
	code                 Code
	shopID               *uuid.UUID
	effect               Effect
	appliesToAllProducts bool
	skuIDs               []uuid.UUID
	minOrderCost         int64
	totalUseCount        int
	usedCount            int
	perUserMaxUse        int
	startAt              time.Time
	endAt                time.Time
	isAvailable          bool
	isPublished          bool
	createdAt            time.Time
	updatedAt            time.Time
}

type NewDiscountParams struct {
	Code                 string
	ShopID               *uuid.UUID
	Kind                 Kind
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

// NewDiscount validates every invariant and returns all violations together.
// now is injected so creation-time rules stay testable.
func NewDiscount(params NewDiscountParams, now time.Time) (*Discount, error) {
	verr := &ValidationErrors{}

	code, err := NewCode(params.Code)
	verr.add(err)

	effect, err := NewEffect(params.Kind, params.Value, params.MaxValue)
	verr.add(err)

	verr.add(validateSchedule(params.StartAt, params.EndAt, &now))
	verr.add(validateScope(params.AppliesToAllProducts, params.SkuIDs))
	verr.addLimits(params.MinOrderCost, params.TotalUseCount, params.PerUserMaxUse)

	if err := verr.orNil(); err != nil {
		return nil, err
	}

	return &Discount{
		id:                   uuid.New(),
		code:                 code,
		shopID:               params.ShopID,
		effect:               effect,
		appliesToAllProducts: params.AppliesToAllProducts,
		skuIDs:               dedupeSkuIDs(params.SkuIDs),
		minOrderCost:         params.MinOrderCost,
		totalUseCount:        params.TotalUseCount,
		usedCount:            0,
		perUserMaxUse:        params.PerUserMaxUse,
		startAt:              params.StartAt,
		endAt:                params.EndAt,
		isAvailable:          true,
		isPublished:          false,
		createdAt:            now,
		updatedAt:            now,
	}, nil
}

type ReconstructParams struct {
	ID                   uuid.UUID
	Code                 string
	ShopID               *uuid.UUID
	Kind                 Kind
	Value                int64
	MaxValue             *int64
	AppliesToAllProducts bool
	SkuIDs               []uuid.UUID
	MinOrderCost         int64
	TotalUseCount        int
	UsedCount            int
	PerUserMaxUse        int
	StartAt              time.Time
	EndAt                time.Time
	IsAvailable          bool
	IsPublished          bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Reconstruct rebuilds a Discount from persisted state. Stored rows are
// trusted, so only structural rules are re-checked (the creation-time
// "start not in the past" rule does not apply here).
func Reconstruct(params ReconstructParams) (*Discount, error) {
	verr := &ValidationErrors{}

	code, err := NewCode(params.Code)
	verr.add(err)

	effect, err := NewEffect(params.Kind, params.Value, params.MaxValue)
	verr.add(err)

	verr.add(validateSchedule(params.StartAt, params.EndAt, nil))
	verr.add(validateScope(params.AppliesToAllProducts, params.SkuIDs))
	verr.addLimits(params.MinOrderCost, params.TotalUseCount, params.PerUserMaxUse)

	if params.UsedCount < 0 || params.UsedCount > params.TotalUseCount {
		verr.add(ErrUsedCountOutOfRange)
	}

	if err := verr.orNil(); err != nil {
		return nil, err
	}

	return &Discount{
		id:                   params.ID,
		code:                 code,
		shopID:               params.ShopID,
		effect:               effect,
		appliesToAllProducts: params.AppliesToAllProducts,
		skuIDs:               params.SkuIDs,
		minOrderCost:         params.MinOrderCost,
		totalUseCount:        params.TotalUseCount,
		usedCount:            params.UsedCount,
		perUserMaxUse:        params.PerUserMaxUse,
		startAt:              params.StartAt,
		endAt:                params.EndAt,
		isAvailable:          params.IsAvailable,
		isPublished:          params.IsPublished,
		createdAt:            params.CreatedAt,
		updatedAt:            params.UpdatedAt,
	}, nil
}

// UpdateParams is a partial patch; nil fields are left unchanged. Changed
// fields go through the same validation rules as creation.
type UpdateParams struct {
	Code                 *string
	Kind                 *Kind
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

func (d *Discount) Update(params UpdateParams, now time.Time) error {
	verr := &ValidationErrors{}

	code := d.code
	if params.Code != nil {
		parsed, err := NewCode(*params.Code)
		verr.add(err)
		code = parsed
	}

	kind := patch.Coalesce(params.Kind, d.effect.kind)
	value := patch.Coalesce(params.Value, d.effect.value)
	maxValue := d.effect.maxValue
	if params.ClearMaxValue {
		maxValue = nil
	} else if params.MaxValue != nil {
		maxValue = params.MaxValue
	}
	if kind == KindFixed {
		// switching kinds implicitly drops a stale percentage cap
		if params.Kind != nil && params.MaxValue == nil {
			maxValue = nil
		}
	}
	effect, err := NewEffect(kind, value, maxValue)
	verr.add(err)

	startAt := patch.Coalesce(params.StartAt, d.startAt)
	endAt := patch.Coalesce(params.EndAt, d.endAt)
	// only a moved start must not point into the past
	var creationRef *time.Time
	if params.StartAt != nil {
		creationRef = &now
	}
	verr.add(validateSchedule(startAt, endAt, creationRef))

	appliesToAll := patch.Coalesce(params.AppliesToAllProducts, d.appliesToAllProducts)
	skuIDs := d.skuIDs
	if params.SkuIDs != nil {
		skuIDs = dedupeSkuIDs(params.SkuIDs)
	}
	verr.add(validateScope(appliesToAll, skuIDs))

	minOrderCost := patch.Coalesce(params.MinOrderCost, d.minOrderCost)
	totalUseCount := patch.Coalesce(params.TotalUseCount, d.totalUseCount)
	perUserMaxUse := patch.Coalesce(params.PerUserMaxUse, d.perUserMaxUse)
	verr.addLimits(minOrderCost, totalUseCount, perUserMaxUse)

	if d.usedCount > totalUseCount {
		verr.add(ErrUsedCountOutOfRange)
	}

	if err := verr.orNil(); err != nil {
		return err
	}

	d.code = code
	d.effect = effect
	d.appliesToAllProducts = appliesToAll
	d.skuIDs = skuIDs
	d.minOrderCost = minOrderCost
	d.totalUseCount = totalUseCount
	d.perUserMaxUse = perUserMaxUse
	d.startAt = startAt
	d.endAt = endAt
	d.updatedAt = now
	return nil
}

func (d *Discount) Publish(now time.Time) {
	d.isPublished = true
	d.updatedAt = now
}

func (d *Discount) Unpublish(now time.Time) {
	d.isPublished = false
	d.updatedAt = now
}

func (d *Discount) SetAvailability(available bool, now time.Time) {
	d.isAvailable = available
	d.updatedAt = now
}

func (d *Discount) ID() uuid.UUID             { return d.id }
func (d *Discount) Code() Code                { return d.code }
func (d *Discount) ShopID() *uuid.UUID        { return d.shopID }
func (d *Discount) Effect() Effect            { return d.effect }
func (d *Discount) AppliesToAllProducts() bool { return d.appliesToAllProducts }
func (d *Discount) SkuIDs() []uuid.UUID       { return d.skuIDs }
func (d *Discount) MinOrderCost() int64       { return d.minOrderCost }
func (d *Discount) TotalUseCount() int        { return d.totalUseCount }
func (d *Discount) UsedCount() int            { return d.usedCount }
func (d *Discount) PerUserMaxUse() int        { return d.perUserMaxUse }
func (d *Discount) StartAt() time.Time        { return d.startAt }
func (d *Discount) EndAt() time.Time          { return d.endAt }
func (d *Discount) IsAvailable() bool         { return d.isAvailable }
func (d *Discount) IsPublished() bool         { return d.isPublished }
func (d *Discount) CreatedAt() time.Time      { return d.createdAt }
func (d *Discount) UpdatedAt() time.Time      { return d.updatedAt }

func (d *Discount) IsPlatformWide() bool {
	return d.shopID == nil
}

func (d *Discount) RemainingUses() int {
	return d.totalUseCount - d.usedCount
}

func validateSchedule(startAt, endAt time.Time, now *time.Time) error {
	if endAt.Before(startAt) {
		return ErrEndBeforeStart
	}
	if now != nil && startAt.Before(*now) {
		return ErrStartInPast
	}
	return nil
}

func validateScope(appliesToAll bool, skuIDs []uuid.UUID) error {
	if appliesToAll && len(skuIDs) > 0 {
		return ErrSkuScopeOnAll
	}
	if !appliesToAll && len(skuIDs) == 0 {
		return ErrEmptySkuScope
	}
	return nil
}

func (v *ValidationErrors) addLimits(minOrderCost int64, totalUseCount, perUserMaxUse int) {
	if minOrderCost < 1 {
		v.add(ErrInvalidMinOrderCost)
	}
	if totalUseCount < 1 {
		v.add(ErrInvalidTotalUse)
	}
	if perUserMaxUse < 1 {
		v.add(ErrInvalidPerUserUse)
	}
}

func dedupeSkuIDs(ids []uuid.UUID) []uuid.UUID {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
