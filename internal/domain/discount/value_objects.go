package discount

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidCode         = errors.New("invalid discount code format")
	ErrInvalidKind         = errors.New("invalid discount kind")
	ErrInvalidPercentage   = errors.New("percentage value must be between 1 and 100")
	ErrInvalidFixedValue   = errors.New("fixed value must be at least 1")
	ErrInvalidMaxValue     = errors.New("max value must be at least 1")
	ErrMaxValueOnFixed     = errors.New("fixed discounts cannot carry a max value cap")
	ErrInvalidMinOrderCost = errors.New("minimum order cost must be at least 1")
)

var codeRegex = regexp.MustCompile(`^[A-Z0-9]{6,10}$`)

// Code is a customer-facing redemption code, 6-10 upper-case alphanumerics.
type Code string

func NewCode(raw string) (Code, error) {
	normalized := strings.TrimSpace(strings.ToUpper(raw))
	if !codeRegex.MatchString(normalized) {
		return Code(""), ErrInvalidCode
	}
	return Code(normalized), nil
}

func (c Code) String() string {
	return string(c)
}

type Kind string

const (
	KindPercentage Kind = "percentage"
	KindFixed      Kind = "fixed"
)

func NewKind(raw string) (Kind, error) {
	switch Kind(raw) {
	case KindPercentage, KindFixed:
		return Kind(raw), nil
	default:
		return "", ErrInvalidKind
	}
}

func (k Kind) String() string {
	return string(k)
}

// Effect is the monetary rule of a discount: a percentage of the subtotal with
// an optional cap, or a fixed amount. Exactly one shape is valid per kind.
type Effect struct {
	kind     Kind
	value    int64
	maxValue *int64
}

func NewPercentageEffect(value int64, maxValue *int64) (Effect, error) {
	if value < 1 || value > 100 {
		return Effect{}, ErrInvalidPercentage
	}
	if maxValue != nil && *maxValue < 1 {
		return Effect{}, ErrInvalidMaxValue
	}
	return Effect{kind: KindPercentage, value: value, maxValue: maxValue}, nil
}

func NewFixedEffect(value int64, maxValue *int64) (Effect, error) {
	if value < 1 {
		return Effect{}, ErrInvalidFixedValue
	}
	if maxValue != nil {
		return Effect{}, ErrMaxValueOnFixed
	}
	return Effect{kind: KindFixed, value: value}, nil
}

func NewEffect(kind Kind, value int64, maxValue *int64) (Effect, error) {
	switch kind {
	case KindPercentage:
		return NewPercentageEffect(value, maxValue)
	case KindFixed:
		return NewFixedEffect(value, maxValue)
	default:
		return Effect{}, ErrInvalidKind
	}
}

func (e Effect) Kind() Kind       { return e.kind }
func (e Effect) Value() int64     { return e.value }
func (e Effect) MaxValue() *int64 { return e.maxValue }

// AmountFor computes the monetary effect against subtotal. Percentage amounts
// use integer arithmetic truncated toward zero and are capped by maxValue;
// fixed amounts never exceed the subtotal they apply to. This is the single
// point where rounding happens; callers must not re-round.
func (e Effect) AmountFor(subtotal int64) int64 {
	if subtotal <= 0 {
		return 0
	}

	switch e.kind {
	case KindPercentage:
		amount := subtotal * e.value / 100
		if e.maxValue != nil && amount > *e.maxValue {
			amount = *e.maxValue
		}
		return amount
	case KindFixed:
		if e.value > subtotal {
			return subtotal
		}
		return e.value
	default:
		return 0
	}
}
