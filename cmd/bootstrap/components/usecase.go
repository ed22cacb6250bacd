package components

import (
	"multimart/internal/pkg/clock"
	"multimart/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewCheckoutUseCase,
		usecase.NewDiscountUseCase,
		usecase.NewTokenValidator,
	),
)
