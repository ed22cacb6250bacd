package components

import (
	"multimart/internal/infra/db"
	repo_impl "multimart/internal/infra/repository"
	"multimart/internal/pkg/config"
	"multimart/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repo_impl.NewDiscountRepository,
			fx.As(new(usecase.DiscountRepository)),
		),
		fx.Annotate(
			repo_impl.NewCartReadStore,
			fx.As(new(usecase.CartReadStore)),
		),
		fx.Annotate(
			NewShopShippingProvider,
			fx.As(new(usecase.ShippingFeeProvider)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewShopShippingProvider(dbtx db.DBTX, cfg config.Config) *repo_impl.ShopShippingProvider {
	return repo_impl.NewShopShippingProvider(dbtx, cfg.Checkout)
}
