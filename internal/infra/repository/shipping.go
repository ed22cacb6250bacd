package repository

import (
	"context"

	"multimart/internal/infra"
	"multimart/internal/infra/db"
	"multimart/internal/pkg/config"
	"multimart/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// ShopShippingProvider resolves the per-shop shipping fee from the shop
// record, falling back to the configured platform default when a shop has
// none. Stands in for the external shipping collaborator.
type ShopShippingProvider struct {
	db         db.DBTX
	defaultFee int64
}

func NewShopShippingProvider(dbtx db.DBTX, cfg config.CheckoutConfig) *ShopShippingProvider {
	return &ShopShippingProvider{db: dbtx, defaultFee: cfg.DefaultShippingFee}
}

func (p *ShopShippingProvider) FeeForShop(ctx context.Context, shopID uuid.UUID) (int64, error) {
	var fee pgtype.Int8
	err := p.db.QueryRow(ctx, `SELECT shipping_fee FROM shops WHERE id = $1`, shopID).Scan(&fee)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("shop not found", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to load shop shipping fee", err)
	}

	if !fee.Valid {
		return p.defaultFee, nil
	}
	return fee.Int64, nil
}
