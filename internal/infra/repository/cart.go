package repository

import (
	"context"

	"multimart/internal/domain/cart"
	"multimart/internal/infra"
	"multimart/internal/infra/db"
	"multimart/internal/pkg/clock"

	"github.com/google/uuid"
)

// CartReadStore materializes checkout snapshots: prices, names and shop
// ownership are read from the live catalog at call time, not from the cart
// rows, so a snapshot always reflects current pricing.
type CartReadStore struct {
	db    db.DBTX
	clock clock.Clock
}

func NewCartReadStore(dbtx db.DBTX, clk clock.Clock) *CartReadStore {
	return &CartReadStore{db: dbtx, clock: clk}
}

func (r *CartReadStore) GetCartSnapshot(ctx context.Context, userID uuid.UUID) (*cart.Snapshot, error) {
	rows, err := r.db.Query(ctx, `
		SELECT ci.sku_id, sk.shop_id, sh.name, sk.name, sk.thumb, sk.price, ci.quantity
		FROM cart_items ci
		JOIN skus sk ON sk.id = ci.sku_id
		JOIN shops sh ON sh.id = sk.shop_id
		WHERE ci.user_id = $1
		ORDER BY ci.added_at, ci.sku_id`,
		userID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load cart snapshot", err)
	}
	defer rows.Close()

	snapshot := &cart.Snapshot{
		UserID:     userID,
		CapturedAt: r.clock.Now(),
	}

	for rows.Next() {
		var item cart.LineItem
		if err := rows.Scan(
			&item.SkuID, &item.ShopID, &item.ShopName, &item.Name,
			&item.Thumb, &item.UnitPrice, &item.Quantity,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan cart line item", err)
		}
		snapshot.Items = append(snapshot.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate cart items", err)
	}

	return snapshot, nil
}
