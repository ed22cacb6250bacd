package repository

import (
	"context"

	"multimart/internal/domain/discount"
	"multimart/internal/infra"
	"multimart/internal/infra/db"
	"multimart/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type DiscountRepository struct {
	db db.DBTX
}

func NewDiscountRepository(dbtx db.DBTX) *DiscountRepository {
	return &DiscountRepository{db: dbtx}
}

const discountColumns = `
	id, code, shop_id, kind, value, max_value, applies_to_all_products,
	min_order_cost, total_use_count, used_count, per_user_max_use,
	start_at, end_at, is_available, is_published, created_at, updated_at`

func (r *DiscountRepository) Create(ctx context.Context, tx db.DBTX, d *discount.Discount) error {
	effect := d.Effect()
	_, err := tx.Exec(ctx, `
		INSERT INTO discounts (
			id, code, shop_id, kind, value, max_value, applies_to_all_products,
			min_order_cost, total_use_count, used_count, per_user_max_use,
			start_at, end_at, is_available, is_published, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		d.ID(), d.Code().String(), pgconv.UUIDPtrToPgtype(d.ShopID()),
		effect.Kind().String(), effect.Value(), pgconv.Int64PtrToPgtype(effect.MaxValue()),
		d.AppliesToAllProducts(), d.MinOrderCost(), d.TotalUseCount(), d.UsedCount(),
		d.PerUserMaxUse(), d.StartAt(), d.EndAt(), d.IsAvailable(), d.IsPublished(),
		d.CreatedAt(), d.UpdatedAt(),
	)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("discount code already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert discount", err)
	}

	return r.replaceSkuScope(ctx, tx, d.ID(), d.SkuIDs())
}

func (r *DiscountRepository) Save(ctx context.Context, tx db.DBTX, d *discount.Discount) error {
	effect := d.Effect()
	tag, err := tx.Exec(ctx, `
		UPDATE discounts SET
			code = $2, kind = $3, value = $4, max_value = $5,
			applies_to_all_products = $6, min_order_cost = $7, total_use_count = $8,
			per_user_max_use = $9, start_at = $10, end_at = $11,
			is_available = $12, is_published = $13, updated_at = $14
		WHERE id = $1`,
		d.ID(), d.Code().String(), effect.Kind().String(), effect.Value(),
		pgconv.Int64PtrToPgtype(effect.MaxValue()), d.AppliesToAllProducts(),
		d.MinOrderCost(), d.TotalUseCount(), d.PerUserMaxUse(), d.StartAt(), d.EndAt(),
		d.IsAvailable(), d.IsPublished(), d.UpdatedAt(),
	)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("discount code already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to update discount", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("discount not found", nil, infra.KindNotFound)
	}

	return r.replaceSkuScope(ctx, tx, d.ID(), d.SkuIDs())
}

func (r *DiscountRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM discounts WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete discount", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("discount not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *DiscountRepository) FindByID(ctx context.Context, id uuid.UUID) (*discount.Discount, error) {
	row := r.db.QueryRow(ctx, `SELECT `+discountColumns+` FROM discounts WHERE id = $1`, id)
	return r.scanDiscount(ctx, row)
}

// FindByCode resolves a code within one ownership scope: a concrete shop, or
// the platform scope when shopID is nil. IS NOT DISTINCT FROM makes the NULL
// comparison exact, so a shop can never claim a platform code and vice versa.
func (r *DiscountRepository) FindByCode(ctx context.Context, code string, shopID *uuid.UUID) (*discount.Discount, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+discountColumns+` FROM discounts WHERE code = $1 AND shop_id IS NOT DISTINCT FROM $2`,
		code, pgconv.UUIDPtrToPgtype(shopID),
	)
	return r.scanDiscount(ctx, row)
}

func (r *DiscountRepository) ListByShop(ctx context.Context, shopID uuid.UUID) ([]*discount.Discount, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+discountColumns+` FROM discounts WHERE shop_id = $1 ORDER BY created_at DESC`, shopID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list discounts by shop", err)
	}
	defer rows.Close()
	return r.collectDiscounts(ctx, rows)
}

func (r *DiscountRepository) ListPublished(ctx context.Context) ([]*discount.Discount, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+discountColumns+` FROM discounts
		 WHERE is_published AND is_available AND end_at >= now()
		 ORDER BY created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list published discounts", err)
	}
	defer rows.Close()
	return r.collectDiscounts(ctx, rows)
}

func (r *DiscountRepository) CountRedemptions(ctx context.Context, discountID, userID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(use_count, 0) FROM discount_redemptions WHERE discount_id = $1 AND user_id = $2`,
		discountID, userID,
	).Scan(&count)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, nil
		}
		return 0, infra.WrapRepoErr("failed to count redemptions", err)
	}
	return count, nil
}

// IncrementUsage burns one use of a discount for one user. Both guards are
// single conditional statements, so concurrent redeemers of the last
// remaining use race on the row update and exactly one wins; the loser gets
// KindLimitExceeded. Must run inside the caller's transaction so the global
// and per-user counters move together.
func (r *DiscountRepository) IncrementUsage(ctx context.Context, tx db.DBTX, discountID, userID uuid.UUID) error {
	tag, err := tx.Exec(ctx, `
		UPDATE discounts
		SET used_count = used_count + 1, updated_at = now()
		WHERE id = $1 AND used_count < total_use_count`,
		discountID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to increment discount usage", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("discount usage exhausted", nil, infra.KindLimitExceeded)
	}

	tag, err = tx.Exec(ctx, `
		INSERT INTO discount_redemptions (discount_id, user_id, use_count)
		VALUES ($1, $2, 1)
		ON CONFLICT (discount_id, user_id) DO UPDATE
		SET use_count = discount_redemptions.use_count + 1
		WHERE discount_redemptions.use_count < (SELECT per_user_max_use FROM discounts WHERE id = $1)`,
		discountID, userID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to record redemption", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("per-user usage exhausted", nil, infra.KindLimitExceeded)
	}

	return nil
}

type discountRow struct {
	ID                   uuid.UUID
	Code                 string
	ShopID               pgtype.UUID
	Kind                 string
	Value                int64
	MaxValue             pgtype.Int8
	AppliesToAllProducts bool
	MinOrderCost         int64
	TotalUseCount        int
	UsedCount            int
	PerUserMaxUse        int
	StartAt              pgtype.Timestamptz
	EndAt                pgtype.Timestamptz
	IsAvailable          bool
	IsPublished          bool
	CreatedAt            pgtype.Timestamptz
	UpdatedAt            pgtype.Timestamptz
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *DiscountRepository) scanDiscount(ctx context.Context, row rowScanner) (*discount.Discount, error) {
	var dr discountRow
	err := row.Scan(
		&dr.ID, &dr.Code, &dr.ShopID, &dr.Kind, &dr.Value, &dr.MaxValue,
		&dr.AppliesToAllProducts, &dr.MinOrderCost, &dr.TotalUseCount, &dr.UsedCount,
		&dr.PerUserMaxUse, &dr.StartAt, &dr.EndAt, &dr.IsAvailable, &dr.IsPublished,
		&dr.CreatedAt, &dr.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("discount not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan discount", err)
	}

	skuIDs, err := r.skuScope(ctx, dr.ID)
	if err != nil {
		return nil, err
	}

	return toDiscountEntity(dr, skuIDs)
}

func (r *DiscountRepository) collectDiscounts(ctx context.Context, rows interface {
	rowScanner
	Next() bool
	Err() error
}) ([]*discount.Discount, error) {
	var raw []discountRow
	for rows.Next() {
		var dr discountRow
		if err := rows.Scan(
			&dr.ID, &dr.Code, &dr.ShopID, &dr.Kind, &dr.Value, &dr.MaxValue,
			&dr.AppliesToAllProducts, &dr.MinOrderCost, &dr.TotalUseCount, &dr.UsedCount,
			&dr.PerUserMaxUse, &dr.StartAt, &dr.EndAt, &dr.IsAvailable, &dr.IsPublished,
			&dr.CreatedAt, &dr.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan discount row", err)
		}
		raw = append(raw, dr)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate discounts", err)
	}

	out := make([]*discount.Discount, 0, len(raw))
	for _, dr := range raw {
		skuIDs, err := r.skuScope(ctx, dr.ID)
		if err != nil {
			return nil, err
		}
		entity, err := toDiscountEntity(dr, skuIDs)
		if err != nil {
			return nil, err
		}
		out = append(out, entity)
	}
	return out, nil
}

func (r *DiscountRepository) skuScope(ctx context.Context, discountID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx,
		`SELECT sku_id FROM discount_skus WHERE discount_id = $1 ORDER BY sku_id`, discountID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load discount sku scope", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan sku id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate sku scope", err)
	}
	return ids, nil
}

func (r *DiscountRepository) replaceSkuScope(ctx context.Context, tx db.DBTX, discountID uuid.UUID, skuIDs []uuid.UUID) error {
	if _, err := tx.Exec(ctx, `DELETE FROM discount_skus WHERE discount_id = $1`, discountID); err != nil {
		return infra.WrapRepoErr("failed to clear discount sku scope", err)
	}
	for _, skuID := range skuIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO discount_skus (discount_id, sku_id) VALUES ($1, $2)`, discountID, skuID); err != nil {
			return infra.WrapRepoErr("failed to insert discount sku", err)
		}
	}
	return nil
}

func toDiscountEntity(dr discountRow, skuIDs []uuid.UUID) (*discount.Discount, error) {
	entity, err := discount.Reconstruct(discount.ReconstructParams{
		ID:                   dr.ID,
		Code:                 dr.Code,
		ShopID:               pgconv.UUIDPtrFromPgtype(dr.ShopID),
		Kind:                 discount.Kind(dr.Kind),
		Value:                dr.Value,
		MaxValue:             pgconv.Int64PtrFromPgtype(dr.MaxValue),
		AppliesToAllProducts: dr.AppliesToAllProducts,
		SkuIDs:               skuIDs,
		MinOrderCost:         dr.MinOrderCost,
		TotalUseCount:        dr.TotalUseCount,
		UsedCount:            dr.UsedCount,
		PerUserMaxUse:        dr.PerUserMaxUse,
		StartAt:              pgconv.TimeFromPgtype(dr.StartAt),
		EndAt:                pgconv.TimeFromPgtype(dr.EndAt),
		IsAvailable:          dr.IsAvailable,
		IsPublished:          dr.IsPublished,
		CreatedAt:            pgconv.TimeFromPgtype(dr.CreatedAt),
		UpdatedAt:            pgconv.TimeFromPgtype(dr.UpdatedAt),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to reconstruct discount", err)
	}
	return entity, nil
}
