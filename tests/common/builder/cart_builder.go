//go:build unit || integration

package builder

import (
	"time"

	"multimart/internal/domain/cart"

	"github.com/google/uuid"
)

type CartBuilder struct {
	UserID     uuid.UUID
	Items      []cart.LineItem
	CapturedAt time.Time
}

func NewCartBuilder() *CartBuilder {
	return &CartBuilder{
		UserID:     uuid.New(),
		CapturedAt: time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *CartBuilder) With(mutate func(*CartBuilder)) *CartBuilder {
	mutate(b)
	return b
}

func (b *CartBuilder) BuildSnapshot() *cart.Snapshot {
	return &cart.Snapshot{
		UserID:     b.UserID,
		Items:      b.Items,
		CapturedAt: b.CapturedAt,
	}
}

func (b *CartBuilder) WithUserID(userID uuid.UUID) *CartBuilder {
	b.UserID = userID
	return b
}

func (b *CartBuilder) AddItem(shopID uuid.UUID, shopName string, unitPrice int64, quantity int32) *CartBuilder {
	b.Items = append(b.Items, cart.LineItem{
		SkuID:     uuid.New(),
		ShopID:    shopID,
		ShopName:  shopName,
		Name:      "Item " + string(rune('A'+len(b.Items))),
		UnitPrice: unitPrice,
		Quantity:  quantity,
	})
	return b
}

func (b *CartBuilder) AddItemWithSku(skuID, shopID uuid.UUID, shopName string, unitPrice int64, quantity int32) *CartBuilder {
	b.Items = append(b.Items, cart.LineItem{
		SkuID:     skuID,
		ShopID:    shopID,
		ShopName:  shopName,
		Name:      "Item " + string(rune('A'+len(b.Items))),
		UnitPrice: unitPrice,
		Quantity:  quantity,
	})
	return b
}
