package cart

import (
	"errors"

	"github.com/google/uuid"
)

var ErrEmptyCart = errors.New("cart is empty")

// ShopGroup holds one shop's slice of the cart. Items keep their original
// cart order for display.
type ShopGroup struct {
	ShopID   uuid.UUID
	ShopName string
	Items    []LineItem
	Subtotal int64
}

func (g *ShopGroup) SkuIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(g.Items))
	seen := make(map[uuid.UUID]struct{}, len(g.Items))
	for _, item := range g.Items {
		if _, ok := seen[item.SkuID]; ok {
			continue
		}
		seen[item.SkuID] = struct{}{}
		ids = append(ids, item.SkuID)
	}
	return ids
}

// Partition splits a snapshot into per-shop groups. Group order follows the
// first appearance of each shop in the cart and item order within a group is
// the cart order, so repeated calls on the same snapshot are deterministic.
func Partition(snapshot *Snapshot) ([]ShopGroup, error) {
	if snapshot == nil || snapshot.IsEmpty() {
		return nil, ErrEmptyCart
	}

	index := make(map[uuid.UUID]int, len(snapshot.Items))
	groups := make([]ShopGroup, 0)

	for _, item := range snapshot.Items {
		i, ok := index[item.ShopID]
		if !ok {
			i = len(groups)
			index[item.ShopID] = i
			groups = append(groups, ShopGroup{
				ShopID:   item.ShopID,
				ShopName: item.ShopName,
			})
		}
		groups[i].Items = append(groups[i].Items, item)
		groups[i].Subtotal += item.Subtotal()
	}

	return groups, nil
}
