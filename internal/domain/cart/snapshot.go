package cart

import (
	"time"

	"github.com/google/uuid"
)

// LineItem is one cart row frozen at checkout time: price, name and shop
// ownership are as of snapshot capture, not as of display.
type LineItem struct {
	SkuID     uuid.UUID
	ShopID    uuid.UUID
	ShopName  string
	Name      string
	Thumb     string
	UnitPrice int64
	Quantity  int32
}

func (li LineItem) Subtotal() int64 {
	return li.UnitPrice * int64(li.Quantity)
}

// Snapshot is an immutable point-in-time view of a user's cart. One checkout
// computation works against exactly one snapshot; it is never re-fetched
// mid-computation.
type Snapshot struct {
	UserID     uuid.UUID
	Items      []LineItem
	CapturedAt time.Time
}

func (s *Snapshot) IsEmpty() bool {
	return len(s.Items) == 0
}

func (s *Snapshot) Subtotal() int64 {
	var total int64
	for _, item := range s.Items {
		total += item.Subtotal()
	}
	return total
}

func (s *Snapshot) SkuIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(s.Items))
	seen := make(map[uuid.UUID]struct{}, len(s.Items))
	for _, item := range s.Items {
		if _, ok := seen[item.SkuID]; ok {
			continue
		}
		seen[item.SkuID] = struct{}{}
		ids = append(ids, item.SkuID)
	}
	return ids
}
