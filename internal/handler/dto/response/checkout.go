package response

import (
	"multimart/internal/domain/checkout"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type LineItemResponse struct {
	SkuID     uuid.UUID `json:"skuId"`
	Name      string    `json:"name"`
	Thumb     string    `json:"thumb"`
	UnitPrice int64     `json:"unitPrice"`
	Quantity  int32     `json:"quantity"`
}

type ShopSummaryResponse struct {
	ShopID         uuid.UUID          `json:"shopId"`
	ShopName       string             `json:"shopName"`
	Items          []LineItemResponse `json:"items"`
	Subtotal       int64              `json:"subtotal"`
	ShippingFee    int64              `json:"shippingFee"`
	DiscountAmount int64              `json:"discountAmount"`
	DiscountCode   string             `json:"discountCode,omitempty"`
	Total          int64              `json:"total"`
}

type CheckoutSummaryResponse struct {
	UserID                 uuid.UUID             `json:"userId"`
	Shops                  []ShopSummaryResponse `json:"shops"`
	SubtotalAllShops       int64                 `json:"subtotalAllShops"`
	TotalShippingFee       int64                 `json:"totalShippingFee"`
	PlatformDiscountAmount int64                 `json:"platformDiscountAmount"`
	PlatformDiscountCode   string                `json:"platformDiscountCode,omitempty"`
	TotalDiscount          int64                 `json:"totalDiscount"`
	GrandTotal             int64                 `json:"grandTotal"`
}

func FromCheckoutSummary(summary *checkout.Summary) *CheckoutSummaryResponse {
	shops := make([]ShopSummaryResponse, 0, len(summary.Shops))
	for _, shop := range summary.Shops {
		var items []LineItemResponse
		_ = copier.Copy(&items, &shop.Items)

		shops = append(shops, ShopSummaryResponse{
			ShopID:         shop.ShopID,
			ShopName:       shop.ShopName,
			Items:          items,
			Subtotal:       shop.Subtotal,
			ShippingFee:    shop.ShippingFee,
			DiscountAmount: shop.DiscountAmount,
			DiscountCode:   shop.DiscountCode,
			Total:          shop.Total,
		})
	}

	return &CheckoutSummaryResponse{
		UserID:                 summary.UserID,
		Shops:                  shops,
		SubtotalAllShops:       summary.SubtotalAllShops,
		TotalShippingFee:       summary.TotalShippingFee,
		PlatformDiscountAmount: summary.PlatformDiscountAmount,
		PlatformDiscountCode:   summary.PlatformDiscountCode,
		TotalDiscount:          summary.TotalDiscount,
		GrandTotal:             summary.GrandTotal,
	}
}
