// Package pricing computes effective unit prices and cart totals using exact
// decimal arithmetic. Currency never passes through binary floating point.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/Sufiyan0000/nike-ecommerce/models"
)

type Totals struct {
	TotalItems  int             `json:"total_items"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// EffectiveUnitPrice returns the sale price when one is set, otherwise the
// regular price.
func EffectiveUnitPrice(v models.ProductVariant) decimal.Decimal {
	if v.SalePrice != nil {
		return *v.SalePrice
	}
	return v.Price
}

// CartTotals sums quantities and quantity-weighted effective prices over the
// items. Items must carry their preloaded ProductVariant. An empty slice
// yields {0, 0.00}.
func CartTotals(items []models.CartItem) Totals {
	total := decimal.Zero
	count := 0
	for _, item := range items {
		count += item.Quantity
		line := EffectiveUnitPrice(item.ProductVariant).
			Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	return Totals{TotalItems: count, TotalAmount: total.Round(2)}
}
