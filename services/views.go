package services

import (
	"github.com/shopspring/decimal"

	"github.com/Sufiyan0000/nike-ecommerce/models"
	"github.com/Sufiyan0000/nike-ecommerce/pricing"
)

type VariantView struct {
	ID        uint             `json:"id"`
	ProductID uint             `json:"product_id"`
	SKU       string           `json:"sku"`
	Price     decimal.Decimal  `json:"price"`
	SalePrice *decimal.Decimal `json:"sale_price,omitempty"`
	Color     string           `json:"color"`
	Size      string           `json:"size"`
	InStock   int              `json:"in_stock"`
}

type CartItemView struct {
	ID       uint        `json:"id"`
	Quantity int         `json:"quantity"`
	Variant  VariantView `json:"product_variant"`
}

// CartView is the response shape for every cart operation. GuestToken is set
// only when a new guest identity was minted during the request, telling the
// caller to persist it for subsequent requests.
type CartView struct {
	ID         uint           `json:"id"`
	Items      []CartItemView `json:"items"`
	pricing.Totals
	GuestToken string `json:"guest_token,omitempty"`
}

// ProductSummaryView is the list shape; ProductDetailView composes it with
// the variant list rather than redeclaring the shared fields.
type ProductSummaryView struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	Gender           string `json:"gender"`
	DefaultVariantID *uint  `json:"default_variant_id,omitempty"`
}

type ProductDetailView struct {
	ProductSummaryView
	Variants []VariantView `json:"variants"`
}

func NewVariantView(v models.ProductVariant) VariantView {
	return VariantView{
		ID:        v.ID,
		ProductID: v.ProductID,
		SKU:       v.SKU,
		Price:     v.Price,
		SalePrice: v.SalePrice,
		Color:     v.Color,
		Size:      v.Size,
		InStock:   v.InStock,
	}
}

func NewCartView(cart *models.Cart, newGuestToken string) CartView {
	items := make([]CartItemView, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, CartItemView{
			ID:       item.ID,
			Quantity: item.Quantity,
			Variant:  NewVariantView(item.ProductVariant),
		})
	}
	return CartView{
		ID:         cart.ID,
		Items:      items,
		Totals:     pricing.CartTotals(cart.Items),
		GuestToken: newGuestToken,
	}
}

func NewProductSummaryView(p models.Product) ProductSummaryView {
	return ProductSummaryView{
		ID:               p.ID,
		Name:             p.Name,
		Description:      p.Description,
		Gender:           p.Gender,
		DefaultVariantID: p.DefaultVariantID,
	}
}

func NewProductDetailView(p models.Product) ProductDetailView {
	variants := make([]VariantView, 0, len(p.Variants))
	for _, v := range p.Variants {
		variants = append(variants, NewVariantView(v))
	}
	return ProductDetailView{
		ProductSummaryView: NewProductSummaryView(p),
		Variants:           variants,
	}
}
