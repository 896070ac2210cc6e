package models

import "github.com/shopspring/decimal"

// Categories is the closed set of product categories, in display order.
var Categories = []string{
	"Polo Shirts",
	"Dress Shirts",
	"Sweaters",
	"Blazers",
	"Dresses",
	"Accessories",
}

// SizeOrder is the full size run; a product carries an ordered subset of it.
var SizeOrder = []string{"XS", "S", "M", "L", "XL", "XXL"}

type Product struct {
	ID           int              `json:"id"`
	Name         string           `json:"name"`
	Category     string           `json:"category"`
	BasePrice    decimal.Decimal  `json:"base_price"`
	SalePrice    *decimal.Decimal `json:"sale_price,omitempty"`
	Description  string           `json:"description"`
	Sizes        []string         `json:"sizes"`
	Colors       []string         `json:"colors"`
	Featured     bool             `json:"featured"`
	Rating       float64          `json:"rating"`
	ReviewsCount int              `json:"reviews_count"`
}

// EffectivePrice is the price a customer actually pays: the sale price when
// one is set, the base price otherwise.
func (p Product) EffectivePrice() decimal.Decimal {
	if p.SalePrice != nil {
		return *p.SalePrice
	}
	return p.BasePrice
}

func (p Product) OnSale() bool {
	return p.SalePrice != nil
}

// DiscountPercent returns the sale discount as a whole percentage, 0 when the
// product is not on sale or the base price is zero.
func (p Product) DiscountPercent() int {
	if p.SalePrice == nil || p.BasePrice.IsZero() {
		return 0
	}
	off := decimal.NewFromInt(100).Sub(p.SalePrice.Div(p.BasePrice).Mul(decimal.NewFromInt(100)))
	return int(off.IntPart())
}

func (p Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

func (p Product) HasColor(color string) bool {
	for _, c := range p.Colors {
		if c == color {
			return true
		}
	}
	return false
}

// ProductView is the product payload returned to clients, with the derived
// pricing fields the storefront renders (sale badge, effective price).
type ProductView struct {
	Product
	EffectivePrice  decimal.Decimal `json:"effective_price"`
	OnSale          bool            `json:"on_sale"`
	DiscountPercent int             `json:"discount_percent,omitempty"`
}

func NewProductView(p Product) ProductView {
	return ProductView{
		Product:         p,
		EffectivePrice:  p.EffectivePrice(),
		OnSale:          p.OnSale(),
		DiscountPercent: p.DiscountPercent(),
	}
}
