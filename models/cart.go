package models

import "github.com/shopspring/decimal"

// LineKey identifies a cart line. At most one line exists per key.
type LineKey struct {
	ProductID int    `json:"product_id"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

type CartLine struct {
	ProductID int    `json:"product_id"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
}

func (l CartLine) Key() LineKey {
	return LineKey{ProductID: l.ProductID, Size: l.Size, Color: l.Color}
}

// CartLineView is a cart line enriched with the product fields the cart
// drawer renders.
type CartLineView struct {
	ProductID int             `json:"product_id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Size      string          `json:"size"`
	Color     string          `json:"color"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// CartView is the full cart snapshot returned to clients.
type CartView struct {
	Items     []CartLineView  `json:"items"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	ItemCount int             `json:"item_count"`
}

// CartSummary is the lightweight payload pushed over the live cart socket
// (header badge: item count plus subtotal).
type CartSummary struct {
	ItemCount int             `json:"item_count"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}
