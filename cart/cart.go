// Package cart holds the mutable shopping cart owned by one session. A
// session's operations are invoked sequentially (the session layer serializes
// them), so Cart itself carries no locking.
package cart

import (
	"github.com/go-faster/errors"

	"github.com/harborlane/storefront-api/catalog"
	"github.com/harborlane/storefront-api/models"
)

var (
	// ErrInvalidVariant is returned when a size/color combination is not
	// available for the product. The cart is left unchanged.
	ErrInvalidVariant = errors.New("variant not available for product")

	// ErrInvalidQuantity is returned for a negative quantity request. The
	// cart is left unchanged.
	ErrInvalidQuantity = errors.New("quantity must not be negative")
)

// Cart is an ordered sequence of lines, keyed by (product id, size, color).
// Insertion order is preserved for display.
type Cart struct {
	lines []models.CartLine
}

func New() *Cart {
	return &Cart{}
}

// Add puts one unit of the given variant in the cart. Adding a variant that
// is already present increments its line instead of appending a duplicate.
func (c *Cart) Add(cat *catalog.Catalog, productID int, size, color string) error {
	p, ok := cat.GetByID(productID)
	if !ok {
		return errors.Wrapf(catalog.ErrNotFound, "product %d", productID)
	}
	if !p.HasSize(size) || !p.HasColor(color) {
		return errors.Wrapf(ErrInvalidVariant, "product %d size %q color %q", productID, size, color)
	}
	key := models.LineKey{ProductID: productID, Size: size, Color: color}
	if i := c.index(key); i >= 0 {
		c.lines[i].Quantity++
		return nil
	}
	c.lines = append(c.lines, models.CartLine{
		ProductID: productID,
		Size:      size,
		Color:     color,
		Quantity:  1,
	})
	return nil
}

// SetQuantity sets a line's quantity exactly. Zero removes the line; setting
// a quantity on an absent line is a no-op for zero and appends nothing
// otherwise (the line must have been added first).
func (c *Cart) SetQuantity(key models.LineKey, n int) error {
	if n < 0 {
		return errors.Wrapf(ErrInvalidQuantity, "quantity %d", n)
	}
	i := c.index(key)
	if i < 0 {
		return nil
	}
	if n == 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
		return nil
	}
	c.lines[i].Quantity = n
	return nil
}

// Remove deletes the line if present. Removing an absent line is a no-op.
func (c *Cart) Remove(key models.LineKey) {
	if i := c.index(key); i >= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns the current lines in insertion order. The slice is a copy.
func (c *Cart) Lines() []models.CartLine {
	return append([]models.CartLine(nil), c.lines...)
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) index(key models.LineKey) int {
	for i, l := range c.lines {
		if l.Key() == key {
			return i
		}
	}
	return -1
}
