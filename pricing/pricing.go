// Package pricing derives per-line and aggregate amounts from cart lines and
// the catalog. Computation is pure and may be re-run after every mutation.
package pricing

import (
	"fmt"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/harborlane/storefront-api/catalog"
	"github.com/harborlane/storefront-api/models"
)

// ErrStaleReference is returned when a cart line references a product id the
// catalog cannot resolve. The catalog is immutable after load, so this should
// be unreachable; callers drop the offending line and log the condition.
var ErrStaleReference = errors.New("cart line references unknown product")

// StaleReferenceError identifies the line that failed to resolve.
type StaleReferenceError struct {
	Line models.LineKey
}

func (e *StaleReferenceError) Error() string {
	return fmt.Sprintf("%v: product %d", ErrStaleReference, e.Line.ProductID)
}

func (e *StaleReferenceError) Unwrap() error {
	return ErrStaleReference
}

type Totals struct {
	LineTotals map[models.LineKey]decimal.Decimal
	Subtotal   decimal.Decimal
	ItemCount  int
}

// ComputeTotals prices every line at its effective unit price (sale price if
// set, base price otherwise) times quantity, rounded half-up to 2 decimal
// places. Subtotal sums the line amounts; ItemCount sums quantities.
func ComputeTotals(lines []models.CartLine, cat *catalog.Catalog) (Totals, error) {
	t := Totals{
		LineTotals: make(map[models.LineKey]decimal.Decimal, len(lines)),
		Subtotal:   decimal.Zero,
	}
	for _, l := range lines {
		p, ok := cat.GetByID(l.ProductID)
		if !ok {
			return Totals{}, &StaleReferenceError{Line: l.Key()}
		}
		amount := LineAmount(p, l.Quantity)
		t.LineTotals[l.Key()] = amount
		t.Subtotal = t.Subtotal.Add(amount)
		t.ItemCount += l.Quantity
	}
	return t, nil
}

// LineAmount is the effective unit price times quantity, rounded to the
// currency's minor unit. decimal.Round rounds half away from zero, which is
// half-up for the non-negative amounts handled here.
func LineAmount(p models.Product, quantity int) decimal.Decimal {
	return p.EffectivePrice().Mul(decimal.NewFromInt(int64(quantity))).Round(2)
}
