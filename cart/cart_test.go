package cart

import (
	"errors"
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/harborlane/storefront-api/catalog"
	"github.com/harborlane/storefront-api/models"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	base := decimal.RequireFromString("89.50")
	c, err := catalog.Load([]models.Product{
		{
			ID: 1, Name: "Classic Polo", Category: "Polo Shirts",
			BasePrice: base, Description: "Premium cotton polo",
			Sizes: []string{"S", "M", "L"}, Colors: []string{"Navy", "White"},
			Rating: 4.6, ReviewsCount: 120,
		},
		{
			ID: 2, Name: "Navy Blazer", Category: "Blazers",
			BasePrice: decimal.RequireFromString("495.00"), Description: "Timeless blazer",
			Sizes: []string{"M", "L"}, Colors: []string{"Navy"},
			Rating: 4.7, ReviewsCount: 133,
		},
	})
	if err != nil {
		t.Fatalf("test catalog must load: %v", err)
	}
	return c
}

func key(productID int, size, color string) models.LineKey {
	return models.LineKey{ProductID: productID, Size: size, Color: color}
}

func TestAddSameVariantIncrementsQuantity(t *testing.T) {
	cat := testCatalog(t)
	c := New()

	for i := 0; i < 3; i++ {
		if err := c.Add(cat, 1, "M", "Navy"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	lines := c.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected one line, got %d", len(lines))
	}
	if lines[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", lines[0].Quantity)
	}
}

func TestAddDistinctVariantsAppendInOrder(t *testing.T) {
	cat := testCatalog(t)
	c := New()

	_ = c.Add(cat, 1, "M", "Navy")
	_ = c.Add(cat, 1, "L", "Navy")
	_ = c.Add(cat, 2, "M", "Navy")
	_ = c.Add(cat, 1, "M", "Navy")

	got := c.Lines()
	want := []models.CartLine{
		{ProductID: 1, Size: "M", Color: "Navy", Quantity: 2},
		{ProductID: 1, Size: "L", Color: "Navy", Quantity: 1},
		{ProductID: 2, Size: "M", Color: "Navy", Quantity: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestAddRejectsUnavailableVariant(t *testing.T) {
	cat := testCatalog(t)
	c := New()
	_ = c.Add(cat, 1, "M", "Navy")

	// Product 1 has no XXL and no Burgundy.
	if err := c.Add(cat, 1, "XXL", "Navy"); !errors.Is(err, ErrInvalidVariant) {
		t.Fatalf("expected ErrInvalidVariant, got %v", err)
	}
	if err := c.Add(cat, 1, "M", "Burgundy"); !errors.Is(err, ErrInvalidVariant) {
		t.Fatalf("expected ErrInvalidVariant, got %v", err)
	}

	// Failed adds leave the cart untouched.
	lines := c.Lines()
	if len(lines) != 1 || lines[0].Quantity != 1 {
		t.Fatalf("cart changed after rejected add: %v", lines)
	}
}

func TestAddRejectsUnknownProduct(t *testing.T) {
	cat := testCatalog(t)
	c := New()

	if err := c.Add(cat, 99, "M", "Navy"); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("expected catalog.ErrNotFound, got %v", err)
	}
	if c.Len() != 0 {
		t.Fatalf("cart changed after rejected add")
	}
}

func TestSetQuantitySetsExactly(t *testing.T) {
	cat := testCatalog(t)
	c := New()
	_ = c.Add(cat, 1, "M", "Navy")

	if err := c.SetQuantity(key(1, "M", "Navy"), 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := c.Lines()[0].Quantity; got != 5 {
		t.Fatalf("expected quantity 5, got %d", got)
	}
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	cat := testCatalog(t)
	c := New()
	_ = c.Add(cat, 1, "M", "Navy")
	_ = c.Add(cat, 2, "M", "Navy")

	if err := c.SetQuantity(key(1, "M", "Navy"), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := c.Lines()
	if len(lines) != 1 || lines[0].ProductID != 2 {
		t.Fatalf("expected only product 2 to remain, got %v", lines)
	}
}

func TestSetQuantityRejectsNegative(t *testing.T) {
	cat := testCatalog(t)
	c := New()
	_ = c.Add(cat, 1, "M", "Navy")

	if err := c.SetQuantity(key(1, "M", "Navy"), -1); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if got := c.Lines()[0].Quantity; got != 1 {
		t.Fatalf("cart changed after rejected set: quantity %d", got)
	}
}

// setQuantity(line, 0) and remove(line) end in the same cart.
func TestSetQuantityZeroEquivalentToRemove(t *testing.T) {
	cat := testCatalog(t)

	a, b := New(), New()
	for _, c := range []*Cart{a, b} {
		_ = c.Add(cat, 1, "M", "Navy")
		_ = c.Add(cat, 2, "L", "Navy")
	}

	_ = a.SetQuantity(key(1, "M", "Navy"), 0)
	b.Remove(key(1, "M", "Navy"))

	if !reflect.DeepEqual(a.Lines(), b.Lines()) {
		t.Fatalf("carts diverged: %v vs %v", a.Lines(), b.Lines())
	}
}

func TestRemoveAbsentLineIsNoOp(t *testing.T) {
	cat := testCatalog(t)
	c := New()
	_ = c.Add(cat, 1, "M", "Navy")

	c.Remove(key(2, "M", "Navy"))
	c.Remove(key(2, "M", "Navy"))

	if c.Len() != 1 {
		t.Fatalf("expected remove of absent line to be a no-op")
	}
}

func TestClear(t *testing.T) {
	cat := testCatalog(t)
	c := New()
	_ = c.Add(cat, 1, "M", "Navy")
	_ = c.Add(cat, 2, "M", "Navy")

	c.Clear()
	if c.Len() != 0 {
		t.Fatalf("expected empty cart after clear")
	}
	c.Clear()
	if c.Len() != 0 {
		t.Fatalf("clear must be safe on an empty cart")
	}
}

func TestLinesReturnsCopy(t *testing.T) {
	cat := testCatalog(t)
	c := New()
	_ = c.Add(cat, 1, "M", "Navy")

	lines := c.Lines()
	lines[0].Quantity = 99

	if got := c.Lines()[0].Quantity; got != 1 {
		t.Fatalf("cart mutated through snapshot: quantity %d", got)
	}
}
