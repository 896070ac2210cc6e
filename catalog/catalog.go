package catalog

import (
	"fmt"
	"sort"

	"github.com/go-faster/errors"

	"github.com/harborlane/storefront-api/models"
)

// ErrNotFound is returned when a requested product does not exist.
var ErrNotFound = errors.New("product not found")

// LoadError reports seed data that violates a catalog invariant. It is fatal:
// the process must not start with a bad catalog.
type LoadError struct {
	ProductID int
	Reason    string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("catalog load: product %d: %s", e.ProductID, e.Reason)
}

// Catalog is the read-only product collection. It is built once by Load and
// never mutated afterwards, so it is safe to share across sessions without
// synchronization.
type Catalog struct {
	products []models.Product
	byID     map[int]models.Product
}

// Load validates seed products and builds the catalog, preserving seed order.
func Load(seed []models.Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]models.Product, 0, len(seed)),
		byID:     make(map[int]models.Product, len(seed)),
	}
	for _, p := range seed {
		if err := validate(p); err != nil {
			return nil, err
		}
		if _, exists := c.byID[p.ID]; exists {
			return nil, &LoadError{ProductID: p.ID, Reason: "duplicate id"}
		}
		p.Sizes = canonicalSizes(p.Sizes)
		c.byID[p.ID] = p
		c.products = append(c.products, p)
	}
	return c, nil
}

func validate(p models.Product) error {
	if p.Name == "" {
		return &LoadError{ProductID: p.ID, Reason: "empty name"}
	}
	if !validCategory(p.Category) {
		return &LoadError{ProductID: p.ID, Reason: fmt.Sprintf("unknown category %q", p.Category)}
	}
	if p.BasePrice.IsNegative() {
		return &LoadError{ProductID: p.ID, Reason: "negative base price"}
	}
	if p.SalePrice != nil {
		if p.SalePrice.IsNegative() {
			return &LoadError{ProductID: p.ID, Reason: "negative sale price"}
		}
		if p.SalePrice.GreaterThan(p.BasePrice) {
			return &LoadError{ProductID: p.ID, Reason: "sale price exceeds base price"}
		}
	}
	if len(p.Sizes) == 0 {
		return &LoadError{ProductID: p.ID, Reason: "no sizes"}
	}
	for _, s := range p.Sizes {
		if sizeRank(s) < 0 {
			return &LoadError{ProductID: p.ID, Reason: fmt.Sprintf("unknown size %q", s)}
		}
	}
	if len(p.Colors) == 0 {
		return &LoadError{ProductID: p.ID, Reason: "no colors"}
	}
	if p.Rating < 0 || p.Rating > 5 {
		return &LoadError{ProductID: p.ID, Reason: "rating out of range"}
	}
	if p.ReviewsCount < 0 {
		return &LoadError{ProductID: p.ID, Reason: "negative reviews count"}
	}
	return nil
}

func validCategory(cat string) bool {
	for _, c := range models.Categories {
		if c == cat {
			return true
		}
	}
	return false
}

func sizeRank(size string) int {
	for i, s := range models.SizeOrder {
		if s == size {
			return i
		}
	}
	return -1
}

// canonicalSizes reorders a size set into the XS..XXL run order.
func canonicalSizes(sizes []string) []string {
	out := append([]string(nil), sizes...)
	sort.Slice(out, func(i, j int) bool { return sizeRank(out[i]) < sizeRank(out[j]) })
	return out
}

// Products returns the catalog in stored order. The slice is a copy; callers
// may reorder it freely.
func (c *Catalog) Products() []models.Product {
	return append([]models.Product(nil), c.products...)
}

func (c *Catalog) GetByID(id int) (models.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

func (c *Catalog) Len() int {
	return len(c.products)
}

// Categories returns the closed category set in display order.
func (c *Catalog) Categories() []string {
	return append([]string(nil), models.Categories...)
}
