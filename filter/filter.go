// Package filter narrows and orders the catalog for display. Apply is pure:
// it never mutates the catalog and may be re-run freely.
package filter

import (
	"sort"
	"strings"

	"github.com/harborlane/storefront-api/catalog"
	"github.com/harborlane/storefront-api/models"
)

// Apply returns the products matching every supplied criterion, ordered per
// criteria.Sort. With no sort key the result keeps catalog order with
// featured products surfaced first. An empty result is a valid empty slice.
func Apply(c *catalog.Catalog, criteria models.FilterCriteria) []models.Product {
	out := make([]models.Product, 0, c.Len())
	for _, p := range c.Products() {
		if matches(p, criteria) {
			out = append(out, p)
		}
	}
	sortProducts(out, criteria.Sort)
	return out
}

func matches(p models.Product, criteria models.FilterCriteria) bool {
	if q := strings.ToLower(strings.TrimSpace(criteria.Search)); q != "" {
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			return false
		}
	}
	if criteria.Category != "" && criteria.Category != "all" && p.Category != criteria.Category {
		return false
	}
	price := p.EffectivePrice()
	if criteria.MinPrice != nil && price.LessThan(*criteria.MinPrice) {
		return false
	}
	if criteria.MaxPrice != nil && price.GreaterThan(*criteria.MaxPrice) {
		return false
	}
	return true
}

func sortProducts(products []models.Product, key models.SortKey) {
	switch key {
	case models.SortName:
		sort.SliceStable(products, func(i, j int) bool {
			return strings.ToLower(products[i].Name) < strings.ToLower(products[j].Name)
		})
	case models.SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EffectivePrice().LessThan(products[j].EffectivePrice())
		})
	case models.SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EffectivePrice().GreaterThan(products[j].EffectivePrice())
		})
	case models.SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			if products[i].Rating != products[j].Rating {
				return products[i].Rating > products[j].Rating
			}
			return products[i].ReviewsCount > products[j].ReviewsCount
		})
	default:
		// Landing order: featured first, catalog order otherwise.
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Featured && !products[j].Featured
		})
	}
}
