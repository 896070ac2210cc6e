package models

import "github.com/shopspring/decimal"

type SortKey string

const (
	SortName      SortKey = "name"
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
	SortRating    SortKey = "rating"
)

// ValidSortKey reports whether s names one of the supported sort orders.
func ValidSortKey(s SortKey) bool {
	switch s {
	case SortName, SortPriceAsc, SortPriceDesc, SortRating:
		return true
	}
	return false
}

// FilterCriteria narrows the catalog. Zero-valued fields are unconstrained:
// empty search matches everything, empty or "all" category matches every
// category, nil price bounds are open-ended, empty sort keeps the default
// featured-first catalog order.
type FilterCriteria struct {
	Search   string
	Category string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Sort     SortKey
}
