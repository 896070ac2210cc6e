package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/harborlane/storefront-api/catalog"
	"github.com/harborlane/storefront-api/filter"
	"github.com/harborlane/storefront-api/models"
)

// GET /shop/products
func GetProducts(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1️⃣ Filtering & sorting params
		criteria := models.FilterCriteria{
			Search:   c.Query("search"),
			Category: c.Query("category"),
		}

		if minPriceStr := c.Query("min_price"); minPriceStr != "" {
			mp, err := decimal.NewFromString(minPriceStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
			criteria.MinPrice = &mp
		}
		if maxPriceStr := c.Query("max_price"); maxPriceStr != "" {
			mp, err := decimal.NewFromString(maxPriceStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
			criteria.MaxPrice = &mp
		}

		if sortBy := c.Query("sort_by"); sortBy != "" {
			key := models.SortKey(sortBy)
			if !models.ValidSortKey(key) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sort_by"})
				return
			}
			criteria.Sort = key
		}

		// 2️⃣ Apply filters against the catalog
		products := filter.Apply(cat, criteria)

		// 3️⃣ Return display payloads
		views := make([]models.ProductView, 0, len(products))
		for _, p := range products {
			views = append(views, models.NewProductView(p))
		}
		c.JSON(http.StatusOK, views)
	}
}
