package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harborlane/storefront-api/catalog"
)

// GET /shop/categories
func GetCategories(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"categories": cat.Categories()})
	}
}
