package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/harborlane/storefront-api/catalog"
	"github.com/harborlane/storefront-api/models"
)

// GetProductByID returns a single product with its derived pricing fields.
// URL param: /shop/products/:id
func GetProductByID(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		idParam := c.Param("id")
		if idParam == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		id, err := strconv.Atoi(idParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		p, ok := cat.GetByID(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, models.NewProductView(p))
	}
}
