package cartControllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-faster/errors"

	"github.com/harborlane/storefront-api/cart"
	"github.com/harborlane/storefront-api/catalog"
	"github.com/harborlane/storefront-api/middleware"
	"github.com/harborlane/storefront-api/models"
	"github.com/harborlane/storefront-api/pricing"
)

type AddItemInput struct {
	ProductID int    `json:"product_id" binding:"required"`
	Size      string `json:"size" binding:"required"`
	Color     string `json:"color" binding:"required"`
}

type SetQuantityInput struct {
	ProductID int    `json:"product_id" binding:"required"`
	Size      string `json:"size" binding:"required"`
	Color     string `json:"color" binding:"required"`
	Quantity  *int   `json:"quantity" binding:"required"`
}

// GET /shop/cart
func GetCart(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := middleware.SessionFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var view models.CartView
		_ = s.Do(func(cc *cart.Cart) error {
			view = buildCartView(cc, cat)
			return nil
		})
		c.JSON(http.StatusOK, view)
	}
}

// POST /shop/cart
func AddCartItem(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := middleware.SessionFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var view models.CartView
		err := s.Do(func(cc *cart.Cart) error {
			if err := cc.Add(cat, input.ProductID, input.Size, input.Color); err != nil {
				return err
			}
			view = buildCartView(cc, cat)
			return nil
		})
		if err != nil {
			respondCartError(c, err)
			return
		}

		BroadcastCartSummary(s.ID, view)
		c.JSON(http.StatusOK, view)
	}
}

// PUT /shop/cart
func SetCartItemQuantity(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := middleware.SessionFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input SetQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		key := models.LineKey{ProductID: input.ProductID, Size: input.Size, Color: input.Color}
		var view models.CartView
		err := s.Do(func(cc *cart.Cart) error {
			if err := cc.SetQuantity(key, *input.Quantity); err != nil {
				return err
			}
			view = buildCartView(cc, cat)
			return nil
		})
		if err != nil {
			respondCartError(c, err)
			return
		}

		BroadcastCartSummary(s.ID, view)
		c.JSON(http.StatusOK, view)
	}
}

// DELETE /shop/cart/:product_id?size=&color=
func DeleteCartItem(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := middleware.SessionFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		productID, err := strconv.Atoi(c.Param("product_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}
		key := models.LineKey{
			ProductID: productID,
			Size:      c.Query("size"),
			Color:     c.Query("color"),
		}

		var view models.CartView
		_ = s.Do(func(cc *cart.Cart) error {
			// Removing an absent line is a no-op, not an error.
			cc.Remove(key)
			view = buildCartView(cc, cat)
			return nil
		})

		BroadcastCartSummary(s.ID, view)
		c.JSON(http.StatusOK, view)
	}
}

// DELETE /shop/cart
func ClearCart(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := middleware.SessionFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var view models.CartView
		_ = s.Do(func(cc *cart.Cart) error {
			cc.Clear()
			view = buildCartView(cc, cat)
			return nil
		})

		BroadcastCartSummary(s.ID, view)
		c.JSON(http.StatusOK, view)
	}
}

// buildCartView prices the cart and maps it to the display snapshot. Stale
// lines (product id no longer resolvable) are dropped and logged; remaining
// lines are unaffected. Callers must hold the session lock.
func buildCartView(cc *cart.Cart, cat *catalog.Catalog) models.CartView {
	for {
		lines := cc.Lines()
		totals, err := pricing.ComputeTotals(lines, cat)
		if err != nil {
			var stale *pricing.StaleReferenceError
			if errors.As(err, &stale) {
				log.Printf("⚠️ Dropping stale cart line for product %d", stale.Line.ProductID)
				cc.Remove(stale.Line)
				continue
			}
			log.Printf("❌ Failed to price cart: %v", err)
			return models.CartView{Items: []models.CartLineView{}}
		}

		items := make([]models.CartLineView, 0, len(lines))
		for _, l := range lines {
			p, _ := cat.GetByID(l.ProductID)
			items = append(items, models.CartLineView{
				ProductID: l.ProductID,
				Name:      p.Name,
				Category:  p.Category,
				Size:      l.Size,
				Color:     l.Color,
				Quantity:  l.Quantity,
				UnitPrice: p.EffectivePrice(),
				LineTotal: totals.LineTotals[l.Key()],
			})
		}
		return models.CartView{Items: items, Subtotal: totals.Subtotal, ItemCount: totals.ItemCount}
	}
}

func respondCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product does not exist"})
	case errors.Is(err, cart.ErrInvalidVariant):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Selected size/color is not available for this product"})
	case errors.Is(err, cart.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must not be negative"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
	}
}
