package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/harborlane/storefront-api/controllers/cart"
	productControllers "github.com/harborlane/storefront-api/controllers/product"

	"github.com/harborlane/storefront-api/catalog"
	"github.com/harborlane/storefront-api/middleware"
	"github.com/harborlane/storefront-api/session"
)

// SetupShopRoutes registers all “/shop/*” endpoints.
func SetupShopRoutes(r *gin.Engine, cat *catalog.Catalog, mgr *session.Manager) {
	shopGroup := r.Group("/shop")
	{
		// ──────────────── Browse Catalog ────────────────
		shopGroup.GET("/products", productControllers.GetProducts(cat))              // GET /shop/products
		shopGroup.GET("/products/export", productControllers.ExportProductsToExcel(cat)) // GET /shop/products/export
		shopGroup.GET("/products/:id", productControllers.GetProductByID(cat))       // GET /shop/products/:id
		shopGroup.GET("/categories", productControllers.GetCategories(cat))          // GET /shop/categories

		// ──────────────── Shopping Cart ────────────────
		cartGroup := shopGroup.Group("/cart")
		cartGroup.Use(middleware.RequireSession(mgr))
		{
			cartGroup.GET("/", cartControllers.GetCart(cat))                    // GET /shop/cart
			cartGroup.POST("/", cartControllers.AddCartItem(cat))               // POST /shop/cart
			cartGroup.PUT("/", cartControllers.SetCartItemQuantity(cat))        // PUT /shop/cart
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(cat)) // DELETE /shop/cart/:product_id
			cartGroup.DELETE("/", cartControllers.ClearCart(cat))               // DELETE /shop/cart
			cartGroup.GET("/live", cartControllers.CartLiveHandler)             // GET /shop/cart/live
		}
	}
}
