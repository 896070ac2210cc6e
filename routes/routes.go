package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/harborlane/storefront-api/auth"
	"github.com/harborlane/storefront-api/catalog"
	"github.com/harborlane/storefront-api/session"
)

// SetupRoutes is the single entry‐point that wires up the session and shop
// route groups.
func SetupRoutes(r *gin.Engine, cat *catalog.Catalog, mgr *session.Manager) {
	// 1️⃣ Public session bootstrap (no middleware)
	r.POST("/session", auth.CreateGuestSession(mgr))

	// 2️⃣ Shop routes (catalog public, cart session‐protected)
	SetupShopRoutes(r, cat, mgr)
}
