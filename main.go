package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/harborlane/storefront-api/catalog"
	"github.com/harborlane/storefront-api/routes"
	"github.com/harborlane/storefront-api/session"
)

const defaultSessionTTLHours = 24

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Load the catalog once; a bad seed must not start the server
	cat, err := catalog.LoadSeed()
	if err != nil {
		log.Fatalf("❌ Catalog load failed: %v", err)
	}
	log.Printf("✅ Catalog loaded with %d products", cat.Len())

	// Session registry
	mgr := session.NewManager(sessionTTL())

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, cat, mgr)

	// Drop expired sessions every hour
	go mgr.StartSweeping(time.Hour)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// sessionTTL reads SESSION_TTL_HOURS, defaulting to 24 hours.
func sessionTTL() time.Duration {
	if v := os.Getenv("SESSION_TTL_HOURS"); v != "" {
		if hours, err := strconv.Atoi(v); err == nil && hours > 0 {
			return time.Duration(hours) * time.Hour
		}
		log.Printf("⚠️ Invalid SESSION_TTL_HOURS %q, using default", v)
	}
	return defaultSessionTTLHours * time.Hour
}
