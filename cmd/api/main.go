package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"saree-store/internal/auth"
	"saree-store/internal/cache"
	"saree-store/internal/cart"
	"saree-store/internal/catalog"
	"saree-store/internal/checkout"
	"saree-store/internal/config"
	"saree-store/internal/orders"
	"saree-store/internal/routes"
	"saree-store/internal/wishlist"
)

// Simulated network latencies for the mock auth and order placement.
const (
	loginDelay  = 800 * time.Millisecond
	submitDelay = 2 * time.Second
)

func main() {
	log.Println("✅ Starting storefront API...")

	cfg := config.LoadConfig()

	cartStore := cart.NewStore()
	orderStore := orders.NewStore()

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(router, routes.Deps{
		Catalog:   catalog.New(),
		Cache:     cache.New(5 * time.Minute),
		Cart:      cartStore,
		Auth:      auth.NewStore(cfg.SessionFile, loginDelay),
		Orders:    orderStore,
		Wishlist:  wishlist.NewStore(),
		Checkout:  checkout.NewManager(cartStore, orderStore, submitDelay),
		JWTSecret: []byte(cfg.JWTSecret),
	})

	log.Println("🚀 Server running on port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
