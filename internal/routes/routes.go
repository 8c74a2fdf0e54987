package routes

import (
	"github.com/gin-gonic/gin"

	"saree-store/internal/auth"
	"saree-store/internal/cache"
	"saree-store/internal/cart"
	"saree-store/internal/catalog"
	"saree-store/internal/checkout"
	"saree-store/internal/handlers"
	"saree-store/internal/orders"
	"saree-store/internal/wishlist"
)

// Deps are the stores the route handlers run against. Everything is
// injected so tests can register the routes on a throwaway engine.
type Deps struct {
	Catalog   *catalog.Catalog
	Cache     *cache.Cache
	Cart      *cart.Store
	Auth      *auth.Store
	Orders    *orders.Store
	Wishlist  *wishlist.Store
	Checkout  *checkout.Manager
	JWTSecret []byte
}

func RegisterRoutes(router *gin.Engine, d Deps) {
	productH := handlers.NewProductHandler(d.Catalog, d.Cache)
	authH := handlers.NewAuthHandler(d.Auth, d.JWTSecret)
	cartH := handlers.NewCartHandler(d.Cart, d.Catalog)
	checkoutH := handlers.NewCheckoutHandler(d.Checkout, d.Cart)
	orderH := handlers.NewOrderHandler(d.Orders)
	wishlistH := handlers.NewWishlistHandler(d.Wishlist, d.Catalog)

	api := router.Group("/api")
	{
		api.POST("/auth/register", authH.Register)
		api.POST("/auth/login", authH.Login)

		api.GET("/products", productH.ListProducts)
		api.GET("/products/facets", productH.GetFacets)
		api.GET("/products/:id", productH.GetProduct)
	}

	user := api.Group("", auth.Middleware(d.JWTSecret, d.Auth))
	{
		user.POST("/auth/logout", authH.Logout)
		user.GET("/auth/me", authH.Me)

		user.GET("/cart", cartH.GetCart)
		user.POST("/cart", cartH.AddItem)
		user.PUT("/cart/:productId", cartH.UpdateItem)
		user.DELETE("/cart/:productId", cartH.RemoveItem)
		user.POST("/cart/clear", cartH.ClearCart)
		user.GET("/cart/summary", cartH.Summary)
		user.POST("/cart/promo", cartH.ApplyPromo)

		user.POST("/checkout/start", checkoutH.Start)
		user.GET("/checkout", checkoutH.GetState)
		user.POST("/checkout/continue", checkoutH.Continue)
		user.POST("/checkout/back", checkoutH.Back)

		user.GET("/orders", orderH.ListOrders)
		user.GET("/orders/:orderId", orderH.GetOrder)

		user.GET("/wishlist", wishlistH.GetWishlist)
		user.POST("/wishlist", wishlistH.AddToWishlist)
		user.DELETE("/wishlist/:productId", wishlistH.RemoveFromWishlist)
	}
}
