// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-gateway/internal/authflow"
	"github.com/your-org/storefront-gateway/internal/config"
	"github.com/your-org/storefront-gateway/internal/infrastructure/cache"
	"github.com/your-org/storefront-gateway/internal/interfaces/http/handlers"
	"github.com/your-org/storefront-gateway/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-gateway/internal/shopapi"
)

// SetupRoutes wires every API route group
func SetupRoutes(rg *gin.RouterGroup, shop *shopapi.Client, snapshots *cache.SnapshotCache, flows *authflow.Client, cfg *config.Config) {
	SetupCatalogRoutes(rg, snapshots, cfg)
	SetupCartRoutes(rg, shop, snapshots, flows, cfg)
	SetupOrderRoutes(rg, shop, snapshots, flows, cfg)
	SetupProfileRoutes(rg, shop, flows, cfg)
	SetupAuthRoutes(rg, flows, cfg)
}

// SetupCatalogRoutes sets up catalog browsing and search routes
func SetupCatalogRoutes(rg *gin.RouterGroup, snapshots *cache.SnapshotCache, cfg *config.Config) {
	catalogHandler := handlers.NewCatalogHandler(snapshots, cfg)

	catalog := rg.Group("/catalog")
	{
		catalog.GET("", catalogHandler.GetCatalog)
		catalog.GET("/availability", catalogHandler.GetAvailability)
		catalog.GET("/search", catalogHandler.Search)
	}
}

// SetupCartRoutes sets up cart related routes
func SetupCartRoutes(rg *gin.RouterGroup, shop *shopapi.Client, snapshots *cache.SnapshotCache, flows *authflow.Client, cfg *config.Config) {
	cartHandler := handlers.NewCartHandler(shop, snapshots, cfg)

	cart := rg.Group("/cart")
	cart.Use(middleware.SessionMiddleware(cfg, flows)) // The remote cart is user-scoped
	{
		cart.GET("", cartHandler.GetCart)
		cart.POST("/checkout", cartHandler.Checkout)
		cart.GET("/favorites", cartHandler.GetFavorites)
	}
}

// SetupOrderRoutes sets up checkout and order creation routes
func SetupOrderRoutes(rg *gin.RouterGroup, shop *shopapi.Client, snapshots *cache.SnapshotCache, flows *authflow.Client, cfg *config.Config) {
	orderHandler := handlers.NewOrderHandler(shop, snapshots, cfg)

	order := rg.Group("/order")
	order.Use(middleware.SessionMiddleware(cfg, flows))
	{
		order.GET("/checkout", orderHandler.GetCheckout)
		order.POST("", orderHandler.CreateOrder)
	}
}

// SetupProfileRoutes sets up profile routes
func SetupProfileRoutes(rg *gin.RouterGroup, shop *shopapi.Client, flows *authflow.Client, cfg *config.Config) {
	profileHandler := handlers.NewProfileHandler(shop, cfg)

	profile := rg.Group("/profile")
	profile.Use(middleware.SessionMiddleware(cfg, flows))
	{
		profile.GET("/orders", profileHandler.GetOrderList)
		profile.GET("/orders/:id", profileHandler.GetOrder)
		profile.GET("/delivery", profileHandler.GetSavedDelivery)
	}
}

// SetupAuthRoutes sets up identity-provider flow pass-through routes
func SetupAuthRoutes(rg *gin.RouterGroup, flows *authflow.Client, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(flows, cfg)

	auth := rg.Group("/auth")
	{
		// Public flow endpoints
		auth.GET("/flows/:type/new", authHandler.CreateFlow)
		auth.GET("/flows/:type", middleware.OptionalSessionMiddleware(cfg, flows), authHandler.GetFlow)
		auth.POST("/flows/:type", authHandler.SubmitFlow)

		// Session introspection
		auth.GET("/whoami", middleware.SessionMiddleware(cfg, flows), authHandler.WhoAmI)
	}
}
