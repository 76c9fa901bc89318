// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/product"
	"github.com/your-org/storefront/internal/domain/user"
	"github.com/your-org/storefront/internal/domain/wishlist"
	"github.com/your-org/storefront/internal/interfaces/http/handlers"
	"github.com/your-org/storefront/internal/interfaces/http/middleware"
)

// Dependencies are the services the API routes are served by
type Dependencies struct {
	Users     *user.Service
	Carts     *cart.Service
	Wishlists *wishlist.Service
	Catalog   *product.Service
	Log       logrus.FieldLogger
}

// SetupAuthRoutes sets up authentication related routes
func SetupAuthRoutes(rg *gin.RouterGroup, deps Dependencies) {
	authHandler := handlers.NewAuthHandler(deps.Users, deps.Log)

	auth := rg.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)

		protected := auth.Group("")
		protected.Use(middleware.AuthMiddleware(deps.Users))
		{
			protected.GET("/me", authHandler.GetProfile)
		}
	}
}

// SetupCartRoutes sets up cart routes. There is no guest cart on the
// server; every route needs a token.
func SetupCartRoutes(rg *gin.RouterGroup, deps Dependencies) {
	cartHandler := handlers.NewCartHandler(deps.Carts, deps.Log)

	carts := rg.Group("/cart")
	carts.Use(middleware.AuthMiddleware(deps.Users))
	{
		carts.GET("", cartHandler.GetCart)
		carts.POST("", cartHandler.ReplaceCart)
		carts.DELETE("", cartHandler.ClearCart)
		carts.POST("/merge", cartHandler.MergeCart)
	}
}

// SetupWishlistRoutes sets up wishlist routes
func SetupWishlistRoutes(rg *gin.RouterGroup, deps Dependencies) {
	wishlistHandler := handlers.NewWishlistHandler(deps.Wishlists, deps.Log)

	wishlists := rg.Group("/wishlist")
	wishlists.Use(middleware.AuthMiddleware(deps.Users))
	{
		wishlists.GET("", wishlistHandler.GetWishlist)
		wishlists.POST("", wishlistHandler.ReplaceWishlist)
		wishlists.DELETE("", wishlistHandler.DeleteWishlist)
		wishlists.POST("/items", wishlistHandler.AddItem)
	}
}

// SetupCatalogRoutes sets up the public product and category routes
func SetupCatalogRoutes(rg *gin.RouterGroup, deps Dependencies) {
	productHandler := handlers.NewProductHandler(deps.Catalog, deps.Log)
	categoryHandler := handlers.NewCategoryHandler(deps.Catalog, deps.Log)

	products := rg.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/:id", productHandler.GetProduct)
	}

	categories := rg.Group("/categories")
	{
		categories.GET("", categoryHandler.GetCategories)
		categories.GET("/:slug", categoryHandler.GetCategoryBySlug)
	}
}

// SetupRoutes sets up all API routes
func SetupRoutes(rg *gin.RouterGroup, deps Dependencies) {
	SetupAuthRoutes(rg, deps)
	SetupCartRoutes(rg, deps)
	SetupWishlistRoutes(rg, deps)
	SetupCatalogRoutes(rg, deps)
}
