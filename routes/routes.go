package routes

import (
	"net/http"
	"time"

	"rinseo/handlers"
	"rinseo/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers authentication endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.LoginHandler)
		api.POST("/register", hb.RegisterHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.RequireSession())
		api.POST("/logout", hb.LogoutHandler)
		api.GET("/me", hb.ProfileHandler)
	}
}

// RegisterCartRoutes registers cart endpoints. Adding an item is open
// to anonymous clients so the deferred-intent flow can capture it; the
// rest of the cart is a protected page.
func RegisterCartRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/cart")
	{
		api.POST("/items", hb.AddItemHandler)

		protected := api.Group("")
		protected.Use(middleware.RequireSession())
		protected.GET("", hb.GetCartHandler)
		protected.PUT("/items", hb.UpdateQuantityHandler)
		protected.DELETE("/items", hb.RemoveItemHandler)
		protected.DELETE("", hb.ClearCartHandler)
		protected.POST("/checkout", hb.CheckoutHandler)
	}
}

// RegisterBookingRoutes registers laundry booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.SubmitBookingHandler)
		api.GET("", hb.ListBookingsHandler)

		protected := api.Group("")
		protected.Use(middleware.RequireSession())
		protected.POST("/:id/add-to-cart", hb.BookingToCartHandler)
	}
}

// RegisterCatalogRoutes registers read-only catalog and promo
// endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/products", hb.ListProductsHandler)
		api.GET("/products/:id", hb.GetProductHandler)
		api.GET("/service-plans", hb.ListServicePlansHandler)
		api.GET("/promo/daily", hb.DailyPromoHandler)
		api.POST("/promo/daily/seen", hb.MarkPromoSeenHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Rinseo"})
	})
}

// RegisterRoutes wires global middleware and all route groups.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", middleware.ClientIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.ClientIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterCartRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterHealthRoute(r)
}
