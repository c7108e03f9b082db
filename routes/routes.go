package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-service/controllers"
	"storefront-service/database"
	"storefront-service/middleware"
)

func Register(r *gin.Engine, store database.CartStore) {
	cartController := controllers.NewCartController(store)
	authController := controllers.NewAuthController()
	catalogController := controllers.NewCatalogController()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	products := r.Group("/products")
	{
		products.GET("", catalogController.ListProducts)
		products.GET("/categories", catalogController.ListCategories)
		products.GET("/:id", catalogController.GetProduct)
	}

	cart := r.Group("/cart")
	{
		cart.GET("", cartController.GetCart)
		cart.POST("/items", cartController.AddItem)
		cart.PATCH("/items/:product_id", cartController.UpdateQuantity)
		cart.DELETE("/items/:product_id", cartController.RemoveItem)
		cart.DELETE("", cartController.ClearCart)
		cart.POST("/checkout", cartController.Checkout)
	}

	auth := r.Group("/auth")
	auth.Use(middleware.RateLimitMiddleware())
	{
		auth.POST("/login/validate", authController.ValidateLogin)
		auth.POST("/signup/validate", authController.ValidateSignup)
		auth.POST("/errors/translate", authController.TranslateError)
	}
}
