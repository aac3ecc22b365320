package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Sufiyan0000/nike-ecommerce/middleware"
)

// SetupPublicRoutes registers catalog browsing and the cart endpoints. Cart
// routes accept either an authenticated user or a guest token; with neither,
// a guest identity is minted and echoed back.
func SetupPublicRoutes(r *gin.Engine, h handlers) {
	r.GET("/products", h.catalog.ListProducts)
	r.GET("/products/:id", h.catalog.GetProduct)
	r.GET("/variants/:id", h.catalog.GetVariant)

	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.OptionalUser)
	{
		cartGroup.GET("", h.cart.GetCart)
		cartGroup.POST("/items", h.cart.AddItem)
		cartGroup.PUT("/items/:id", h.cart.SetItemQuantity)
		cartGroup.DELETE("/items/:id", h.cart.RemoveItem)
		cartGroup.DELETE("", h.cart.ClearCart)
	}
}
