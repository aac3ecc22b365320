package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Sufiyan0000/nike-ecommerce/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. API-key protected.
func SetupAdminRoutes(r *gin.Engine, h handlers) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		adminGroup.POST("/products", h.catalog.CreateProduct)
		adminGroup.POST("/products/:id/variants", h.catalog.CreateVariant)

		adminGroup.PUT("/orders/:id/status", h.order.UpdateStatus)
		adminGroup.GET("/orders/export", h.order.Export)
		adminGroup.GET("/orders/ws", h.feed.Handle)

		adminGroup.POST("/coupons", h.coupons.Create)
		adminGroup.GET("/coupons", h.coupons.List)
		adminGroup.DELETE("/coupons/:id", h.coupons.Delete)
	}
}
