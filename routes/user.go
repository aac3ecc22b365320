package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Sufiyan0000/nike-ecommerce/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, h handlers) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.RequireUser)
	{
		userGroup.GET("", h.user.Get)
		userGroup.PUT("", h.user.Update)

		addressGroup := userGroup.Group("/addresses")
		{
			addressGroup.GET("", h.account.List)
			addressGroup.POST("", h.account.Create)
			addressGroup.PUT("/:id", h.account.Update)
			addressGroup.DELETE("/:id", h.account.Delete)
		}

		orderGroup := userGroup.Group("/orders")
		{
			orderGroup.POST("", h.order.Place)
			orderGroup.GET("", h.order.List)
			orderGroup.GET("/:id", h.order.Get)
			orderGroup.POST("/:id/payments", h.order.RecordPayment)
		}
	}
}
