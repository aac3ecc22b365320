package routes

import (
	"github.com/gin-gonic/gin"

	authControllers "github.com/Sufiyan0000/nike-ecommerce/controllers/auth"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, h handlers) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", h.auth.SignUp)
		authGroup.POST("/signin", h.auth.SignIn)
		authGroup.POST("/guest", authControllers.CreateGuest(h.guests))
	}
}
