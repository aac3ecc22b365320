package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Sufiyan0000/nike-ecommerce/auth"
)

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// RequireUser rejects requests without a valid user JWT and stores the user
// id in the context.
func RequireUser(c *gin.Context) {
	tokenString := bearerToken(c)
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
		c.Abort()
		return
	}
	userID, err := auth.ParseUserToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		c.Abort()
		return
	}
	c.Set("user_id", userID)
	c.Next()
}

// OptionalUser stores the user id when a valid JWT is presented and lets the
// request through either way. Cart routes use this so anonymous shoppers fall
// back to guest-token resolution.
func OptionalUser(c *gin.Context) {
	if tokenString := bearerToken(c); tokenString != "" {
		if userID, err := auth.ParseUserToken(tokenString); err == nil {
			c.Set("user_id", userID)
		}
	}
	c.Next()
}
