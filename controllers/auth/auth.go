package authControllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Sufiyan0000/nike-ecommerce/auth"
	"github.com/Sufiyan0000/nike-ecommerce/controllers/respond"
	"github.com/Sufiyan0000/nike-ecommerce/models"
	"github.com/Sufiyan0000/nike-ecommerce/repository"
	"github.com/Sufiyan0000/nike-ecommerce/services"
)

type SignUpInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name"`
}

type SignInInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type Handler struct {
	users repository.UserRepository
	carts *services.CartService
}

func NewHandler(users repository.UserRepository, carts *services.CartService) *Handler {
	return &Handler{users: users, carts: carts}
}

// POST /auth/signup
func (h *Handler) SignUp(c *gin.Context) {
	var input SignUpInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		Name:         input.Name,
		PasswordHash: string(hash),
	}
	if err := h.users.Create(c.Request.Context(), user); err != nil {
		respond.Error(c, err)
		return
	}

	h.finishSignIn(c, user)
}

// POST /auth/signin
func (h *Handler) SignIn(c *gin.Context) {
	var input SignInInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	user, err := h.users.FindByEmail(c.Request.Context(), strings.ToLower(strings.TrimSpace(input.Email)))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	h.finishSignIn(c, user)
}

// finishSignIn issues the JWT and folds any guest cart the caller carried
// into the user's cart. Merge failures are not fatal to the sign-in itself.
func (h *Handler) finishSignIn(c *gin.Context, user *models.User) {
	if guestToken := guestTokenFrom(c); guestToken != "" {
		if err := h.carts.MergeGuestCart(c.Request.Context(), user.ID, guestToken); err != nil {
			respond.Error(c, err)
			return
		}
		c.SetCookie("guest_token", "", -1, "/", "", false, true)
	}

	token, err := auth.IssueUserToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
		},
	})
}

// CreateGuest mints a guest identity explicitly. The cart routes mint one
// lazily as well; this endpoint lets a client obtain a token up front.
func CreateGuest(guests repository.GuestRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		guest := &models.Guest{
			Token:     auth.NewGuestToken(),
			ExpiresAt: time.Now().Add(services.GuestTTL),
		}
		if err := guests.Create(c.Request.Context(), guest); err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"guest_token": guest.Token,
			"expires_at":  guest.ExpiresAt,
		})
	}
}

func guestTokenFrom(c *gin.Context) string {
	if token := c.GetHeader("X-Guest-Token"); token != "" {
		return token
	}
	token, _ := c.Cookie("guest_token")
	return token
}
