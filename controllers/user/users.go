package userControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sufiyan0000/nike-ecommerce/controllers/respond"
	"github.com/Sufiyan0000/nike-ecommerce/repository"
)

type UpdateUserInput struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

type Handler struct {
	users repository.UserRepository
}

func NewHandler(users repository.UserRepository) *Handler {
	return &Handler{users: users}
}

// GET /user
func (h *Handler) Get(c *gin.Context) {
	userID := c.GetString("user_id")
	user, err := h.users.FindByID(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// PUT /user
func (h *Handler) Update(c *gin.Context) {
	userID := c.GetString("user_id")
	user, err := h.users.FindByID(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, err)
		return
	}

	var input UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if err := h.users.Update(c.Request.Context(), user); err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
