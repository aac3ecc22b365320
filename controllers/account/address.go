package accountControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Sufiyan0000/nike-ecommerce/controllers/respond"
	"github.com/Sufiyan0000/nike-ecommerce/models"
	"github.com/Sufiyan0000/nike-ecommerce/repository"
)

type AddressInput struct {
	Type       models.AddressType `json:"type" binding:"required"`
	Line1      string             `json:"line1" binding:"required"`
	Line2      *string            `json:"line2"`
	City       string             `json:"city" binding:"required"`
	State      string             `json:"state" binding:"required"`
	Country    string             `json:"country" binding:"required"`
	PostalCode string             `json:"postal_code" binding:"required"`
	IsDefault  bool               `json:"is_default"`
}

type Handler struct {
	addrs repository.AddressRepository
}

func NewHandler(addrs repository.AddressRepository) *Handler {
	return &Handler{addrs: addrs}
}

// GET /user/addresses
func (h *Handler) List(c *gin.Context) {
	userID := c.GetString("user_id")
	addresses, err := h.addrs.ListByUser(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, addresses)
}

// POST /user/addresses
func (h *Handler) Create(c *gin.Context) {
	userID := c.GetString("user_id")
	var input AddressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if !input.Type.Valid() {
		respond.Error(c, models.NewValidationError("type", "must be billing or shipping"))
		return
	}

	address := models.Address{
		UserID:     userID,
		Type:       input.Type,
		Line1:      input.Line1,
		Line2:      input.Line2,
		City:       input.City,
		State:      input.State,
		Country:    input.Country,
		PostalCode: input.PostalCode,
		IsDefault:  input.IsDefault,
	}
	if err := h.addrs.Save(c.Request.Context(), &address); err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, address)
}

// PUT /user/addresses/:id
func (h *Handler) Update(c *gin.Context) {
	userID := c.GetString("user_id")
	address, ok := h.ownedAddress(c, userID)
	if !ok {
		return
	}

	var input AddressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if !input.Type.Valid() {
		respond.Error(c, models.NewValidationError("type", "must be billing or shipping"))
		return
	}

	address.Type = input.Type
	address.Line1 = input.Line1
	address.Line2 = input.Line2
	address.City = input.City
	address.State = input.State
	address.Country = input.Country
	address.PostalCode = input.PostalCode
	address.IsDefault = input.IsDefault
	if err := h.addrs.Save(c.Request.Context(), address); err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, address)
}

// DELETE /user/addresses/:id
func (h *Handler) Delete(c *gin.Context) {
	userID := c.GetString("user_id")
	id, ok := addressIDParam(c)
	if !ok {
		return
	}
	if err := h.addrs.Delete(c.Request.Context(), userID, id); err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Address deleted"})
}

// ownedAddress loads the address and hides other users' rows behind a 404.
func (h *Handler) ownedAddress(c *gin.Context, userID string) (*models.Address, bool) {
	id, ok := addressIDParam(c)
	if !ok {
		return nil, false
	}
	address, err := h.addrs.FindByID(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, err)
		return nil, false
	}
	if address.UserID != userID {
		respond.Error(c, models.NewNotFoundError("address", strconv.FormatUint(uint64(id), 10)))
		return nil, false
	}
	return address, true
}

func addressIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid address id"})
		return 0, false
	}
	return uint(id), true
}
