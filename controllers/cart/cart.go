package cartControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Sufiyan0000/nike-ecommerce/controllers/respond"
	"github.com/Sufiyan0000/nike-ecommerce/models"
	"github.com/Sufiyan0000/nike-ecommerce/services"
)

const (
	guestTokenHeader = "X-Guest-Token"
	guestTokenCookie = "guest_token"
)

type AddItemInput struct {
	ProductVariantID uint `json:"product_variant_id" binding:"required"`
	Quantity         int  `json:"quantity"`
}

type SetQuantityInput struct {
	Quantity int `json:"quantity" binding:"required"`
}

type Handler struct {
	svc *services.CartService
}

func NewHandler(svc *services.CartService) *Handler {
	return &Handler{svc: svc}
}

// principal resolves the caller's identity from the JWT context value or the
// guest token in header/cookie, minting a guest when neither is present. The
// second return value is a freshly minted token, if any.
func (h *Handler) principal(c *gin.Context) (services.Principal, string, bool) {
	userID := c.GetString("user_id")

	guestToken := c.GetHeader(guestTokenHeader)
	if guestToken == "" {
		guestToken, _ = c.Cookie(guestTokenCookie)
	}

	p, newToken, err := h.svc.ResolvePrincipal(c.Request.Context(), userID, guestToken)
	if err != nil {
		respond.Error(c, err)
		return services.Principal{}, "", false
	}
	return p, newToken, true
}

func (h *Handler) writeCart(c *gin.Context, status int, cart *models.Cart, newToken string) {
	if newToken != "" {
		c.Header(guestTokenHeader, newToken)
		c.SetCookie(guestTokenCookie, newToken, int(services.GuestTTL.Seconds()), "/", "", false, true)
	}
	c.JSON(status, services.NewCartView(cart, newToken))
}

// GET /cart
func (h *Handler) GetCart(c *gin.Context) {
	p, newToken, ok := h.principal(c)
	if !ok {
		return
	}
	cart, err := h.svc.GetOrCreateCart(c.Request.Context(), p)
	if err != nil {
		respond.Error(c, err)
		return
	}
	h.writeCart(c, http.StatusOK, cart, newToken)
}

// POST /cart/items
func (h *Handler) AddItem(c *gin.Context) {
	var input AddItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if input.Quantity == 0 {
		input.Quantity = 1
	}

	p, newToken, ok := h.principal(c)
	if !ok {
		return
	}
	cart, err := h.svc.AddItem(c.Request.Context(), p, input.ProductVariantID, input.Quantity)
	if err != nil {
		respond.Error(c, err)
		return
	}
	h.writeCart(c, http.StatusOK, cart, newToken)
}

// PUT /cart/items/:id
func (h *Handler) SetItemQuantity(c *gin.Context) {
	itemID, ok := itemIDParam(c)
	if !ok {
		return
	}
	var input SetQuantityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	p, newToken, ok := h.principal(c)
	if !ok {
		return
	}
	cart, err := h.svc.SetItemQuantity(c.Request.Context(), p, itemID, input.Quantity)
	if err != nil {
		respond.Error(c, err)
		return
	}
	h.writeCart(c, http.StatusOK, cart, newToken)
}

// DELETE /cart/items/:id
func (h *Handler) RemoveItem(c *gin.Context) {
	itemID, ok := itemIDParam(c)
	if !ok {
		return
	}
	p, newToken, ok := h.principal(c)
	if !ok {
		return
	}
	cart, err := h.svc.RemoveItem(c.Request.Context(), p, itemID)
	if err != nil {
		respond.Error(c, err)
		return
	}
	h.writeCart(c, http.StatusOK, cart, newToken)
}

// DELETE /cart
func (h *Handler) ClearCart(c *gin.Context) {
	p, newToken, ok := h.principal(c)
	if !ok {
		return
	}
	cart, err := h.svc.ClearCart(c.Request.Context(), p)
	if err != nil {
		respond.Error(c, err)
		return
	}
	h.writeCart(c, http.StatusOK, cart, newToken)
}

func itemIDParam(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return 0, false
	}
	return uint(id), true
}
