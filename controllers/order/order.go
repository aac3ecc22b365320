package orderControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Sufiyan0000/nike-ecommerce/controllers/respond"
	"github.com/Sufiyan0000/nike-ecommerce/models"
	"github.com/Sufiyan0000/nike-ecommerce/services"
)

type UpdateStatusInput struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

type Handler struct {
	svc  *services.OrderService
	feed *StatusFeed
}

func NewHandler(svc *services.OrderService, feed *StatusFeed) *Handler {
	return &Handler{svc: svc, feed: feed}
}

// POST /user/orders
func (h *Handler) Place(c *gin.Context) {
	userID := c.GetString("user_id")
	var input services.PlaceOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	order, err := h.svc.PlaceOrder(c.Request.Context(), userID, input)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// GET /user/orders
func (h *Handler) List(c *gin.Context) {
	userID := c.GetString("user_id")
	orders, err := h.svc.ListOrders(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GET /user/orders/:id
func (h *Handler) Get(c *gin.Context) {
	userID := c.GetString("user_id")
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}
	order, err := h.svc.GetOrder(c.Request.Context(), userID, orderID)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// POST /user/orders/:id/payments
func (h *Handler) RecordPayment(c *gin.Context) {
	userID := c.GetString("user_id")
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}
	var input services.RecordPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	payment, err := h.svc.RecordPayment(c.Request.Context(), userID, orderID, input)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

// PUT /admin/orders/:id/status
func (h *Handler) UpdateStatus(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}
	var input UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	order, err := h.svc.UpdateStatus(c.Request.Context(), orderID, input.Status)
	if err != nil {
		respond.Error(c, err)
		return
	}
	h.feed.Broadcast(order)
	c.JSON(http.StatusOK, order)
}

func orderIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return 0, false
	}
	return uint(id), true
}
