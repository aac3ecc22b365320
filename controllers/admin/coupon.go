package adminControllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/Sufiyan0000/nike-ecommerce/controllers/respond"
	"github.com/Sufiyan0000/nike-ecommerce/models"
	"github.com/Sufiyan0000/nike-ecommerce/repository"
)

type CouponInput struct {
	Code          string              `json:"code" binding:"required"`
	DiscountType  models.DiscountType `json:"discount_type" binding:"required"`
	DiscountValue decimal.Decimal     `json:"discount_value" binding:"required"`
	ExpiresAt     time.Time           `json:"expires_at" binding:"required"`
	MaxUsage      int                 `json:"max_usage"`
}

type CouponHandler struct {
	coupons repository.CouponRepository
}

func NewCouponHandler(coupons repository.CouponRepository) *CouponHandler {
	return &CouponHandler{coupons: coupons}
}

// POST /admin/coupons
func (h *CouponHandler) Create(c *gin.Context) {
	var input CouponInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if input.DiscountType != models.DiscountTypePercentage && input.DiscountType != models.DiscountTypeFixed {
		respond.Error(c, models.NewValidationError("discount_type", "must be percentage or fixed"))
		return
	}
	if input.MaxUsage < 1 {
		input.MaxUsage = 1
	}

	coupon := models.Coupon{
		Code:          input.Code,
		DiscountType:  input.DiscountType,
		DiscountValue: input.DiscountValue,
		ExpiresAt:     input.ExpiresAt,
		MaxUsage:      input.MaxUsage,
	}
	if err := h.coupons.Create(c.Request.Context(), &coupon); err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, coupon)
}

// GET /admin/coupons
func (h *CouponHandler) List(c *gin.Context) {
	coupons, err := h.coupons.List(c.Request.Context())
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, coupons)
}

// DELETE /admin/coupons/:id
func (h *CouponHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coupon id"})
		return
	}
	if err := h.coupons.Delete(c.Request.Context(), uint(id)); err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Coupon deleted"})
}
