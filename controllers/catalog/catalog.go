package catalogControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/Sufiyan0000/nike-ecommerce/controllers/respond"
	"github.com/Sufiyan0000/nike-ecommerce/models"
	"github.com/Sufiyan0000/nike-ecommerce/repository"
	"github.com/Sufiyan0000/nike-ecommerce/services"
)

type ProductInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Gender      string `json:"gender"`
}

type VariantInput struct {
	SKU       string           `json:"sku" binding:"required"`
	Price     decimal.Decimal  `json:"price" binding:"required"`
	SalePrice *decimal.Decimal `json:"sale_price"`
	Color     string           `json:"color"`
	Size      string           `json:"size"`
	InStock   int              `json:"in_stock"`
	Weight    float64          `json:"weight"`
}

type Handler struct {
	catalog repository.CatalogRepository
}

func NewHandler(catalog repository.CatalogRepository) *Handler {
	return &Handler{catalog: catalog}
}

// GET /products
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.catalog.ListProducts(c.Request.Context())
	if err != nil {
		respond.Error(c, err)
		return
	}
	views := make([]services.ProductSummaryView, 0, len(products))
	for _, p := range products {
		views = append(views, services.NewProductSummaryView(p))
	}
	c.JSON(http.StatusOK, views)
}

// GET /products/:id
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	product, err := h.catalog.FindProductByID(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, services.NewProductDetailView(*product))
}

// GET /variants/:id
func (h *Handler) GetVariant(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	variant, err := h.catalog.FindVariantByID(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, services.NewVariantView(*variant))
}

// POST /admin/products
func (h *Handler) CreateProduct(c *gin.Context) {
	var input ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	product := models.Product{
		Name:        input.Name,
		Description: input.Description,
		Gender:      input.Gender,
	}
	if err := h.catalog.CreateProduct(c.Request.Context(), &product); err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, services.NewProductSummaryView(product))
}

// POST /admin/products/:id/variants
// The first variant created for a product becomes its default variant.
func (h *Handler) CreateVariant(c *gin.Context) {
	productID, ok := idParam(c)
	if !ok {
		return
	}
	var input VariantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if input.Price.IsNegative() {
		respond.Error(c, models.NewValidationError("price", "must be non-negative"))
		return
	}
	if input.SalePrice != nil && input.SalePrice.GreaterThan(input.Price) {
		respond.Error(c, models.NewValidationError("sale_price", "cannot be greater than regular price"))
		return
	}

	variant := models.ProductVariant{
		ProductID: productID,
		SKU:       input.SKU,
		Price:     input.Price,
		SalePrice: input.SalePrice,
		Color:     input.Color,
		Size:      input.Size,
		InStock:   input.InStock,
		Weight:    input.Weight,
	}
	if err := h.catalog.CreateVariant(c.Request.Context(), &variant); err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, services.NewVariantView(variant))
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}
