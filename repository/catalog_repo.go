package repository

import (
	"context"
	"strconv"

	"gorm.io/gorm"

	"github.com/Sufiyan0000/nike-ecommerce/models"
)

type GormCatalogRepository struct {
	db *gorm.DB
}

func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

func (r *GormCatalogRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	err := r.db.WithContext(ctx).Create(product).Error
	return translate(err, "catalog.create_product", "product", "")
}

func (r *GormCatalogRepository) FindProductByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("Variants", func(db *gorm.DB) *gorm.DB { return db.Order("product_variants.id") }).
		First(&product, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, "catalog.find_product", "product", strconv.FormatUint(uint64(id), 10))
	}
	return &product, nil
}

func (r *GormCatalogRepository) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).Order("id").Find(&products).Error
	if err != nil {
		return nil, translate(err, "catalog.list_products", "product", "")
	}
	return products, nil
}

// CreateVariant inserts the variant and, when the product has no default yet,
// promotes this one. The guarded UPDATE means only the first created variant
// ever wins; later creations leave an existing default untouched.
func (r *GormCatalogRepository) CreateVariant(ctx context.Context, variant *models.ProductVariant) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, "id = ?", variant.ProductID).Error; err != nil {
			return err
		}
		if err := tx.Create(variant).Error; err != nil {
			return err
		}
		return tx.Model(&models.Product{}).
			Where("id = ? AND default_variant_id IS NULL", variant.ProductID).
			Update("default_variant_id", variant.ID).Error
	})
	return translate(err, "catalog.create_variant", "product", strconv.FormatUint(uint64(variant.ProductID), 10))
}

func (r *GormCatalogRepository) FindVariantByID(ctx context.Context, id uint) (*models.ProductVariant, error) {
	var variant models.ProductVariant
	err := r.db.WithContext(ctx).First(&variant, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, "catalog.find_variant", "product variant", strconv.FormatUint(uint64(id), 10))
	}
	return &variant, nil
}
