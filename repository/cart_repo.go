package repository

import (
	"context"
	"strconv"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Sufiyan0000/nike-ecommerce/models"
)

type GormCartRepository struct {
	db *gorm.DB
}

func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// GetOrCreateByUser resolves the single cart owned by the user, creating it
// atomically on first use. INSERT ... ON CONFLICT DO NOTHING against the
// unique index on user_id closes the duplicate-cart race; the follow-up read
// returns whichever row won.
func (r *GormCartRepository) GetOrCreateByUser(ctx context.Context, userID string) (*models.Cart, error) {
	cart := models.Cart{UserID: &userID}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).
		Create(&cart).Error
	if err != nil {
		return nil, translate(err, "cart.create", "cart", "")
	}
	return r.findByOwner(ctx, "user_id = ?", userID)
}

// GetOrCreateByGuest is the guest-token twin of GetOrCreateByUser.
func (r *GormCartRepository) GetOrCreateByGuest(ctx context.Context, guestToken string) (*models.Cart, error) {
	cart := models.Cart{GuestToken: &guestToken}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "guest_token"}},
			DoNothing: true,
		}).
		Create(&cart).Error
	if err != nil {
		return nil, translate(err, "cart.create", "cart", "")
	}
	return r.findByOwner(ctx, "guest_token = ?", guestToken)
}

func (r *GormCartRepository) FindByGuest(ctx context.Context, guestToken string) (*models.Cart, error) {
	return r.findByOwner(ctx, "guest_token = ?", guestToken)
}

func (r *GormCartRepository) FindByID(ctx context.Context, cartID uint) (*models.Cart, error) {
	return r.findByOwner(ctx, "id = ?", cartID)
}

func (r *GormCartRepository) findByOwner(ctx context.Context, query string, arg interface{}) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("cart_items.id") }).
		Preload("Items.ProductVariant").
		Where(query, arg).
		First(&cart).Error
	if err != nil {
		return nil, translate(err, "cart.find", "cart", "")
	}
	return &cart, nil
}

// UpsertItem adds quantity to the (cart, variant) row, creating it when
// absent. The unique index on (cart_id, product_variant_id) plus
// ON CONFLICT DO UPDATE keeps the aggregation idempotent under concurrency.
func (r *GormCartRepository) UpsertItem(ctx context.Context, cartID, variantID uint, quantity int) (*models.CartItem, error) {
	now := time.Now()
	var out models.CartItem
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item := models.CartItem{
			CartID:           cartID,
			ProductVariantID: variantID,
			Quantity:         quantity,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_variant_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity":   gorm.Expr("quantity + excluded.quantity"),
				"updated_at": now,
			}),
		}).Create(&item).Error; err != nil {
			return err
		}
		if err := tx.Preload("ProductVariant").
			Where("cart_id = ? AND product_variant_id = ?", cartID, variantID).
			First(&out).Error; err != nil {
			return err
		}
		return r.touchCart(tx, cartID, now)
	})
	if err != nil {
		return nil, translate(err, "cart.upsert_item", "cart item", "")
	}
	return &out, nil
}

// SetItemQuantity overwrites an item's quantity directly.
func (r *GormCartRepository) SetItemQuantity(ctx context.Context, cartID, itemID uint, quantity int) (*models.CartItem, error) {
	now := time.Now()
	var out models.CartItem
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.CartItem{}).
			Where("id = ? AND cart_id = ?", itemID, cartID).
			Updates(map[string]interface{}{"quantity": quantity, "updated_at": now})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Preload("ProductVariant").First(&out, "id = ?", itemID).Error; err != nil {
			return err
		}
		return r.touchCart(tx, cartID, now)
	})
	if err != nil {
		return nil, translate(err, "cart.set_quantity", "cart item", strconv.FormatUint(uint64(itemID), 10))
	}
	return &out, nil
}

func (r *GormCartRepository) DeleteItem(ctx context.Context, cartID, itemID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND cart_id = ?", itemID, cartID).Delete(&models.CartItem{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return r.touchCart(tx, cartID, time.Now())
	})
	return translate(err, "cart.delete_item", "cart item", strconv.FormatUint(uint64(itemID), 10))
}

// ClearItems removes all items; the cart row itself is retained.
func (r *GormCartRepository) ClearItems(ctx context.Context, cartID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return r.touchCart(tx, cartID, time.Now())
	})
	return translate(err, "cart.clear", "cart", "")
}

// MergeInto moves every item of one cart into another with the same
// aggregating upsert used by UpsertItem, then empties the source cart.
func (r *GormCartRepository) MergeInto(ctx context.Context, fromCartID, toCartID uint) error {
	now := time.Now()
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var items []models.CartItem
		if err := tx.Where("cart_id = ?", fromCartID).Find(&items).Error; err != nil {
			return err
		}
		for _, it := range items {
			moved := models.CartItem{
				CartID:           toCartID,
				ProductVariantID: it.ProductVariantID,
				Quantity:         it.Quantity,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_variant_id"}},
				DoUpdates: clause.Assignments(map[string]interface{}{
					"quantity":   gorm.Expr("quantity + excluded.quantity"),
					"updated_at": now,
				}),
			}).Create(&moved).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("cart_id = ?", fromCartID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return r.touchCart(tx, toCartID, now)
	})
	return translate(err, "cart.merge", "cart", "")
}

func (r *GormCartRepository) DeleteCart(ctx context.Context, cartID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Cart{}, "id = ?", cartID).Error
	})
	return translate(err, "cart.delete", "cart", "")
}

func (r *GormCartRepository) touchCart(tx *gorm.DB, cartID uint, at time.Time) error {
	return tx.Model(&models.Cart{}).Where("id = ?", cartID).Update("updated_at", at).Error
}
