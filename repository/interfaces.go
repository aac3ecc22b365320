package repository

import (
	"context"

	"github.com/Sufiyan0000/nike-ecommerce/models"
)

// CartRepository exposes the atomic cart operations. Find-or-create and item
// upserts run as single statements against the store's uniqueness constraints
// so concurrent first requests cannot produce duplicate rows.
type CartRepository interface {
	GetOrCreateByUser(ctx context.Context, userID string) (*models.Cart, error)
	GetOrCreateByGuest(ctx context.Context, guestToken string) (*models.Cart, error)
	FindByGuest(ctx context.Context, guestToken string) (*models.Cart, error)
	FindByID(ctx context.Context, cartID uint) (*models.Cart, error)
	UpsertItem(ctx context.Context, cartID, variantID uint, quantity int) (*models.CartItem, error)
	SetItemQuantity(ctx context.Context, cartID, itemID uint, quantity int) (*models.CartItem, error)
	DeleteItem(ctx context.Context, cartID, itemID uint) error
	ClearItems(ctx context.Context, cartID uint) error
	MergeInto(ctx context.Context, fromCartID, toCartID uint) error
	DeleteCart(ctx context.Context, cartID uint) error
}

type GuestRepository interface {
	Create(ctx context.Context, guest *models.Guest) error
	FindByToken(ctx context.Context, token string) (*models.Guest, error)
	Delete(ctx context.Context, token string) error
}

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}

type AddressRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.Address, error)
	FindByID(ctx context.Context, id uint) (*models.Address, error)
	Save(ctx context.Context, address *models.Address) error
	Delete(ctx context.Context, userID string, id uint) error
}

type CatalogRepository interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	FindProductByID(ctx context.Context, id uint) (*models.Product, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	CreateVariant(ctx context.Context, variant *models.ProductVariant) error
	FindVariantByID(ctx context.Context, id uint) (*models.ProductVariant, error)
}

type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id uint) (*models.Order, error)
	ListByUser(ctx context.Context, userID string) ([]models.Order, error)
	ListAll(ctx context.Context) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id uint, status models.OrderStatus) (*models.Order, error)
	CreatePayment(ctx context.Context, payment *models.Payment) error
}

type CouponRepository interface {
	Create(ctx context.Context, coupon *models.Coupon) error
	FindByCode(ctx context.Context, code string) (*models.Coupon, error)
	List(ctx context.Context) ([]models.Coupon, error)
	Delete(ctx context.Context, id uint) error
}
