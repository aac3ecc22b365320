package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	accountControllers "github.com/Sufiyan0000/nike-ecommerce/controllers/account"
	adminControllers "github.com/Sufiyan0000/nike-ecommerce/controllers/admin"
	authControllers "github.com/Sufiyan0000/nike-ecommerce/controllers/auth"
	cartControllers "github.com/Sufiyan0000/nike-ecommerce/controllers/cart"
	catalogControllers "github.com/Sufiyan0000/nike-ecommerce/controllers/catalog"
	orderControllers "github.com/Sufiyan0000/nike-ecommerce/controllers/order"
	userControllers "github.com/Sufiyan0000/nike-ecommerce/controllers/user"
	"github.com/Sufiyan0000/nike-ecommerce/repository"
	"github.com/Sufiyan0000/nike-ecommerce/services"
)

// handlers bundles every constructed controller so the route group files can
// share one wiring pass.
type handlers struct {
	auth    *authControllers.Handler
	guests  repository.GuestRepository
	cart    *cartControllers.Handler
	account *accountControllers.Handler
	catalog *catalogControllers.Handler
	order   *orderControllers.Handler
	feed    *orderControllers.StatusFeed
	coupons *adminControllers.CouponHandler
	user    *userControllers.Handler
}

// SetupRoutes is the single entry-point that wires repositories, services and
// all route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	carts := repository.NewGormCartRepository(db)
	guests := repository.NewGormGuestRepository(db)
	users := repository.NewGormUserRepository(db)
	addresses := repository.NewGormAddressRepository(db)
	catalog := repository.NewGormCatalogRepository(db)
	orders := repository.NewGormOrderRepository(db)
	coupons := repository.NewGormCouponRepository(db)

	cartService := services.NewCartService(carts, guests, catalog)
	orderService := services.NewOrderService(orders, carts, addresses, coupons)
	feed := orderControllers.NewStatusFeed()

	h := handlers{
		auth:    authControllers.NewHandler(users, cartService),
		guests:  guests,
		cart:    cartControllers.NewHandler(cartService),
		account: accountControllers.NewHandler(addresses),
		catalog: catalogControllers.NewHandler(catalog),
		order:   orderControllers.NewHandler(orderService, feed),
		feed:    feed,
		coupons: adminControllers.NewCouponHandler(coupons),
		user:    userControllers.NewHandler(users),
	}

	SetupAuthRoutes(r, h)
	SetupPublicRoutes(r, h)
	SetupUserRoutes(r, h)
	SetupAdminRoutes(r, h)
}
