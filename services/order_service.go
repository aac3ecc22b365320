package services

import (
	"context"
	"strconv"
	"time"

	"github.com/Sufiyan0000/nike-ecommerce/models"
	"github.com/Sufiyan0000/nike-ecommerce/pricing"
	"github.com/Sufiyan0000/nike-ecommerce/repository"
)

// OrderService turns a priced cart into an order. Unit prices are snapshotted
// into price_at_purchase so later catalog changes never move a placed order's
// total.
type OrderService struct {
	orders  repository.OrderRepository
	carts   repository.CartRepository
	addrs   repository.AddressRepository
	coupons repository.CouponRepository
	now     func() time.Time
}

func NewOrderService(orders repository.OrderRepository, carts repository.CartRepository, addrs repository.AddressRepository, coupons repository.CouponRepository) *OrderService {
	return &OrderService{
		orders:  orders,
		carts:   carts,
		addrs:   addrs,
		coupons: coupons,
		now:     time.Now,
	}
}

type PlaceOrderInput struct {
	ShippingAddressID uint   `json:"shipping_address_id" binding:"required"`
	BillingAddressID  uint   `json:"billing_address_id" binding:"required"`
	CouponCode        string `json:"coupon_code"`
}

// PlaceOrder builds an order from the user's current cart. The coupon, when
// given, is validated for existence and expiry and attached to the order;
// redemption accounting (used_count vs max_usage) is intentionally not
// applied here.
func (s *OrderService) PlaceOrder(ctx context.Context, userID string, input PlaceOrderInput) (*models.Order, error) {
	cart, err := s.carts.GetOrCreateByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, models.NewValidationError("cart", "cart is empty")
	}

	if err := s.checkAddress(ctx, userID, input.ShippingAddressID, "shipping_address_id"); err != nil {
		return nil, err
	}
	if err := s.checkAddress(ctx, userID, input.BillingAddressID, "billing_address_id"); err != nil {
		return nil, err
	}

	var couponID *uint
	if input.CouponCode != "" {
		coupon, err := s.coupons.FindByCode(ctx, input.CouponCode)
		if err != nil {
			return nil, err
		}
		if !coupon.ExpiresAt.After(s.now()) {
			return nil, models.NewValidationError("coupon_code", "coupon has expired")
		}
		couponID = &coupon.ID
	}

	items := make([]models.OrderItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, models.OrderItem{
			ProductVariantID: item.ProductVariantID,
			Quantity:         item.Quantity,
			PriceAtPurchase:  pricing.EffectiveUnitPrice(item.ProductVariant),
		})
	}

	order := &models.Order{
		UserID:            userID,
		Status:            models.OrderStatusPending,
		TotalAmount:       pricing.CartTotals(cart.Items).TotalAmount,
		ShippingAddressID: input.ShippingAddressID,
		BillingAddressID:  input.BillingAddressID,
		CouponID:          couponID,
		Items:             items,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	if err := s.carts.ClearItems(ctx, cart.ID); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) checkAddress(ctx context.Context, userID string, addressID uint, field string) error {
	if addressID == 0 {
		return models.NewValidationError(field, "is required")
	}
	address, err := s.addrs.FindByID(ctx, addressID)
	if err != nil {
		return err
	}
	if address.UserID != userID {
		return models.NewNotFoundError("address", strconv.FormatUint(uint64(addressID), 10))
	}
	return nil
}

// GetOrder returns an order only when it belongs to the user.
func (s *OrderService) GetOrder(ctx context.Context, userID string, orderID uint) (*models.Order, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, models.NewNotFoundError("order", strconv.FormatUint(uint64(orderID), 10))
	}
	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, userID string) ([]models.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

type RecordPaymentInput struct {
	Method        models.PaymentMethod `json:"method" binding:"required"`
	TransactionID string               `json:"transaction_id"`
}

// RecordPayment stores a payment attempt against the user's order. No gateway
// is called; the record starts in the initiated state.
func (s *OrderService) RecordPayment(ctx context.Context, userID string, orderID uint, input RecordPaymentInput) (*models.Payment, error) {
	if !input.Method.Valid() {
		return nil, models.NewValidationError("method", "must be one of stripe, paypal, cod")
	}
	order, err := s.GetOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	payment := &models.Payment{
		OrderID:       order.ID,
		Method:        input.Method,
		Status:        models.PaymentStatusInitiated,
		Amount:        order.TotalAmount,
		TransactionID: input.TransactionID,
	}
	if err := s.orders.CreatePayment(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// UpdateStatus overwrites an order's status; transitions are a direct enum
// overwrite with no lifecycle machine behind them.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID uint, status models.OrderStatus) (*models.Order, error) {
	if !status.Valid() {
		return nil, models.NewValidationError("status", "invalid order status")
	}
	return s.orders.UpdateStatus(ctx, orderID, status)
}

func (s *OrderService) ListAllOrders(ctx context.Context) ([]models.Order, error) {
	return s.orders.ListAll(ctx)
}
