package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Sufiyan0000/nike-ecommerce/models"
)

type mockOrderRepo struct {
	create        func(ctx context.Context, order *models.Order) error
	findByID      func(ctx context.Context, id uint) (*models.Order, error)
	listByUser    func(ctx context.Context, userID string) ([]models.Order, error)
	listAll       func(ctx context.Context) ([]models.Order, error)
	updateStatus  func(ctx context.Context, id uint, status models.OrderStatus) (*models.Order, error)
	createPayment func(ctx context.Context, payment *models.Payment) error
}

func (m *mockOrderRepo) Create(ctx context.Context, order *models.Order) error {
	return m.create(ctx, order)
}

func (m *mockOrderRepo) FindByID(ctx context.Context, id uint) (*models.Order, error) {
	return m.findByID(ctx, id)
}

func (m *mockOrderRepo) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	return m.listByUser(ctx, userID)
}

func (m *mockOrderRepo) ListAll(ctx context.Context) ([]models.Order, error) {
	return m.listAll(ctx)
}

func (m *mockOrderRepo) UpdateStatus(ctx context.Context, id uint, status models.OrderStatus) (*models.Order, error) {
	return m.updateStatus(ctx, id, status)
}

func (m *mockOrderRepo) CreatePayment(ctx context.Context, payment *models.Payment) error {
	return m.createPayment(ctx, payment)
}

type mockAddressRepo struct {
	findByID func(ctx context.Context, id uint) (*models.Address, error)
}

func (m *mockAddressRepo) ListByUser(ctx context.Context, userID string) ([]models.Address, error) {
	panic("not used")
}

func (m *mockAddressRepo) FindByID(ctx context.Context, id uint) (*models.Address, error) {
	return m.findByID(ctx, id)
}

func (m *mockAddressRepo) Save(ctx context.Context, address *models.Address) error {
	panic("not used")
}

func (m *mockAddressRepo) Delete(ctx context.Context, userID string, id uint) error {
	panic("not used")
}

type mockCouponRepo struct {
	findByCode func(ctx context.Context, code string) (*models.Coupon, error)
}

func (m *mockCouponRepo) Create(ctx context.Context, coupon *models.Coupon) error {
	panic("not used")
}

func (m *mockCouponRepo) FindByCode(ctx context.Context, code string) (*models.Coupon, error) {
	return m.findByCode(ctx, code)
}

func (m *mockCouponRepo) List(ctx context.Context) ([]models.Coupon, error) {
	panic("not used")
}

func (m *mockCouponRepo) Delete(ctx context.Context, id uint) error {
	panic("not used")
}

func newTestOrderService(orders *mockOrderRepo, carts *mockCartRepo, addrs *mockAddressRepo, coupons *mockCouponRepo) *OrderService {
	return &OrderService{
		orders:  orders,
		carts:   carts,
		addrs:   addrs,
		coupons: coupons,
		now:     func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) },
	}
}

func ownedAddresses(userID string) *mockAddressRepo {
	return &mockAddressRepo{
		findByID: func(ctx context.Context, id uint) (*models.Address, error) {
			return &models.Address{ID: id, UserID: userID}, nil
		},
	}
}

func cartWith(items ...models.CartItem) *mockCartRepo {
	return &mockCartRepo{
		getOrCreateByUser: func(ctx context.Context, userID string) (*models.Cart, error) {
			return &models.Cart{ID: 1, Items: items}, nil
		},
		clearItems: func(ctx context.Context, cartID uint) error { return nil },
	}
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	svc := newTestOrderService(nil, cartWith(), nil, nil)

	_, err := svc.PlaceOrder(context.Background(), "user-1", PlaceOrderInput{
		ShippingAddressID: 1,
		BillingAddressID:  2,
	})
	var validation *models.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if validation.Field != "cart" {
		t.Errorf("field = %q, want cart", validation.Field)
	}
}

func TestPlaceOrderForeignAddress(t *testing.T) {
	carts := cartWith(models.CartItem{
		ProductVariantID: 1,
		Quantity:         1,
		ProductVariant:   models.ProductVariant{ID: 1, Price: decimal.RequireFromString("10.00")},
	})
	addrs := ownedAddresses("someone-else")
	svc := newTestOrderService(nil, carts, addrs, nil)

	_, err := svc.PlaceOrder(context.Background(), "user-1", PlaceOrderInput{
		ShippingAddressID: 3,
		BillingAddressID:  4,
	})
	var notFound *models.NotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("err = %v, want NotFoundError for an address the user does not own", err)
	}
}

func TestPlaceOrderSnapshotsPricesAndClearsCart(t *testing.T) {
	carts := cartWith(
		models.CartItem{
			ProductVariantID: 1,
			Quantity:         2,
			ProductVariant: models.ProductVariant{
				ID:        1,
				Price:     decimal.RequireFromString("50.00"),
				SalePrice: decimalPtr("40.00"),
			},
		},
		models.CartItem{
			ProductVariantID: 2,
			Quantity:         1,
			ProductVariant:   models.ProductVariant{ID: 2, Price: decimal.RequireFromString("20.00")},
		},
	)
	var clearedCart uint
	carts.clearItems = func(ctx context.Context, cartID uint) error {
		clearedCart = cartID
		return nil
	}
	var created *models.Order
	orders := &mockOrderRepo{
		create: func(ctx context.Context, order *models.Order) error {
			order.ID = 55
			created = order
			return nil
		},
	}
	svc := newTestOrderService(orders, carts, ownedAddresses("user-1"), nil)

	order, err := svc.PlaceOrder(context.Background(), "user-1", PlaceOrderInput{
		ShippingAddressID: 3,
		BillingAddressID:  4,
	})
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	if created == nil {
		t.Fatal("order was never persisted")
	}
	if !order.TotalAmount.Equal(decimal.RequireFromString("100.00")) {
		t.Errorf("TotalAmount = %s, want 100.00", order.TotalAmount)
	}
	if len(order.Items) != 2 {
		t.Fatalf("order items = %d, want 2", len(order.Items))
	}
	if !order.Items[0].PriceAtPurchase.Equal(decimal.RequireFromString("40.00")) {
		t.Errorf("item 0 price_at_purchase = %s, want the sale price 40.00", order.Items[0].PriceAtPurchase)
	}
	if order.Status != models.OrderStatusPending {
		t.Errorf("status = %s, want pending", order.Status)
	}
	if clearedCart != 1 {
		t.Errorf("cleared cart = %d, want 1", clearedCart)
	}
}

func TestPlaceOrderExpiredCoupon(t *testing.T) {
	carts := cartWith(models.CartItem{
		ProductVariantID: 1,
		Quantity:         1,
		ProductVariant:   models.ProductVariant{ID: 1, Price: decimal.RequireFromString("10.00")},
	})
	coupons := &mockCouponRepo{
		findByCode: func(ctx context.Context, code string) (*models.Coupon, error) {
			return &models.Coupon{
				ID:        9,
				Code:      code,
				ExpiresAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			}, nil
		},
	}
	svc := newTestOrderService(nil, carts, ownedAddresses("user-1"), coupons)

	_, err := svc.PlaceOrder(context.Background(), "user-1", PlaceOrderInput{
		ShippingAddressID: 3,
		BillingAddressID:  4,
		CouponCode:        "OLD10",
	})
	var validation *models.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if validation.Field != "coupon_code" {
		t.Errorf("field = %q, want coupon_code", validation.Field)
	}
}

func TestGetOrderHidesForeignOrders(t *testing.T) {
	orders := &mockOrderRepo{
		findByID: func(ctx context.Context, id uint) (*models.Order, error) {
			return &models.Order{ID: id, UserID: "someone-else"}, nil
		},
	}
	svc := newTestOrderService(orders, nil, nil, nil)

	_, err := svc.GetOrder(context.Background(), "user-1", 7)
	var notFound *models.NotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("err = %v, want NotFoundError", err)
	}
}

func TestRecordPaymentRejectsUnknownMethod(t *testing.T) {
	svc := newTestOrderService(nil, nil, nil, nil)

	_, err := svc.RecordPayment(context.Background(), "user-1", 7, RecordPaymentInput{Method: "wire"})
	var validation *models.ValidationError
	if !errors.As(err, &validation) {
		t.Errorf("err = %v, want ValidationError", err)
	}
}

func TestRecordPaymentStartsInitiated(t *testing.T) {
	orders := &mockOrderRepo{
		findByID: func(ctx context.Context, id uint) (*models.Order, error) {
			return &models.Order{
				ID:          id,
				UserID:      "user-1",
				TotalAmount: decimal.RequireFromString("100.00"),
			}, nil
		},
		createPayment: func(ctx context.Context, payment *models.Payment) error {
			payment.ID = 1
			return nil
		},
	}
	svc := newTestOrderService(orders, nil, nil, nil)

	payment, err := svc.RecordPayment(context.Background(), "user-1", 7, RecordPaymentInput{
		Method:        models.PaymentMethodStripe,
		TransactionID: "txn_123",
	})
	if err != nil {
		t.Fatalf("RecordPayment: %v", err)
	}
	if payment.Status != models.PaymentStatusInitiated {
		t.Errorf("status = %s, want initiated", payment.Status)
	}
	if !payment.Amount.Equal(decimal.RequireFromString("100.00")) {
		t.Errorf("amount = %s, want the order total", payment.Amount)
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc := newTestOrderService(nil, nil, nil, nil)

	_, err := svc.UpdateStatus(context.Background(), 7, "teleported")
	var validation *models.ValidationError
	if !errors.As(err, &validation) {
		t.Errorf("err = %v, want ValidationError", err)
	}
}

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
