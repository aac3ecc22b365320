package repository

import (
	"context"
	"strconv"

	"gorm.io/gorm"

	"github.com/Sufiyan0000/nike-ecommerce/models"
)

type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Create persists the order together with its items in one transaction.
func (r *GormOrderRepository) Create(ctx context.Context, order *models.Order) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
	return translate(err, "order.create", "order", "")
}

func (r *GormOrderRepository) FindByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Payments").
		First(&order, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, "order.find", "order", strconv.FormatUint(uint64(id), 10))
	}
	return &order, nil
}

func (r *GormOrderRepository) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, translate(err, "order.list", "order", "")
	}
	return orders, nil
}

func (r *GormOrderRepository) ListAll(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, translate(err, "order.list_all", "order", "")
	}
	return orders, nil
}

func (r *GormOrderRepository) UpdateStatus(ctx context.Context, id uint, status models.OrderStatus) (*models.Order, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return nil, translate(res.Error, "order.update_status", "order", strconv.FormatUint(uint64(id), 10))
	}
	if res.RowsAffected == 0 {
		return nil, models.NewNotFoundError("order", strconv.FormatUint(uint64(id), 10))
	}
	return r.FindByID(ctx, id)
}

func (r *GormOrderRepository) CreatePayment(ctx context.Context, payment *models.Payment) error {
	err := r.db.WithContext(ctx).Create(payment).Error
	return translate(err, "order.create_payment", "payment", "")
}
