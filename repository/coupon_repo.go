package repository

import (
	"context"
	"strconv"

	"gorm.io/gorm"

	"github.com/Sufiyan0000/nike-ecommerce/models"
)

type GormCouponRepository struct {
	db *gorm.DB
}

func NewGormCouponRepository(db *gorm.DB) *GormCouponRepository {
	return &GormCouponRepository{db: db}
}

func (r *GormCouponRepository) Create(ctx context.Context, coupon *models.Coupon) error {
	err := r.db.WithContext(ctx).Create(coupon).Error
	return translate(err, "coupon.create", "coupon", coupon.Code)
}

func (r *GormCouponRepository) FindByCode(ctx context.Context, code string) (*models.Coupon, error) {
	var coupon models.Coupon
	err := r.db.WithContext(ctx).First(&coupon, "code = ?", code).Error
	if err != nil {
		return nil, translate(err, "coupon.find", "coupon", code)
	}
	return &coupon, nil
}

func (r *GormCouponRepository) List(ctx context.Context) ([]models.Coupon, error) {
	var coupons []models.Coupon
	err := r.db.WithContext(ctx).Order("id").Find(&coupons).Error
	if err != nil {
		return nil, translate(err, "coupon.list", "coupon", "")
	}
	return coupons, nil
}

func (r *GormCouponRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Coupon{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error, "coupon.delete", "coupon", strconv.FormatUint(uint64(id), 10))
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("coupon", strconv.FormatUint(uint64(id), 10))
	}
	return nil
}
