package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Sufiyan0000/nike-ecommerce/models"
)

type GormGuestRepository struct {
	db *gorm.DB
}

func NewGormGuestRepository(db *gorm.DB) *GormGuestRepository {
	return &GormGuestRepository{db: db}
}

func (r *GormGuestRepository) Create(ctx context.Context, guest *models.Guest) error {
	err := r.db.WithContext(ctx).Create(guest).Error
	return translate(err, "guest.create", "guest", guest.Token)
}

func (r *GormGuestRepository) FindByToken(ctx context.Context, token string) (*models.Guest, error) {
	var guest models.Guest
	err := r.db.WithContext(ctx).First(&guest, "token = ?", token).Error
	if err != nil {
		return nil, translate(err, "guest.find", "guest", token)
	}
	return &guest, nil
}

func (r *GormGuestRepository) Delete(ctx context.Context, token string) error {
	err := r.db.WithContext(ctx).Delete(&models.Guest{}, "token = ?", token).Error
	return translate(err, "guest.delete", "guest", token)
}
