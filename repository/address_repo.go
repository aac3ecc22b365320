package repository

import (
	"context"
	"strconv"

	"gorm.io/gorm"

	"github.com/Sufiyan0000/nike-ecommerce/models"
)

type GormAddressRepository struct {
	db *gorm.DB
}

func NewGormAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

func (r *GormAddressRepository) ListByUser(ctx context.Context, userID string) ([]models.Address, error) {
	var addresses []models.Address
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_default DESC, id").
		Find(&addresses).Error
	if err != nil {
		return nil, translate(err, "address.list", "address", "")
	}
	return addresses, nil
}

func (r *GormAddressRepository) FindByID(ctx context.Context, id uint) (*models.Address, error) {
	var address models.Address
	err := r.db.WithContext(ctx).First(&address, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, "address.find", "address", strconv.FormatUint(uint64(id), 10))
	}
	return &address, nil
}

// Save persists the address and, when it is flagged default, demotes every
// other address of the same user inside the same transaction. The demotion is
// deliberately not scoped by address type: setting a default billing address
// unsets a default shipping address too.
func (r *GormAddressRepository) Save(ctx context.Context, address *models.Address) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(address).Error; err != nil {
			return err
		}
		if !address.IsDefault {
			return nil
		}
		return tx.Model(&models.Address{}).
			Where("user_id = ? AND id <> ?", address.UserID, address.ID).
			Update("is_default", false).Error
	})
	return translate(err, "address.save", "address", "")
}

func (r *GormAddressRepository) Delete(ctx context.Context, userID string, id uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Address{})
	if res.Error != nil {
		return translate(res.Error, "address.delete", "address", strconv.FormatUint(uint64(id), 10))
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("address", strconv.FormatUint(uint64(id), 10))
	}
	return nil
}
