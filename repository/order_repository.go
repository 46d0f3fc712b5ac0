package repository

import (
	"github.com/kasiam87/eCommerceApp/entity"

	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) Create(tx *gorm.DB, order *entity.Order) error {
	return tx.Create(order).Error
}

// FindByUserID returns all orders owned by the user, items included.
func (r *OrderRepository) FindByUserID(userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("user_id = ?", userID).
		Preload("Items").
		Preload("Items.Item").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}
