package repository

import (
	"github.com/kasiam87/eCommerceApp/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// FindByUserID loads the user's cart with its item rows and their items.
func (r *CartRepository) FindByUserID(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).
		Preload("Items").
		Preload("Items.Item").
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// AddItems appends n occurrence rows of the item to the cart.
func (r *CartRepository) AddItems(tx *gorm.DB, cartID, itemID uint, n int) error {
	for i := 0; i < n; i++ {
		row := entity.CartItem{CartID: cartID, ItemID: itemID}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

// RemoveItems deletes up to n occurrence rows of the item from the cart and
// reports how many were actually removed.
func (r *CartRepository) RemoveItems(tx *gorm.DB, cartID, itemID uint, n int) (int, error) {
	if n <= 0 {
		return 0, nil
	}
	var rows []entity.CartItem
	if err := tx.Where("cart_id = ? AND item_id = ?", cartID, itemID).
		Limit(n).Find(&rows).Error; err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}

	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	if err := tx.Delete(&entity.CartItem{}, ids).Error; err != nil {
		return 0, err
	}
	return len(rows), nil
}

func (r *CartRepository) UpdateTotal(tx *gorm.DB, cartID uint, total int64) error {
	return tx.Model(&entity.Cart{}).Where("id = ?", cartID).Update("total", total).Error
}
