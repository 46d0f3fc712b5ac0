package entity

import (
	"gorm.io/gorm"
)

// One row per occurrence: adding an item with quantity 5 creates 5 rows.
type CartItem struct {
	gorm.Model
	CartID uint `json:"cartId"`
	Cart   Cart `json:"-"`

	ItemID uint `json:"itemId"`
	Item   Item `json:"item"`
}
