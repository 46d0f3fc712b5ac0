package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	ItemID uint `json:"itemId"`
	Item   Item `json:"item"`

	// Price copied from the item at submission time; later catalog edits
	// must not change past orders.
	UnitPrice int64 `json:"unitPrice"`
}
