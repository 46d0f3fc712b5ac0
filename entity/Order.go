package entity

import (
	"gorm.io/gorm"
)

// Order is an immutable snapshot of a cart at submission time.
type Order struct {
	gorm.Model
	Number string `gorm:"uniqueIndex" json:"number"`
	Total  int64  `json:"total"`

	UserID uint `json:"userId"`
	User   User `json:"-"`

	Items []OrderItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
