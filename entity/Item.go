package entity

import (
	"gorm.io/gorm"
)

// Item prices are stored in cents.
type Item struct {
	gorm.Model
	Name        string `gorm:"index;not null" json:"name"`
	Price       int64  `json:"price"`
	Description string `json:"description"`
}
