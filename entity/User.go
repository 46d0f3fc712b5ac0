package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `json:"-"`

	// Relations — preload only when needed
	Cart   *Cart   `gorm:"foreignKey:UserID" json:"-"`
	Orders []Order `json:"-"`
}
