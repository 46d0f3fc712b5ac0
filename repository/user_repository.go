package repository

import (
	"github.com/kasiam87/eCommerceApp/entity"

	"gorm.io/gorm"
)

// UserRepository is the only place that talks to the users table.
type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var user entity.User
	if err := r.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(username string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Create persists the user together with any associated cart in one go.
func (r *UserRepository) Create(tx *gorm.DB, user *entity.User) error {
	return tx.Create(user).Error
}
