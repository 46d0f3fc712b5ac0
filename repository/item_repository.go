package repository

import (
	"github.com/kasiam87/eCommerceApp/entity"

	"gorm.io/gorm"
)

type ItemRepository struct{ DB *gorm.DB }

func NewItemRepository(db *gorm.DB) *ItemRepository { return &ItemRepository{DB: db} }

func (r *ItemRepository) FindAll() ([]entity.Item, error) {
	var items []entity.Item
	if err := r.DB.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ItemRepository) FindByID(id uint) (*entity.Item, error) {
	var item entity.Item
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ItemRepository) FindByName(name string) ([]entity.Item, error) {
	var items []entity.Item
	if err := r.DB.Where("name = ?", name).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
