package services

import (
	"errors"

	"github.com/kasiam87/eCommerceApp/entity"
	"github.com/kasiam87/eCommerceApp/repository"

	"gorm.io/gorm"
)

type ItemService struct {
	ItemRepo *repository.ItemRepository
}

func NewItemService(ir *repository.ItemRepository) *ItemService {
	return &ItemService{ItemRepo: ir}
}

func (s *ItemService) List() ([]entity.Item, error) {
	return s.ItemRepo.FindAll()
}

func (s *ItemService) GetByID(id uint) (*entity.Item, error) {
	item, err := s.ItemRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Info().Uint("itemId", id).Msg("could not find item")
		return nil, ErrItemNotFound
	}
	return item, err
}

// GetByName treats an empty result the same as an unknown name.
func (s *ItemService) GetByName(name string) ([]entity.Item, error) {
	items, err := s.ItemRepo.FindByName(name)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		logger.Info().Str("name", name).Msg("no items with that name")
		return nil, ErrNoMatchingItems
	}
	return items, nil
}
