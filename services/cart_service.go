package services

import (
	"errors"

	"github.com/kasiam87/eCommerceApp/entity"
	"github.com/kasiam87/eCommerceApp/repository"

	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	UserRepo *repository.UserRepository
	ItemRepo *repository.ItemRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, ur *repository.UserRepository, ir *repository.ItemRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, UserRepo: ur, ItemRepo: ir}
}

// Add appends the item to the user's cart quantity times and bumps the total
// by price × quantity.
func (s *CartService) Add(username string, itemID uint, quantity int) (*entity.Cart, error) {
	cart, item, err := s.resolve(username, itemID)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.CartRepo.AddItems(tx, cart.ID, item.ID, quantity); err != nil {
			return err
		}
		added := int64(quantity)
		if quantity < 0 {
			added = 0
		}
		return s.CartRepo.UpdateTotal(tx, cart.ID, cart.Total+item.Price*added)
	})
	if err != nil {
		return nil, err
	}

	logger.Info().Str("username", username).Uint("itemId", itemID).Int("quantity", quantity).Msg("added to cart")
	return s.CartRepo.FindByUserID(cart.UserID)
}

// Remove deletes up to quantity occurrences of the item from the user's cart
// and decreases the total by price × removed.
func (s *CartService) Remove(username string, itemID uint, quantity int) (*entity.Cart, error) {
	cart, item, err := s.resolve(username, itemID)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		removed, err := s.CartRepo.RemoveItems(tx, cart.ID, item.ID, quantity)
		if err != nil {
			return err
		}
		return s.CartRepo.UpdateTotal(tx, cart.ID, cart.Total-item.Price*int64(removed))
	})
	if err != nil {
		return nil, err
	}

	logger.Info().Str("username", username).Uint("itemId", itemID).Int("quantity", quantity).Msg("removed from cart")
	return s.CartRepo.FindByUserID(cart.UserID)
}

func (s *CartService) resolve(username string, itemID uint) (*entity.Cart, *entity.Item, error) {
	user, err := s.UserRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Info().Str("username", username).Msg("could not find user")
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, err
	}

	item, err := s.ItemRepo.FindByID(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Info().Uint("itemId", itemID).Msg("could not find item")
			return nil, nil, ErrItemNotFound
		}
		return nil, nil, err
	}

	cart, err := s.CartRepo.FindByUserID(user.ID)
	if err != nil {
		return nil, nil, err
	}
	return cart, item, nil
}
