package services

import (
	"errors"

	"github.com/kasiam87/eCommerceApp/entity"
	"github.com/kasiam87/eCommerceApp/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderService struct {
	DB        *gorm.DB
	UserRepo  *repository.UserRepository
	CartRepo  *repository.CartRepository
	OrderRepo *repository.OrderRepository
}

func NewOrderService(db *gorm.DB, ur *repository.UserRepository, cr *repository.CartRepository, or *repository.OrderRepository) *OrderService {
	return &OrderService{DB: db, UserRepo: ur, CartRepo: cr, OrderRepo: or}
}

// Submit snapshots the user's current cart into a new order. The cart itself
// is left untouched; it keeps accumulating across submissions.
func (s *OrderService) Submit(username string) (*entity.Order, error) {
	user, err := s.UserRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Error().Str("username", username).Msg("error submitting order - could not find user")
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	cart, err := s.CartRepo.FindByUserID(user.ID)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		Number: uuid.NewString(),
		UserID: user.ID,
		Total:  cart.Total,
	}
	for _, row := range cart.Items {
		order.Items = append(order.Items, entity.OrderItem{
			ItemID:    row.ItemID,
			Item:      row.Item,
			UnitPrice: row.Item.Price,
		})
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.OrderRepo.Create(tx, order)
	})
	if err != nil {
		return nil, err
	}

	logger.Info().Str("username", username).Str("number", order.Number).Int64("total", order.Total).Msg("order submitted")
	return order, nil
}

func (s *OrderService) History(username string) ([]entity.Order, error) {
	user, err := s.UserRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Error().Str("username", username).Msg("error getting orders - could not find user")
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.OrderRepo.FindByUserID(user.ID)
}
