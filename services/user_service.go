package services

import (
	"errors"

	"github.com/kasiam87/eCommerceApp/entity"
	"github.com/kasiam87/eCommerceApp/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const minPasswordLength = 6

type UserService struct {
	DB       *gorm.DB
	UserRepo *repository.UserRepository
}

func NewUserService(db *gorm.DB, ur *repository.UserRepository) *UserService {
	return &UserService{DB: db, UserRepo: ur}
}

// Create validates the password rules, hashes the password and persists the
// user together with a fresh empty cart. Nothing is persisted when a rule
// fails.
func (s *UserService) Create(username, password, confirmPassword string) (*entity.User, error) {
	if len(password) < minPasswordLength {
		logger.Info().Str("username", username).Msg("password too short")
		return nil, ErrPasswordTooShort
	}
	if password != confirmPassword {
		logger.Info().Str("username", username).Msg("password confirmation does not match")
		return nil, ErrPasswordMismatch
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Username: username,
		Password: string(hashed),
		Cart:     &entity.Cart{},
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.UserRepo.Create(tx, user)
	})
	if err != nil {
		return nil, err
	}

	logger.Info().Str("username", username).Uint("id", user.ID).Msg("user created")
	return user, nil
}

func (s *UserService) GetByID(id uint) (*entity.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	return user, err
}

func (s *UserService) GetByUsername(username string) (*entity.User, error) {
	user, err := s.UserRepo.FindByUsername(username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Info().Str("username", username).Msg("could not find user")
		return nil, ErrUserNotFound
	}
	return user, err
}
