package services

import (
	"errors"
	"time"

	"github.com/kasiam87/eCommerceApp/entity"
	"github.com/kasiam87/eCommerceApp/repository"
	"github.com/kasiam87/eCommerceApp/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService checks credentials against the user store and issues bearer
// tokens.
type AuthService struct {
	UserRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(ur *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{UserRepo: ur, jwtSecret: secret, jwtTTL: ttl}
}

func (s *AuthService) Login(username, password string) (string, *entity.User, error) {
	user, err := s.UserRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Info().Str("username", username).Msg("login failed - unknown user")
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		logger.Info().Str("username", username).Msg("login failed - wrong password")
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.Username, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}

	logger.Info().Str("username", username).Msg("login succeeded")
	return token, user, nil
}
