package services

import (
	"errors"
	"os"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// Domain errors. Controllers map these onto HTTP status codes.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrItemNotFound       = errors.New("item not found")
	ErrNoMatchingItems    = errors.New("no items match the given name")
	ErrPasswordTooShort   = errors.New("password must contain at least 6 characters")
	ErrPasswordMismatch   = errors.New("password confirmation does not match")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
