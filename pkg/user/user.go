package user

import (
	"errors"
	"time"
)

type User struct {
	ID           string
	Username     string
	DisplayName  string
	PasswordHash string
	CreatedAt    time.Time
}

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrUserDataInvalid    = errors.New("user data is invalid")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
