package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/eventra/eventra/internal/utils"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	Register(ctx context.Context, username, displayName, password string) (User, error)
	Authenticate(ctx context.Context, username, password string) (User, error)
	GetUser(ctx context.Context, id string) (User, error)
}

type ServiceImpl struct {
	repo  Repo
	clock utils.Clock
}

func NewUserService(repo Repo, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{repo: repo, clock: clock}
}

func (s *ServiceImpl) Register(ctx context.Context, username, displayName, password string) (User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return User{}, ErrUserDataInvalid
	}

	_, err := s.repo.GetUserByUsername(ctx, username)
	if err == nil {
		return User{}, ErrUsernameTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return User{}, fmt.Errorf("failed to check username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := User{
		ID:           uuid.NewString(),
		Username:     username,
		DisplayName:  displayName,
		PasswordHash: string(hash),
		CreatedAt:    s.clock.Now(),
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (s *ServiceImpl) Authenticate(ctx context.Context, username, password string) (User, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if errors.Is(err, ErrUserNotFound) {
		return User{}, ErrInvalidCredentials
	} else if err != nil {
		return User{}, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (s *ServiceImpl) GetUser(ctx context.Context, id string) (User, error) {
	return s.repo.GetUser(ctx, id)
}
