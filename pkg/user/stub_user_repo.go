package user

import (
	"context"
	"sync"
)

// StubUserRepo is an in-memory Repo implementation for tests.
type StubUserRepo struct {
	mu    sync.RWMutex
	users map[string]User // id -> user
}

func NewStubUserRepo() *StubUserRepo {
	return &StubUserRepo{users: make(map[string]User)}
}

func (r *StubUserRepo) CreateUser(ctx context.Context, user User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
	return nil
}

func (r *StubUserRepo) GetUser(ctx context.Context, id string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return u, nil
}

func (r *StubUserRepo) GetUserByUsername(ctx context.Context, username string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return User{}, ErrUserNotFound
}

func (r *StubUserRepo) DeleteUser(ctx context.Context, id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
}
