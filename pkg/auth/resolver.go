package auth

import (
	"context"
	"errors"

	"github.com/eventra/eventra/pkg/user"
	log "github.com/sirupsen/logrus"
)

var ErrUnauthenticated = errors.New("authentication required")

// Resolver turns a request's Authorization header into a verified user.
// Every failure mode collapses into ErrUnauthenticated: missing credential,
// malformed or expired token, and a token whose subject no longer exists.
type Resolver struct {
	tokens *TokenService
	users  user.Service
}

func NewResolver(tokens *TokenService, users user.Service) *Resolver {
	return &Resolver{tokens: tokens, users: users}
}

func (r *Resolver) Resolve(ctx context.Context, authHeader string) (user.User, error) {
	token, err := TokenFromHeader(authHeader)
	if err != nil {
		return user.User{}, ErrUnauthenticated
	}

	userID, err := r.tokens.Validate(token)
	if err != nil {
		log.Debugf("token rejected: %v", err)
		return user.User{}, ErrUnauthenticated
	}

	u, err := r.users.GetUser(ctx, userID)
	if errors.Is(err, user.ErrUserNotFound) {
		log.Debugf("token subject no longer exists: %s", userID)
		return user.User{}, ErrUnauthenticated
	} else if err != nil {
		return user.User{}, err
	}
	return u, nil
}
