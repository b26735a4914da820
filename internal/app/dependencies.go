package app

import (
	"database/sql"

	"github.com/eventra/eventra/internal/config"
	"github.com/eventra/eventra/internal/utils"
	"github.com/eventra/eventra/pkg/auth"
	"github.com/eventra/eventra/pkg/event"
	"github.com/eventra/eventra/pkg/user"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Clock utils.Clock

	TokenService *auth.TokenService
	Resolver     *auth.Resolver

	UserRepo    user.Repo
	UserService user.Service
	UserHandler *user.Handler

	EventRepo    event.EventRepo
	EventService event.EventService
	EventHandler *event.EventHandler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *sql.DB, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.Clock = utils.SystemClock{}

	deps.UserRepo = user.NewUserRepo(db)
	deps.UserService = user.NewUserService(deps.UserRepo, deps.Clock)

	deps.TokenService = auth.NewTokenService(cfg.Auth.TokenSecret, cfg.Auth.TokenTTL, cfg.Auth.Issuer, deps.Clock)
	deps.Resolver = auth.NewResolver(deps.TokenService, deps.UserService)
	deps.UserHandler = user.NewHandler(deps.UserService, deps.TokenService)

	deps.EventRepo = event.NewEventRepo(db)
	deps.EventService = event.NewEventService(deps.EventRepo, deps.Clock)
	deps.EventHandler = event.NewEventHandler(deps.EventService)

	return deps
}
