package app

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	// Credentials
	r.HandleFunc("/auth/register", deps.UserHandler.Register).Methods("POST")
	r.HandleFunc("/auth/login", deps.UserHandler.Login).Methods("POST")

	// Everything below requires a resolved user
	authed := r.NewRoute().Subrouter()
	authed.Use(RequireUser(deps.Resolver))

	authed.HandleFunc("/auth/me", deps.UserHandler.CurrentUser).Methods("GET")

	// Events
	authed.HandleFunc("/events", deps.EventHandler.CreateEvent).Methods("POST")
	authed.HandleFunc("/events", deps.EventHandler.GetEvents).Methods("GET")
	authed.HandleFunc("/events/{eventId}", deps.EventHandler.GetEvent).Methods("GET")
	authed.HandleFunc("/events/{eventId}", deps.EventHandler.UpdateEvent).Methods("PUT")
	authed.HandleFunc("/events/{eventId}", deps.EventHandler.DeleteEvent).Methods("DELETE")
}
