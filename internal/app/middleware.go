package app

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/eventra/eventra/internal/rest"
	"github.com/eventra/eventra/pkg/auth"
	"github.com/eventra/eventra/pkg/user"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// SetupMiddleware wires the HTTP middlewares applied to every request.
func SetupMiddleware(r *mux.Router) {
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			log.Debugf("%s %s", req.Method, req.URL.Path)
			next.ServeHTTP(w, req)
		})
	})
}

// RequireUser rejects requests without a valid credential before any handler
// runs, and attaches the resolved user to the request context on success.
func RequireUser(resolver *auth.Resolver) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			u, err := resolver.Resolve(req.Context(), req.Header.Get("Authorization"))
			if err != nil {
				if errors.Is(err, auth.ErrUnauthenticated) {
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusUnauthorized)
					encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
						Error: "Authentication required",
					})
					if encodeErr != nil {
						http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
					}
					return
				}
				log.Errorf("failed to resolve user: %v", err)
				http.Error(w, "Server error", http.StatusInternalServerError)
				return
			}

			ctx := user.WithUser(req.Context(), u)
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	}
}
