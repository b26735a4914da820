package user

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/eventra/eventra/internal/rest"
	log "github.com/sirupsen/logrus"
)

type UserDTO struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CredentialsDTO struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName,omitempty"`
}

type TokenResponseDTO struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

// TokenIssuer mints a credential token for an authenticated user id.
type TokenIssuer interface {
	Generate(userID string) (string, error)
}

type Handler struct {
	userService Service
	tokens      TokenIssuer
}

func NewHandler(userService Service, tokens TokenIssuer) *Handler {
	return &Handler{
		userService: userService,
		tokens:      tokens,
	}
}

// Register godoc
// @Summary Register a new user
// @Description Create an account and return a credential token
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsDTO true "Credentials"
// @Success 201 {object} TokenResponseDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid request"
// @Router /auth/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Debug("Registering user")

	var credentials CredentialsDTO
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Invalid request body format",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	registered, err := h.userService.Register(r.Context(), credentials.Username, credentials.DisplayName, credentials.Password)
	if err != nil {
		if errors.Is(err, ErrUserDataInvalid) {
			w.WriteHeader(http.StatusBadRequest)
			encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error:   "Invalid user data",
				Details: "Username and password are required",
			})
			if encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			}
			return
		}
		if errors.Is(err, ErrUsernameTaken) {
			w.WriteHeader(http.StatusBadRequest)
			encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error: "Username is already taken",
			})
			if encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			}
			return
		}
		log.Errorf("failed to register user: %v", err)
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}

	h.respondWithToken(w, registered, http.StatusCreated)
}

// Login godoc
// @Summary Log in
// @Description Exchange username and password for a credential token
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsDTO true "Credentials"
// @Success 200 {object} TokenResponseDTO
// @Failure 401 {object} rest.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Debug("Logging in user")

	var credentials CredentialsDTO
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Invalid request body format",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	authenticated, err := h.userService.Authenticate(r.Context(), credentials.Username, credentials.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			w.WriteHeader(http.StatusUnauthorized)
			encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error: "Invalid username or password",
			})
			if encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			}
			return
		}
		log.Errorf("failed to authenticate user: %v", err)
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}

	h.respondWithToken(w, authenticated, http.StatusOK)
}

// CurrentUser godoc
// @Summary Get current user
// @Description Retrieve the currently authenticated user's account
// @Tags Auth
// @Produce json
// @Success 200 {object} UserDTO
// @Failure 401 {object} rest.ErrorResponse "Not authenticated"
// @Router /auth/me [get]
func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	current, err := CurrentUser(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Authentication required",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(userToDTO(current)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) respondWithToken(w http.ResponseWriter, u User, status int) {
	token, err := h.tokens.Generate(u.ID)
	if err != nil {
		log.Errorf("failed to generate token: %v", err)
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(TokenResponseDTO{Token: token, User: userToDTO(u)}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func userToDTO(u User) UserDTO {
	return UserDTO{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		CreatedAt:   u.CreatedAt,
	}
}
