package event

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/eventra/eventra/internal/rest"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type EventDTO struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	Owner       string     `json:"owner"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type CreateEventRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Date        *time.Time `json:"date"`
}

type UpdateEventRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Date        *time.Time `json:"date"`
}

type EventHandler struct {
	eventService EventService
}

func NewEventHandler(eventService EventService) *EventHandler {
	return &EventHandler{eventService}
}

// CreateEvent godoc
// @Summary Create an event
// @Tags Events
// @Accept json
// @Produce json
// @Param event body CreateEventRequest true "Event"
// @Success 200 {object} EventDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid request"
// @Router /events [post]
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Trace("Creating event")

	var req CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, decodeErrorResponse(err))
		return
	}

	created, err := h.eventService.Create(r.Context(), EventDraft{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
	})
	if err != nil {
		if errors.Is(err, ErrTitleRequired) {
			writeError(w, http.StatusBadRequest, rest.ErrorResponse{Error: "Title is required"})
			return
		}
		h.serverError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(eventToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// GetEvents godoc
// @Summary List the caller's events
// @Tags Events
// @Produce json
// @Success 200 {array} EventDTO
// @Router /events [get]
func (h *EventHandler) GetEvents(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	events, err := h.eventService.List(r.Context())
	if err != nil {
		h.serverError(w, err)
		return
	}

	dtos := make([]EventDTO, 0, len(events))
	for _, e := range events {
		dtos = append(dtos, eventToDTO(e))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// GetEvent godoc
// @Summary Get a single event
// @Tags Events
// @Produce json
// @Param eventId path string true "Event ID"
// @Success 200 {object} EventDTO
// @Failure 404 {object} rest.ErrorResponse "Event not found"
// @Failure 403 {object} rest.ErrorResponse "Not the owner"
// @Router /events/{eventId} [get]
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	eventID := mux.Vars(r)["eventId"]
	event, err := h.eventService.Get(r.Context(), eventID)
	if err != nil {
		h.resourceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(eventToDTO(event)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Replace provided non-empty fields; omitted fields are retained
// @Tags Events
// @Accept json
// @Produce json
// @Param eventId path string true "Event ID"
// @Param event body UpdateEventRequest true "Fields to update"
// @Success 200 {object} EventDTO
// @Failure 404 {object} rest.ErrorResponse "Event not found"
// @Failure 403 {object} rest.ErrorResponse "Not the owner"
// @Router /events/{eventId} [put]
func (h *EventHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Trace("Updating event")

	var req UpdateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, decodeErrorResponse(err))
		return
	}

	eventID := mux.Vars(r)["eventId"]
	updated, err := h.eventService.Update(r.Context(), eventID, EventPatch{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
	})
	if err != nil {
		h.resourceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(eventToDTO(updated)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// DeleteEvent godoc
// @Summary Delete an event
// @Tags Events
// @Produce json
// @Param eventId path string true "Event ID"
// @Success 200 {object} map[string]string "Confirmation"
// @Failure 404 {object} rest.ErrorResponse "Event not found"
// @Failure 403 {object} rest.ErrorResponse "Not the owner"
// @Router /events/{eventId} [delete]
func (h *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Trace("Deleting event")

	eventID := mux.Vars(r)["eventId"]
	if err := h.eventService.Delete(r.Context(), eventID); err != nil {
		h.resourceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{"message": "Event deleted"}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// resourceError maps id-addressed operation failures to status codes.
// NotFound and Forbidden are deliberately distinguishable to the caller.
func (h *EventHandler) resourceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrEventNotFound):
		writeError(w, http.StatusNotFound, rest.ErrorResponse{Error: "Event not found"})
	case errors.Is(err, ErrNotEventOwner):
		writeError(w, http.StatusForbidden, rest.ErrorResponse{Error: "You do not have permission to access this event"})
	default:
		h.serverError(w, err)
	}
}

func (h *EventHandler) serverError(w http.ResponseWriter, err error) {
	log.Errorf("event operation failed: %v", err)
	writeError(w, http.StatusInternalServerError, rest.ErrorResponse{Error: "Server error"})
}

// decodeErrorResponse maps a request-body decode failure to an error body.
// The RFC3339 hint is only given when the date field failed to parse.
func decodeErrorResponse(err error) rest.ErrorResponse {
	var parseErr *time.ParseError
	if errors.As(err, &parseErr) {
		return rest.ErrorResponse{
			Error:   "Invalid request body format",
			Details: "date must be in RFC3339 format",
		}
	}
	return rest.ErrorResponse{Error: "Invalid request body format"}
}

func writeError(w http.ResponseWriter, status int, body rest.ErrorResponse) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func eventToDTO(e Event) EventDTO {
	return EventDTO{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		Owner:       e.OwnerID,
		CreatedAt:   e.CreatedAt,
	}
}
