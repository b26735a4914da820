package event

import (
	"context"
	"fmt"
	"strings"

	"github.com/eventra/eventra/internal/utils"
	"github.com/eventra/eventra/pkg/user"
	"github.com/google/uuid"
)

type EventService interface {
	Create(ctx context.Context, draft EventDraft) (Event, error)
	List(ctx context.Context) ([]Event, error)
	Get(ctx context.Context, id string) (Event, error)
	Update(ctx context.Context, id string, patch EventPatch) (Event, error)
	Delete(ctx context.Context, id string) error
}

// EventServiceImpl enforces the ownership contract: every id-addressed
// operation checks existence first, then ownership, before touching data.
type EventServiceImpl struct {
	repo  EventRepo
	clock utils.Clock
}

func NewEventService(repo EventRepo, clock utils.Clock) *EventServiceImpl {
	return &EventServiceImpl{repo: repo, clock: clock}
}

func (s *EventServiceImpl) Create(ctx context.Context, draft EventDraft) (Event, error) {
	userID, err := user.CurrentID(ctx)
	if err != nil {
		return Event{}, fmt.Errorf("failed to get current user: %w", err)
	}

	if strings.TrimSpace(draft.Title) == "" {
		return Event{}, ErrTitleRequired
	}

	event := Event{
		ID:          uuid.NewString(),
		Title:       draft.Title,
		Description: draft.Description,
		Date:        draft.Date,
		OwnerID:     userID,
		CreatedAt:   s.clock.Now(),
	}
	stored, err := s.repo.StoreEvent(ctx, event)
	if err != nil {
		return Event{}, fmt.Errorf("failed to store event: %w", err)
	}
	return stored, nil
}

func (s *EventServiceImpl) List(ctx context.Context) ([]Event, error) {
	userID, err := user.CurrentID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}

	return s.repo.GetEventsByOwner(ctx, userID)
}

func (s *EventServiceImpl) Get(ctx context.Context, id string) (Event, error) {
	return s.getOwned(ctx, id)
}

func (s *EventServiceImpl) Update(ctx context.Context, id string, patch EventPatch) (Event, error) {
	event, err := s.getOwned(ctx, id)
	if err != nil {
		return Event{}, err
	}

	merged := applyPatch(event, patch)
	updated, err := s.repo.UpdateEvent(ctx, merged)
	if err != nil {
		return Event{}, fmt.Errorf("failed to update event: %w", err)
	}
	return updated, nil
}

func (s *EventServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.getOwned(ctx, id); err != nil {
		return err
	}

	if err := s.repo.DeleteEvent(ctx, id); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

// getOwned looks the event up and verifies the caller owns it, in that
// order, so "no such event" and "not yours" stay distinguishable.
func (s *EventServiceImpl) getOwned(ctx context.Context, id string) (Event, error) {
	userID, err := user.CurrentID(ctx)
	if err != nil {
		return Event{}, fmt.Errorf("failed to get current user: %w", err)
	}

	event, err := s.repo.GetEvent(ctx, id)
	if err != nil {
		return Event{}, err
	}
	if err := ensureOwner(event, userID); err != nil {
		return Event{}, err
	}
	return event, nil
}

func ensureOwner(event Event, userID string) error {
	if event.OwnerID != userID {
		return ErrNotEventOwner
	}
	return nil
}

// applyPatch merges provided non-empty values over the stored event.
// Absent fields and present-but-empty strings both keep the stored value;
// clearing a field through an update is deliberately not possible.
func applyPatch(event Event, patch EventPatch) Event {
	if patch.Title != nil && *patch.Title != "" {
		event.Title = *patch.Title
	}
	if patch.Description != nil && *patch.Description != "" {
		event.Description = *patch.Description
	}
	if patch.Date != nil {
		event.Date = patch.Date
	}
	return event
}
