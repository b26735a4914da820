package event

import (
	"errors"
	"time"
)

// Event is a user-owned calendar entry. OwnerID is set at creation and never
// reassigned; ID is store-assigned and immutable.
type Event struct {
	ID          string
	Title       string
	Description string
	Date        *time.Time
	OwnerID     string
	CreatedAt   time.Time
}

// EventDraft carries the caller-supplied fields for a new event.
type EventDraft struct {
	Title       string
	Description string
	Date        *time.Time
}

// EventPatch carries an update's fields. A nil field was absent from the
// request; a non-nil empty string is kept distinct so the merge policy can
// decide what to do with it.
type EventPatch struct {
	Title       *string
	Description *string
	Date        *time.Time
}

var (
	ErrEventNotFound = errors.New("event not found")
	ErrNotEventOwner = errors.New("not the owner of the event")
	ErrTitleRequired = errors.New("event title is required")
)
