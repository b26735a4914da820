package event

import (
	"context"
	"sync"
)

// StubEventRepo is an in-memory EventRepo for tests. An optional Err makes
// every call fail, to exercise the store-unavailable path.
type StubEventRepo struct {
	mu     sync.RWMutex
	events map[string]Event // id -> event
	Err    error
}

func NewStubEventRepo() *StubEventRepo {
	return &StubEventRepo{events: make(map[string]Event)}
}

func (r *StubEventRepo) StoreEvent(ctx context.Context, event Event) (Event, error) {
	if r.Err != nil {
		return Event{}, r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events[event.ID] = event
	return event, nil
}

func (r *StubEventRepo) GetEvent(ctx context.Context, id string) (Event, error) {
	if r.Err != nil {
		return Event{}, r.Err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	event, ok := r.events[id]
	if !ok {
		return Event{}, ErrEventNotFound
	}
	return event, nil
}

func (r *StubEventRepo) GetEventsByOwner(ctx context.Context, ownerID string) ([]Event, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]Event, 0, len(r.events))
	for _, event := range r.events {
		if event.OwnerID == ownerID {
			result = append(result, event)
		}
	}
	return result, nil
}

func (r *StubEventRepo) UpdateEvent(ctx context.Context, event Event) (Event, error) {
	if r.Err != nil {
		return Event{}, r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[event.ID]; !ok {
		return Event{}, ErrEventNotFound
	}
	r.events[event.ID] = event
	return event, nil
}

func (r *StubEventRepo) DeleteEvent(ctx context.Context, id string) error {
	if r.Err != nil {
		return r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[id]; !ok {
		return ErrEventNotFound
	}
	delete(r.events, id)
	return nil
}
