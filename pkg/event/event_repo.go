package event

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

// EventRepo is the durable store boundary. It addresses events by primary
// key or by owner filter and carries no authorization logic; ownership is
// enforced one layer up.
type EventRepo interface {
	StoreEvent(ctx context.Context, event Event) (Event, error)
	GetEvent(ctx context.Context, id string) (Event, error)
	GetEventsByOwner(ctx context.Context, ownerID string) ([]Event, error)
	UpdateEvent(ctx context.Context, event Event) (Event, error)
	DeleteEvent(ctx context.Context, id string) error
}

type EventRepoImpl struct {
	db *sql.DB
}

func NewEventRepo(db *sql.DB) *EventRepoImpl {
	return &EventRepoImpl{db: db}
}

func (r *EventRepoImpl) StoreEvent(ctx context.Context, event Event) (Event, error) {
	query := `INSERT INTO events (id, title, description, event_date, owner_id, created_at)
				VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		event.ID,
		event.Title,
		event.Description,
		dateToMillis(event.Date),
		event.OwnerID,
		event.CreatedAt.UnixMilli(),
	)
	if err != nil {
		err := fmt.Errorf("could not store event: %w", err)
		log.Error(err)
		return Event{}, err
	}
	return event, nil
}

func (r *EventRepoImpl) GetEvent(ctx context.Context, id string) (Event, error) {
	query := `SELECT id, title, description, event_date, owner_id, created_at FROM events WHERE id = $1`

	event, err := scanEvent(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Event{}, ErrEventNotFound
	} else if err != nil {
		err := fmt.Errorf("could not get event: %w", err)
		log.Error(err)
		return Event{}, err
	}
	return event, nil
}

func (r *EventRepoImpl) GetEventsByOwner(ctx context.Context, ownerID string) ([]Event, error) {
	query := `SELECT id, title, description, event_date, owner_id, created_at FROM events
				WHERE owner_id = $1
				ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		err := fmt.Errorf("could not query events: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	events := make([]Event, 0, 10)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			err := fmt.Errorf("could not scan row: %w", err)
			log.Error(err)
			return nil, err
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return events, nil
}

// UpdateEvent writes the whole row in a single statement so an update is
// all-fields-or-none at the store boundary.
func (r *EventRepoImpl) UpdateEvent(ctx context.Context, event Event) (Event, error) {
	query := `UPDATE events SET title = $1, description = $2, event_date = $3 WHERE id = $4`

	result, err := r.db.ExecContext(ctx, query,
		event.Title,
		event.Description,
		dateToMillis(event.Date),
		event.ID,
	)
	if err != nil {
		err := fmt.Errorf("could not update event: %w", err)
		log.Error(err)
		return Event{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not read update result: %w", err)
		log.Error(err)
		return Event{}, err
	}
	if rowsAffected == 0 {
		return Event{}, ErrEventNotFound
	}
	return event, nil
}

func (r *EventRepoImpl) DeleteEvent(ctx context.Context, id string) error {
	query := `DELETE FROM events WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		err := fmt.Errorf("could not delete event: %w", err)
		log.Error(err)
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not read delete result: %w", err)
		log.Error(err)
		return err
	}
	if rowsAffected == 0 {
		return ErrEventNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (Event, error) {
	var event Event
	var dateMillis sql.NullInt64
	var createdAtMillis int64
	if err := row.Scan(&event.ID, &event.Title, &event.Description, &dateMillis, &event.OwnerID, &createdAtMillis); err != nil {
		return Event{}, err
	}
	if dateMillis.Valid {
		date := time.UnixMilli(dateMillis.Int64)
		event.Date = &date
	}
	event.CreatedAt = time.UnixMilli(createdAtMillis)
	return event, nil
}

func dateToMillis(date *time.Time) sql.NullInt64 {
	if date == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: date.UnixMilli(), Valid: true}
}
