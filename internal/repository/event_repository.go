package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iliyamo/event-ticket-booking/internal/model"
	"github.com/iliyamo/event-ticket-booking/internal/utils"
)

// EventRepo provides persistence for rows of the `event` table.
// Events are write-once: they are inserted by Create and never
// updated or deleted afterwards, so remaining capacity can always be
// derived from the ticket table.
type EventRepo struct{ DB *sql.DB }

// NewEventRepo returns an EventRepo bound to the given database pool.
func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{DB: db} }

// Create validates and inserts a new event, returning the stored row
// with its generated id. MaxTickets must be >= 0 and EventName must be
// non-empty; violations are reported as ErrInvalidInput.
func (r *EventRepo) Create(ctx context.Context, ev model.Event) (model.Event, error) {
	ev.EventName = strings.TrimSpace(ev.EventName)
	if ev.EventName == "" {
		return model.Event{}, fmt.Errorf("%w: event_name is required", ErrInvalidInput)
	}
	if ev.MaxTickets < 0 {
		return model.Event{}, fmt.Errorf("%w: max_tickets must not be negative", ErrInvalidInput)
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO event (event_name, location, date, max_tickets, type) VALUES (?,?,?,?,?)",
		ev.EventName, ev.Location, utils.FormatDateTime(ev.Date), ev.MaxTickets, ev.Type)
	if err != nil {
		return model.Event{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Event{}, err
	}
	ev.ID = uint64(id)
	ev.Date = ev.Date.UTC().Truncate(time.Second)
	return ev, nil
}

// GetByID fetches a single event or ErrEventNotFound.
func (r *EventRepo) GetByID(ctx context.Context, id uint64) (model.Event, error) {
	var ev model.Event
	var rawDate []byte
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, event_name, location, date, max_tickets, type FROM event WHERE id=? LIMIT 1",
		id).Scan(&ev.ID, &ev.EventName, &ev.Location, &rawDate, &ev.MaxTickets, &ev.Type)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Event{}, ErrEventNotFound
		}
		return model.Event{}, err
	}
	if ev.Date, err = utils.DecodeDateTime(rawDate); err != nil {
		return model.Event{}, err
	}
	return ev, nil
}

// ListAfter returns all events with a date strictly after t. The
// result is an empty slice, not nil, when nothing matches.
func (r *EventRepo) ListAfter(ctx context.Context, t time.Time) ([]model.Event, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, event_name, location, date, max_tickets, type FROM event WHERE date > ? ORDER BY date ASC",
		utils.FormatDateTime(t))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]model.Event, 0)
	for rows.Next() {
		var ev model.Event
		var rawDate []byte
		if err := rows.Scan(&ev.ID, &ev.EventName, &ev.Location, &rawDate, &ev.MaxTickets, &ev.Type); err != nil {
			return nil, err
		}
		if ev.Date, err = utils.DecodeDateTime(rawDate); err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}
