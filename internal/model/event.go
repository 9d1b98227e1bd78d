package model

import "time"

// Event represents a bookable event as stored in the `event` table.
// MaxTickets is fixed at creation time and never mutated afterwards;
// remaining capacity is always derived from the ticket table rather
// than kept as a counter on the row.
//
// Fields:
//  ID         – primary key identifier of the event.
//  EventName  – human readable name, must be non-empty.
//  Location   – free-form venue description.
//  Date       – when the event takes place (UTC).
//  MaxTickets – capacity ceiling, >= 0.
//  Type       – free-form category tag (e.g. "concert").
type Event struct {
	ID         uint64    `json:"id"`          // event.id
	EventName  string    `json:"event_name"`  // event.event_name
	Location   string    `json:"location"`    // event.location
	Date       time.Time `json:"-"`           // event.date, serialized by the handler layer
	MaxTickets int       `json:"max_tickets"` // event.max_tickets
	Type       string    `json:"type"`        // event.type
}

// CreateEventRequest is the payload accepted by POST /event.  Date is
// the canonical "YYYY-MM-DD HH:MM:SS" string and is parsed at the
// HTTP boundary before the event reaches the store.
type CreateEventRequest struct {
	EventName  string `json:"event_name"`
	Location   string `json:"location"`
	Date       string `json:"date"`
	MaxTickets *int   `json:"max_tickets"`
	Type       string `json:"type"`
}
