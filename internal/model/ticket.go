package model

import "time"

// Ticket represents an issued ticket as stored in the `ticket` table.
// Tickets are created exclusively by the reservation flow; user_id and
// event_id are foreign keys into `user` and `event`, and BookingDate
// is set by the server at issuance, never by the caller.
type Ticket struct {
	ID          uint64    `json:"id"`       // ticket.id
	UserID      uint64    `json:"user_id"`  // ticket.user_id
	EventID     uint64    `json:"event_id"` // ticket.event_id
	BookingDate time.Time `json:"-"`        // ticket.booking_date, serialized by the handler layer
}
