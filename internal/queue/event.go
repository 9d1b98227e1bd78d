// Package queue defines the message payloads exchanged over the
// broker, the publisher used by the reservation flow and the
// background consumer that turns issued-ticket messages into log
// lines.
package queue

// TicketIssuedEvent is published after a reservation commits. It
// carries enough information for downstream consumers to log or notify
// without querying the primary database. Timestamps use the canonical
// "YYYY-MM-DD HH:MM:SS" form.
type TicketIssuedEvent struct {
	TicketID    uint64 `json:"ticket_id"`
	UserID      uint64 `json:"user_id"`
	EventID     uint64 `json:"event_id"`
	BookingDate string `json:"booking_date"`
}
