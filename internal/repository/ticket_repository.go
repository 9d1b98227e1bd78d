package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/iliyamo/event-ticket-booking/internal/model"
	"github.com/iliyamo/event-ticket-booking/internal/utils"
)

// TicketRepo provides persistence for rows of the `ticket` table.
// Tickets are only ever inserted by the reservation flow; the insert is
// a single statement, so a failed attempt leaves no partial row behind.
type TicketRepo struct{ DB *sql.DB }

// NewTicketRepo returns a TicketRepo bound to the given database pool.
func NewTicketRepo(db *sql.DB) *TicketRepo { return &TicketRepo{DB: db} }

// Create inserts a ticket referencing an existing user and event and
// returns the stored row with its generated id. Foreign key violations
// (MySQL errno 1452) are mapped back to the reference sentinels so a
// dangling id never produces an opaque store error.
func (r *TicketRepo) Create(ctx context.Context, userID, eventID uint64, bookingDate time.Time) (model.Ticket, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO ticket (user_id, event_id, booking_date) VALUES (?,?,?)",
		userID, eventID, utils.FormatDateTime(bookingDate))
	if err != nil {
		if strings.Contains(err.Error(), "1452") {
			if strings.Contains(err.Error(), "fk_ticket_user") {
				return model.Ticket{}, ErrUserNotFound
			}
			return model.Ticket{}, ErrEventNotFound
		}
		return model.Ticket{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Ticket{}, err
	}
	return model.Ticket{
		ID:          uint64(id),
		UserID:      userID,
		EventID:     eventID,
		BookingDate: bookingDate.UTC().Truncate(time.Second),
	}, nil
}

// CountForEvent returns the number of tickets already issued for an
// event. The capacity check compares this against event.max_tickets.
func (r *TicketRepo) CountForEvent(ctx context.Context, eventID uint64) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM ticket WHERE event_id=?", eventID).Scan(&n)
	return n, err
}

// ListByUser returns all tickets booked by the given user, oldest
// first. The result is an empty slice, not nil, when nothing matches.
func (r *TicketRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Ticket, error) {
	return r.list(ctx, "SELECT id, user_id, event_id, booking_date FROM ticket WHERE user_id=? ORDER BY id ASC", userID)
}

// ListByEvent returns all tickets issued for the given event, oldest
// first.
func (r *TicketRepo) ListByEvent(ctx context.Context, eventID uint64) ([]model.Ticket, error) {
	return r.list(ctx, "SELECT id, user_id, event_id, booking_date FROM ticket WHERE event_id=? ORDER BY id ASC", eventID)
}

func (r *TicketRepo) list(ctx context.Context, query string, arg uint64) ([]model.Ticket, error) {
	rows, err := r.DB.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]model.Ticket, 0)
	for rows.Next() {
		var t model.Ticket
		var rawDate []byte
		if err := rows.Scan(&t.ID, &t.UserID, &t.EventID, &rawDate); err != nil {
			return nil, err
		}
		if t.BookingDate, err = utils.DecodeDateTime(rawDate); err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}
