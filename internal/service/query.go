package service

import (
	"context"
	"time"

	"github.com/iliyamo/event-ticket-booking/internal/model"
)

// QueryService exposes the read side of the booking system: listing
// upcoming events, fetching an event by id and listing tickets. It has
// no mutation capability. Listing operations return empty slices when
// nothing matches; only single-entity lookups report not-found errors.
type QueryService struct {
	events  EventStore
	users   UserStore
	tickets TicketStore
}

// NewQueryService constructs a QueryService over the given stores.
func NewQueryService(events EventStore, users UserStore, tickets TicketStore) *QueryService {
	return &QueryService{events: events, users: users, tickets: tickets}
}

// CurrentEvents returns events whose date lies strictly after now. The
// caller supplies the clock so handlers and tests control "now".
func (s *QueryService) CurrentEvents(ctx context.Context, now time.Time) ([]model.Event, error) {
	return s.events.ListAfter(ctx, now)
}

// EventByID returns a single event or repository.ErrEventNotFound.
func (s *QueryService) EventByID(ctx context.Context, id uint64) (model.Event, error) {
	return s.events.GetByID(ctx, id)
}

// TicketsForUser returns all tickets booked by the given user. The
// user must exist; a dangling id yields repository.ErrUserNotFound
// rather than an empty list, matching the write side's referential
// checks.
func (s *QueryService) TicketsForUser(ctx context.Context, userID uint64) ([]model.Ticket, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.tickets.ListByUser(ctx, userID)
}

// TicketsForEvent returns all tickets issued for the given event.
func (s *QueryService) TicketsForEvent(ctx context.Context, eventID uint64) ([]model.Ticket, error) {
	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		return nil, err
	}
	return s.tickets.ListByEvent(ctx, eventID)
}
