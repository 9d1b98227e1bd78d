package handler

import (
	"context"
	"time"

	"github.com/iliyamo/event-ticket-booking/internal/model"
	"github.com/iliyamo/event-ticket-booking/internal/repository"
)

// stubStore backs the query service in handler tests with fixed data.
type stubStore struct {
	events  map[uint64]model.Event
	users   map[uint64]model.User
	tickets []model.Ticket
	err     error // forced store failure
}

func newStubStore() *stubStore {
	return &stubStore{
		events: make(map[uint64]model.Event),
		users:  make(map[uint64]model.User),
	}
}

func (s *stubStore) GetByID(ctx context.Context, id uint64) (model.Event, error) {
	if s.err != nil {
		return model.Event{}, s.err
	}
	ev, ok := s.events[id]
	if !ok {
		return model.Event{}, repository.ErrEventNotFound
	}
	return ev, nil
}

func (s *stubStore) ListAfter(ctx context.Context, t time.Time) ([]model.Event, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]model.Event, 0)
	for _, ev := range s.events {
		if ev.Date.After(t) {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (s *stubStore) Create(ctx context.Context, userID, eventID uint64, bookingDate time.Time) (model.Ticket, error) {
	t := model.Ticket{ID: uint64(len(s.tickets) + 1), UserID: userID, EventID: eventID, BookingDate: bookingDate}
	s.tickets = append(s.tickets, t)
	return t, nil
}

func (s *stubStore) CountForEvent(ctx context.Context, eventID uint64) (int, error) {
	n := 0
	for _, t := range s.tickets {
		if t.EventID == eventID {
			n++
		}
	}
	return n, nil
}

func (s *stubStore) ListByUser(ctx context.Context, userID uint64) ([]model.Ticket, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]model.Ticket, 0)
	for _, t := range s.tickets {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *stubStore) ListByEvent(ctx context.Context, eventID uint64) ([]model.Ticket, error) {
	out := make([]model.Ticket, 0)
	for _, t := range s.tickets {
		if t.EventID == eventID {
			out = append(out, t)
		}
	}
	return out, nil
}

// stubUsers adapts stubStore to the user-store interface.
type stubUsers struct{ *stubStore }

func (s stubUsers) GetByID(ctx context.Context, id uint64) (model.User, error) {
	u, ok := s.users[id]
	if !ok {
		return model.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

// stubEventCreator records the event handed to Create.
type stubEventCreator struct {
	created model.Event
	err     error
}

func (s *stubEventCreator) Create(ctx context.Context, ev model.Event) (model.Event, error) {
	if s.err != nil {
		return model.Event{}, s.err
	}
	ev.ID = 7
	s.created = ev
	return ev, nil
}

// stubUserCreator records the user handed to Create.
type stubUserCreator struct {
	created model.User
	err     error
}

func (s *stubUserCreator) Create(ctx context.Context, u model.User) (model.User, error) {
	if s.err != nil {
		return model.User{}, s.err
	}
	u.ID = 3
	s.created = u
	return u, nil
}

// stubReserver returns a canned reservation outcome.
type stubReserver struct {
	ticket model.Ticket
	err    error

	gotUserID  uint64
	gotEventID uint64
}

func (s *stubReserver) Reserve(ctx context.Context, userID, eventID uint64) (model.Ticket, error) {
	s.gotUserID, s.gotEventID = userID, eventID
	if s.err != nil {
		return model.Ticket{}, s.err
	}
	return s.ticket, nil
}
