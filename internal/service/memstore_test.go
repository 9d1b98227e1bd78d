package service

import (
	"context"
	"sync"
	"time"

	"github.com/iliyamo/event-ticket-booking/internal/model"
	"github.com/iliyamo/event-ticket-booking/internal/repository"
)

// memStore is an in-memory stand-in for the MySQL repositories. Each
// method is individually consistent, but the count/insert pair is as
// naive as the original check-then-act bug: any oversell protection
// must come from the ledger under test, not from the fake. A small
// sleep between the count read and the caller's next step widens the
// race window so a broken ledger fails these tests reliably.
type memStore struct {
	mu           sync.Mutex
	events       map[uint64]model.Event
	users        map[uint64]model.User
	tickets      []model.Ticket
	nextTicketID uint64
	countDelay   time.Duration
	createErr    error // forced failure for store-error tests
}

func newMemStore() *memStore {
	return &memStore{
		events: make(map[uint64]model.Event),
		users:  make(map[uint64]model.User),
	}
}

func (m *memStore) addEvent(id uint64, maxTickets int, date time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events[id] = model.Event{ID: id, EventName: "event", Date: date, MaxTickets: maxTickets}
}

func (m *memStore) addUser(id uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[id] = model.User{ID: id, Name: "user", Rol: "client", Email: "u@example.com"}
}

func (m *memStore) GetByID(ctx context.Context, id uint64) (model.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ev, ok := m.events[id]
	if !ok {
		return model.Event{}, repository.ErrEventNotFound
	}
	return ev, nil
}

func (m *memStore) ListAfter(ctx context.Context, t time.Time) ([]model.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Event, 0)
	for _, ev := range m.events {
		if ev.Date.After(t) {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (m *memStore) Create(ctx context.Context, userID, eventID uint64, bookingDate time.Time) (model.Ticket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return model.Ticket{}, m.createErr
	}
	if _, ok := m.users[userID]; !ok {
		return model.Ticket{}, repository.ErrUserNotFound
	}
	if _, ok := m.events[eventID]; !ok {
		return model.Ticket{}, repository.ErrEventNotFound
	}
	m.nextTicketID++
	ticket := model.Ticket{ID: m.nextTicketID, UserID: userID, EventID: eventID, BookingDate: bookingDate}
	m.tickets = append(m.tickets, ticket)
	return ticket, nil
}

func (m *memStore) CountForEvent(ctx context.Context, eventID uint64) (int, error) {
	m.mu.Lock()
	n := 0
	for _, t := range m.tickets {
		if t.EventID == eventID {
			n++
		}
	}
	m.mu.Unlock()
	if m.countDelay > 0 {
		time.Sleep(m.countDelay)
	}
	return n, nil
}

func (m *memStore) ListByUser(ctx context.Context, userID uint64) ([]model.Ticket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Ticket, 0)
	for _, t := range m.tickets {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memStore) ListByEvent(ctx context.Context, eventID uint64) ([]model.Ticket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Ticket, 0)
	for _, t := range m.tickets {
		if t.EventID == eventID {
			out = append(out, t)
		}
	}
	return out, nil
}

// userStore adapts memStore to the UserStore interface; kept separate
// so the Event GetByID above keeps the EventStore signature.
type userStore struct{ *memStore }

func (u userStore) GetByID(ctx context.Context, id uint64) (model.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	usr, ok := u.users[id]
	if !ok {
		return model.User{}, repository.ErrUserNotFound
	}
	return usr, nil
}
