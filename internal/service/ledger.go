package service

import (
	"context"
	"sync"
	"time"

	"github.com/iliyamo/event-ticket-booking/internal/model"
	"github.com/iliyamo/event-ticket-booking/internal/repository"
)

// CapacityLedger answers "does this event still have a free slot, and
// if so take it" as one indivisible decision. Reading the ticket count
// and inserting the new ticket as two unrelated steps admits the
// classic oversell race: two concurrent requests both observe spare
// capacity and both insert. The ledger closes that window by
// serializing all reservation attempts for the same event id through a
// per-event mutex; attempts against different events never contend.
type CapacityLedger struct {
	events  EventStore
	tickets TicketStore

	mu    sync.Mutex             // guards locks
	locks map[uint64]*sync.Mutex // one admission lock per event id
}

// NewCapacityLedger returns a ledger backed by the given stores.
func NewCapacityLedger(events EventStore, tickets TicketStore) *CapacityLedger {
	return &CapacityLedger{
		events:  events,
		tickets: tickets,
		locks:   make(map[uint64]*sync.Mutex),
	}
}

// lockFor returns the admission lock for an event id, creating it on
// first use. Locks are never removed: the map grows with the number of
// distinct events seen by this process, which is bounded by the event
// table.
func (l *CapacityLedger) lockFor(eventID uint64) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	lk, ok := l.locks[eventID]
	if !ok {
		lk = &sync.Mutex{}
		l.locks[eventID] = lk
	}
	return lk
}

// Reserve issues a ticket for (userID, eventID) if the event still has
// capacity. The capacity check and the insert happen inside the
// event's admission lock, so for any set of concurrent calls against
// one event the number of successes never exceeds the remaining
// capacity. A successful reservation is final and is never rolled back
// afterwards. Returns repository.ErrEventNotFound, repository.ErrNoCapacity
// or a store error.
func (l *CapacityLedger) Reserve(ctx context.Context, userID, eventID uint64, at time.Time) (model.Ticket, error) {
	lk := l.lockFor(eventID)
	lk.Lock()
	defer lk.Unlock()

	// The caller may have gone away while waiting for the lock; decide
	// before touching the store so an abandoned request applies nothing.
	if err := ctx.Err(); err != nil {
		return model.Ticket{}, err
	}

	ev, err := l.events.GetByID(ctx, eventID)
	if err != nil {
		return model.Ticket{}, err
	}
	issued, err := l.tickets.CountForEvent(ctx, eventID)
	if err != nil {
		return model.Ticket{}, err
	}
	if issued >= ev.MaxTickets {
		return model.Ticket{}, repository.ErrNoCapacity
	}
	return l.tickets.Create(ctx, userID, eventID, at)
}
