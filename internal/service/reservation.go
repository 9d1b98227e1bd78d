package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/iliyamo/event-ticket-booking/internal/model"
	"github.com/iliyamo/event-ticket-booking/internal/queue"
	"github.com/iliyamo/event-ticket-booking/internal/utils"
)

// ErrMissingUserID is returned when a reservation attempt arrives
// without a positive user id.
var ErrMissingUserID = errors.New("missing or invalid user_id")

// ErrMissingEventID is returned when a reservation attempt arrives
// without a positive event id.
var ErrMissingEventID = errors.New("missing or invalid event_id")

// PublishFunc sends a ticket-issued notification to the message
// broker. Wired to queue.PublishTicketIssued in production;
// may be nil when messaging is disabled.
type PublishFunc func(ctx context.Context, ev queue.TicketIssuedEvent) error

// ReservationService drives a single reservation attempt through its
// states: validate the ids, resolve that both user and event exist,
// then delegate the admission decision to the capacity ledger. The
// ledger performs the capacity check and the insert as one unit; the
// engine never re-checks capacity on its own, since splitting the
// decision from the insert would reintroduce the oversell race.
type ReservationService struct {
	users   UserStore
	events  EventStore
	ledger  *CapacityLedger
	publish PublishFunc
	now     func() time.Time
}

// NewReservationService constructs a ReservationService. publish may
// be nil to disable broker notifications; now defaults to time.Now.
func NewReservationService(users UserStore, events EventStore, ledger *CapacityLedger, publish PublishFunc) *ReservationService {
	if users == nil || events == nil || ledger == nil {
		panic("nil dependency passed to NewReservationService")
	}
	return &ReservationService{
		users:   users,
		events:  events,
		ledger:  ledger,
		publish: publish,
		now:     time.Now,
	}
}

// Reserve attempts to issue a ticket for userID on eventID. Outcomes:
// the created ticket on success, ErrMissingUserID/ErrMissingEventID on
// bad input, repository.ErrUserNotFound/ErrEventNotFound on dangling
// ids, repository.ErrNoCapacity when the event is sold out. A capacity
// rejection is a legitimate business outcome and is never retried
// internally.
func (s *ReservationService) Reserve(ctx context.Context, userID, eventID uint64) (model.Ticket, error) {
	// Validate
	if userID == 0 {
		return model.Ticket{}, ErrMissingUserID
	}
	if eventID == 0 {
		return model.Ticket{}, ErrMissingEventID
	}

	// Resolve user and event independently; neither check depends on
	// the other, so both round trips run at the same time.
	userErr := make(chan error, 1)
	eventErr := make(chan error, 1)
	go func() {
		_, err := s.users.GetByID(ctx, userID)
		userErr <- err
	}()
	go func() {
		_, err := s.events.GetByID(ctx, eventID)
		eventErr <- err
	}()
	if err := <-userErr; err != nil {
		<-eventErr
		return model.Ticket{}, err
	}
	if err := <-eventErr; err != nil {
		return model.Ticket{}, err
	}

	// Admit: the ledger re-reads the event and count under the
	// per-event lock and inserts the ticket as part of the decision.
	ticket, err := s.ledger.Reserve(ctx, userID, eventID, s.now().UTC().Truncate(time.Second))
	if err != nil {
		return model.Ticket{}, err
	}

	s.notifyIssued(ticket)
	return ticket, nil
}

// notifyIssued publishes a ticket.issued event in the background.
// Broker failures are logged and never affect the reservation outcome:
// the ticket is already committed by the time this runs.
func (s *ReservationService) notifyIssued(t model.Ticket) {
	if s.publish == nil {
		return
	}
	ev := queue.TicketIssuedEvent{
		TicketID:    t.ID,
		UserID:      t.UserID,
		EventID:     t.EventID,
		BookingDate: utils.FormatDateTime(t.BookingDate),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.publish(ctx, ev); err != nil {
			log.Printf("reservation: publish ticket.issued failed for ticket %d: %v", t.ID, err)
		}
	}()
}
