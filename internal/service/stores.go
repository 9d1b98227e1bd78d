// Package service contains the business logic of the booking system:
// the capacity ledger, the reservation engine built on top of it and
// the read-side query service. Services depend on small store
// interfaces rather than the concrete repositories so the concurrency
// behavior can be exercised in tests without a database.
package service

import (
	"context"
	"time"

	"github.com/iliyamo/event-ticket-booking/internal/model"
)

// EventStore is the slice of the entity store the services need for
// events. Implemented by repository.EventRepo.
type EventStore interface {
	GetByID(ctx context.Context, id uint64) (model.Event, error)
	ListAfter(ctx context.Context, t time.Time) ([]model.Event, error)
}

// UserStore is the slice of the entity store the services need for
// users. Implemented by repository.UserRepo.
type UserStore interface {
	GetByID(ctx context.Context, id uint64) (model.User, error)
}

// TicketStore is the slice of the entity store the services need for
// tickets. Create must be atomic: either the full row commits or
// nothing is persisted. Implemented by repository.TicketRepo.
type TicketStore interface {
	Create(ctx context.Context, userID, eventID uint64, bookingDate time.Time) (model.Ticket, error)
	CountForEvent(ctx context.Context, eventID uint64) (int, error)
	ListByUser(ctx context.Context, userID uint64) ([]model.Ticket, error)
	ListByEvent(ctx context.Context, eventID uint64) ([]model.Ticket, error)
}
