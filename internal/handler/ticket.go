package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-ticket-booking/internal/model"
	"github.com/iliyamo/event-ticket-booking/internal/repository"
	"github.com/iliyamo/event-ticket-booking/internal/service"
)

// Reserver is the reservation engine as seen by the ticket handler.
// Implemented by service.ReservationService.
type Reserver interface {
	Reserve(ctx context.Context, userID, eventID uint64) (model.Ticket, error)
}

// TicketHandler serves the ticket endpoints: booking a ticket against
// an event's capacity and listing a user's tickets.
type TicketHandler struct {
	Reservations Reserver
	Queries      *service.QueryService
}

// NewTicketHandler constructs a TicketHandler. Both dependencies must
// be non-nil.
func NewTicketHandler(reservations Reserver, queries *service.QueryService) *TicketHandler {
	if reservations == nil || queries == nil {
		panic("nil dependency passed to NewTicketHandler")
	}
	return &TicketHandler{Reservations: reservations, Queries: queries}
}

// CreateTicket handles POST /ticket?user_id=&event_id=. The engine
// decides the outcome; this handler only maps it onto HTTP statuses.
// Capacity exhaustion and dangling ids are 400s with a message naming
// the cause, store failures are 500s.
func (h *TicketHandler) CreateTicket(c echo.Context) error {
	userID, err := strconv.ParseUint(c.QueryParam("user_id"), 10, 64)
	if err != nil || userID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing user_id query parameter"})
	}
	eventID, err := strconv.ParseUint(c.QueryParam("event_id"), 10, 64)
	if err != nil || eventID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing event_id query parameter"})
	}

	ticket, err := h.Reservations.Reserve(c.Request().Context(), userID, eventID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingUserID),
			errors.Is(err, service.ErrMissingEventID),
			errors.Is(err, repository.ErrUserNotFound),
			errors.Is(err, repository.ErrEventNotFound),
			errors.Is(err, repository.ErrNoCapacity):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "ticket created successfully",
		"ticket":  toTicketResponse(ticket),
	})
}

// ListTickets handles GET /ticket?user_id=. The user must exist; the
// response is an array of the user's tickets, possibly empty.
func (h *TicketHandler) ListTickets(c echo.Context) error {
	userID, err := strconv.ParseUint(c.QueryParam("user_id"), 10, 64)
	if err != nil || userID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing user_id query parameter"})
	}
	tickets, err := h.Queries.TicketsForUser(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "user does not exist"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, toTicketResponses(tickets))
}
