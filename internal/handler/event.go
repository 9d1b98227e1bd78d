package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-ticket-booking/internal/model"
	"github.com/iliyamo/event-ticket-booking/internal/repository"
	"github.com/iliyamo/event-ticket-booking/internal/service"
	"github.com/iliyamo/event-ticket-booking/internal/utils"
)

// EventCreator is the slice of the entity store the event handler
// needs for writes. Implemented by repository.EventRepo.
type EventCreator interface {
	Create(ctx context.Context, ev model.Event) (model.Event, error)
}

// EventHandler serves the event endpoints: creation, the upcoming-event
// listing and lookup by id. Reads go through the query service, writes
// straight to the entity store.
type EventHandler struct {
	Events  EventCreator
	Queries *service.QueryService
}

// NewEventHandler constructs an EventHandler. Both dependencies must be
// non-nil.
func NewEventHandler(events EventCreator, queries *service.QueryService) *EventHandler {
	if events == nil || queries == nil {
		panic("nil dependency passed to NewEventHandler")
	}
	return &EventHandler{Events: events, Queries: queries}
}

// CreateEvent handles POST /event. The JSON body must carry
// event_name, location, date, max_tickets and type; date uses the
// canonical "YYYY-MM-DD HH:MM:SS" form. Every rejection names the
// field or constraint that failed.
func (h *EventHandler) CreateEvent(c echo.Context) error {
	var req model.CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON body"})
	}
	switch {
	case req.EventName == "":
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "event_name is required"})
	case req.Location == "":
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "location is required"})
	case req.Date == "":
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date is required"})
	case req.MaxTickets == nil:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "max_tickets is required"})
	case req.Type == "":
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "type is required"})
	}
	date, err := utils.ParseDateTime(req.Date)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must use the YYYY-MM-DD HH:MM:SS format"})
	}

	ev, err := h.Events.Create(c.Request().Context(), model.Event{
		EventName:  req.EventName,
		Location:   req.Location,
		Date:       date,
		MaxTickets: *req.MaxTickets,
		Type:       req.Type,
	})
	if err != nil {
		if errors.Is(err, repository.ErrInvalidInput) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "event created successfully",
		"id":      ev.ID,
	})
}

// CurrentEvents handles GET /event/current. It returns all events with
// a date after the current time; an empty array when none qualify.
func (h *EventHandler) CurrentEvents(c echo.Context) error {
	events, err := h.Queries.CurrentEvents(c.Request().Context(), time.Now().UTC())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, toEventResponses(events))
}

// GetEvent handles GET /event?event_id=. A missing or unknown id is a
// 400 with a message naming the cause.
func (h *EventHandler) GetEvent(c echo.Context) error {
	eventID, err := strconv.ParseUint(c.QueryParam("event_id"), 10, 64)
	if err != nil || eventID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing event_id query parameter"})
	}
	ev, err := h.Queries.EventByID(c.Request().Context(), eventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "event does not exist"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, toEventResponse(ev))
}
