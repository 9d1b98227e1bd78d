// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-ticket-booking/internal/handler"
)

// RegisterRoutes maps the booking API onto the provided Echo instance.
// The surface mirrors the persisted entities: /event and /user for
// entity creation and reads, /ticket for reservations.
func RegisterRoutes(e *echo.Echo, events *handler.EventHandler, users *handler.UserHandler, tickets *handler.TicketHandler) {
	// Health check for load balancers and monitoring.
	e.GET("/healthz", handler.Health)

	// Event creation and reads. /event/current must be registered
	// before the parameterless GET so Echo routes it by path, not by
	// query string.
	e.POST("/event", events.CreateEvent)
	e.GET("/event/current", events.CurrentEvents)
	e.GET("/event", events.GetEvent)

	// User creation.
	e.POST("/user", users.CreateUser)

	// Ticket booking and listing. POST /ticket is the reservation
	// entry point; user_id and event_id arrive as query parameters.
	e.POST("/ticket", tickets.CreateTicket)
	e.GET("/ticket", tickets.ListTickets)
}
