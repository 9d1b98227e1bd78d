package handler

import (
	"github.com/iliyamo/event-ticket-booking/internal/model"
	"github.com/iliyamo/event-ticket-booking/internal/utils"
)

// eventResponse is the wire shape of an event. Dates go out in the
// canonical "YYYY-MM-DD HH:MM:SS" form regardless of how the store
// held them internally.
type eventResponse struct {
	ID         uint64 `json:"id"`
	EventName  string `json:"event_name"`
	Location   string `json:"location"`
	Date       string `json:"date"`
	MaxTickets int    `json:"max_tickets"`
	Type       string `json:"type"`
}

func toEventResponse(ev model.Event) eventResponse {
	return eventResponse{
		ID:         ev.ID,
		EventName:  ev.EventName,
		Location:   ev.Location,
		Date:       utils.FormatDateTime(ev.Date),
		MaxTickets: ev.MaxTickets,
		Type:       ev.Type,
	}
}

func toEventResponses(events []model.Event) []eventResponse {
	out := make([]eventResponse, 0, len(events))
	for _, ev := range events {
		out = append(out, toEventResponse(ev))
	}
	return out
}

// ticketResponse is the wire shape of an issued ticket.
type ticketResponse struct {
	ID          uint64 `json:"id"`
	UserID      uint64 `json:"user_id"`
	EventID     uint64 `json:"event_id"`
	BookingDate string `json:"booking_date"`
}

func toTicketResponse(t model.Ticket) ticketResponse {
	return ticketResponse{
		ID:          t.ID,
		UserID:      t.UserID,
		EventID:     t.EventID,
		BookingDate: utils.FormatDateTime(t.BookingDate),
	}
}

func toTicketResponses(tickets []model.Ticket) []ticketResponse {
	out := make([]ticketResponse, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, toTicketResponse(t))
	}
	return out
}
