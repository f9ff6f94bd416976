package response

import (
	"time"

	"salon-agenda/internal/data/entity"
)

type EventResponse struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	StartDate   time.Time        `json:"start_date"`
	EndDate     time.Time        `json:"end_date"`
	Location    string           `json:"location,omitempty"`
	Color       string           `json:"color"`
	EventType   entity.EventType `json:"event_type"`
	Service     string           `json:"service,omitempty"`
	ClientName  string           `json:"client_name,omitempty"`
	ClientPhone string           `json:"client_phone,omitempty"`
	ClientEmail string           `json:"client_email,omitempty"`
}

func EventToResponse(e *entity.Event) EventResponse {
	return EventResponse{
		ID:          e.ID.String(),
		Title:       e.Title,
		Description: e.Description,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Location:    e.Location,
		Color:       e.Color,
		EventType:   e.EventType,
		Service:     e.Service,
		ClientName:  e.ClientName,
		ClientPhone: e.ClientPhone,
		ClientEmail: e.ClientEmail,
	}
}

// AgendaSection is one bucket of the agenda view, already sorted by start.
type AgendaSection struct {
	Title  string          `json:"title"`
	Events []EventResponse `json:"events"`
}
