package request

import "time"

// CreateEventRequest covers both event categories. Which fields are required
// depends on event_type and is enforced by the mapper: professional events
// need client_name + service, personal events need a title.
type CreateEventRequest struct {
	Title       string     `json:"title" validate:"omitempty,max=200"`
	Description string     `json:"description" validate:"omitempty,max=2000"`
	Location    string     `json:"location" validate:"omitempty,max=500"`
	StartDate   time.Time  `json:"start_date" validate:"required"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Color       string     `json:"color" validate:"omitempty,hexcolor"`
	EventType   string     `json:"event_type" validate:"omitempty,oneof=professional personal"`
	Service     string     `json:"service" validate:"omitempty,max=100"`
	ClientName  string     `json:"client_name" validate:"omitempty,max=200"`
	ClientPhone string     `json:"client_phone" validate:"omitempty,max=30"`
	ClientEmail string     `json:"client_email" validate:"omitempty,email"`
}

// UpdateEventRequest is a partial patch; only non-nil fields are applied.
type UpdateEventRequest struct {
	Title       *string    `json:"title,omitempty" validate:"omitempty,max=200"`
	Description *string    `json:"description,omitempty" validate:"omitempty,max=2000"`
	Location    *string    `json:"location,omitempty" validate:"omitempty,max=500"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Color       *string    `json:"color,omitempty" validate:"omitempty,hexcolor"`
	EventType   *string    `json:"event_type,omitempty" validate:"omitempty,oneof=professional personal"`
	Service     *string    `json:"service,omitempty" validate:"omitempty,max=100"`
	ClientPhone *string    `json:"client_phone,omitempty" validate:"omitempty,max=30"`
	ClientEmail *string    `json:"client_email,omitempty" validate:"omitempty,email"`
}
