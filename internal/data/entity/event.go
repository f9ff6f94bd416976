package entity

import (
	"time"

	"github.com/google/uuid"
)

// Event is the display-oriented entity derived from a Booking. It is never
// persisted; the Booking is the durable form and events are rebuilt by
// re-running the mapper whenever the booking changes.
type Event struct {
	ID          uuid.UUID
	Title       string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	Location    string
	Color       string
	EventType   EventType

	// Professional bookings only
	Service     string
	ClientName  string
	ClientPhone string
	ClientEmail string
}
