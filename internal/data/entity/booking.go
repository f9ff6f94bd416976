package entity

import (
	"time"
)

type EventType string

const (
	EventTypeProfessional EventType = "professional"
	EventTypePersonal     EventType = "personal"
)

// Service identifiers as stored by the booking flow. ServicePersonal is the
// sentinel written in the service column for personal bookings.
const (
	ServiceCut      = "Coupe"
	ServiceColoring = "coloration"
	ServiceCutColor = "cut_color"
	ServicePersonal = "Personnel"
)

// Default appointment durations in minutes, keyed by service.
// Applied only when the caller did not supply an explicit end instant.
const DefaultDurationMinutes = 60

func ServiceDuration(service string) int {
	switch service {
	case ServiceColoring:
		return 90
	case ServiceCutColor:
		return 120
	default:
		return DefaultDurationMinutes
	}
}

// Calendar palette
const (
	ColorBrand    = "#007AFF"
	ColorPersonal = "#FFCC00"
	ColorCut      = "#34C759"
	ColorColoring = "#FF9500"
	ColorCutColor = "#FF3B30"
)

// ServiceColor resolves the display color for a booking without an
// explicit color: amber for personal events, service palette otherwise.
func ServiceColor(eventType EventType, service string) string {
	if eventType == EventTypePersonal {
		return ColorPersonal
	}

	switch service {
	case ServiceCut:
		return ColorCut
	case ServiceColoring:
		return ColorColoring
	case ServiceCutColor:
		return ColorCutColor
	default:
		return ColorBrand
	}
}

const BookingStatusConfirmed = "confirmed"

// Booking is the durable record behind a calendar event. The start instant is
// split into a calendar day and a "HH:MM" time-of-day column; there is no
// stored end instant, ends are recomputed from the service duration on read.
type Booking struct {
	BaseSimple
	Name      string    `db:"name"`
	Service   string    `db:"service"`
	Date      time.Time `db:"date"` // calendar day, midnight local
	Time      string    `db:"time"` // "HH:MM", 24-hour
	Address   string    `db:"address"`
	Message   string    `db:"message"`
	Email     string    `db:"email"`
	Phone     string    `db:"phone"`
	Status    string    `db:"status"`
	EventType EventType `db:"event_type"` // empty on legacy rows
}

// ResolvedType applies the legacy default: rows written before the
// event_type column existed are professional bookings.
func (b *Booking) ResolvedType() EventType {
	if b.EventType == "" {
		return EventTypeProfessional
	}
	return b.EventType
}
