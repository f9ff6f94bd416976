package entity

import (
	"time"
)

type SlotStatus string

const (
	SlotStatusAvailable SlotStatus = "available"
	SlotStatusBooked    SlotStatus = "booked"
	SlotStatusCancelled SlotStatus = "cancelled"
	SlotStatusCompleted SlotStatus = "completed"
)

// Slot is a bookable appointment window with its own lifecycle, independent
// of the booking/event mapper. cancelled and completed are terminal here;
// no operation resurrects a slot.
type Slot struct {
	Base
	StartDate time.Time  `db:"start_date"`
	EndDate   time.Time  `db:"end_date"`
	Service   *string    `db:"service"`
	Price     *float64   `db:"price"`
	Location  *string    `db:"location"`
	Notes     *string    `db:"notes"`
	Status    SlotStatus `db:"status"`

	// Client fields, set when the slot is booked and kept on cancel
	ClientName  *string `db:"client_name"`
	ClientPhone *string `db:"client_phone"`
	ClientEmail *string `db:"client_email"`
}
