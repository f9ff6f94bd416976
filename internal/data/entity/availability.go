package entity

import (
	"time"
)

// AvailabilitySlot is a side index over (date, time) cells, reconciled
// best-effort on booking writes. It is not the same entity as Slot: it only
// records whether a wall-clock cell is occupied by some booking.
type AvailabilitySlot struct {
	ID          string    `db:"id"` // "<YYYY-MM-DD>_<HHMM>"
	Date        time.Time `db:"date"`
	Time        string    `db:"time"` // "HH:MM"
	IsAvailable bool      `db:"is_available"`
	LastUpdated time.Time `db:"last_updated"`
}

// AvailabilityKey derives the index id for a start instant. The format is a
// persisted contract and must stay bit-exact: day, underscore, colon-stripped
// time of day. 2024-03-05 09:30 -> "2024-03-05_0930".
func AvailabilityKey(start time.Time) string {
	return start.Format("2006-01-02") + "_" + start.Format("1504")
}

// NewAvailabilitySlot builds the index record for a start instant.
func NewAvailabilitySlot(start time.Time, available bool, now time.Time) *AvailabilitySlot {
	return &AvailabilitySlot{
		ID:          AvailabilityKey(start),
		Date:        time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location()),
		Time:        start.Format("15:04"),
		IsAvailable: available,
		LastUpdated: now,
	}
}
