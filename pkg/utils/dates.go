package utils

import (
	"fmt"
	"time"
)

// All helpers work on local wall-clock time. No UTC normalization is
// performed anywhere in the calendar core; a booking made at 10:00 means
// 10:00 on the device, full stop.

// NextRoundHour returns the next full hour after t.
// 15:03 becomes 16:00. Used as the default start for new event forms.
func NextRoundHour(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour()+1, 0, 0, 0, t.Location())
}

// AddMinutes returns t shifted by the given number of minutes.
func AddMinutes(t time.Time, minutes int) time.Time {
	return t.Add(time.Duration(minutes) * time.Minute)
}

// EndTime computes an end instant from a start and a duration in minutes.
func EndTime(start time.Time, durationMinutes int) time.Time {
	return AddMinutes(start, durationMinutes)
}

// FormatHHMM renders the time of day as zero-padded 24-hour "HH:MM".
// This is the persisted format of the booking time column.
func FormatHHMM(t time.Time) string {
	return t.Format("15:04")
}

// ParseHHMM parses a zero-padded "HH:MM" wall-clock string.
func ParseHHMM(s string) (hour, minute int, err error) {
	if _, err = fmt.Sscanf(s, "%2d:%2d", &hour, &minute); err != nil {
		return 0, 0, fmt.Errorf("parse time of day %q: %w", s, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("time of day %q out of range", s)
	}
	return hour, minute, nil
}

// FormatDuration renders a duration in minutes as a short label:
// "45 min", "1h", "1h30".
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}

	hours := minutes / 60
	remaining := minutes % 60

	if remaining == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh%d", hours, remaining)
}

// DayOf truncates t to midnight of its calendar day.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// StartOfWeek returns midnight of the Monday of t's week.
func StartOfWeek(t time.Time) time.Time {
	day := DayOf(t)
	weekday := int(day.Weekday())
	if weekday == 0 { // Sunday belongs to the week that started 6 days earlier
		weekday = 7
	}
	return day.AddDate(0, 0, -(weekday - 1))
}
