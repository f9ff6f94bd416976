package utils

import (
	"testing"
	"time"
)

func TestNextRoundHour(t *testing.T) {
	in := time.Date(2024, 6, 10, 15, 3, 27, 0, time.Local)
	want := time.Date(2024, 6, 10, 16, 0, 0, 0, time.Local)

	if got := NextRoundHour(in); !got.Equal(want) {
		t.Errorf("NextRoundHour = %v, want %v", got, want)
	}

	// 23:xx rolls into the next day.
	late := time.Date(2024, 6, 10, 23, 30, 0, 0, time.Local)
	if got := NextRoundHour(late); got.Day() != 11 || got.Hour() != 0 {
		t.Errorf("NextRoundHour(23:30) = %v, want next-day midnight", got)
	}
}

func TestFormatHHMM(t *testing.T) {
	tests := []struct {
		hour, minute int
		want         string
	}{
		{9, 5, "09:05"},
		{10, 0, "10:00"},
		{0, 0, "00:00"},
		{23, 59, "23:59"},
	}

	for _, tt := range tests {
		in := time.Date(2024, 6, 10, tt.hour, tt.minute, 0, 0, time.Local)
		if got := FormatHHMM(in); got != tt.want {
			t.Errorf("FormatHHMM(%d:%d) = %q, want %q", tt.hour, tt.minute, got, tt.want)
		}
	}
}

func TestParseHHMM(t *testing.T) {
	tests := []struct {
		in           string
		hour, minute int
	}{
		{"09:05", 9, 5},
		{"10:00", 10, 0},
		{"23:59", 23, 59},
		// Legacy rows sometimes carry unpadded hours.
		{"9:30", 9, 30},
	}

	for _, tt := range tests {
		hour, minute, err := ParseHHMM(tt.in)
		if err != nil {
			t.Errorf("ParseHHMM(%q): %v", tt.in, err)
			continue
		}
		if hour != tt.hour || minute != tt.minute {
			t.Errorf("ParseHHMM(%q) = %d:%d, want %d:%d", tt.in, hour, minute, tt.hour, tt.minute)
		}
	}
}

func TestParseHHMMRejectsBadInput(t *testing.T) {
	for _, in := range []string{"", "corrupted", "25:00", "12:61", ":30"} {
		if _, _, err := ParseHHMM(in); err == nil {
			t.Errorf("ParseHHMM(%q): expected error", in)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{45, "45 min"},
		{60, "1h"},
		{90, "1h30"},
		{120, "2h"},
		{125, "2h5"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.minutes); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestDayOf(t *testing.T) {
	in := time.Date(2024, 6, 10, 15, 3, 27, 123, time.Local)
	want := time.Date(2024, 6, 10, 0, 0, 0, 0, time.Local)

	if got := DayOf(in); !got.Equal(want) {
		t.Errorf("DayOf = %v, want %v", got, want)
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2024, 6, 10, 0, 5, 0, 0, time.Local)
	b := time.Date(2024, 6, 10, 23, 55, 0, 0, time.Local)
	c := time.Date(2024, 6, 11, 0, 5, 0, 0, time.Local)

	if !SameDay(a, b) {
		t.Error("SameDay(a, b) = false for same calendar day")
	}
	if SameDay(a, c) {
		t.Error("SameDay(a, c) = true across midnight")
	}
}

func TestStartOfWeek(t *testing.T) {
	monday := time.Date(2024, 6, 10, 0, 0, 0, 0, time.Local)

	tests := []struct {
		name string
		in   time.Time
	}{
		{"monday itself", time.Date(2024, 6, 10, 9, 0, 0, 0, time.Local)},
		{"wednesday", time.Date(2024, 6, 12, 18, 0, 0, 0, time.Local)},
		{"sunday belongs to the preceding monday", time.Date(2024, 6, 16, 23, 0, 0, 0, time.Local)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StartOfWeek(tt.in); !got.Equal(monday) {
				t.Errorf("StartOfWeek(%v) = %v, want %v", tt.in, got, monday)
			}
		})
	}
}
