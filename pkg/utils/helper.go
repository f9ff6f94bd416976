package utils

import (
	"strconv"
	"time"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// ParseDateParam parses a query parameter as either an RFC3339 instant or a
// plain "YYYY-MM-DD" day. Returns the fallback when empty or unparseable.
func ParseDateParam(value string, fallback time.Time) time.Time {
	if value == "" {
		return fallback
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t
	}

	if t, err := time.ParseInLocation("2006-01-02", value, fallback.Location()); err == nil {
		return t
	}

	return fallback
}
