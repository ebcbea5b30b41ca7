package timeutil

import (
	"time"
)

// Common layouts
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
	DisplayLayout  = "02 Jan 2006, 03:04 PM"
)

// Now returns the current time in the server's local zone
func Now() time.Time {
	return time.Now().Local()
}

// StartOfDay returns the start of day (00:00:00) in local time for the given time
func StartOfDay(t time.Time) time.Time {
	l := t.Local()
	return time.Date(l.Year(), l.Month(), l.Day(), 0, 0, 0, 0, time.Local)
}

// DateString formats a time as a local calendar date (YYYY-MM-DD)
func DateString(t time.Time) string {
	return t.Local().Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD string as a local calendar date
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, time.Local)
}
