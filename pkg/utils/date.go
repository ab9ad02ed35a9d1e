package utils

import (
	"fmt"
	"time"
)

// Accepted event date layouts. Timestamp forms are truncated to their
// calendar date, bookings are whole-day.
var eventDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ParseEventDate parses a calendar date from either a pure date string
// or an ISO-8601 timestamp and truncates it to midnight UTC.
func ParseEventDate(value string) (time.Time, error) {
	for _, layout := range eventDateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return TruncateToDate(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD or ISO-8601 timestamp", value)
}

// TruncateToDate drops the time-of-day component
func TruncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SpanDays counts the days in the inclusive range [start, end].
// Both arguments must already be truncated to midnight UTC.
func SpanDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}
