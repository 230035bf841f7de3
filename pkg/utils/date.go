package utils

import (
	"fmt"
	"strings"
	"time"
)

// DateFormat is the ISO-8601 calendar date layout exchanged with the backend.
const DateFormat = "2006-01-02"

var dateLayouts = []string{
	DateFormat,
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// ParseDate parses a backend date value. Plain calendar dates and
// date-times (with or without offset) are accepted.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

// FormatDate renders t as an ISO-8601 calendar date.
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// Today truncates now to its calendar day.
func Today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}

// DaysBefore returns the calendar day n days before now.
func DaysBefore(now time.Time, n int) time.Time {
	return Today(now).AddDate(0, 0, -n)
}
