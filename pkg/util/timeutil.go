package util

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar-date form used on the wire.
const DateLayout = "2006-01-02"

// NowUTC exposes time.Now for deterministic testing.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ParseInstant accepts the ISO-8601 shapes found in persisted data:
// RFC 3339 with or without fractional seconds, or a bare calendar date.
func ParseInstant(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, DateLayout} {
		if ts, err := time.Parse(layout, trimmed); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported timestamp %q", value)
}

// CalendarDay keeps the calendar date t has in its own location and returns
// it as midnight UTC, so a local evening never rolls over to the next day.
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today is the local calendar day as midnight UTC.
func Today() time.Time {
	return CalendarDay(time.Now())
}
