package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseInstant(t *testing.T) {
	cases := map[string]time.Time{
		"2025-10-05T14:30:00.123Z": time.Date(2025, 10, 5, 14, 30, 0, 123000000, time.UTC),
		"2025-10-05T14:30:00Z":     time.Date(2025, 10, 5, 14, 30, 0, 0, time.UTC),
		"2025-10-05":               time.Date(2025, 10, 5, 0, 0, 0, 0, time.UTC),
		" 2025-10-05T14:30:00Z ":   time.Date(2025, 10, 5, 14, 30, 0, 0, time.UTC),
	}
	for input, want := range cases {
		got, err := ParseInstant(input)
		require.NoError(t, err, input)
		require.True(t, want.Equal(got), input)
	}

	_, err := ParseInstant("yesterday")
	require.Error(t, err)
	_, err = ParseInstant("")
	require.Error(t, err)
}

func TestCalendarDay(t *testing.T) {
	in := time.Date(2025, 3, 9, 17, 45, 12, 5, time.UTC)
	require.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), CalendarDay(in))

	merida := time.FixedZone("CST", -6*60*60)
	evening := time.Date(2025, 3, 9, 20, 30, 0, 0, merida)
	require.Equal(t, 10, evening.UTC().Day())
	require.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), CalendarDay(evening))
}
