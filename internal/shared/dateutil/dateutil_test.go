package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWorkingDays(t *testing.T) {
	d := func(s string) time.Time {
		v, err := ParseDate(s)
		assert.NoError(t, err)
		return v
	}

	tests := []struct {
		name       string
		start, end string
		want       int
	}{
		{"single weekday", "2024-03-04", "2024-03-04", 1},
		{"monday to friday", "2024-03-04", "2024-03-08", 5},
		{"weekend only", "2024-03-09", "2024-03-10", 0},
		{"two full weeks", "2024-03-04", "2024-03-17", 10},
		{"february leap year", "2024-02-01", "2024-02-29", 21},
		{"end before start", "2024-03-08", "2024-03-04", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WorkingDays(d(tt.start), d(tt.end)))
		})
	}
}

func TestParseClock(t *testing.T) {
	m, err := ParseClock("09:30")
	assert.NoError(t, err)
	assert.Equal(t, 570, m)

	_, err = ParseClock("9.30")
	assert.Error(t, err)

	_, err = ParseClock("25:00")
	assert.Error(t, err)
}

func TestCalendarDate_UsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	// 20:00 UTC on the 4th is already the 5th at UTC+7
	instant := time.Date(2024, 3, 4, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), CalendarDate(instant, time.UTC))
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), CalendarDate(instant, loc))
}

func TestAt(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	date := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	got := At(date, 9*60, loc)

	assert.Equal(t, time.Date(2024, 3, 5, 2, 0, 0, 0, time.UTC), got.UTC())
}

func TestParseDate_Invalid(t *testing.T) {
	_, err := ParseDate("05/03/2024")
	assert.Error(t, err)
}
