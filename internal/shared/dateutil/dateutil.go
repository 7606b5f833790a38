// Package dateutil holds the calendar helpers shared by attendance and payroll.
// Calendar dates are represented as midnight UTC of that day so they compare
// equal regardless of the zone the instant was observed in.
package dateutil

import (
	"fmt"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// ParseDate parses YYYY-MM-DD into a calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

// CalendarDate returns the calendar day the instant falls on in loc.
func CalendarDate(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseClock parses a 24h HH:MM value into minutes since midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q, expected HH:MM", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// At returns the instant at minutesOfDay on the given calendar date, in loc.
func At(date time.Time, minutesOfDay int, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := date.Date()
	return time.Date(y, m, d, minutesOfDay/60, minutesOfDay%60, 0, 0, loc)
}

// WorkingDays counts Monday..Friday dates in [start, end], both inclusive.
// It returns 0 when end is before start.
func WorkingDays(start, end time.Time) int {
	start = CalendarDate(start, time.UTC)
	end = CalendarDate(end, time.UTC)

	n := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		switch d.Weekday() {
		case time.Saturday, time.Sunday:
		default:
			n++
		}
	}
	return n
}
