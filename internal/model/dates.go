package model

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// DaysSinceNever is returned by DaysSince for an absent date so that
// never-contacted people sort as maximally stale without special-casing.
const DaysSinceNever = 999

// ParseDate parses a calendar date, pinning the time of day to noon UTC so
// day arithmetic never flips across timezone or DST boundaries.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.UTC), nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// WeekStart returns the Monday of the week containing date. Sundays map to
// the Monday six days earlier, never the following one.
func WeekStart(date string) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	back := (int(t.Weekday()) + 6) % 7 // Monday -> 0 ... Sunday -> 6
	return FormatDate(t.AddDate(0, 0, -back)), nil
}

// WeekDays returns the seven consecutive dates starting at weekStart.
func WeekDays(weekStart string) ([]string, error) {
	t, err := ParseDate(weekStart)
	if err != nil {
		return nil, err
	}
	out := make([]string, 7)
	for i := 0; i < 7; i++ {
		out[i] = FormatDate(t.AddDate(0, 0, i))
	}
	return out, nil
}

// AddDays shifts a date by n calendar days.
func AddDays(date string, n int) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return FormatDate(t.AddDate(0, 0, n)), nil
}

// DaysSince counts whole days from date to now. An empty or unparseable date
// yields DaysSinceNever.
func DaysSince(date, now string) int {
	if date == "" {
		return DaysSinceNever
	}
	from, err := ParseDate(date)
	if err != nil {
		return DaysSinceNever
	}
	to, err := ParseDate(now)
	if err != nil {
		return DaysSinceNever
	}
	return int(to.Sub(from).Hours() / 24)
}

// DayName returns the short weekday name ("Mon") for a date, or "" when the
// date does not parse.
func DayName(date string) string {
	t, err := ParseDate(date)
	if err != nil {
		return ""
	}
	return t.Format("Mon")
}

// DisplayDate renders a date as "Jun 10" for compact labels.
func DisplayDate(date string) string {
	t, err := ParseDate(date)
	if err != nil {
		return date
	}
	return t.Format("Jan 2")
}
