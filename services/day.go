package services

import "time"

// Day-boundary policy: all day keys are UTC calendar days. Every lookup,
// upsert and streak scan goes through these two helpers so both bounds of a
// range test always agree.

// StartOfDay truncates t to UTC midnight.
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DayBounds returns the half-open interval [start of day, start of next day).
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := StartOfDay(t)
	return start, start.AddDate(0, 0, 1)
}
