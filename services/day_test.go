package services

import (
	"testing"
	"time"
)

func TestStartOfDayNormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	local := time.Date(2024, 6, 15, 2, 30, 0, 0, loc) // 2024-06-14 21:00 UTC

	got := StartOfDay(local)
	want := time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("StartOfDay = %v, want %v", got, want)
	}
}

func TestDayBoundsHalfOpen(t *testing.T) {
	start, end := DayBounds(time.Date(2024, 1, 31, 18, 45, 12, 0, time.UTC))

	if !start.Equal(time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v", start)
	}
	if !end.Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("end = %v", end)
	}
}

func TestDayBoundsAgreeWithStartOfDay(t *testing.T) {
	now := time.Now()
	start, end := DayBounds(now)

	if !start.Equal(StartOfDay(now)) {
		t.Errorf("bounds start %v disagrees with StartOfDay %v", start, StartOfDay(now))
	}
	if end.Sub(start) != 24*time.Hour {
		t.Errorf("day length = %v, want 24h", end.Sub(start))
	}
}
