package progression

import (
	"testing"
	"time"
)

func TestNextStreak(t *testing.T) {
	today := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)
	threeDaysAgo := today.AddDate(0, 0, -3)

	tests := []struct {
		name    string
		current int
		last    *time.Time
		want    int
	}{
		{name: "studied yesterday increments", current: 4, last: &yesterday, want: 5},
		{name: "second attempt same day holds", current: 4, last: &today, want: 4},
		{name: "never studied resets to one", current: 0, last: nil, want: 1},
		{name: "three day gap resets to one", current: 9, last: &threeDaysAgo, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextStreak(tt.current, tt.last, today); got != tt.want {
				t.Errorf("NextStreak(%d, %v, today) = %d, want %d", tt.current, tt.last, got, tt.want)
			}
		})
	}
}

func TestNextStreakMidnightBoundary(t *testing.T) {
	// 23:59 yesterday vs 00:01 today is still "yesterday" in UTC days.
	last := time.Date(2026, 3, 9, 23, 59, 0, 0, time.UTC)
	today := time.Date(2026, 3, 10, 0, 1, 0, 0, time.UTC)
	if got := NextStreak(2, &last, today); got != 3 {
		t.Errorf("NextStreak across midnight = %d, want 3", got)
	}
}

func TestNextStreakRepairsCorruptCounter(t *testing.T) {
	// A same-day entry with a zero counter still credits today.
	today := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	if got := NextStreak(0, &today, today); got != 1 {
		t.Errorf("NextStreak(0, today, today) = %d, want 1", got)
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, 3, 10, 0, 0, 1, 0, time.UTC)
	b := time.Date(2026, 3, 10, 23, 59, 59, 0, time.UTC)
	c := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	if !SameDay(a, b) {
		t.Error("expected same day")
	}
	if SameDay(b, c) {
		t.Error("expected different days")
	}
}
