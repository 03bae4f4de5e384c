package progression

import "time"

// SameDay reports whether two instants fall on the same UTC calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// NextStreak applies the daily-streak rule when an attempt is recorded:
// already credited today leaves the counter alone, studying on consecutive
// days increments it, and any gap of two or more days (or no history at all)
// resets it to 1.
func NextStreak(current int, lastStudy *time.Time, today time.Time) int {
	if lastStudy == nil {
		return 1
	}
	if SameDay(*lastStudy, today) {
		if current < 1 {
			return 1
		}
		return current
	}
	if SameDay(*lastStudy, today.AddDate(0, 0, -1)) {
		return current + 1
	}
	return 1
}
