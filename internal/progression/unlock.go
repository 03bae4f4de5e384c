package progression

// Unlock gating is three independent predicates AND-ed together: the
// sequential-completion gate, the subscription allowance, and (per game)
// the section gate. Each takes already-aggregated progress counts so the
// caller decides how those counts are produced.

// SequenceUnlocked reports whether a unit at the given 1-based sequence
// position is reachable: the first unit always is, later units require
// every required game of the immediately preceding unit to be completed.
func SequenceUnlocked(sequence, prevRequiredDone, prevRequiredTotal int) bool {
	if sequence <= 1 {
		return true
	}
	return prevRequiredTotal > 0 && prevRequiredDone >= prevRequiredTotal
}

// WithinAllowance is the subscription gate. allowedUnits <= 0 means
// unlimited. It applies regardless of completion state.
func WithinAllowance(sequence, allowedUnits int) bool {
	if allowedUnits <= 0 {
		return true
	}
	return sequence <= allowedUnits
}

// ChallengeUnlocked is the section gate: challenge-section games open only
// once every learn-section game of the same unit is completed. Evaluated
// against live progress, never persisted.
func ChallengeUnlocked(learnDone, learnTotal int) bool {
	return learnTotal > 0 && learnDone >= learnTotal
}

// UnitPlayable combines the unit-level gates (sequence + allowance). The
// section gate is per game and checked separately.
func UnitPlayable(sequence, prevRequiredDone, prevRequiredTotal, allowedUnits int) bool {
	return WithinAllowance(sequence, allowedUnits) &&
		SequenceUnlocked(sequence, prevRequiredDone, prevRequiredTotal)
}
