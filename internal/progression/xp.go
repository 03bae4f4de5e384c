// Package progression is the pure calculation core of VocabQuest: XP,
// levels, streaks, unlock gates and priority-word selection. Nothing here
// touches the database, the router or the clock; callers pass every input
// explicitly so the whole package is testable in isolation.
package progression

import "math"

const (
	// MaxScoreXP is the score half of an attempt's XP: round(score * 0.5).
	MaxScoreXP = 50
	// MaxTimeBonus is awarded at or under FastPaceSeconds per question.
	MaxTimeBonus = 25
	// FastPaceSeconds and SlowPaceSeconds bound the time-bonus ramp.
	FastPaceSeconds = 5.0
	SlowPaceSeconds = 30.0

	// MaxAttemptXP = MaxScoreXP + MaxTimeBonus.
	MaxAttemptXP = MaxScoreXP + MaxTimeBonus
)

// TimeBonus is a step function of average seconds per question: at most
// 5s/question earns the full 25, then the bonus drops five points per
// started 5-second tier and is gone from 30s/question on. The tiers match
// the product's tooltip worked example (8s/question -> 20).
func TimeBonus(avgSecondsPerQuestion float64) int {
	switch {
	case avgSecondsPerQuestion <= FastPaceSeconds:
		return MaxTimeBonus
	case avgSecondsPerQuestion >= SlowPaceSeconds:
		return 0
	default:
		tiers := int(math.Ceil((avgSecondsPerQuestion - FastPaceSeconds) / 5.0))
		bonus := MaxTimeBonus - 5*tiers
		if bonus < 0 {
			return 0
		}
		return bonus
	}
}

// AttemptXP converts one attempt's metrics into XP. A zero-length question
// set is "no score", never a division: it earns nothing.
func AttemptXP(score, timeSpentSeconds, questionCount int) int {
	if questionCount <= 0 {
		return 0
	}
	score = clampScore(score)
	avg := float64(timeSpentSeconds) / float64(questionCount)
	return int(math.Round(float64(score)*0.5)) + TimeBonus(avg)
}

// GameXP is the XP stored on a ProgressRecord: it is based on the average
// score across all attempts of that game, not the best score. BestScore is
// the unlock-facing aggregate; conflating the two would break the
// effort-over-luck incentive, so keep them separate.
func GameXP(scoreSum, attemptCount, timeSpentSum, questionSum int) int {
	if attemptCount <= 0 {
		return 0
	}
	avgScore := int(math.Round(float64(scoreSum) / float64(attemptCount)))
	if questionSum <= 0 {
		return 0
	}
	avgPace := float64(timeSpentSum) / float64(questionSum)
	return int(math.Round(float64(clampScore(avgScore))*0.5)) + TimeBonus(avgPace)
}

// BaseXPPerLevel anchors the leveling curve: going from level n to n+1
// costs floor(BaseXPPerLevel * n^1.2).
const BaseXPPerLevel = 100

func xpForNextLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return int(float64(BaseXPPerLevel) * math.Pow(float64(level), 1.2))
}

// LevelForXP maps a cumulative XP total to a level, starting at 1.
func LevelForXP(totalXP int) int {
	level := 1
	remaining := totalXP
	for remaining >= xpForNextLevel(level) {
		remaining -= xpForNextLevel(level)
		level++
	}
	return level
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// Score converts raw correctness counts into the 0-100 integer score.
// totalCount <= 0 yields 0 (the no-score guard again).
func Score(correctCount, totalCount int) int {
	if totalCount <= 0 {
		return 0
	}
	if correctCount < 0 {
		correctCount = 0
	}
	if correctCount > totalCount {
		correctCount = totalCount
	}
	return int(math.Round(float64(correctCount) * 100.0 / float64(totalCount)))
}
