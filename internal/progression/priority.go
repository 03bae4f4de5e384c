package progression

import (
	"math/rand"
	"time"
)

// PriorityAttemptWindow is how many of the most recent attempts contribute
// wrong words to the remediation set.
const PriorityAttemptWindow = 3

// PriorityWords picks the question set for a remediation-aware game: every
// word marked incorrect across the recent attempts (newest first, at most
// PriorityAttemptWindow of them) is collected, filtered to words still in
// the unit, and de-duplicated. A non-empty result means the next session
// tests only those words, shuffled; otherwise the full unit list is used,
// shuffled. This is a recency heuristic, not spaced repetition: no decay,
// no per-word mastery.
//
// The second return is true when the set was narrowed to missed words.
// seed pins the shuffle for tests; pass nil in production.
func PriorityWords(recentWrong [][]string, unitWords []string, seed *int64) ([]string, bool) {
	if len(recentWrong) > PriorityAttemptWindow {
		recentWrong = recentWrong[:PriorityAttemptWindow]
	}

	inUnit := make(map[string]struct{}, len(unitWords))
	for _, w := range unitWords {
		inUnit[w] = struct{}{}
	}

	seen := make(map[string]struct{})
	var priority []string
	for _, attempt := range recentWrong {
		for _, w := range attempt {
			if _, ok := inUnit[w]; !ok {
				continue // word left the unit since the attempt
			}
			if _, dup := seen[w]; dup {
				continue
			}
			seen[w] = struct{}{}
			priority = append(priority, w)
		}
	}

	if len(priority) > 0 {
		return Shuffle(priority, seed), true
	}
	return Shuffle(unitWords, seed), false
}

// Shuffle returns a shuffled copy, leaving the input untouched.
func Shuffle(words []string, seed *int64) []string {
	var r *rand.Rand
	if seed != nil {
		r = rand.New(rand.NewSource(*seed))
	} else {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	out := append([]string(nil), words...)
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
