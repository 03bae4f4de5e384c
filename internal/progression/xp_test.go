package progression

import "testing"

func TestAttemptXPWorkedExamples(t *testing.T) {
	tests := []struct {
		name             string
		score            int
		timeSpentSeconds int
		questionCount    int
		want             int
	}{
		{name: "perfect and fast", score: 100, timeSpentSeconds: 4, questionCount: 1, want: 75},
		{name: "tooltip example", score: 50, timeSpentSeconds: 80, questionCount: 10, want: 45}, // avg 8s -> 25 + 20
		{name: "slow gets no bonus", score: 80, timeSpentSeconds: 350, questionCount: 10, want: 40},
		{name: "exactly five seconds per question", score: 0, timeSpentSeconds: 50, questionCount: 10, want: 25},
		{name: "exactly thirty seconds per question", score: 100, timeSpentSeconds: 300, questionCount: 10, want: 50},
		{name: "zero questions is no score", score: 100, timeSpentSeconds: 10, questionCount: 0, want: 0},
		{name: "zero everything", score: 0, timeSpentSeconds: 0, questionCount: 0, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AttemptXP(tt.score, tt.timeSpentSeconds, tt.questionCount); got != tt.want {
				t.Errorf("AttemptXP(%d, %d, %d) = %d, want %d",
					tt.score, tt.timeSpentSeconds, tt.questionCount, got, tt.want)
			}
		})
	}
}

func TestAttemptXPBounds(t *testing.T) {
	// For every score in [0,100] and a spread of pacings, XP stays in [0,75].
	for score := 0; score <= 100; score++ {
		for _, timeSpent := range []int{0, 1, 5, 8, 30, 59, 60, 299, 300, 10000} {
			got := AttemptXP(score, timeSpent, 10)
			if got < 0 || got > MaxAttemptXP {
				t.Fatalf("AttemptXP(%d, %d, 10) = %d, outside [0, %d]", score, timeSpent, got, MaxAttemptXP)
			}
		}
	}
}

func TestTimeBonusTiers(t *testing.T) {
	tests := []struct {
		avg  float64
		want int
	}{
		{0, 25},
		{5, 25},
		{5.5, 20},
		{8, 20},
		{10, 20},
		{10.5, 15},
		{15, 15},
		{20, 10},
		{25, 5},
		{29, 0},
		{30, 0},
		{120, 0},
	}
	for _, tt := range tests {
		if got := TimeBonus(tt.avg); got != tt.want {
			t.Errorf("TimeBonus(%.1f) = %d, want %d", tt.avg, got, tt.want)
		}
	}
}

func TestTimeBonusMonotone(t *testing.T) {
	prev := TimeBonus(0)
	for avg := 0.0; avg <= 40; avg += 0.25 {
		cur := TimeBonus(avg)
		if cur > prev {
			t.Fatalf("TimeBonus not non-increasing at avg=%.2f: %d > %d", avg, cur, prev)
		}
		prev = cur
	}
}

func TestGameXPUsesAverageNotBest(t *testing.T) {
	// Two attempts, scores 100 and 50, both at 8s/question over 10 questions:
	// the average score 75 drives the XP, not the best score.
	scoreSum := 150
	attempts := 2
	timeSum := 160
	questionSum := 20

	got := GameXP(scoreSum, attempts, timeSum, questionSum)
	want := 38 + 20 // round(75*0.5) + tier bonus at 8s/question
	if got != want {
		t.Errorf("GameXP = %d, want %d", got, want)
	}

	if best := AttemptXP(100, 80, 10); got >= best {
		t.Errorf("average-based XP %d should be below best-attempt XP %d here", got, best)
	}
}

func TestGameXPZeroGuards(t *testing.T) {
	if got := GameXP(0, 0, 0, 0); got != 0 {
		t.Errorf("GameXP with no attempts = %d, want 0", got)
	}
	if got := GameXP(100, 1, 10, 0); got != 0 {
		t.Errorf("GameXP with zero questions = %d, want 0", got)
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		correct, total, want int
	}{
		{10, 10, 100},
		{5, 10, 50},
		{1, 3, 33},
		{2, 3, 67},
		{0, 10, 0},
		{0, 0, 0},  // zero-length question set is "no score", not a crash
		{5, 0, 0},
		{11, 10, 100}, // over-count clamps
	}
	for _, tt := range tests {
		if got := Score(tt.correct, tt.total); got != tt.want {
			t.Errorf("Score(%d, %d) = %d, want %d", tt.correct, tt.total, got, tt.want)
		}
	}
}

func TestLevelForXP(t *testing.T) {
	if got := LevelForXP(0); got != 1 {
		t.Errorf("LevelForXP(0) = %d, want 1", got)
	}
	if got := LevelForXP(99); got != 1 {
		t.Errorf("LevelForXP(99) = %d, want 1", got)
	}
	if got := LevelForXP(100); got != 2 {
		t.Errorf("LevelForXP(100) = %d, want 2", got)
	}
	// 100 + floor(100*2^1.2) = 100 + 229 = 329 reaches level 3.
	if got := LevelForXP(329); got != 3 {
		t.Errorf("LevelForXP(329) = %d, want 3", got)
	}
	if got := LevelForXP(328); got != 2 {
		t.Errorf("LevelForXP(328) = %d, want 2", got)
	}

	prev := 0
	for xp := 0; xp <= 50000; xp += 137 {
		lvl := LevelForXP(xp)
		if lvl < prev {
			t.Fatalf("LevelForXP not monotone at xp=%d: %d < %d", xp, lvl, prev)
		}
		prev = lvl
	}
}
