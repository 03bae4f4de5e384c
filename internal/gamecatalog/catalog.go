// Package gamecatalog describes the mini-games a unit offers: which
// dashboard section each belongs to, whether it counts toward unlocking the
// next unit, how it is marked completed, and whether its question set goes
// through priority-word selection. Everything downstream reads this table
// instead of hard-coding game lists.
package gamecatalog

// Game identifiers. These are wire values, stored on attempts and progress
// records; do not rename them casually.
const (
	GameFlashcards    = "flashcards"
	GameMatching      = "matching"
	GameOddOneOut     = "odd_one_out"
	GameWordIntuition = "word_intuition"
	GameReading       = "reading"
	GameDictation     = "dictation"
	GameWriting       = "writing"
)

const (
	SectionLearn     = "learn"
	SectionChallenge = "challenge"
)

// Completion criteria. "perfect" flips the completed flag once the best
// score reaches 100; "finish" flips it on any completed play-through.
const (
	CompleteOnPerfect = "perfect"
	CompleteOnFinish  = "finish"
)

type Game struct {
	ID                string
	Title             string
	Section           string
	Required          bool // counts toward unlocking the next unit
	CompleteOn        string
	PrioritySelection bool // question set drawn from recently missed words
}

var games = []Game{
	{ID: GameFlashcards, Title: "Flashcards", Section: SectionLearn, Required: true, CompleteOn: CompleteOnFinish},
	{ID: GameMatching, Title: "Matching", Section: SectionLearn, Required: true, CompleteOn: CompleteOnPerfect},
	{ID: GameOddOneOut, Title: "Odd One Out", Section: SectionLearn, Required: true, CompleteOn: CompleteOnPerfect},
	{ID: GameWordIntuition, Title: "Word Intuition", Section: SectionLearn, Required: true, CompleteOn: CompleteOnPerfect},
	{ID: GameReading, Title: "Reading Comprehension", Section: SectionChallenge, CompleteOn: CompleteOnPerfect},
	{ID: GameDictation, Title: "Dictation", Section: SectionChallenge, CompleteOn: CompleteOnPerfect, PrioritySelection: true},
	{ID: GameWriting, Title: "Sentence Writing", Section: SectionChallenge, CompleteOn: CompleteOnFinish, PrioritySelection: true},
}

// Games returns the catalog in dashboard order.
func Games() []Game {
	out := make([]Game, len(games))
	copy(out, games)
	return out
}

// Get looks a game up by identifier.
func Get(id string) (Game, bool) {
	for _, g := range games {
		if g.ID == id {
			return g, true
		}
	}
	return Game{}, false
}

// RequiredCount is how many games must be completed in a unit before the
// next unit in sequence unlocks.
func RequiredCount() int {
	n := 0
	for _, g := range games {
		if g.Required {
			n++
		}
	}
	return n
}

// LearnCount is how many learn-section games exist; the challenge section
// stays locked until all of them are completed in that unit.
func LearnCount() int {
	n := 0
	for _, g := range games {
		if g.Section == SectionLearn {
			n++
		}
	}
	return n
}

// AttemptCompletes reports whether an attempt with the given score and
// completion flag satisfies the game's completion criterion.
func AttemptCompletes(g Game, score int, finished bool) bool {
	switch g.CompleteOn {
	case CompleteOnPerfect:
		return score >= 100
	case CompleteOnFinish:
		return finished
	default:
		return false
	}
}
