package dto

import (
	"encoding/json"
	"time"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type WordDTO struct {
	ID              uint   `json:"id"`
	Text            string `json:"text"`
	Definition      string `json:"definition,omitempty"`
	Synonyms        string `json:"synonyms,omitempty"`
	Antonyms        string `json:"antonyms,omitempty"`
	ExampleSentence string `json:"example_sentence,omitempty"`
}

// GameProgressDTO is one game's row on the unit dashboard.
type GameProgressDTO struct {
	Game         string `json:"game"`
	Title        string `json:"title"`
	Section      string `json:"section"`
	Required     bool   `json:"required"`
	Unlocked     bool   `json:"unlocked"`
	AttemptCount int    `json:"attempt_count"`
	BestScore    int    `json:"best_score"`
	TotalXP      int    `json:"total_xp"`
	Completed    bool   `json:"completed"`
}

// UnitSummaryDTO carries the derived lock state; nothing here is persisted.
type UnitSummaryDTO struct {
	ID         uint              `json:"id"`
	TestType   string            `json:"test_type"`
	Sequence   int               `json:"sequence"`
	Title      string            `json:"title"`
	WordCount  int               `json:"word_count"`
	Unlocked   bool              `json:"unlocked"`
	LockReason string            `json:"lock_reason,omitempty"` // "subscription", "sequence"
	Games      []GameProgressDTO `json:"games"`
}

type UnitDetailDTO struct {
	ID       uint              `json:"id"`
	TestType string            `json:"test_type"`
	Sequence int               `json:"sequence"`
	Title    string            `json:"title"`
	Words    []WordDTO         `json:"words"`
	Games    []GameProgressDTO `json:"games,omitempty"`
}

// GameSessionDTO is the question set handed to a client before it starts a
// round. Remediation is true when the set was narrowed to recently missed
// words.
type GameSessionDTO struct {
	UnitID      uint      `json:"unit_id"`
	Game        string    `json:"game"`
	Remediation bool      `json:"remediation"`
	Words       []WordDTO `json:"words"`
}

// AttemptResultDTO is what a submission returns: the attempt the server
// scored plus the account's refreshed progression state.
type AttemptResultDTO struct {
	AttemptID    uint `json:"attempt_id"`
	Score        int  `json:"score"`
	CorrectCount int  `json:"correct_count"`
	TotalCount   int  `json:"total_count"`
	AttemptXP    int  `json:"attempt_xp"`
	GameXP       int  `json:"game_xp"`
	GameComplete bool `json:"game_complete"`
	TotalXP      int  `json:"total_xp"`
	Level        int  `json:"level"`
	LeveledUp    bool `json:"leveled_up"`
	Streak       int  `json:"streak"`
}

type AccountSummaryDTO struct {
	AccountID     uint       `json:"account_id"`
	Nickname      string     `json:"nickname"`
	TestType      string     `json:"test_type"`
	Level         int        `json:"level"`
	TotalXP       int        `json:"total_xp"`
	Streak        int        `json:"streak"`
	LastStudyDate *time.Time `json:"last_study_date,omitempty"`
}

type LeaderboardRowDTO struct {
	Rank      int    `json:"rank"`
	AccountID uint   `json:"account_id"`
	Nickname  string `json:"nickname"`
	Level     int    `json:"level"`
	TotalXP   int    `json:"total_xp"`
	Streak    int    `json:"streak"`
}

type ParentLinkDTO struct {
	ID         uint   `json:"id"`
	ParentID   uint   `json:"parent_id"`
	StudentID  *uint  `json:"student_id,omitempty"`
	InviteCode string `json:"invite_code"`
	Status     string `json:"status"`
}

// StudentReportDTO is one linked student's slice of a parent report.
type StudentReportDTO struct {
	Summary        AccountSummaryDTO `json:"summary"`
	Units          []UnitSummaryDTO  `json:"units"`
	RecentAttempts []AttemptRowDTO   `json:"recent_attempts"`
}

type AttemptRowDTO struct {
	UnitID      uint      `json:"unit_id"`
	Game        string    `json:"game"`
	Score       int       `json:"score"`
	Completed   bool      `json:"completed"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type ParentReportDTO struct {
	ParentID uint               `json:"parent_id"`
	TestType string             `json:"test_type"`
	Students []StudentReportDTO `json:"students"`
}

type GeneratedContentDTO struct {
	UnitID      uint            `json:"unit_id"`
	Kind        string          `json:"kind"`
	Payload     json.RawMessage `json:"payload"`
	GeneratedAt time.Time       `json:"generated_at"`
	FromCache   bool            `json:"from_cache"`
}

type ImportResultDTO struct {
	UnitID         uint     `json:"unit_id"`
	TotalProcessed int      `json:"total_processed"`
	Created        int      `json:"created"`
	Skipped        int      `json:"skipped"`
	Errors         []string `json:"errors,omitempty"`
}
