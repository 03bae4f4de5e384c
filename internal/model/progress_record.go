package model

import (
	"time"
)

// ProgressRecord is the per (account, unit, game) aggregate of attempts.
// The running sums keep the average-based XP recomputable from the record
// alone; BestScore is tracked separately because unlock gating reads the
// maximum while XP reads the average.
type ProgressRecord struct {
	ID               uint      `gorm:"primarykey" json:"id"`
	AccountID        uint      `json:"account_id" gorm:"not null;uniqueIndex:idx_progress_key"`
	UnitID           uint      `json:"unit_id" gorm:"not null;uniqueIndex:idx_progress_key"`
	Game             string    `json:"game" gorm:"not null;uniqueIndex:idx_progress_key"`
	AttemptCount     int       `json:"attempt_count" gorm:"not null"`
	BestScore        int       `json:"best_score" gorm:"not null"`
	ScoreSum         int       `json:"-" gorm:"not null"`
	TimeSpentSum     int       `json:"time_spent_sum" gorm:"not null"`
	QuestionSum      int       `json:"-" gorm:"not null"`
	TotalXP          int       `json:"total_xp" gorm:"not null"`
	Completed        bool      `json:"completed" gorm:"not null"`
	LastAttemptAt    time.Time `json:"last_attempt_at"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
